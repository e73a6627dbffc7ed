package services

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-premium-backend/models"
)

// AuditSink receives business events. Implementations must never block the
// caller and never surface a failure.
type AuditSink interface {
	Record(action, actor, details string)
}

const auditRetention = 1000

// AuditService keeps a bounded in-memory trail and, when an audit database
// is configured, asynchronously persists each event through gorm. Write
// failures are logged and swallowed.
type AuditService struct {
	mu     sync.Mutex
	events []models.AuditEvent
	nextID uint
	db     *gorm.DB
	log    *zap.Logger
}

func NewAuditService(db *gorm.DB, log *zap.Logger) *AuditService {
	return &AuditService{db: db, log: log}
}

func (s *AuditService) Record(action, actor, details string) {
	payload, err := json.Marshal(map[string]string{"details": details})
	if err != nil {
		payload = nil
	}
	event := models.AuditEvent{
		CreatedAt: time.Now(),
		Action:    action,
		Actor:     actor,
		Details:   datatypes.JSON(payload),
	}

	s.mu.Lock()
	s.nextID++
	event.ID = s.nextID
	s.events = append(s.events, event)
	if len(s.events) > auditRetention {
		s.events = s.events[len(s.events)-auditRetention:]
	}
	s.mu.Unlock()

	if s.db != nil {
		go func(ev models.AuditEvent) {
			ev.ID = 0 // let the database assign its own key
			if err := s.db.Create(&ev).Error; err != nil {
				s.log.Warn("audit event not persisted", zap.String("action", ev.Action), zap.Error(err))
			}
		}(event)
	}
}

// Recent returns the newest n events, oldest first.
func (s *AuditService) Recent(n int) []models.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || n > len(s.events) {
		n = len(s.events)
	}
	out := make([]models.AuditEvent, n)
	copy(out, s.events[len(s.events)-n:])
	return out
}
