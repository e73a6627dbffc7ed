package services

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotel-premium-backend/models"
	"hotel-premium-backend/utils"
)

// GuestLookup resolves guest ids for the reservation manager and the invoice
// engine's nationality check.
type GuestLookup interface {
	LookupGuest(id uint) (models.Guest, bool)
}

type GuestService struct {
	mu     sync.RWMutex
	guests map[uint]*models.Guest
	order  []uint
	nextID uint
	audit  AuditSink
	log    *zap.Logger
}

func NewGuestService(audit AuditSink, log *zap.Logger) *GuestService {
	return &GuestService{
		guests: make(map[uint]*models.Guest),
		audit:  audit,
		log:    log,
	}
}

func validateGuest(g models.Guest) error {
	if err := utils.ValidateName(g.FirstName, "first name"); err != nil {
		return err
	}
	if err := utils.ValidateName(g.LastName, "last name"); err != nil {
		return err
	}
	if err := utils.ValidateDocument(g.DocumentNumber, g.DocumentType); err != nil {
		return err
	}
	if err := utils.ValidatePhone(g.Phone); err != nil {
		return err
	}
	if err := utils.ValidateNationality(g.Nationality); err != nil {
		return err
	}
	return utils.ValidateEmail(g.Email)
}

func (s *GuestService) Add(guest models.Guest) (models.Guest, error) {
	if err := validateGuest(guest); err != nil {
		return models.Guest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findByDocumentLocked(guest.DocumentNumber) != nil {
		return models.Guest{}, utils.Conflictf("a guest with document %s already exists", guest.DocumentNumber)
	}
	s.nextID++
	guest.ID = s.nextID
	guest.CreatedAt = time.Now()
	stored := guest
	s.guests[guest.ID] = &stored
	s.order = append(s.order, guest.ID)

	s.audit.Record("GUEST registered", "reception",
		fmt.Sprintf("%s - Nationality: %s", guest.FullName(), guest.Nationality))
	return guest, nil
}

func (s *GuestService) findByDocumentLocked(document string) *models.Guest {
	for _, id := range s.order {
		if s.guests[id].DocumentNumber == document {
			return s.guests[id]
		}
	}
	return nil
}

// LookupGuest implements GuestLookup.
func (s *GuestService) LookupGuest(id uint) (models.Guest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	guest, ok := s.guests[id]
	if !ok {
		return models.Guest{}, false
	}
	return *guest, true
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	guest, ok := s.LookupGuest(id)
	if !ok {
		return models.Guest{}, utils.NotFoundf("guest with id %d not found", id)
	}
	return guest, nil
}

func (s *GuestService) GetAll() []models.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Guest, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.guests[id])
	}
	return out
}

func (s *GuestService) Update(guest models.Guest) error {
	if err := validateGuest(guest); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guests[guest.ID]; !ok {
		return utils.NotFoundf("guest with id %d not found", guest.ID)
	}
	if other := s.findByDocumentLocked(guest.DocumentNumber); other != nil && other.ID != guest.ID {
		return utils.Conflictf("another guest with document %s already exists", guest.DocumentNumber)
	}
	guest.CreatedAt = s.guests[guest.ID].CreatedAt
	stored := guest
	s.guests[guest.ID] = &stored
	return nil
}

func (s *GuestService) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guests[id]; !ok {
		return utils.NotFoundf("guest with id %d not found", id)
	}
	delete(s.guests, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
