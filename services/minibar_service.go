package services

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotel-premium-backend/models"
	"hotel-premium-backend/utils"
)

// MinibarService records in-room consumption against the inventory's minibar
// stock. Consumption accrues against the room identity, not the reservation,
// and is never cleared; a new stay on the same room inherits whatever was
// left unbilled.
type MinibarService struct {
	rooms *RoomService
	audit AuditSink
	log   *zap.Logger

	mu      sync.RWMutex
	records map[uint][]models.ConsumptionRecord
}

func NewMinibarService(rooms *RoomService, audit AuditSink, log *zap.Logger) *MinibarService {
	return &MinibarService{
		rooms:   rooms,
		audit:   audit,
		log:     log,
		records: make(map[uint][]models.ConsumptionRecord),
	}
}

// GetMinibar returns the product list of a minibar-capable room.
func (s *MinibarService) GetMinibar(roomID uint) ([]models.MinibarProduct, error) {
	room, err := s.rooms.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if !room.Type.HasMinibar() {
		return nil, utils.NotFoundf("room %s has no minibar", room.Number)
	}
	return room.Minibar, nil
}

// HasMinibar reports whether the room carries a minibar.
func (s *MinibarService) HasMinibar(roomID uint) bool {
	room, err := s.rooms.GetByID(roomID)
	return err == nil && room.Type.HasMinibar()
}

// RegisterConsumption decrements stock and appends a consumption record in
// one atomic step. On any failure nothing changes: stock is only touched
// after every check passed.
func (s *MinibarService) RegisterConsumption(roomID, productID uint, quantity int) (models.ConsumptionRecord, error) {
	if quantity <= 0 {
		return models.ConsumptionRecord{}, utils.Validationf("quantity must be greater than zero")
	}

	var record models.ConsumptionRecord
	err := s.rooms.withRoom(roomID, func(room *models.Room) error {
		if !room.Type.HasMinibar() {
			return utils.NotFoundf("room %s has no minibar", room.Number)
		}
		for i := range room.Minibar {
			product := &room.Minibar[i]
			if product.ID != productID {
				continue
			}
			if product.Stock < quantity {
				return utils.InsufficientStockError(product.Stock, quantity)
			}
			product.Stock -= quantity
			record = models.ConsumptionRecord{
				RoomID:      roomID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    quantity,
				UnitPrice:   product.UnitPrice,
				Subtotal:    float64(quantity) * product.UnitPrice,
				RecordedAt:  time.Now(),
			}
			return nil
		}
		return utils.NotFoundf("product %d not found in the minibar", productID)
	})
	if err != nil {
		return models.ConsumptionRecord{}, err
	}

	s.mu.Lock()
	s.records[roomID] = append(s.records[roomID], record)
	s.mu.Unlock()

	s.audit.Record("MINIBAR CONSUMPTION", "reception",
		fmt.Sprintf("Room #%d - %s x%d - Total: %.0f", roomID, record.ProductName, quantity, record.Subtotal))
	return record, nil
}

// ConsumptionsFor returns every consumption recorded against the room.
func (s *MinibarService) ConsumptionsFor(roomID uint) []models.ConsumptionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ConsumptionRecord(nil), s.records[roomID]...)
}

// TotalCost sums the recorded subtotals for the room.
func (s *MinibarService) TotalCost(roomID uint) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, r := range s.records[roomID] {
		total += r.Subtotal
	}
	return total
}
