package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"hotel-premium-backend/models"
	"hotel-premium-backend/utils"
)

// Bathrobe unit prices by size, in COP.
var robePrices = map[string]float64{
	"S":  35000,
	"M":  40000,
	"L":  45000,
	"XL": 50000,
}

// ExtrasService manages the additional-service ledger of a reservation:
// laundry, restaurant orders and bathrobe sales.
type ExtrasService struct {
	reservations *ReservationService
	rooms        *RoomService
	audit        AuditSink
	log          *zap.Logger
}

func NewExtrasService(reservations *ReservationService, rooms *RoomService, audit AuditSink, log *zap.Logger) *ExtrasService {
	return &ExtrasService{reservations: reservations, rooms: rooms, audit: audit, log: log}
}

func (s *ExtrasService) AddLaundry(reservationID uint, description string, pieces int, pricePerPiece float64) error {
	if pieces <= 0 {
		return utils.Validationf("piece count must be greater than zero")
	}
	if pricePerPiece < 0 {
		return utils.Validationf("price per piece cannot be negative")
	}
	svc := models.LaundryService{
		Description:   description,
		Pieces:        pieces,
		PricePerPiece: pricePerPiece,
		Date:          time.Now(),
	}
	if err := s.reservations.attachService(reservationID, svc); err != nil {
		return err
	}
	s.audit.Record("SERVICE added", "reception",
		fmt.Sprintf("Laundry added to reservation %d: %d pieces - %.0f", reservationID, pieces, svc.Cost()))
	return nil
}

func (s *ExtrasService) AddRestaurant(reservationID uint, mealType string, quantity int, unitPrice float64) error {
	if quantity <= 0 {
		return utils.Validationf("quantity must be greater than zero")
	}
	if unitPrice < 0 {
		return utils.Validationf("unit price cannot be negative")
	}
	svc := models.RestaurantService{
		MealType:  mealType,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Date:      time.Now(),
	}
	if err := s.reservations.attachService(reservationID, svc); err != nil {
		return err
	}
	s.audit.Record("SERVICE added", "reception",
		fmt.Sprintf("Restaurant added to reservation %d: %s x%d - %.0f", reservationID, mealType, quantity, svc.Cost()))
	return nil
}

// AddRobeSale sells bathrobes through a room that has the robe-sale
// capability; single rooms don't.
func (s *ExtrasService) AddRobeSale(reservationID, roomID uint, size string, quantity int) error {
	if quantity <= 0 {
		return utils.Validationf("quantity must be greater than zero")
	}
	price, ok := robePrices[size]
	if !ok {
		return utils.Validationf("unknown bathrobe size %q", size)
	}

	room, err := s.rooms.GetByID(roomID)
	if err != nil {
		return err
	}
	if !room.Type.SellsRobes() {
		return utils.Unsupportedf("room %s does not offer bathrobe sales", room.Number)
	}

	svc := models.RobeSaleService{
		RoomNumber: room.Number,
		Size:       size,
		Quantity:   quantity,
		UnitPrice:  price,
		Date:       time.Now(),
	}
	if err := s.reservations.attachService(reservationID, svc); err != nil {
		return err
	}
	s.audit.Record("SERVICE added", "reception",
		fmt.Sprintf("Bathrobe sold on reservation %d, room %s: size %s x%d - %.0f",
			reservationID, room.Number, size, quantity, svc.Cost()))
	return nil
}

// Remove deletes the service at the given position in the reservation's
// ledger.
func (s *ExtrasService) Remove(reservationID uint, index int) error {
	removed, err := s.reservations.detachService(reservationID, index)
	if err != nil {
		return err
	}
	s.audit.Record("SERVICE removed", "reception",
		fmt.Sprintf("Service removed from reservation %d: %s", reservationID, removed.Describe()))
	return nil
}

// ServicesFor lists the attached services in ledger order.
func (s *ExtrasService) ServicesFor(reservationID uint) ([]models.AdditionalService, error) {
	return s.reservations.servicesOf(reservationID)
}

// TotalCost sums cost() across every attached service.
func (s *ExtrasService) TotalCost(reservationID uint) (float64, error) {
	services, err := s.reservations.servicesOf(reservationID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, svc := range services {
		total += svc.Cost()
	}
	return total, nil
}

// RobeCapableRooms returns the reservation's rooms that can sell robes.
func (s *ExtrasService) RobeCapableRooms(reservationID uint) ([]models.Room, error) {
	res, err := s.reservations.GetByID(reservationID)
	if err != nil {
		return nil, err
	}
	var out []models.Room
	for _, roomID := range res.RoomIDs {
		room, err := s.rooms.GetByID(roomID)
		if err != nil {
			continue
		}
		if room.Type.SellsRobes() {
			out = append(out, room)
		}
	}
	return out, nil
}
