package services

import (
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"hotel-premium-backend/models"
)

// stack wires the whole service graph against a nop logger, a memory-only
// audit trail and no mailer.
type stack struct {
	rooms        *RoomService
	minibar      *MinibarService
	clients      *ClientService
	guests       *GuestService
	invoices     *InvoiceService
	reservations *ReservationService
	extras       *ExtrasService
	audit        *AuditService

	docSeq int
}

func newStack(t *testing.T) *stack {
	t.Helper()
	log := zap.NewNop()
	audit := NewAuditService(nil, log)
	notifier := NewNotificationService(nil, audit, log)

	rooms := NewRoomService(log)
	rooms.InitializeCatalog()
	minibar := NewMinibarService(rooms, audit, log)
	clients := NewClientService(audit, log)
	guests := NewGuestService(audit, log)
	invoices := NewInvoiceService(rooms, minibar, guests, log)
	reservations := NewReservationService(rooms, clients, guests, invoices, notifier, audit, log)
	extras := NewExtrasService(reservations, rooms, audit, log)

	return &stack{
		rooms:        rooms,
		minibar:      minibar,
		clients:      clients,
		guests:       guests,
		invoices:     invoices,
		reservations: reservations,
		extras:       extras,
		audit:        audit,
	}
}

func (s *stack) nextDocument() string {
	s.docSeq++
	return fmt.Sprintf("10%08d", s.docSeq)
}

func (s *stack) addClient(t *testing.T) models.Client {
	t.Helper()
	client, err := s.clients.Add(models.Client{
		DocumentType:   "CC",
		DocumentNumber: s.nextDocument(),
		FirstName:      "Laura",
		LastName:       "Gomez",
		Phone:          "3001234567",
		Email:          "laura@example.com",
	})
	if err != nil {
		t.Fatalf("adding client: %v", err)
	}
	return client
}

func (s *stack) addGuest(t *testing.T, nationality string) models.Guest {
	t.Helper()
	guest, err := s.guests.Add(models.Guest{
		DocumentType:   "CC",
		DocumentNumber: s.nextDocument(),
		FirstName:      "Pedro",
		LastName:       "Rojas",
		Phone:          "3109876543",
		Email:          "pedro@example.com",
		Nationality:    nationality,
	})
	if err != nil {
		t.Fatalf("adding guest: %v", err)
	}
	return guest
}

// stayDates returns a check-in tomorrow and a check-out nights days later.
func stayDates(nights int) (time.Time, time.Time) {
	checkIn := time.Now().AddDate(0, 0, 1)
	return checkIn, checkIn.AddDate(0, 0, nights)
}

func (s *stack) firstRoomOfType(t *testing.T, rt models.RoomType) models.Room {
	t.Helper()
	roomsOfType := s.rooms.GetByType(rt)
	if len(roomsOfType) == 0 {
		t.Fatalf("no rooms of type %s in catalog", rt)
	}
	return roomsOfType[0]
}
