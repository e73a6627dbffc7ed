package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-premium-backend/models"
	"hotel-premium-backend/utils"
)

// ReservationService owns reservations and their lifecycle. Transitions are
// serialized under one lock; operations that also touch room state acquire
// the inventory lock first so the lock order is inventory -> reservations
// everywhere.
//
// Reservations are never deleted; cancelled and checked-out stays are kept
// for history.
type ReservationService struct {
	mu           sync.RWMutex
	reservations map[uint]*models.Reservation
	order        []uint
	nextID       uint

	rooms    *RoomService
	clients  ClientLookup
	guests   GuestLookup
	invoices *InvoiceService
	notifier *NotificationService
	audit    AuditSink
	log      *zap.Logger
}

func NewReservationService(
	rooms *RoomService,
	clients ClientLookup,
	guests GuestLookup,
	invoices *InvoiceService,
	notifier *NotificationService,
	audit AuditSink,
	log *zap.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: make(map[uint]*models.Reservation),
		rooms:        rooms,
		clients:      clients,
		guests:       guests,
		invoices:     invoices,
		notifier:     notifier,
		audit:        audit,
		log:          log,
	}
}

// Create validates the request, reserves every room atomically and stores a
// new pending reservation. A conflict on any room leaves all rooms
// untouched.
func (s *ReservationService) Create(clientID uint, checkIn, checkOut time.Time, guestCount int, roomIDs []uint, guestIDs []uint) (models.Reservation, error) {
	client, ok := s.clients.LookupClient(clientID)
	if !ok {
		return models.Reservation{}, utils.NotFoundf("client with id %d not found", clientID)
	}

	today := models.DateOnly(time.Now())
	if models.DateOnly(checkIn).Before(today) {
		return models.Reservation{}, utils.Validationf("check-in date cannot be before today")
	}
	if !models.DateOnly(checkIn).Before(models.DateOnly(checkOut)) {
		return models.Reservation{}, utils.Validationf("check-in date must be before check-out date")
	}

	var attachedGuests []uint
	for _, guestID := range guestIDs {
		if _, ok := s.guests.LookupGuest(guestID); ok {
			attachedGuests = append(attachedGuests, guestID)
		}
	}

	// Inventory lock first, then the reservation lock.
	s.rooms.mu.Lock()
	if err := s.rooms.reserveAllLocked(roomIDs); err != nil {
		s.rooms.mu.Unlock()
		return models.Reservation{}, err
	}

	now := time.Now()
	s.mu.Lock()
	s.nextID++
	res := &models.Reservation{
		ID:            s.nextID,
		ReferenceCode: uuid.NewString(),
		ClientID:      clientID,
		CheckIn:       models.DateOnly(checkIn),
		CheckOut:      models.DateOnly(checkOut),
		GuestCount:    guestCount,
		RoomIDs:       append([]uint(nil), roomIDs...),
		GuestIDs:      attachedGuests,
		Status:        models.ReservationPending,
		CreatedAt:     now,
		ModifiedAt:    now,
	}
	s.reservations[res.ID] = res
	s.order = append(s.order, res.ID)
	out := res.Clone()
	s.mu.Unlock()
	s.rooms.mu.Unlock()

	s.audit.Record("RESERVATION created", "system",
		fmt.Sprintf("Reservation #%d - Client: %s - Check-in: %s - Check-out: %s",
			out.ID, client.FullName(), out.CheckIn.Format("02/01/2006"), out.CheckOut.Format("02/01/2006")))
	return out, nil
}

// Confirm moves a pending reservation to confirmed and notifies the client.
func (s *ReservationService) Confirm(id uint) error {
	res, err := s.transition(id, models.ReservationConfirmed)
	if err != nil {
		return err
	}
	s.audit.Record("RESERVATION confirmed", "system", fmt.Sprintf("Reservation #%d", id))
	if client, ok := s.clients.LookupClient(res.ClientID); ok {
		s.notifier.SendReservationConfirmed(client.Email, res.ID, res.CheckIn, res.CheckOut)
	}
	return nil
}

// Cancel aborts a reservation before check-in and releases every assigned
// room back to available in the same critical section.
func (s *ReservationService) Cancel(id uint) error {
	s.rooms.mu.Lock()
	s.mu.Lock()
	res, ok := s.reservations[id]
	if !ok {
		s.mu.Unlock()
		s.rooms.mu.Unlock()
		return utils.NotFoundf("reservation with id %d not found", id)
	}
	if !res.Status.CanTransitionTo(models.ReservationCancelled) {
		status := res.Status
		s.mu.Unlock()
		s.rooms.mu.Unlock()
		return utils.InvalidStatef("cannot cancel a reservation in state %s", status)
	}
	res.Status = models.ReservationCancelled
	res.ModifiedAt = time.Now()
	s.rooms.releaseAllLocked(res.RoomIDs)
	clientID := res.ClientID
	s.mu.Unlock()
	s.rooms.mu.Unlock()

	s.audit.Record("RESERVATION cancelled", "system", fmt.Sprintf("Reservation #%d", id))
	if client, ok := s.clients.LookupClient(clientID); ok {
		s.notifier.SendCancellation(client.Email, id)
	}
	return nil
}

// CheckIn moves a confirmed reservation to checked-in and sends the welcome
// notification best-effort.
func (s *ReservationService) CheckIn(id uint) error {
	res, err := s.transition(id, models.ReservationCheckedIn)
	if err != nil {
		return err
	}

	numbers := s.roomNumbers(res.RoomIDs)
	client, ok := s.clients.LookupClient(res.ClientID)
	clientName := "unknown"
	if ok {
		clientName = client.FullName()
	}
	s.audit.Record("CHECK-IN completed", "reception",
		fmt.Sprintf("Reservation #%d - Client: %s - Rooms: %s", id, clientName, numbers))
	if ok {
		s.notifier.SendCheckIn(client.Email, numbers)
	}
	return nil
}

// CheckOut closes the stay: the reservation moves to checked-out and the
// invoice engine derives the final bill from a frozen snapshot. Rooms stay
// reserved; only an explicit cancel releases them.
func (s *ReservationService) CheckOut(id uint, paymentMethod string) (models.Invoice, error) {
	s.mu.Lock()
	res, ok := s.reservations[id]
	if !ok {
		s.mu.Unlock()
		return models.Invoice{}, utils.NotFoundf("reservation with id %d not found", id)
	}
	if !res.Status.CanTransitionTo(models.ReservationCheckedOut) {
		status := res.Status
		s.mu.Unlock()
		return models.Invoice{}, utils.InvalidStatef("cannot check out a reservation in state %s", status)
	}
	snapshot := res.Clone()
	res.Status = models.ReservationCheckedOut
	res.ModifiedAt = time.Now()
	s.mu.Unlock()

	invoice, err := s.invoices.GenerateInvoice(snapshot, paymentMethod)
	if err != nil {
		// Roll the transition back so the failed checkout leaves no trace.
		s.mu.Lock()
		if cur, ok := s.reservations[id]; ok && cur.Status == models.ReservationCheckedOut {
			cur.Status = snapshot.Status
			cur.ModifiedAt = time.Now()
		}
		s.mu.Unlock()
		return models.Invoice{}, err
	}

	client, ok := s.clients.LookupClient(snapshot.ClientID)
	clientName := "unknown"
	if ok {
		clientName = client.FullName()
	}
	s.audit.Record("CHECK-OUT completed", "reception",
		fmt.Sprintf("Reservation #%d - Client: %s - Invoice: %s - Amount: %s",
			id, clientName, invoice.Number, invoice.Total.StringFixed(2)))
	if ok {
		s.notifier.SendCheckOut(client.Email, invoice.Number, invoice.Total.StringFixed(2))
	}
	return invoice, nil
}

// transition applies one legal state change under the reservation lock.
func (s *ReservationService) transition(id uint, next models.ReservationStatus) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return models.Reservation{}, utils.NotFoundf("reservation with id %d not found", id)
	}
	if !res.Status.CanTransitionTo(next) {
		return models.Reservation{}, utils.InvalidStatef("cannot move reservation from %s to %s", res.Status, next)
	}
	res.Status = next
	res.ModifiedAt = time.Now()
	return res.Clone(), nil
}

func (s *ReservationService) roomNumbers(ids []uint) string {
	numbers := make([]string, 0, len(ids))
	for _, id := range ids {
		if room, err := s.rooms.GetByID(id); err == nil {
			numbers = append(numbers, room.Number)
		}
	}
	return strings.Join(numbers, ", ")
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.reservations[id]
	if !ok {
		return models.Reservation{}, utils.NotFoundf("reservation with id %d not found", id)
	}
	return res.Clone(), nil
}

func (s *ReservationService) GetAll() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.reservations[id].Clone())
	}
	return out
}

func (s *ReservationService) GetByClient(clientID uint) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Reservation
	for _, id := range s.order {
		if s.reservations[id].ClientID == clientID {
			out = append(out, s.reservations[id].Clone())
		}
	}
	return out
}

// GetByDate returns reservations whose stay interval includes the date,
// inclusive on both ends.
func (s *ReservationService) GetByDate(date time.Time) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Reservation
	for _, id := range s.order {
		if s.reservations[id].Includes(date) {
			out = append(out, s.reservations[id].Clone())
		}
	}
	return out
}

// attachService appends an add-on to the reservation's service ledger.
func (s *ReservationService) attachService(id uint, svc models.AdditionalService) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return utils.NotFoundf("reservation with id %d not found", id)
	}
	res.Services = append(res.Services, svc)
	res.ModifiedAt = time.Now()
	return nil
}

// detachService removes the add-on at index, bounds-checked.
func (s *ReservationService) detachService(id uint, index int) (models.AdditionalService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return nil, utils.NotFoundf("reservation with id %d not found", id)
	}
	if index < 0 || index >= len(res.Services) {
		return nil, utils.Validationf("service index %d out of range", index)
	}
	removed := res.Services[index]
	res.Services = append(res.Services[:index], res.Services[index+1:]...)
	res.ModifiedAt = time.Now()
	return removed, nil
}

func (s *ReservationService) servicesOf(id uint) ([]models.AdditionalService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.reservations[id]
	if !ok {
		return nil, utils.NotFoundf("reservation with id %d not found", id)
	}
	return append([]models.AdditionalService(nil), res.Services...), nil
}
