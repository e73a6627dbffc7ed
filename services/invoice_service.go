package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"hotel-premium-backend/models"
	"hotel-premium-backend/utils"
)

var (
	insuranceRate = decimal.NewFromFloat(0.025)
	vatRate       = decimal.NewFromFloat(0.19)
)

// InvoiceService derives the final bill from a reservation snapshot plus the
// room, minibar and service ledgers. Invoices are append-only; totals are
// always recomputed from source data, never patched.
type InvoiceService struct {
	mu       sync.RWMutex
	invoices []models.Invoice
	byID     map[uint]int
	nextID   uint

	rooms   *RoomService
	minibar *MinibarService
	guests  GuestLookup
	log     *zap.Logger
}

func NewInvoiceService(rooms *RoomService, minibar *MinibarService, guests GuestLookup, log *zap.Logger) *InvoiceService {
	return &InvoiceService{
		byID:    make(map[uint]int),
		rooms:   rooms,
		minibar: minibar,
		guests:  guests,
		log:     log,
	}
}

// GenerateInvoice computes and stores the invoice for a reservation
// snapshot. Room charges bill the full guest-count multiplier per room, not
// split across rooms of the same party.
func (s *InvoiceService) GenerateInvoice(res models.Reservation, paymentMethod string) (models.Invoice, error) {
	nights := res.Nights()
	multiplier := res.GuestCount
	if multiplier < 1 {
		multiplier = 1
	}

	lines := []models.InvoiceLine{{
		Description: fmt.Sprintf("Stay %s to %s (%d nights, %d guests)",
			res.CheckIn.Format("2006-01-02"), res.CheckOut.Format("2006-01-02"), nights, multiplier),
		Amount: decimal.Zero,
	}}

	subtotal := decimal.Zero
	minibarTotal := decimal.Zero
	for _, roomID := range res.RoomIDs {
		room, err := s.rooms.GetByID(roomID)
		if err != nil {
			return models.Invoice{}, err
		}
		roomCost := decimal.NewFromFloat(room.PricePerNight).
			Mul(decimal.NewFromInt(int64(nights))).
			Mul(decimal.NewFromInt(int64(multiplier)))
		subtotal = subtotal.Add(roomCost)
		lines = append(lines, models.InvoiceLine{
			Description: fmt.Sprintf("Room %s (%s): %.0f x %d nights x %d guests",
				room.Number, room.Type, room.PricePerNight, nights, multiplier),
			Amount: roomCost,
		})

		if cost := s.minibar.TotalCost(roomID); cost > 0 {
			amount := decimal.NewFromFloat(cost)
			minibarTotal = minibarTotal.Add(amount)
			lines = append(lines, models.InvoiceLine{
				Description: fmt.Sprintf("Minibar consumption, room %s", room.Number),
				Amount:      amount,
			})
		}
	}

	servicesTotal := decimal.Zero
	for _, svc := range res.Services {
		amount := decimal.NewFromFloat(svc.Cost())
		servicesTotal = servicesTotal.Add(amount)
		lines = append(lines, models.InvoiceLine{Description: svc.Describe(), Amount: amount})
	}

	insurance := subtotal.Mul(insuranceRate)
	lines = append(lines, models.InvoiceLine{Description: "Insurance surcharge (2.5%)", Amount: insurance})

	tax := decimal.Zero
	if s.hasColombianGuest(res.GuestIDs) {
		tax = subtotal.Mul(vatRate)
		lines = append(lines, models.InvoiceLine{Description: "VAT (19%)", Amount: tax})
	}

	total := subtotal.Add(insurance).Add(tax).Add(minibarTotal).Add(servicesTotal)
	lines = append(lines, models.InvoiceLine{Description: "Total", Amount: total})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	invoice := models.Invoice{
		ID:            s.nextID,
		Number:        fmt.Sprintf("FAC-%s-%04d", time.Now().Format("20060102"), s.nextID),
		ClientID:      res.ClientID,
		ReservationID: res.ID,
		Lines:         lines,
		Subtotal:      subtotal,
		Insurance:     insurance,
		Tax:           tax,
		MinibarTotal:  minibarTotal,
		ServicesTotal: servicesTotal,
		Total:         total,
		PaymentMethod: paymentMethod,
		GeneratedAt:   time.Now(),
	}
	s.byID[invoice.ID] = len(s.invoices)
	s.invoices = append(s.invoices, invoice.Clone())

	s.log.Info("invoice generated",
		zap.Uint("reservationId", res.ID),
		zap.String("number", invoice.Number),
		zap.String("total", total.String()))
	return invoice, nil
}

// hasColombianGuest checks whether any attached guest's nationality
// normalizes to Colombian.
func (s *InvoiceService) hasColombianGuest(guestIDs []uint) bool {
	for _, id := range guestIDs {
		guest, ok := s.guests.LookupGuest(id)
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(guest.Nationality)) {
		case "colombia", "colombiano":
			return true
		}
	}
	return false
}

func (s *InvoiceService) GetAll() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, inv.Clone())
	}
	return out
}

func (s *InvoiceService) GetByID(id uint) (models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[id]
	if !ok {
		return models.Invoice{}, utils.NotFoundf("invoice with id %d not found", id)
	}
	return s.invoices[idx].Clone(), nil
}

// GetByReservation returns the first invoice issued for the reservation.
func (s *InvoiceService) GetByReservation(reservationID uint) (models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ReservationID == reservationID {
			return inv.Clone(), nil
		}
	}
	return models.Invoice{}, utils.NotFoundf("no invoice found for reservation %d", reservationID)
}

// RenderView formats an invoice as a plain-text itemized breakdown.
func (s *InvoiceService) RenderView(id uint) (string, error) {
	invoice, err := s.GetByID(id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Invoice %s\n", invoice.Number)
	fmt.Fprintf(&b, "Generated: %s\n", invoice.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Client: %d  Reservation: %d\n", invoice.ClientID, invoice.ReservationID)
	if invoice.PaymentMethod != "" {
		fmt.Fprintf(&b, "Payment method: %s\n", invoice.PaymentMethod)
	}
	b.WriteString(strings.Repeat("-", 52) + "\n")
	for _, line := range invoice.Lines {
		if line.Amount.IsZero() && line.Description != "Total" {
			fmt.Fprintf(&b, "%s\n", line.Description)
			continue
		}
		fmt.Fprintf(&b, "%-38s %13s\n", line.Description, line.Amount.StringFixed(2))
	}
	return b.String(), nil
}
