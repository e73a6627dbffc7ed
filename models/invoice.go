package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceLine struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is the final bill for a stay. Once generated it is never mutated;
// totals are recomputed from source data, not patched.
type Invoice struct {
	ID            uint            `json:"id"`
	Number        string          `json:"number"`
	ClientID      uint            `json:"clientId"`
	ReservationID uint            `json:"reservationId"`
	Lines         []InvoiceLine   `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Insurance     decimal.Decimal `json:"insurance"`
	Tax           decimal.Decimal `json:"tax"`
	MinibarTotal  decimal.Decimal `json:"minibarTotal"`
	ServicesTotal decimal.Decimal `json:"servicesTotal"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	GeneratedAt   time.Time       `json:"generatedAt"`
}

func (i Invoice) Clone() Invoice {
	out := i
	out.Lines = append([]InvoiceLine(nil), i.Lines...)
	return out
}
