package models

import "time"

// Guest is a person staying under a reservation. Nationality drives the VAT
// rule on the invoice.
type Guest struct {
	ID             uint      `json:"id"`
	DocumentType   string    `json:"documentType"`
	DocumentNumber string    `json:"documentNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Nationality    string    `json:"nationality"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
