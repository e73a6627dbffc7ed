package models

import "time"

// Client is the person the reservation is billed to.
type Client struct {
	ID             uint      `json:"id"`
	DocumentType   string    `json:"documentType"`
	DocumentNumber string    `json:"documentNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Preferences    string    `json:"preferences,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
