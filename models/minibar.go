package models

import "time"

type ProductCategory string

const (
	CategoryWater     ProductCategory = "water"
	CategorySoda      ProductCategory = "soda"
	CategoryJuice     ProductCategory = "juice"
	CategorySnack     ProductCategory = "snack"
	CategoryWine      ProductCategory = "wine"
	CategoryLiquor    ProductCategory = "liquor"
	CategorySparkling ProductCategory = "sparkling"
)

// MinibarProduct is a stocked item inside a room's minibar. Stock never goes
// below zero; the ledger rejects consumptions that would overdraw it.
type MinibarProduct struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Category  ProductCategory `json:"category"`
	UnitPrice float64         `json:"unitPrice"`
	Stock     int             `json:"stock"`
}

// ConsumptionRecord captures one minibar consumption. The subtotal is fixed
// at recording time, so later price changes don't rewrite history.
type ConsumptionRecord struct {
	RoomID      uint      `json:"roomId"`
	ProductID   uint      `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Subtotal    float64   `json:"subtotal"`
	RecordedAt  time.Time `json:"recordedAt"`
}
