package models

import (
	"fmt"
	"time"
)

type ServiceKind string

const (
	ServiceLaundry    ServiceKind = "laundry"
	ServiceRestaurant ServiceKind = "restaurant"
	ServiceRobeSale   ServiceKind = "robe_sale"
)

// AdditionalService is a billable add-on attached to a reservation,
// independent of room and minibar charges.
type AdditionalService interface {
	Kind() ServiceKind
	Cost() float64
	Describe() string
}

type LaundryService struct {
	Description   string    `json:"description"`
	Pieces        int       `json:"pieces"`
	PricePerPiece float64   `json:"pricePerPiece"`
	Date          time.Time `json:"date"`
}

func (s LaundryService) Kind() ServiceKind { return ServiceLaundry }

func (s LaundryService) Cost() float64 { return float64(s.Pieces) * s.PricePerPiece }

func (s LaundryService) Describe() string {
	return fmt.Sprintf("Laundry: %s (%d pieces)", s.Description, s.Pieces)
}

type RestaurantService struct {
	MealType  string    `json:"mealType"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Date      time.Time `json:"date"`
}

func (s RestaurantService) Kind() ServiceKind { return ServiceRestaurant }

func (s RestaurantService) Cost() float64 { return float64(s.Quantity) * s.UnitPrice }

func (s RestaurantService) Describe() string {
	return fmt.Sprintf("Restaurant: %s x%d", s.MealType, s.Quantity)
}

type RobeSaleService struct {
	RoomNumber string    `json:"roomNumber"`
	Size       string    `json:"size"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	Date       time.Time `json:"date"`
}

func (s RobeSaleService) Kind() ServiceKind { return ServiceRobeSale }

func (s RobeSaleService) Cost() float64 { return float64(s.Quantity) * s.UnitPrice }

func (s RobeSaleService) Describe() string {
	return fmt.Sprintf("Bathrobe size %s x%d (room %s)", s.Size, s.Quantity, s.RoomNumber)
}

// ServiceView is the wire representation of an attached service.
type ServiceView struct {
	Index       int         `json:"index"`
	Kind        ServiceKind `json:"kind"`
	Description string      `json:"description"`
	Cost        float64     `json:"cost"`
}

func ViewOf(index int, s AdditionalService) ServiceView {
	return ServiceView{Index: index, Kind: s.Kind(), Description: s.Describe(), Cost: s.Cost()}
}
