package models

// RoomType is the closed set of room variants. Capabilities hang off the
// type, not off runtime inspection of the room record.
type RoomType string

const (
	RoomTypeSingle    RoomType = "single"
	RoomTypeExecutive RoomType = "executive"
	RoomTypeSuite     RoomType = "suite"
)

// HasMinibar reports whether rooms of this type carry an in-room minibar.
func (t RoomType) HasMinibar() bool {
	return t == RoomTypeExecutive || t == RoomTypeSuite
}

// SellsRobes reports whether rooms of this type offer bathrobe sales.
func (t RoomType) SellsRobes() bool {
	return t == RoomTypeExecutive || t == RoomTypeSuite
}

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomReserved  RoomStatus = "reserved"
)

type BedType string

const (
	BedSingle     BedType = "single"
	BedDouble     BedType = "double"
	BedSemiDouble BedType = "semi-double"
	BedQueen      BedType = "queen"
	BedKing       BedType = "king"
)

type Room struct {
	ID            uint             `json:"id"`
	Number        string           `json:"number"`
	Type          RoomType         `json:"type"`
	PricePerNight float64          `json:"pricePerNight"`
	BedType       BedType          `json:"bedType"`
	BedCount      int              `json:"bedCount"`
	Status        RoomStatus       `json:"status"`
	Description   string           `json:"description"`
	Minibar       []MinibarProduct `json:"minibar,omitempty"`
}

// Clone returns a deep copy so callers can't reach mutable minibar stock
// behind the inventory's lock.
func (r Room) Clone() Room {
	out := r
	if r.Minibar != nil {
		out.Minibar = make([]MinibarProduct, len(r.Minibar))
		copy(out.Minibar, r.Minibar)
	}
	return out
}
