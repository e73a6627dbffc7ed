package models

import "time"

type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// Legal lifecycle transitions. Cancel is only reachable before check-in;
// everything else moves strictly forward.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCheckedIn, ReservationCancelled},
	ReservationCheckedIn: {ReservationCheckedOut},
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID            uint                `json:"id"`
	ReferenceCode string              `json:"referenceCode"`
	ClientID      uint                `json:"clientId"`
	CheckIn       time.Time           `json:"checkIn"`
	CheckOut      time.Time           `json:"checkOut"`
	GuestCount    int                 `json:"guestCount"`
	RoomIDs       []uint              `json:"roomIds"`
	GuestIDs      []uint              `json:"guestIds,omitempty"`
	Status        ReservationStatus   `json:"status"`
	Services      []AdditionalService `json:"-"`
	CreatedAt     time.Time           `json:"createdAt"`
	ModifiedAt    time.Time           `json:"modifiedAt"`
}

// Nights is the stay length in whole days.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Includes reports whether date falls inside the stay interval, inclusive on
// both ends. Comparison is date-only.
func (r Reservation) Includes(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(r.CheckIn)) && !d.After(DateOnly(r.CheckOut))
}

// Clone deep-copies the slices so snapshots stay frozen while the live
// reservation keeps mutating.
func (r Reservation) Clone() Reservation {
	out := r
	out.RoomIDs = append([]uint(nil), r.RoomIDs...)
	out.GuestIDs = append([]uint(nil), r.GuestIDs...)
	out.Services = append([]AdditionalService(nil), r.Services...)
	return out
}

// DateOnly truncates a timestamp to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
