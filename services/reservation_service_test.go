package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-premium-backend/models"
	"hotel-premium-backend/utils"
)

func TestCreateReservation(t *testing.T) {
	s := newStack(t)
	client := s.addClient(t)
	guest := s.addGuest(t, "Colombia")
	room := s.firstRoomOfType(t, models.RoomTypeSingle)
	checkIn, checkOut := stayDates(3)

	res, err := s.reservations.Create(client.ID, checkIn, checkOut, 2, []uint{room.ID}, []uint{guest.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, res.Status)
	assert.NotEmpty(t, res.ReferenceCode)
	assert.Equal(t, 3, res.Nights())
	assert.Equal(t, []uint{guest.ID}, res.GuestIDs)

	got, err := s.rooms.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomReserved, got.Status)
}

func TestCreateReservationValidation(t *testing.T) {
	s := newStack(t)
	client := s.addClient(t)
	room := s.firstRoomOfType(t, models.RoomTypeSingle)
	checkIn, checkOut := stayDates(2)

	_, err := s.reservations.Create(9999, checkIn, checkOut, 1, []uint{room.ID}, nil)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	past := time.Now().AddDate(0, 0, -2)
	_, err = s.reservations.Create(client.ID, past, checkOut, 1, []uint{room.ID}, nil)
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	_, err = s.reservations.Create(client.ID, checkOut, checkIn, 1, []uint{room.ID}, nil)
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	_, err = s.reservations.Create(client.ID, checkIn, checkIn, 1, []uint{room.ID}, nil)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func TestCreateReservationPartialConflictReservesNothing(t *testing.T) {
	s := newStack(t)
	client := s.addClient(t)
	singles := s.rooms.GetByType(models.RoomTypeSingle)
	free, taken := singles[0], singles[1]
	checkIn, checkOut := stayDates(2)

	_, err := s.reservations.Create(client.ID, checkIn, checkOut, 1, []uint{taken.ID}, nil)
	require.NoError(t, err)

	_, err = s.reservations.Create(client.ID, checkIn, checkOut, 2, []uint{free.ID, taken.ID}, nil)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindConflict))

	got, err := s.rooms.GetByID(free.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomAvailable, got.Status)
	assert.Len(t, s.reservations.GetByClient(client.ID), 1)
}

func TestCancelReleasesEveryRoom(t *testing.T) {
	s := newStack(t)
	client := s.addClient(t)
	singles := s.rooms.GetByType(models.RoomTypeSingle)
	a, b := singles[0], singles[1]
	checkIn, checkOut := stayDates(2)

	res, err := s.reservations.Create(client.ID, checkIn, checkOut, 2, []uint{a.ID, b.ID}, nil)
	require.NoError(t, err)

	require.NoError(t, s.reservations.Cancel(res.ID))

	for _, id := range []uint{a.ID, b.ID} {
		got, err := s.rooms.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, models.RoomAvailable, got.Status)
	}

	updated, err := s.reservations.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, updated.Status)

	// A second cancel finds the reservation already terminal.
	err = s.reservations.Cancel(res.ID)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindInvalidState))
}

func TestLifecycleTransitions(t *testing.T) {
	s := newStack(t)
	room := s.firstRoomOfType(t, models.RoomTypeSingle)
	res := s.newReservation(t, 2, room.ID)

	// Check-in straight from pending is illegal.
	err := s.reservations.CheckIn(res.ID)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindInvalidState))

	require.NoError(t, s.reservations.Confirm(res.ID))

	// Confirming twice is illegal too.
	assert.True(t, utils.IsKind(s.reservations.Confirm(res.ID), utils.KindInvalidState))

	require.NoError(t, s.reservations.CheckIn(res.ID))

	// Cancelling after check-in is not allowed.
	assert.True(t, utils.IsKind(s.reservations.Cancel(res.ID), utils.KindInvalidState))

	invoice, err := s.reservations.CheckOut(res.ID, "card")
	require.NoError(t, err)
	assert.NotEmpty(t, invoice.Number)
	assert.Equal(t, "card", invoice.PaymentMethod)

	final, err := s.reservations.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCheckedOut, final.Status)

	// Checkout is terminal.
	_, err = s.reservations.CheckOut(res.ID, "card")
	assert.True(t, utils.IsKind(err, utils.KindInvalidState))
}

func TestCheckOutKeepsRoomsReserved(t *testing.T) {
	s := newStack(t)
	room := s.firstRoomOfType(t, models.RoomTypeExecutive)
	res := s.newReservation(t, 1, room.ID)

	require.NoError(t, s.reservations.Confirm(res.ID))
	require.NoError(t, s.reservations.CheckIn(res.ID))
	_, err := s.reservations.CheckOut(res.ID, "cash")
	require.NoError(t, err)

	// Checkout does not free inventory; rooms are only released by an
	// explicit cancel.
	got, err := s.rooms.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomReserved, got.Status)
}

func TestGetByDateIsInclusive(t *testing.T) {
	s := newStack(t)
	room := s.firstRoomOfType(t, models.RoomTypeSingle)
	res := s.newReservation(t, 3, room.ID)

	checkIn := res.CheckIn
	checkOut := res.CheckOut

	for _, date := range []time.Time{checkIn, checkIn.AddDate(0, 0, 1), checkOut} {
		matches := s.reservations.GetByDate(date)
		require.Len(t, matches, 1, "date %s should match", date.Format("2006-01-02"))
		assert.Equal(t, res.ID, matches[0].ID)
	}

	assert.Empty(t, s.reservations.GetByDate(checkOut.AddDate(0, 0, 1)))
	assert.Empty(t, s.reservations.GetByDate(checkIn.AddDate(0, 0, -1)))
}

func TestGetByClient(t *testing.T) {
	s := newStack(t)
	first := s.addClient(t)
	second := s.addClient(t)
	singles := s.rooms.GetByType(models.RoomTypeSingle)
	checkIn, checkOut := stayDates(2)

	_, err := s.reservations.Create(first.ID, checkIn, checkOut, 1, []uint{singles[0].ID}, nil)
	require.NoError(t, err)
	_, err = s.reservations.Create(second.ID, checkIn, checkOut, 1, []uint{singles[1].ID}, nil)
	require.NoError(t, err)

	assert.Len(t, s.reservations.GetByClient(first.ID), 1)
	assert.Len(t, s.reservations.GetByClient(second.ID), 1)
	assert.Len(t, s.reservations.GetAll(), 2)
}

func TestConcurrentCreateSameRoomSingleWinner(t *testing.T) {
	s := newStack(t)
	client := s.addClient(t)
	room := s.firstRoomOfType(t, models.RoomTypeSuite)
	checkIn, checkOut := stayDates(2)

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.reservations.Create(client.ID, checkIn, checkOut, 1, []uint{room.ID}, nil)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case utils.IsKind(err, utils.KindConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, s.reservations.GetAll(), 1)
}
