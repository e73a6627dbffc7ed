package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-premium-backend/models"
	"hotel-premium-backend/utils"
)

func TestRegisterConsumption(t *testing.T) {
	s := newStack(t)
	room := s.firstRoomOfType(t, models.RoomTypeExecutive)

	// Product 1 is mineral water, stock 4 at 3000 each.
	record, err := s.minibar.RegisterConsumption(room.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(6000), record.Subtotal)
	assert.Equal(t, "Mineral Water", record.ProductName)

	got, err := s.rooms.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Minibar[0].Stock)

	assert.Equal(t, float64(6000), s.minibar.TotalCost(room.ID))
	assert.Len(t, s.minibar.ConsumptionsFor(room.ID), 1)
}

func TestRegisterConsumptionInsufficientStock(t *testing.T) {
	s := newStack(t)
	room := s.firstRoomOfType(t, models.RoomTypeExecutive)

	// Product 2 (sparkling water) is seeded with stock 2; asking for more
	// must fail and change nothing.
	_, err := s.minibar.RegisterConsumption(room.ID, 2, 5)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindInsufficientStock))

	var typed *utils.Error
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, 2, typed.Available)

	got, err := s.rooms.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Minibar[1].Stock)
	assert.Empty(t, s.minibar.ConsumptionsFor(room.ID))
	assert.Zero(t, s.minibar.TotalCost(room.ID))
}

func TestRegisterConsumptionValidation(t *testing.T) {
	s := newStack(t)
	room := s.firstRoomOfType(t, models.RoomTypeSuite)

	_, err := s.minibar.RegisterConsumption(room.ID, 1, 0)
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	_, err = s.minibar.RegisterConsumption(room.ID, 1, -3)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func TestRegisterConsumptionUnknownProduct(t *testing.T) {
	s := newStack(t)
	executive := s.firstRoomOfType(t, models.RoomTypeExecutive)

	// Premium products only exist in suites.
	_, err := s.minibar.RegisterConsumption(executive.ID, 14, 1)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestRegisterConsumptionRoomWithoutMinibar(t *testing.T) {
	s := newStack(t)
	single := s.firstRoomOfType(t, models.RoomTypeSingle)

	_, err := s.minibar.RegisterConsumption(single.ID, 1, 1)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
	assert.False(t, s.minibar.HasMinibar(single.ID))
}

func TestConsumptionAccruesAgainstRoomIdentity(t *testing.T) {
	s := newStack(t)
	room := s.firstRoomOfType(t, models.RoomTypeSuite)

	_, err := s.minibar.RegisterConsumption(room.ID, 14, 1) // champagne, 120000
	require.NoError(t, err)
	_, err = s.minibar.RegisterConsumption(room.ID, 9, 2) // chocolate, 7000 each
	require.NoError(t, err)

	// No clearing operation exists: the total keeps growing for the room
	// no matter which reservation occupies it.
	assert.Equal(t, float64(134000), s.minibar.TotalCost(room.ID))
}

func TestConcurrentConsumptionNeverOverdraws(t *testing.T) {
	s := newStack(t)
	room := s.firstRoomOfType(t, models.RoomTypeExecutive)

	// Potato chips: stock 3.
	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := s.minibar.RegisterConsumption(room.ID, 7, 1)
			done <- err
		}()
	}
	var ok int
	for i := 0; i < 10; i++ {
		if err := <-done; err == nil {
			ok++
		}
	}
	assert.Equal(t, 3, ok)

	got, err := s.rooms.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Minibar[6].Stock)
}
