//go:build unit

package booking_test

import (
	"testing"

	"residesk/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmenity(t *testing.T) {
	t.Run("valid amenity", func(t *testing.T) {
		a, err := booking.NewAmenity("Clubhouse", "Party hall", "")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, "Clubhouse", a.Name())
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := booking.NewAmenity("   ", "", "")
		assert.ErrorIs(t, err, booking.ErrMissingName)
	})
}

func TestBookingCancel(t *testing.T) {
	b := booking.NewBooking(uuid.New(), uuid.New(), mustRange(t, "2026-03-10", "2026-03-12"))
	require.True(t, b.IsActive())

	require.NoError(t, b.Cancel())
	assert.False(t, b.IsActive())
	assert.Equal(t, booking.StatusCancelled, b.Status())

	// Cancelled is terminal; a second cancel reports it
	assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	assert.Equal(t, booking.StatusCancelled, b.Status())
}

func TestBookingConflictsWith(t *testing.T) {
	amenityID := uuid.New()
	a := booking.NewBooking(amenityID, uuid.New(), mustRange(t, "2026-03-10", "2026-03-12"))
	b := booking.NewBooking(amenityID, uuid.New(), mustRange(t, "2026-03-12", "2026-03-14"))

	assert.True(t, a.ConflictsWith(b), "touching ranges on the same amenity conflict")

	t.Run("different amenity never conflicts", func(t *testing.T) {
		other := booking.NewBooking(uuid.New(), uuid.New(), mustRange(t, "2026-03-10", "2026-03-12"))
		assert.False(t, a.ConflictsWith(other))
	})

	t.Run("cancelled booking never conflicts", func(t *testing.T) {
		require.NoError(t, b.Cancel())
		assert.False(t, a.ConflictsWith(b))
	})
}
