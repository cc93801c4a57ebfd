//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	period, err := booking.NewPeriod(baseTime, baseTime.Add(48*time.Hour))
	require.NoError(t, err)
	return booking.NewBooking(uuid.New(), uuid.New(), period, baseTime)
}

func TestNewBooking(t *testing.T) {
	b := newTestBooking(t)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusWaiting, b.Status())
	assert.Equal(t, baseTime, b.CreatedAt())
	assert.Equal(t, baseTime, b.UpdatedAt())
}

func TestBookingDecide(t *testing.T) {
	t.Run("approve from waiting", func(t *testing.T) {
		b := newTestBooking(t)
		decidedAt := baseTime.Add(time.Hour)

		require.NoError(t, b.Decide(true, decidedAt))
		assert.Equal(t, booking.StatusApproved, b.Status())
		assert.Equal(t, decidedAt, b.UpdatedAt())
	})

	t.Run("reject from waiting", func(t *testing.T) {
		b := newTestBooking(t)

		require.NoError(t, b.Decide(false, baseTime.Add(time.Hour)))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("approved is terminal", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.Decide(true, baseTime))

		err := b.Decide(true, baseTime.Add(time.Hour))
		require.ErrorIs(t, err, booking.ErrAlreadyDecided)
		err = b.Decide(false, baseTime.Add(time.Hour))
		require.ErrorIs(t, err, booking.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.Decide(false, baseTime))

		err := b.Decide(true, baseTime.Add(time.Hour))
		require.ErrorIs(t, err, booking.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusRejected, b.Status())
	})
}

func TestBookingBlocksPeriod(t *testing.T) {
	period, err := booking.NewPeriod(baseTime, baseTime.Add(48*time.Hour))
	require.NoError(t, err)
	overlapping, err := booking.NewPeriod(baseTime.Add(24*time.Hour), baseTime.Add(72*time.Hour))
	require.NoError(t, err)
	disjoint, err := booking.NewPeriod(baseTime.Add(48*time.Hour), baseTime.Add(96*time.Hour))
	require.NoError(t, err)

	t.Run("waiting booking never blocks", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), period, baseTime)
		assert.False(t, b.BlocksPeriod(overlapping))
	})

	t.Run("approved booking blocks overlapping period", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), period, baseTime)
		require.NoError(t, b.Decide(true, baseTime))
		assert.True(t, b.BlocksPeriod(overlapping))
	})

	t.Run("approved booking does not block disjoint period", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), period, baseTime)
		require.NoError(t, b.Decide(true, baseTime))
		assert.False(t, b.BlocksPeriod(disjoint))
	})

	t.Run("rejected booking never blocks", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), period, baseTime)
		require.NoError(t, b.Decide(false, baseTime))
		assert.False(t, b.BlocksPeriod(overlapping))
	})
}

func TestBookingIsBooker(t *testing.T) {
	bookerID := uuid.New()
	period, err := booking.NewPeriod(baseTime, baseTime.Add(time.Hour))
	require.NoError(t, err)

	b := booking.NewBooking(uuid.New(), bookerID, period, baseTime)
	assert.True(t, b.IsBooker(bookerID))
	assert.False(t, b.IsBooker(uuid.New()))
}
