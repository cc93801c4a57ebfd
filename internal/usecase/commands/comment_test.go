//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addBookingWithStatus(state *fakeState, itemID, bookerID uuid.UUID, start, end time.Time, status booking.Status) {
	period, _ := booking.NewPeriod(start, end)
	b := booking.NewBooking(itemID, bookerID, period, start)
	switch status {
	case booking.StatusApproved:
		_ = b.Decide(true, start)
	case booking.StatusRejected:
		_ = b.Decide(false, start)
	}
	state.addBooking(b)
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*fakeState, commands.CommentCommands, uuid.UUID, uuid.UUID) {
		t.Helper()
		state := newFakeState()
		ownerID := state.addUser("Owner", "owner@example.com")
		authorID := state.addUser("Author", "author@example.com")
		itemID := state.addItem(ownerID, "Drill", true)
		uc := commands.NewCommentUseCase(newFakeUoW(state), clock.NewMockClock(now))
		return state, uc, authorID, itemID
	}

	t.Run("completed approved booking allows commenting", func(t *testing.T) {
		state, uc, authorID, itemID := setup(t)
		addBookingWithStatus(state, itemID, authorID, now.Add(-72*time.Hour), now.Add(-24*time.Hour), booking.StatusApproved)

		view, err := uc.AddComment(ctx, itemID, authorID, "  Worked great  ")
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.Equal(t, "Author", view.AuthorName)
		assert.Equal(t, "Worked great", view.Text)
		assert.Equal(t, now, view.Created)
		require.Len(t, state.createdComments, 1)
		assert.Equal(t, itemID, state.createdComments[0].ItemID())
		assert.Equal(t, authorID, state.createdComments[0].AuthorID())
	})

	t.Run("booking ending exactly now allows commenting", func(t *testing.T) {
		state, uc, authorID, itemID := setup(t)
		addBookingWithStatus(state, itemID, authorID, now.Add(-24*time.Hour), now, booking.StatusApproved)

		_, err := uc.AddComment(ctx, itemID, authorID, "Returned on time")
		require.NoError(t, err)
	})

	t.Run("no booking on the item forbids commenting", func(t *testing.T) {
		_, uc, authorID, itemID := setup(t)

		_, err := uc.AddComment(ctx, itemID, authorID, "Never used it")
		require.ErrorIs(t, err, commands.ErrCommentNotEligible)
	})

	t.Run("booking on a different item does not qualify", func(t *testing.T) {
		state, uc, authorID, itemID := setup(t)
		otherItemID := state.addItem(state.items[itemID].OwnerID, "Saw", true)
		addBookingWithStatus(state, otherItemID, authorID, now.Add(-72*time.Hour), now.Add(-24*time.Hour), booking.StatusApproved)

		_, err := uc.AddComment(ctx, itemID, authorID, "Nice")
		require.ErrorIs(t, err, commands.ErrCommentNotEligible)
	})

	t.Run("ongoing approved booking forbids commenting", func(t *testing.T) {
		state, uc, authorID, itemID := setup(t)
		addBookingWithStatus(state, itemID, authorID, now.Add(-24*time.Hour), now.Add(24*time.Hour), booking.StatusApproved)

		_, err := uc.AddComment(ctx, itemID, authorID, "Still renting")
		require.ErrorIs(t, err, commands.ErrCommentNotEligible)
	})

	t.Run("most recent booking decides even when an older one completed", func(t *testing.T) {
		state, uc, authorID, itemID := setup(t)
		addBookingWithStatus(state, itemID, authorID, now.Add(-240*time.Hour), now.Add(-192*time.Hour), booking.StatusApproved)
		addBookingWithStatus(state, itemID, authorID, now.Add(-24*time.Hour), now.Add(24*time.Hour), booking.StatusApproved)

		_, err := uc.AddComment(ctx, itemID, authorID, "Renting again")
		require.ErrorIs(t, err, commands.ErrCommentNotEligible)
	})

	t.Run("most recent rejected booking does not block", func(t *testing.T) {
		state, uc, authorID, itemID := setup(t)
		addBookingWithStatus(state, itemID, authorID, now.Add(-240*time.Hour), now.Add(-192*time.Hour), booking.StatusApproved)
		addBookingWithStatus(state, itemID, authorID, now.Add(-24*time.Hour), now.Add(24*time.Hour), booking.StatusRejected)

		_, err := uc.AddComment(ctx, itemID, authorID, "Owner said no this time")
		require.NoError(t, err)
	})

	t.Run("unknown author", func(t *testing.T) {
		_, uc, _, itemID := setup(t)

		_, err := uc.AddComment(ctx, itemID, uuid.New(), "Hello")
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, uc, authorID, _ := setup(t)

		_, err := uc.AddComment(ctx, uuid.New(), authorID, "Hello")
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("text validation runs before any lookup", func(t *testing.T) {
		_, uc, _, _ := setup(t)

		_, err := uc.AddComment(ctx, uuid.New(), uuid.New(), "   ")
		require.ErrorIs(t, err, commands.ErrInvalidComment)

		_, err = uc.AddComment(ctx, uuid.New(), uuid.New(), strings.Repeat("a", 1001))
		require.ErrorIs(t, err, commands.ErrInvalidComment)
	})
}
