package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCommentNotEligible = errs.New("user is not eligible to comment on this item")
	ErrInvalidComment     = errs.New("invalid comment data")
)

type CommentCommands interface {
	AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error)
}

type commentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentUseCase(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentUseCaseImpl{uow: uow, clock: clk}
}

// AddComment creates a comment if the author's booking history on the item
// allows it. Eligibility is decided by the author's most recent booking on
// the item only: no booking at all means no comment, and an APPROVED booking
// whose period has not yet ended blocks commenting until it does. Older
// completed bookings do not override a still-running recent one.
func (uc *commentUseCaseImpl) AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	commentText, err := comment.NewText(text)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidComment)
	}

	var view *queries.CommentView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		authorSnap, derr := tx.Reads().UserByID(ctx, authorID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		if _, derr = tx.Reads().ItemByID(ctx, itemID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return derr
		}

		bookings, derr := tx.Reads().BookingsByBooker(ctx, authorID)
		if derr != nil {
			return derr
		}
		if derr = checkCommentEligibility(bookings, itemID, uc.clock.Now()); derr != nil {
			return derr
		}

		entity := comment.NewComment(itemID, authorID, commentText, uc.clock.Now())
		id, derr := tx.Comments().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}

		view = &queries.CommentView{
			ID:         id,
			AuthorName: authorSnap.Name,
			Text:       entity.Text().String(),
			Created:    entity.Created(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// checkCommentEligibility scans the author's bookings, ordered by start
// desc, and lets the first one referencing the item decide.
func checkCommentEligibility(bookings []*shared.BookingSnapshot, itemID uuid.UUID, now time.Time) error {
	for _, b := range bookings {
		if b.ItemID != itemID {
			continue
		}
		period := booking.ReconstructPeriod(b.Start, b.End)
		if booking.Status(b.Status) == booking.StatusApproved && !period.EndedBy(now) {
			return ErrCommentNotEligible
		}
		return nil
	}
	return ErrCommentNotEligible
}
