package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errs.New("booking not found")
	ErrInvalidBookingPeriod = errs.New("invalid booking period")
	ErrItemUnavailable      = errs.New("item is not available for booking")
	ErrBookingConflict      = errs.New("booking period overlaps an approved booking")
	ErrApprovalNotOwner     = errs.New("booking can only be decided by the item owner")
	ErrBookingDecided       = errs.New("booking is already decided")
)

type CreateBookingRequest struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*queries.BookingView, error)
	SetApproval(ctx context.Context, bookingID, actorID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, bookingQueries: bookingQueries, clock: clk}
}

// CreateBooking admits a new booking request. Checks run in a fixed order:
// booker exists, item exists, period is well-formed, item is available, no
// APPROVED booking on the item overlaps the period. The overlap check and
// the insert run under a per-item advisory lock so two concurrent requests
// for the same item cannot both pass the check.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*queries.BookingView, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, bookerID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		itemSnap, derr := tx.Reads().ItemByID(ctx, req.ItemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return derr
		}

		period, derr := booking.NewPeriod(req.Start, req.End)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidBookingPeriod)
		}

		if !itemSnap.Available {
			return ErrItemUnavailable
		}

		if derr = tx.Bookings().LockItem(ctx, tx.DB(), req.ItemID); derr != nil {
			return derr
		}

		approved, derr := tx.Bookings().FindApprovedByItem(ctx, tx.DB(), req.ItemID)
		if derr != nil {
			return derr
		}
		for _, existing := range approved {
			if existing.BlocksPeriod(period) {
				return ErrBookingConflict
			}
		}

		entity := booking.NewBooking(req.ItemID, bookerID, period, uc.clock.Now())
		id, derr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view including the item name
	return uc.bookingQueries.GetByIDSystem(ctx, createdID)
}

// SetApproval decides a WAITING booking. Only the owner of the booked item
// may decide; APPROVED and REJECTED are terminal.
func (uc *bookingUseCaseImpl) SetApproval(ctx context.Context, bookingID, actorID uuid.UUID, approve bool) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		if _, derr = tx.Reads().UserByID(ctx, actorID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		if snap.ItemOwnerID != actorID {
			return ErrApprovalNotOwner
		}

		entity := booking.ReconstructBooking(
			snap.ID,
			snap.ItemID,
			snap.BookerID,
			booking.ReconstructPeriod(snap.Start, snap.End),
			booking.Status(snap.Status),
			uc.clock.Now(),
			uc.clock.Now(),
		)
		if derr = entity.Decide(approve, uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrBookingDecided)
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	return uc.bookingQueries.GetByIDSystem(ctx, bookingID)
}
