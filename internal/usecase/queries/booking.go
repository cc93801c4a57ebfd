package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

// BookingView carries the item owner alongside the booking so access rules
// can be enforced without a second lookup. The owner id is not serialized.
type BookingView struct {
	ID          uuid.UUID `json:"id"`
	ItemID      uuid.UUID `json:"item_id"`
	ItemName    string    `json:"item_name"`
	BookerID    uuid.UUID `json:"booker_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ItemOwnerID uuid.UUID `json:"-"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByBooker(ctx context.Context, bookerID uuid.UUID) ([]*BookingView, error)
	FindByItemOwner(ctx context.Context, ownerID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.StateFilter) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter booking.StateFilter) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	users     UserReadStore
	clock     clock.Clock
}

func NewBookingQueries(readStore BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, users: users, clock: clk}
}

// GetByID is visible to the booker and the item owner only. An unknown actor
// is a not-found, not a denial.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	view, err := q.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := q.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	if view.BookerID != actorID && view.ItemOwnerID != actorID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.fetch(ctx, id)
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.StateFilter) ([]*BookingView, error) {
	if err := q.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	views, err := q.readStore.FindByBooker(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	return filterViews(views, filter, q.clock.Now()), nil
}

// ListByOwner returns bookings on items the actor owns, not the actor's own
// bookings.
func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter booking.StateFilter) ([]*BookingView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	views, err := q.readStore.FindByItemOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return filterViews(views, filter, q.clock.Now()), nil
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := q.users.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (q *bookingQueriesImpl) fetch(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func filterViews(views []*BookingView, filter booking.StateFilter, now time.Time) []*BookingView {
	if filter == booking.FilterAll {
		return views
	}
	result := make([]*BookingView, 0, len(views))
	for _, v := range views {
		period := booking.ReconstructPeriod(v.Start, v.End)
		if filter.Matches(booking.Status(v.Status), period, now) {
			result = append(result, v)
		}
	}
	return result
}
