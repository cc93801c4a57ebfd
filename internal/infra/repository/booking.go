package repository

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/repository/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	AcquireItemLock(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) error
	ListBookingsByItemAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByItemAndStatusParams) ([]sqlc.Booking, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries *sqlc.Queries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// LockItem serializes admission for one item without blocking writes to
// others. The advisory lock is released at transaction end.
func (r *BookingRepository) LockItem(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) error {
	if err := r.queries.AcquireItemLock(ctx, tx, itemID); err != nil {
		return infra.WrapRepoErr("failed to acquire item lock", err)
	}
	return nil
}

func (r *BookingRepository) FindApprovedByItem(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByItemAndStatus(ctx, tx, sqlc.ListBookingsByItemAndStatusParams{
		ItemID: itemID,
		Status: booking.StatusApproved.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved bookings", err)
	}

	result := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		result[i] = booking.ReconstructBooking(
			row.ID,
			row.ItemID,
			row.BookerID,
			booking.ReconstructPeriod(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt)),
			booking.Status(row.Status),
			pgconv.TimeFromPgtype(row.CreatedAt),
			pgconv.TimeFromPgtype(row.UpdatedAt),
		)
	}
	return result, nil
}
