package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	ListBookingsByBooker(ctx context.Context, db sqlc.DBTX, bookerID uuid.UUID) ([]sqlc.ListBookingsByBookerRow, error)
	ListBookingsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.ListBookingsByOwnerRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:          row.ID,
		ItemID:      row.ItemID,
		ItemName:    row.ItemName,
		BookerID:    row.BookerID,
		Start:       pgconv.TimeFromPgtype(row.StartAt),
		End:         pgconv.TimeFromPgtype(row.EndAt),
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		ItemOwnerID: row.ItemOwnerID,
	}, nil
}

func (r *BookingReadStore) FindByBooker(ctx context.Context, bookerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByBooker(ctx, r.db, bookerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by booker", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingView{
			ID:          row.ID,
			ItemID:      row.ItemID,
			ItemName:    row.ItemName,
			BookerID:    row.BookerID,
			Start:       pgconv.TimeFromPgtype(row.StartAt),
			End:         pgconv.TimeFromPgtype(row.EndAt),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
			ItemOwnerID: row.ItemOwnerID,
		}
	}
	return result, nil
}

func (r *BookingReadStore) FindByItemOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by owner", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingView{
			ID:          row.ID,
			ItemID:      row.ItemID,
			ItemName:    row.ItemName,
			BookerID:    row.BookerID,
			Start:       pgconv.TimeFromPgtype(row.StartAt),
			End:         pgconv.TimeFromPgtype(row.EndAt),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
			ItemOwnerID: row.ItemOwnerID,
		}
	}
	return result, nil
}
