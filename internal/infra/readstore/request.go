package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestViewQueries interface {
	GetItemRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ItemRequest, error)
	ListItemRequestsByRequester(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) ([]sqlc.ItemRequest, error)
	ListItemRequests(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) ([]sqlc.ItemRequest, error)
	ListItemsByRequestIDs(ctx context.Context, db sqlc.DBTX, requestIds []uuid.UUID) ([]sqlc.Item, error)
}

type RequestReadStore struct {
	queries RequestViewQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries *sqlc.Queries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row, err := r.queries.GetItemRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return rowToRequestView(row), nil
}

func (r *RequestReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListItemRequestsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests by requester", err)
	}
	return rowsToRequestViews(rows), nil
}

func (r *RequestReadStore) FindAllExceptRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListItemRequests(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return rowsToRequestViews(rows), nil
}

func (r *RequestReadStore) FindItemsByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]queries.ItemListItem, error) {
	rows, err := r.queries.ListItemsByRequestIDs(ctx, r.db, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request IDs", err)
	}

	byRequest := make(map[uuid.UUID][]queries.ItemListItem)
	for _, row := range rows {
		requestID := pgconv.UUIDPtrFromPgtype(row.RequestID)
		if requestID == nil {
			continue
		}
		byRequest[*requestID] = append(byRequest[*requestID], queries.ItemListItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Available:   row.Available,
			RequestID:   requestID,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return byRequest, nil
}

func rowToRequestView(row sqlc.ItemRequest) *queries.RequestView {
	return &queries.RequestView{
		ID:          row.ID,
		Description: row.Description,
		RequesterID: row.RequesterID,
		Created:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func rowsToRequestViews(rows []sqlc.ItemRequest) []*queries.RequestView {
	result := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		result[i] = rowToRequestView(row)
	}
	return result
}
