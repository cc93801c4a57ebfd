package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemViewQueries interface {
	GetItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Item, error)
	ListItemsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Item, error)
	SearchAvailableItems(ctx context.Context, db sqlc.DBTX, text string) ([]sqlc.Item, error)
	ListCommentsByItem(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) ([]sqlc.ListCommentsByItemRow, error)
}

type ItemReadStore struct {
	queries ItemViewQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return &queries.ItemView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		OwnerID:     row.OwnerID,
		RequestID:   pgconv.UUIDPtrFromPgtype(row.RequestID),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemListItem, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return rowsToItemListItems(rows), nil
}

func (r *ItemReadStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemListItem, error) {
	rows, err := r.queries.SearchAvailableItems(ctx, r.db, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return rowsToItemListItems(rows), nil
}

func (r *ItemReadStore) FindCommentsByItem(ctx context.Context, itemID uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListCommentsByItem(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}

	result := make([]*queries.CommentView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CommentView{
			ID:         row.ID,
			AuthorName: row.AuthorName,
			Text:       row.Text,
			Created:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func rowsToItemListItems(rows []sqlc.Item) []*queries.ItemListItem {
	result := make([]*queries.ItemListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ItemListItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Available:   row.Available,
			RequestID:   pgconv.UUIDPtrFromPgtype(row.RequestID),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
