package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/repository/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) (uuid.UUID, error)
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) (int64, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
	db      sqlc.DBTX
}

func NewItemRepository(queries *sqlc.Queries, db sqlc.DBTX) *ItemRepository {
	return &ItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, tx sqlc.DBTX, i *item.Item) (uuid.UUID, error) {
	id, err := r.queries.CreateItem(ctx, tx, converter.ItemToCreateParams(i))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, tx sqlc.DBTX, i *item.Item) error {
	affected, err := r.queries.UpdateItem(ctx, tx, sqlc.UpdateItemParams{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		UpdatedAt:   pgconv.TimeToPgtype(i.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
