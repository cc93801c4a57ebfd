package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/infra/repository/converter"
	sqlc "shareit/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RequestWriteQueries interface {
	CreateItemRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemRequestParams) (uuid.UUID, error)
}

type RequestRepository struct {
	queries RequestWriteQueries
	db      sqlc.DBTX
}

func NewRequestRepository(queries *sqlc.Queries, db sqlc.DBTX) *RequestRepository {
	return &RequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *request.ItemRequest) (uuid.UUID, error) {
	id, err := r.queries.CreateItemRequest(ctx, tx, converter.RequestToCreateParams(req))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item request", err)
	}
	return id, nil
}
