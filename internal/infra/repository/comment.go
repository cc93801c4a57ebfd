package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/repository/converter"
	sqlc "shareit/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) (uuid.UUID, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
	db      sqlc.DBTX
}

func NewCommentRepository(queries *sqlc.Queries, db sqlc.DBTX) *CommentRepository {
	return &CommentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (uuid.UUID, error) {
	id, err := r.queries.CreateComment(ctx, tx, converter.CommentToCreateParams(c))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}
