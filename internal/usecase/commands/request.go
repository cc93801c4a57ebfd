package commands

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidItemRequest = errs.New("invalid item request data")

type RequestCommands interface {
	CreateRequest(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error)
}

type requestUseCaseImpl struct {
	uow            shared.UnitOfWork
	requestQueries queries.RequestQueries
	clock          clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, requestQueries queries.RequestQueries, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, requestQueries: requestQueries, clock: clk}
}

func (uc *requestUseCaseImpl) CreateRequest(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, requesterID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		entity, derr := request.NewItemRequest(requesterID, description, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrInvalidItemRequest)
		}

		id, derr := tx.Requests().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.requestQueries.GetByID(ctx, createdID)
}
