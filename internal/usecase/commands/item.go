package commands

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound     = errs.New("item not found")
	ErrRequestNotFound  = errs.New("item request not found")
	ErrItemEditNotOwner = errs.New("item can only be edited by its owner")
	ErrInvalidItem      = errs.New("invalid item data")
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	CreateItem(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*queries.ItemView, error)
	UpdateItem(ctx context.Context, itemID, actorID uuid.UUID, req UpdateItemRequest) (*queries.ItemView, error)
}

type itemUseCaseImpl struct {
	uow         shared.UnitOfWork
	itemQueries queries.ItemQueries
	clock       clock.Clock
}

func NewItemUseCase(uow shared.UnitOfWork, itemQueries queries.ItemQueries, clk clock.Clock) ItemCommands {
	return &itemUseCaseImpl{uow: uow, itemQueries: itemQueries, clock: clk}
}

func (uc *itemUseCaseImpl) CreateItem(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*queries.ItemView, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, ownerID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}
		if req.RequestID != nil {
			if _, derr := tx.Reads().RequestByID(ctx, *req.RequestID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrRequestNotFound
				}
				return derr
			}
		}

		entity, derr := item.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrInvalidItem)
		}

		id, derr := tx.Items().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.itemQueries.GetByID(ctx, createdID)
}

func (uc *itemUseCaseImpl) UpdateItem(ctx context.Context, itemID, actorID uuid.UUID, req UpdateItemRequest) (*queries.ItemView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return derr
		}
		if snap.OwnerID != actorID {
			return ErrItemEditNotOwner
		}

		entity := item.ReconstructItem(snap.ID, snap.Name, snap.Description, snap.Available, snap.OwnerID, snap.RequestID, uc.clock.Now(), uc.clock.Now())
		if derr = entity.ApplyPatch(req.Name, req.Description, req.Available, uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrInvalidItem)
		}

		return tx.Items().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	return uc.itemQueries.GetByID(ctx, itemID)
}
