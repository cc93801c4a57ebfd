package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errs.New("user not found")
	ErrDuplicateEmail = errs.New("email already in use")
	ErrInvalidUser    = errs.New("invalid user data")
)

type CreateUserRequest struct {
	Name  string
	Email string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*queries.UserView, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
	clock       clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, userQueries queries.UserQueries, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, userQueries: userQueries, clock: clk}
}

func (uc *userUseCaseImpl) CreateUser(ctx context.Context, req CreateUserRequest) (*queries.UserView, error) {
	entity, err := user.NewUser(req.Name, req.Email, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.userQueries.GetByID(ctx, createdID)
}

func (uc *userUseCaseImpl) UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}

		entity := user.ReconstructUser(snap.ID, snap.Name, snap.Email, uc.clock.Now())
		if derr = entity.ApplyPatch(req.Name, req.Email); derr != nil {
			return errs.Mark(derr, ErrInvalidUser)
		}

		if derr = tx.Users().Update(ctx, tx.DB(), entity); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.userQueries.GetByID(ctx, userID)
}

func (uc *userUseCaseImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, tx.DB(), userID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
}
