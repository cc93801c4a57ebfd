package shared

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	sqlc "shareit/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// BookingsByBooker returns the booker's bookings ordered by start desc.
	BookingsByBooker(ctx context.Context, bookerID uuid.UUID) ([]*BookingSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, i *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, i *item.Item) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	LockItem(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) error
	FindApprovedByItem(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) ([]*booking.Booking, error)
}

type CommentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (uuid.UUID, error)
}

type RequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *request.ItemRequest) (uuid.UUID, error)
}
