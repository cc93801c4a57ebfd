package converter

import (
	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func ItemToCreateParams(i *item.Item) sqlc.CreateItemParams {
	return sqlc.CreateItemParams{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		OwnerID:     i.OwnerID(),
		RequestID:   pgconv.UUIDPtrToPgtype(i.RequestID()),
		CreatedAt:   pgconv.TimeToPgtype(i.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(i.UpdatedAt()),
	}
}

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:        b.ID(),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		StartAt:   pgconv.TimeToPgtype(b.Period().Start()),
		EndAt:     pgconv.TimeToPgtype(b.Period().End()),
		Status:    b.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func CommentToCreateParams(c *comment.Comment) sqlc.CreateCommentParams {
	return sqlc.CreateCommentParams{
		ID:        c.ID(),
		ItemID:    c.ItemID(),
		AuthorID:  c.AuthorID(),
		Text:      c.Text().String(),
		CreatedAt: pgconv.TimeToPgtype(c.Created()),
	}
}

func RequestToCreateParams(r *request.ItemRequest) sqlc.CreateItemRequestParams {
	return sqlc.CreateItemRequestParams{
		ID:          r.ID(),
		Description: r.Description(),
		RequesterID: r.RequesterID(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
