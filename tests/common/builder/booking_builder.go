//go:build unit || e2e

package builder

import (
	"time"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemName    string
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	Start       time.Time
	End         time.Time
	Status      string
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:          uuid.New(),
		ItemID:      uuid.New(),
		ItemName:    "Cordless drill",
		ItemOwnerID: uuid.New(),
		BookerID:    uuid.New(),
		Start:       start,
		End:         start.Add(5 * 24 * time.Hour),
		Status:      "waiting",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithItemID(itemID uuid.UUID) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithBookerID(bookerID uuid.UUID) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := dombooking.NewPeriod(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ItemID, b.BookerID, period, b.Start), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	start := b.Start
	end := b.End
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  &start,
		End:    &end,
	}
}

func (b *BookingBuilder) BuildCreateCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		BookerID:    b.BookerID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status,
		ItemOwnerID: b.ItemOwnerID,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		ItemID:      b.ItemID,
		BookerID:    b.BookerID,
		ItemOwnerID: b.ItemOwnerID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status,
	}
}
