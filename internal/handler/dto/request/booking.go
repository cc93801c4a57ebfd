package request

import (
	"time"

	"github.com/google/uuid"
)

// Start and end are deliberately not required by binding: their presence is
// validated after the booker and item existence checks, in that order.
type CreateBookingRequest struct {
	ItemID uuid.UUID  `json:"itemId" binding:"required"`
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
}

func (r CreateBookingRequest) StartTime() time.Time {
	if r.Start == nil {
		return time.Time{}
	}
	return *r.Start
}

func (r CreateBookingRequest) EndTime() time.Time {
	if r.End == nil {
		return time.Time{}
	}
	return *r.End
}
