package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyDecided = errors.New("booking is already decided")

// Booking is a request by a booker to reserve an item for a period, subject
// to owner approval. It is created WAITING and mutated only by the approval
// transition; it is never deleted, so history stays available for comment
// eligibility checks.
type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(itemID, bookerID uuid.UUID, period Period, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    StatusWaiting,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBooking(id, itemID, bookerID uuid.UUID, period Period, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide moves a WAITING booking to its terminal state. APPROVED and
// REJECTED are final; re-deciding is rejected.
func (b *Booking) Decide(approve bool, now time.Time) error {
	if b.status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	b.updatedAt = now
	return nil
}

func (b *Booking) IsBooker(userID uuid.UUID) bool {
	return b.bookerID == userID
}

// BlocksPeriod reports whether this booking prevents a new booking over the
// given period. Only APPROVED bookings block; WAITING ones do not.
func (b *Booking) BlocksPeriod(period Period) bool {
	return b.status == StatusApproved && b.period.Overlaps(period)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
