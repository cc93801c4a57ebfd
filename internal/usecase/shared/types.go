package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
	RequestID   *uuid.UUID
	Available   bool
}

type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	BookerID    uuid.UUID
	ItemOwnerID uuid.UUID
	Start       time.Time
	End         time.Time
	Status      string
}

type RequestSnapshot struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
}
