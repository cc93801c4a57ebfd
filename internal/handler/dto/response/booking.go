package response

import (
	"strings"
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID     uuid.UUID      `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status string         `json:"status"`
	Booker BookerResponse `json:"booker"`
	Item   BookedItem     `json:"item"`
}

type BookerResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookedItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: strings.ToUpper(v.Status),
		Booker: BookerResponse{ID: v.BookerID},
		Item:   BookedItem{ID: v.ItemID, Name: v.ItemName},
	}
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, v := range views {
		result[i] = FromBookingView(v)
	}
	return result
}
