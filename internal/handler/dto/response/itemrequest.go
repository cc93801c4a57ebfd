package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID           `json:"id"`
	Description string              `json:"description"`
	Created     time.Time           `json:"created"`
	Items       []*ItemListResponse `json:"items"`
}

func FromRequestView(v *queries.RequestView) *ItemRequestResponse {
	items := make([]*ItemListResponse, len(v.Items))
	for i := range v.Items {
		items[i] = FromItemListItem(&v.Items[i])
	}
	return &ItemRequestResponse{
		ID:          v.ID,
		Description: v.Description,
		Created:     v.Created,
		Items:       items,
	}
}

func FromRequestList(views []*queries.RequestView) []*ItemRequestResponse {
	result := make([]*ItemRequestResponse, len(views))
	for i, v := range views {
		result[i] = FromRequestView(v)
	}
	return result
}
