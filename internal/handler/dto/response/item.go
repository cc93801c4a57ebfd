package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *uuid.UUID        `json:"requestId,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

type ItemListResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	comments := make([]CommentResponse, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = CommentResponse{
			ID:         c.ID,
			AuthorName: c.AuthorName,
			Text:       c.Text,
			Created:    c.Created,
		}
	}
	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
		Comments:    comments,
	}
}

func FromItemListItem(v *queries.ItemListItem) *ItemListResponse {
	return &ItemListResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
	}
}

func FromItemList(views []*queries.ItemListItem) []*ItemListResponse {
	result := make([]*ItemListResponse, len(views))
	for i, v := range views {
		result[i] = FromItemListItem(v)
	}
	return result
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		AuthorName: v.AuthorName,
		Text:       v.Text,
		Created:    v.Created,
	}
}
