package queries

import (
	"context"
	"strings"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	RequestID   *uuid.UUID    `json:"request_id,omitempty"`
	Comments    []CommentView `json:"comments"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type ItemListItem struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemListItem, error)
	SearchAvailable(ctx context.Context, text string) ([]*ItemListItem, error)
	FindCommentsByItem(ctx context.Context, itemID uuid.UUID) ([]*CommentView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemListItem, error)
	Search(ctx context.Context, text string) ([]*ItemListItem, error)
}

type itemQueriesImpl struct {
	readStore ItemReadStore
}

func NewItemQueries(readStore ItemReadStore) ItemQueries {
	return &itemQueriesImpl{readStore: readStore}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	comments, err := q.readStore.FindCommentsByItem(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Comments = make([]CommentView, len(comments))
	for i, c := range comments {
		view.Comments[i] = *c
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemListItem, error) {
	return q.readStore.FindByOwner(ctx, ownerID)
}

// Search returns only available items whose name or description contains the
// text, case-insensitively. Blank text short-circuits to an empty result.
func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemListItem, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemListItem{}, nil
	}
	return q.readStore.SearchAvailable(ctx, text)
}
