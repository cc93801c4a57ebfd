package queries

import (
	"context"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestView struct {
	ID          uuid.UUID      `json:"id"`
	Description string         `json:"description"`
	RequesterID uuid.UUID      `json:"requester_id"`
	Items       []ItemListItem `json:"items"`
	Created     time.Time      `json:"created"`
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	FindAllExceptRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	FindItemsByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]ItemListItem, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListOthers(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	readStore RequestReadStore
}

func NewRequestQueries(readStore RequestReadStore) RequestQueries {
	return &requestQueriesImpl{readStore: readStore}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if err := q.attachItems(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	views, err := q.readStore.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	return q.readStore.FindAllExceptRequester(ctx, requesterID)
}

// attachItems fills each request with the items offered in response to it,
// resolved in one batch query.
func (q *requestQueriesImpl) attachItems(ctx context.Context, views []*RequestView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	byRequest, err := q.readStore.FindItemsByRequestIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, v := range views {
		if items, ok := byRequest[v.ID]; ok {
			v.Items = items
		} else {
			v.Items = []ItemListItem{}
		}
	}
	return nil
}
