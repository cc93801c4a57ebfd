//go:build unit

package queries_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequestReadStore struct {
	byID          map[uuid.UUID]*queries.RequestView
	byRequester   map[uuid.UUID][]*queries.RequestView
	others        map[uuid.UUID][]*queries.RequestView
	itemsByReq    map[uuid.UUID][]queries.ItemListItem
	batchRequests [][]uuid.UUID
}

func (s *stubRequestReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	if v, ok := s.byID[id]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
}

func (s *stubRequestReadStore) FindByRequester(_ context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	return s.byRequester[requesterID], nil
}

func (s *stubRequestReadStore) FindAllExceptRequester(_ context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	return s.others[requesterID], nil
}

func (s *stubRequestReadStore) FindItemsByRequestIDs(_ context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]queries.ItemListItem, error) {
	s.batchRequests = append(s.batchRequests, requestIDs)
	result := make(map[uuid.UUID][]queries.ItemListItem)
	for _, id := range requestIDs {
		if items, ok := s.itemsByReq[id]; ok {
			result[id] = items
		}
	}
	return result, nil
}

func TestRequestGetByID(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()

	store := &stubRequestReadStore{
		byID: map[uuid.UUID]*queries.RequestView{
			requestID: {ID: requestID, Description: "Need a ladder"},
		},
		itemsByReq: map[uuid.UUID][]queries.ItemListItem{
			requestID: {{ID: uuid.New(), Name: "Ladder"}},
		},
	}
	q := queries.NewRequestQueries(store)

	t.Run("attaches responding items", func(t *testing.T) {
		view, err := q.GetByID(ctx, requestID)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "Ladder", view.Items[0].Name)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, queries.ErrRequestNotFound)
	})
}

func TestRequestListOwn(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New()
	answered := &queries.RequestView{ID: uuid.New(), RequesterID: requesterID}
	unanswered := &queries.RequestView{ID: uuid.New(), RequesterID: requesterID}

	store := &stubRequestReadStore{
		byRequester: map[uuid.UUID][]*queries.RequestView{
			requesterID: {answered, unanswered},
		},
		itemsByReq: map[uuid.UUID][]queries.ItemListItem{
			answered.ID: {{ID: uuid.New(), Name: "Ladder"}},
		},
	}
	q := queries.NewRequestQueries(store)

	views, err := q.ListOwn(ctx, requesterID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Items resolved in a single batch, unanswered requests get an empty slice
	require.Len(t, store.batchRequests, 1)
	assert.Len(t, views[0].Items, 1)
	assert.NotNil(t, views[1].Items)
	assert.Empty(t, views[1].Items)
}

func TestRequestListOthers(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New()
	other := &queries.RequestView{ID: uuid.New(), RequesterID: uuid.New()}

	store := &stubRequestReadStore{
		others: map[uuid.UUID][]*queries.RequestView{
			requesterID: {other},
		},
	}
	q := queries.NewRequestQueries(store)

	views, err := q.ListOthers(ctx, requesterID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	// Listing other users' requests does not resolve responding items
	assert.Empty(t, store.batchRequests)
}
