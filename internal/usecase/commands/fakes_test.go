//go:build unit

package commands_test

import (
	"context"
	"sort"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeState is a single in-memory backing store shared by the fake unit of
// work, repositories and queries, so command tests can observe writes and
// prepare reads without a database.
type fakeState struct {
	users    map[uuid.UUID]*shared.UserSnapshot
	items    map[uuid.UUID]*shared.ItemSnapshot
	bookings map[uuid.UUID]*shared.BookingSnapshot
	requests map[uuid.UUID]*shared.RequestSnapshot

	emails map[string]uuid.UUID

	approvedByItem map[uuid.UUID][]*booking.Booking

	createdComments []*comment.Comment
	lockedItems     []uuid.UUID
	deletedUsers    []uuid.UUID
}

func newFakeState() *fakeState {
	return &fakeState{
		users:          make(map[uuid.UUID]*shared.UserSnapshot),
		items:          make(map[uuid.UUID]*shared.ItemSnapshot),
		bookings:       make(map[uuid.UUID]*shared.BookingSnapshot),
		requests:       make(map[uuid.UUID]*shared.RequestSnapshot),
		emails:         make(map[string]uuid.UUID),
		approvedByItem: make(map[uuid.UUID][]*booking.Booking),
	}
}

func (s *fakeState) addUser(name, email string) uuid.UUID {
	id := uuid.New()
	s.users[id] = &shared.UserSnapshot{ID: id, Name: name, Email: email}
	s.emails[email] = id
	return id
}

func (s *fakeState) addItem(ownerID uuid.UUID, name string, available bool) uuid.UUID {
	id := uuid.New()
	s.items[id] = &shared.ItemSnapshot{
		ID:          id,
		Name:        name,
		Description: name + " description",
		OwnerID:     ownerID,
		Available:   available,
	}
	return id
}

func (s *fakeState) addRequest(requesterID uuid.UUID) uuid.UUID {
	id := uuid.New()
	s.requests[id] = &shared.RequestSnapshot{ID: id, RequesterID: requesterID}
	return id
}

func (s *fakeState) addBooking(b *booking.Booking) uuid.UUID {
	itemOwner := uuid.Nil
	if snap, ok := s.items[b.ItemID()]; ok {
		itemOwner = snap.OwnerID
	}
	s.bookings[b.ID()] = &shared.BookingSnapshot{
		ID:          b.ID(),
		ItemID:      b.ItemID(),
		BookerID:    b.BookerID(),
		ItemOwnerID: itemOwner,
		Start:       b.Period().Start(),
		End:         b.Period().End(),
		Status:      b.Status().String(),
	}
	if b.Status() == booking.StatusApproved {
		s.approvedByItem[b.ItemID()] = append(s.approvedByItem[b.ItemID()], b)
	}
	return b.ID()
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

// --- unit of work ---

type fakeUoW struct {
	state *fakeState
}

func newFakeUoW(state *fakeState) *fakeUoW {
	return &fakeUoW{state: state}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{state: u.state})
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{state: u.state}
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Users() shared.UserRepository       { return &fakeUserRepo{state: t.state} }
func (t *fakeTx) Items() shared.ItemRepository       { return &fakeItemRepo{state: t.state} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{state: t.state} }
func (t *fakeTx) Comments() shared.CommentRepository { return &fakeCommentRepo{state: t.state} }
func (t *fakeTx) Requests() shared.RequestRepository { return &fakeRequestRepo{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() sqlc.DBTX                      { return nil }

// --- command reads ---

type fakeReads struct {
	state *fakeState
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if snap, ok := r.state.users[id]; ok {
		return snap, nil
	}
	return nil, notFoundErr()
}

func (r *fakeReads) ItemByID(_ context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	if snap, ok := r.state.items[id]; ok {
		return snap, nil
	}
	return nil, notFoundErr()
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if snap, ok := r.state.bookings[id]; ok {
		return snap, nil
	}
	return nil, notFoundErr()
}

func (r *fakeReads) BookingsByBooker(_ context.Context, bookerID uuid.UUID) ([]*shared.BookingSnapshot, error) {
	var result []*shared.BookingSnapshot
	for _, snap := range r.state.bookings {
		if snap.BookerID == bookerID {
			result = append(result, snap)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Start.After(result[j].Start)
	})
	return result, nil
}

func (r *fakeReads) RequestByID(_ context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	if snap, ok := r.state.requests[id]; ok {
		return snap, nil
	}
	return nil, notFoundErr()
}

// --- write repositories ---

type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	if _, taken := r.state.emails[u.Email()]; taken {
		return uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	r.state.users[u.ID()] = &shared.UserSnapshot{ID: u.ID(), Name: u.Name(), Email: u.Email()}
	r.state.emails[u.Email()] = u.ID()
	return u.ID(), nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	snap, ok := r.state.users[u.ID()]
	if !ok {
		return notFoundErr()
	}
	if owner, taken := r.state.emails[u.Email()]; taken && owner != u.ID() {
		return infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	delete(r.state.emails, snap.Email)
	snap.Name = u.Name()
	snap.Email = u.Email()
	r.state.emails[u.Email()] = u.ID()
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	snap, ok := r.state.users[id]
	if !ok {
		return notFoundErr()
	}
	delete(r.state.emails, snap.Email)
	delete(r.state.users, id)
	r.state.deletedUsers = append(r.state.deletedUsers, id)
	return nil
}

type fakeItemRepo struct {
	state *fakeState
}

func (r *fakeItemRepo) Create(_ context.Context, _ sqlc.DBTX, i *item.Item) (uuid.UUID, error) {
	r.state.items[i.ID()] = &shared.ItemSnapshot{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		OwnerID:     i.OwnerID(),
		RequestID:   i.RequestID(),
		Available:   i.Available(),
	}
	return i.ID(), nil
}

func (r *fakeItemRepo) Update(_ context.Context, _ sqlc.DBTX, i *item.Item) error {
	snap, ok := r.state.items[i.ID()]
	if !ok {
		return notFoundErr()
	}
	snap.Name = i.Name()
	snap.Description = i.Description()
	snap.Available = i.Available()
	return nil
}

type fakeBookingRepo struct {
	state *fakeState
}

func (r *fakeBookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	return r.state.addBooking(b), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	snap, ok := r.state.bookings[b.ID()]
	if !ok {
		return notFoundErr()
	}
	snap.Status = b.Status().String()
	return nil
}

func (r *fakeBookingRepo) LockItem(_ context.Context, _ sqlc.DBTX, itemID uuid.UUID) error {
	r.state.lockedItems = append(r.state.lockedItems, itemID)
	return nil
}

func (r *fakeBookingRepo) FindApprovedByItem(_ context.Context, _ sqlc.DBTX, itemID uuid.UUID) ([]*booking.Booking, error) {
	return r.state.approvedByItem[itemID], nil
}

type fakeCommentRepo struct {
	state *fakeState
}

func (r *fakeCommentRepo) Create(_ context.Context, _ sqlc.DBTX, c *comment.Comment) (uuid.UUID, error) {
	r.state.createdComments = append(r.state.createdComments, c)
	return c.ID(), nil
}

type fakeRequestRepo struct {
	state *fakeState
}

func (r *fakeRequestRepo) Create(_ context.Context, _ sqlc.DBTX, req *request.ItemRequest) (uuid.UUID, error) {
	r.state.requests[req.ID()] = &shared.RequestSnapshot{ID: req.ID(), RequesterID: req.RequesterID()}
	return req.ID(), nil
}

// --- read-after-write query fakes ---

type fakeUserQueries struct {
	state *fakeState
}

func (q *fakeUserQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	snap, ok := q.state.users[id]
	if !ok {
		return nil, queries.ErrUserNotFound
	}
	return &queries.UserView{ID: snap.ID, Name: snap.Name, Email: snap.Email}, nil
}

func (q *fakeUserQueries) List(_ context.Context) ([]*queries.UserView, error) {
	var result []*queries.UserView
	for _, snap := range q.state.users {
		result = append(result, &queries.UserView{ID: snap.ID, Name: snap.Name, Email: snap.Email})
	}
	return result, nil
}

type fakeItemQueries struct {
	state *fakeState
}

func (q *fakeItemQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	snap, ok := q.state.items[id]
	if !ok {
		return nil, queries.ErrItemNotFound
	}
	return &queries.ItemView{
		ID:          snap.ID,
		Name:        snap.Name,
		Description: snap.Description,
		Available:   snap.Available,
		OwnerID:     snap.OwnerID,
		RequestID:   snap.RequestID,
		Comments:    []queries.CommentView{},
	}, nil
}

func (q *fakeItemQueries) ListByOwner(_ context.Context, _ uuid.UUID) ([]*queries.ItemListItem, error) {
	return nil, nil
}

func (q *fakeItemQueries) Search(_ context.Context, _ string) ([]*queries.ItemListItem, error) {
	return nil, nil
}

type fakeBookingQueries struct {
	state *fakeState
}

func (q *fakeBookingQueries) GetByID(ctx context.Context, _ uuid.UUID, id uuid.UUID) (*queries.BookingView, error) {
	return q.GetByIDSystem(ctx, id)
}

func (q *fakeBookingQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	snap, ok := q.state.bookings[id]
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	itemName := ""
	if i, found := q.state.items[snap.ItemID]; found {
		itemName = i.Name
	}
	return &queries.BookingView{
		ID:          snap.ID,
		ItemID:      snap.ItemID,
		ItemName:    itemName,
		BookerID:    snap.BookerID,
		Start:       snap.Start,
		End:         snap.End,
		Status:      snap.Status,
		ItemOwnerID: snap.ItemOwnerID,
	}, nil
}

func (q *fakeBookingQueries) ListByBooker(_ context.Context, _ uuid.UUID, _ booking.StateFilter) ([]*queries.BookingView, error) {
	return nil, nil
}

func (q *fakeBookingQueries) ListByOwner(_ context.Context, _ uuid.UUID, _ booking.StateFilter) ([]*queries.BookingView, error) {
	return nil, nil
}

type fakeRequestQueries struct {
	state *fakeState
}

func (q *fakeRequestQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	snap, ok := q.state.requests[id]
	if !ok {
		return nil, queries.ErrRequestNotFound
	}
	return &queries.RequestView{ID: snap.ID, RequesterID: snap.RequesterID, Items: []queries.ItemListItem{}}, nil
}

func (q *fakeRequestQueries) ListOwn(_ context.Context, _ uuid.UUID) ([]*queries.RequestView, error) {
	return nil, nil
}

func (q *fakeRequestQueries) ListOthers(_ context.Context, _ uuid.UUID) ([]*queries.RequestView, error) {
	return nil, nil
}
