// Package memory is a process-local store used by STORE_DRIVER=memory and by tests.
// Units of work run one at a time under a single mutex; writes are staged and applied on commit.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	writeMu sync.Mutex // serialises units of work

	mu       sync.RWMutex // guards users and bookings
	users    map[uuid.UUID]*user.User
	bookings []*booking.Booking
}

func NewStore() *Store {
	return &Store{
		users: make(map[uuid.UUID]*user.User),
	}
}

func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

// AddBooking inserts b directly, bypassing every rule. Intended for fixtures.
func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*booking.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, tx.staged...)
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &memReads{store: s}
}

type memTx struct {
	store  *Store
	staged []*booking.Booking
}

func (t *memTx) Bookings() shared.BookingRepository { return &memBookingRepo{tx: t} }
func (t *memTx) Locks() shared.Locker               { return noopLocker{} }
func (t *memTx) Reads() shared.CommandReads         { return &memReads{store: t.store} }

// Within already holds the write mutex.
type noopLocker struct{}

func (noopLocker) Acquire(context.Context, ...string) error { return nil }

type memBookingRepo struct {
	tx *memTx
}

// Create enforces the same no-overlap guarantee as the database exclusion constraint.
func (r *memBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	for _, other := range r.tx.staged {
		if other.Slot().Overlaps(b.Slot()) {
			return infra.WrapRepoErr("booking slot already taken", nil, infra.KindConflict)
		}
	}
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	for _, other := range r.tx.store.bookings {
		if other.Slot().Overlaps(b.Slot()) {
			return infra.WrapRepoErr("booking slot already taken", nil, infra.KindConflict)
		}
	}
	if _, ok := r.tx.store.users[b.UserID()]; !ok {
		return infra.WrapRepoErr("booking owner not found", nil, infra.KindNotFound)
	}
	r.tx.staged = append(r.tx.staged, b)
	return nil
}

type memReads struct {
	store *Store
}

func (r *memReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (r *memReads) BookingsBetween(_ context.Context, from, to time.Time) ([]*booking.Booking, error) {
	return r.store.filter(func(b *booking.Booking) bool {
		return startsIn(b, from, to)
	}), nil
}

func (r *memReads) BookingsByUserBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	return r.store.filter(func(b *booking.Booking) bool {
		return b.UserID() == userID && startsIn(b, from, to)
	}), nil
}

func (s *Store) filter(keep func(*booking.Booking) bool) []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*booking.Booking
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	// start time, then id, so equal starts come back in the same order every call
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].Slot().Start(), out[j].Slot().Start()
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

func startsIn(b *booking.Booking, from, to time.Time) bool {
	start := b.Slot().Start()
	return !start.Before(from) && start.Before(to)
}

// BookingReadStore serves the query side from the same data.
type BookingReadStore struct {
	store *Store
}

func NewBookingReadStore(store *Store) *BookingReadStore {
	return &BookingReadStore{store: store}
}

func (r *BookingReadStore) FindBetween(_ context.Context, from, to time.Time) ([]*queries.BookingView, error) {
	return toViews(r.store.filter(func(b *booking.Booking) bool {
		return startsIn(b, from, to)
	})), nil
}

func (r *BookingReadStore) FindByUserBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*queries.BookingView, error) {
	return toViews(r.store.filter(func(b *booking.Booking) bool {
		return b.UserID() == userID && startsIn(b, from, to)
	})), nil
}

func (r *BookingReadStore) FindUpcomingByUser(_ context.Context, userID uuid.UUID, from time.Time, limit int) ([]*queries.BookingView, error) {
	found := r.store.filter(func(b *booking.Booking) bool {
		return b.UserID() == userID && b.Slot().End().After(from)
	})
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return toViews(found), nil
}

type UserReadStore struct {
	store *Store
}

func NewUserReadStore(store *Store) *UserReadStore {
	return &UserReadStore{store: store}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	u, err := r.store.CommandReads().UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.UserView{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		BookingQuota: u.BookingQuota().Hours(),
		CreatedAt:    u.CreatedAt(),
	}, nil
}

func toViews(bs []*booking.Booking) []*queries.BookingView {
	views := make([]*queries.BookingView, len(bs))
	for i, b := range bs {
		views[i] = queries.NewBookingView(b)
	}
	return views
}
