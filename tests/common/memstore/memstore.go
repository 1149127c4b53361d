//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use case tests. It
// rejects overlapping slot-holding reservations the same way the database
// exclusion constraint does.
package memstore

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/reservation"
	"inkslot/internal/domain/schedule"
	"inkslot/internal/infra"
	"inkslot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Job struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

// Counters counts every storage call, inside or outside a transaction.
type Counters struct {
	Reads   atomic.Int64
	Writes  atomic.Int64
	Creates atomic.Int64
	Txs     atomic.Int64
}

func (c *Counters) Total() int64 {
	return c.Reads.Load() + c.Writes.Load() + c.Txs.Load()
}

type Store struct {
	mu           sync.Mutex
	artists      map[uuid.UUID]*artist.Artist
	offerings    map[uuid.UUID]*artist.Offering
	rules        map[uuid.UUID][]schedule.Rule
	reservations map[uuid.UUID]*reservation.Reservation
	jobs         []Job

	// FailWrites makes every write return a database failure.
	FailWrites bool

	Calls Counters

	now     func() time.Time
	barrier *barrier
}

func New() *Store {
	return &Store{
		artists:      make(map[uuid.UUID]*artist.Artist),
		offerings:    make(map[uuid.UUID]*artist.Offering),
		rules:        make(map[uuid.UUID][]schedule.Rule),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		now:          time.Now,
	}
}

func (s *Store) PutArtist(a *artist.Artist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artists[a.ID()] = a
}

func (s *Store) PutOffering(o *artist.Offering) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offerings[o.ID()] = o
}

func (s *Store) PutRules(artistID uuid.UUID, rules []schedule.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[artistID] = slices.Clone(rules)
}

// PutReservation stores res as committed, bypassing the overlap check.
func (s *Store) PutReservation(res *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[res.ID()] = res
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	return r, ok
}

func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reservation.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, r)
	}
	return out
}

func (s *Store) Rules(artistID uuid.UUID) []schedule.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.rules[artistID])
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.jobs)
}

func (s *Store) Topics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	topics := make([]string, 0, len(s.jobs))
	for _, j := range s.jobs {
		topics = append(topics, j.Topic)
	}
	return topics
}

// HoldRangeReads blocks the next n out-of-transaction range reads until all
// n have arrived, so n concurrent bookings all pass the advisory pre-check.
func (s *Store) HoldRangeReads(n int) {
	s.barrier = newBarrier(n)
}

// ===== shared.UnitOfWork =====

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.Calls.Txs.Add(1)
	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{store: s, outsideTx: true}
}

type memTx struct {
	store *Store
	mu    sync.Mutex
	undo  []func()
}

func (t *memTx) Reservations() shared.ReservationRepository  { return &reservationRepo{tx: t} }
func (t *memTx) WorkingHours() shared.WorkingHoursRepository { return &workingHoursRepo{tx: t} }
func (t *memTx) Notifications() shared.NotificationRepository {
	return &notificationRepo{tx: t}
}
func (t *memTx) Reads() shared.CommandReads { return &reads{store: t.store} }

func (t *memTx) record(undo func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undo = append(t.undo, undo)
}

func (t *memTx) rollback() {
	t.mu.Lock()
	undo := t.undo
	t.undo = nil
	t.mu.Unlock()

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
}

func (s *Store) writeFailure(op string) error {
	return infra.WrapRepoErr(op, errConnectionLost)
}

var errConnectionLost = &pgconn.PgError{Code: "08006", Message: "connection lost"}

// ===== reads =====

type reads struct {
	store     *Store
	outsideTx bool
}

func (r *reads) ArtistByID(_ context.Context, id uuid.UUID) (*artist.Artist, error) {
	r.store.Calls.Reads.Add(1)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.artists[id]
	if !ok {
		return nil, infra.WrapRepoErr("artist not found", pgx.ErrNoRows)
	}
	return a, nil
}

func (r *reads) OfferingByID(_ context.Context, id uuid.UUID) (*artist.Offering, error) {
	r.store.Calls.Reads.Add(1)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.offerings[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", pgx.ErrNoRows)
	}
	return o, nil
}

func (r *reads) WorkingHours(_ context.Context, artistID uuid.UUID) ([]schedule.Rule, error) {
	r.store.Calls.Reads.Add(1)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return slices.Clone(r.store.rules[artistID]), nil
}

func (r *reads) ActiveReservationsInRange(ctx context.Context, artistID uuid.UUID, window calendar.Interval) ([]calendar.Interval, error) {
	r.store.Calls.Reads.Add(1)
	if r.outsideTx && r.store.barrier != nil {
		if err := r.store.barrier.wait(ctx); err != nil {
			return nil, err
		}
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []calendar.Interval
	for _, res := range r.store.reservations {
		if res.ArtistID() == artistID && res.HoldsSlot() && res.Slot().Overlaps(window) {
			out = append(out, res.Slot())
		}
	}
	slices.SortFunc(out, func(a, b calendar.Interval) int { return a.Start().Compare(b.Start()) })
	return out, nil
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.store.Calls.Reads.Add(1)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows)
	}
	return res, nil
}

func (r *reads) StalePendingReservationIDs(_ context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error) {
	r.store.Calls.Reads.Add(1)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var stale []*reservation.Reservation
	for _, res := range r.store.reservations {
		if res.IsPending() && res.CreatedAt().Before(createdBefore) {
			stale = append(stale, res)
		}
	}
	slices.SortFunc(stale, func(a, b *reservation.Reservation) int { return a.CreatedAt().Compare(b.CreatedAt()) })
	ids := make([]uuid.UUID, 0, min(len(stale), limit))
	for _, res := range stale {
		if len(ids) == limit {
			break
		}
		ids = append(ids, res.ID())
	}
	return ids, nil
}

// ===== writes =====

type reservationRepo struct {
	tx *memTx
}

// Create rejects overlaps with any slot-holding row, including rows written
// by transactions that have not finished yet.
func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	s := r.tx.store
	s.Calls.Writes.Add(1)
	s.Calls.Creates.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return s.writeFailure("failed to create reservation")
	}
	for _, other := range s.reservations {
		if other.ArtistID() == res.ArtistID() && other.HoldsSlot() && other.Slot().Overlaps(res.Slot()) {
			return infra.WrapRepoErr("reservation overlaps an existing booking",
				&pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"})
		}
	}
	res.Stamp(s.now())
	s.reservations[res.ID()] = res
	id := res.ID()
	r.tx.record(func() { delete(s.reservations, id) })
	return nil
}

func (r *reservationRepo) SetPaymentIntent(_ context.Context, id uuid.UUID, intentID string) (bool, error) {
	return r.transition(id, "failed to set payment intent", func(s reservation.Snapshot) reservation.Snapshot {
		s.PaymentIntentID = intentID
		return s
	})
}

func (r *reservationRepo) CancelIfPending(_ context.Context, id uuid.UUID) (bool, error) {
	return r.transition(id, "failed to cancel reservation", func(s reservation.Snapshot) reservation.Snapshot {
		now := time.Now()
		s.BookingStatus = reservation.BookingCancelled
		s.CancelledAt = &now
		return s
	})
}

func (r *reservationRepo) ConfirmIfPending(_ context.Context, id uuid.UUID) (bool, error) {
	return r.transition(id, "failed to confirm reservation", func(s reservation.Snapshot) reservation.Snapshot {
		s.BookingStatus = reservation.BookingConfirmed
		s.PaymentStatus = reservation.PaymentDepositPaid
		return s
	})
}

// transition applies a guarded update to a pending row.
func (r *reservationRepo) transition(id uuid.UUID, op string, apply func(reservation.Snapshot) reservation.Snapshot) (bool, error) {
	s := r.tx.store
	s.Calls.Writes.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return false, s.writeFailure(op)
	}
	prev, ok := s.reservations[id]
	if !ok || !prev.IsPending() {
		return false, nil
	}
	next := apply(snapshotOf(prev))
	next.UpdatedAt = s.now()
	s.reservations[id] = reservation.Reconstruct(next)
	r.tx.record(func() { s.reservations[id] = prev })
	return true, nil
}

func snapshotOf(r *reservation.Reservation) reservation.Snapshot {
	return reservation.Snapshot{
		ID:              r.ID(),
		ArtistID:        r.ArtistID(),
		ServiceID:       r.ServiceID(),
		Client:          r.Client(),
		Slot:            r.Slot(),
		Price:           r.Price(),
		Deposit:         r.Deposit(),
		PaymentStatus:   r.PaymentStatus(),
		BookingStatus:   r.BookingStatus(),
		PaymentIntentID: r.PaymentIntentID(),
		Note:            r.Note(),
		CancelledAt:     r.CancelledAt(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

type workingHoursRepo struct {
	tx *memTx
}

func (r *workingHoursRepo) Replace(_ context.Context, artistID uuid.UUID, rules []schedule.Rule) error {
	s := r.tx.store
	s.Calls.Writes.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return s.writeFailure("failed to replace working hours")
	}
	prev, had := s.rules[artistID]
	s.rules[artistID] = slices.Clone(rules)
	r.tx.record(func() {
		if had {
			s.rules[artistID] = prev
			return
		}
		delete(s.rules, artistID)
	})
	return nil
}

type notificationRepo struct {
	tx *memTx
}

func (r *notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	s := r.tx.store
	s.Calls.Writes.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return s.writeFailure("failed to create notification job")
	}
	id := uuid.New()
	s.jobs = append(s.jobs, Job{ID: id, Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	r.tx.record(func() {
		s.jobs = slices.DeleteFunc(s.jobs, func(j Job) bool { return j.ID == id })
	})
	return nil
}

// ===== barrier =====

type barrier struct {
	mu      sync.Mutex
	waiting int
	release chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{waiting: n, release: make(chan struct{})}
}

func (b *barrier) wait(ctx context.Context) error {
	b.mu.Lock()
	if b.waiting <= 0 {
		b.mu.Unlock()
		return nil
	}
	b.waiting--
	if b.waiting == 0 {
		close(b.release)
	}
	b.mu.Unlock()

	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
