package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType describes the mutation a store event reports.
type EventType string

const (
	EventUpserted EventType = "upserted"
	EventRemoved  EventType = "removed"
)

// Event is delivered to subscribed listeners after every effective
// store mutation. Notification is a copy of the record as it was
// immediately after the mutation (for removals, as it was before).
type Event struct {
	Type         EventType
	Notification Notification
}

// ListenerFunc receives store change events.
type ListenerFunc func(Event)

type record struct {
	n     Notification
	rev   uint64
	timer *time.Timer
}

type listenerEntry struct {
	id int
	fn ListenerFunc
}

// Store is the authoritative in-memory collection of active toasts,
// ordered by insertion and partitioned by corner.
//
// All mutations (upserts, removals, timer expiries) are serialized by a
// single mutex, so listeners always observe a consistent snapshot.
// Listener callbacks run after the mutation commits and outside the
// store lock, so a listener may safely call back into the store.
type Store struct {
	mu            sync.Mutex
	defaultCorner Corner
	order         []string
	records       map[string]*record
	listeners     []listenerEntry
	nextListener  int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithDefaultCorner sets the container used for records that do not
// name one. Defaults to CornerTopRight.
func WithDefaultCorner(c Corner) StoreOption {
	return func(s *Store) {
		if c.Valid() {
			s.defaultCorner = c
		}
	}
}

// NewStore creates an empty toast store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		defaultCorner: CornerTopRight,
		records:       make(map[string]*record),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DefaultCorner returns the container used when a record names none.
func (s *Store) DefaultCorner() Corner {
	return s.defaultCorner
}

// UpsertOption configures a single Upsert call.
type UpsertOption func(*upsertOptions)

type upsertOptions struct {
	front bool
}

// BringToFront moves the record to the head of its display order
// instead of preserving its current position.
func BringToFront() UpsertOption {
	return func(o *upsertOptions) {
		o.front = true
	}
}

// Upsert inserts n, or partially updates the record sharing its ID.
// Zero-valued fields of an update leave the stored fields unchanged;
// nil renderers leave the stored renderers in place. A fresh ID is
// generated when n.ID is empty. Returns the resolved ID.
//
// Duration handling: a non-nil positive Duration (re)arms the
// auto-dismiss timer from now, an explicit non-positive Duration
// cancels any running timer, and a nil Duration leaves the timer
// untouched.
func (s *Store) Upsert(n Notification, opts ...UpsertOption) string {
	var o upsertOptions
	for _, opt := range opts {
		opt(&o)
	}

	s.mu.Lock()

	id := n.ID
	if id == "" {
		id = uuid.New().String()
	}

	r, exists := s.records[id]
	if !exists {
		r = s.insertLocked(id, n, o.front)
		ev := Event{Type: EventUpserted, Notification: r.n}
		fns := s.listenersLocked()
		s.mu.Unlock()
		dispatch(fns, ev)
		return id
	}

	changed := s.mergeLocked(r, n)
	if o.front && s.promoteLocked(id) {
		changed = true
	}

	if !changed {
		s.mu.Unlock()
		return id
	}

	r.rev++
	ev := Event{Type: EventUpserted, Notification: r.n}
	fns := s.listenersLocked()
	s.mu.Unlock()
	dispatch(fns, ev)
	return id
}

// Remove deletes the record with the given ID, canceling any pending
// auto-dismiss timer. Removing an absent ID is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()

	r, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return
	}

	s.deleteLocked(id, r)
	ev := Event{Type: EventRemoved, Notification: r.n}
	fns := s.listenersLocked()
	s.mu.Unlock()
	dispatch(fns, ev)
}

// List returns the records of one corner in display order (insertion
// order unless reordered by BringToFront). An empty corner queries the
// default container. The result is a copy; mutations to it do not
// affect the store.
func (s *Store) List(corner Corner) []Notification {
	if corner == "" {
		corner = s.defaultCorner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, 0, len(s.order))
	for _, id := range s.order {
		if r := s.records[id]; r.n.Corner == corner {
			out = append(out, r.n)
		}
	}
	return out
}

// Len reports the total number of live records across all corners.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Subscribe registers fn to be called synchronously after every
// effective mutation in any corner. Listeners fire in registration
// order. The returned function unregisters the listener and is safe to
// call more than once.
func (s *Store) Subscribe(fn ListenerFunc) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// revOf reports the current revision of a record. Used by the flash
// reconciler to detect records modified since it last wrote them.
func (s *Store) revOf(id string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return 0, false
	}
	return r.rev, true
}

func (s *Store) insertLocked(id string, n Notification, front bool) *record {
	n.ID = id
	if n.Corner == "" {
		n.Corner = s.defaultCorner
	}
	if n.Duration != nil && *n.Duration <= 0 {
		n.Duration = nil
	}

	r := &record{n: n, rev: 1}
	s.records[id] = r
	if front {
		s.order = append([]string{id}, s.order...)
	} else {
		s.order = append(s.order, id)
	}

	if n.Duration != nil {
		s.armTimerLocked(r, *n.Duration)
	}
	return r
}

// mergeLocked applies the partial update n onto r and reports whether
// the record content changed. Timer side effects happen here too: a
// non-nil Duration always re-arms or cancels, even when the stored
// value is identical, because a reset restarts the expiry clock.
func (s *Store) mergeLocked(r *record, n Notification) bool {
	changed := false

	if n.Kind != "" && n.Kind != r.n.Kind {
		r.n.Kind = n.Kind
		changed = true
	}
	if n.Message != "" && n.Message != r.n.Message {
		r.n.Message = n.Message
		changed = true
	}
	if n.Title != "" && n.Title != r.n.Title {
		r.n.Title = n.Title
		changed = true
	}
	if n.Icon != nil {
		r.n.Icon = n.Icon
		changed = true
	}
	if n.Action != nil {
		r.n.Action = n.Action
		changed = true
	}
	if n.Body != nil {
		r.n.Body = n.Body
		changed = true
	}
	if n.Corner != "" && n.Corner.Valid() && n.Corner != r.n.Corner {
		r.n.Corner = n.Corner
		changed = true
	}

	if n.Duration != nil {
		d := *n.Duration
		if d > 0 {
			if r.n.Duration == nil || *r.n.Duration != d {
				changed = true
			}
			r.n.Duration = &d
			s.armTimerLocked(r, d)
		} else {
			if r.n.Duration != nil {
				changed = true
			}
			r.n.Duration = nil
			s.stopTimerLocked(r)
		}
	}

	return changed
}

func (s *Store) promoteLocked(id string) bool {
	for i, existing := range s.order {
		if existing != id {
			continue
		}
		if i == 0 {
			return false
		}
		copy(s.order[1:i+1], s.order[:i])
		s.order[0] = id
		return true
	}
	return false
}

func (s *Store) deleteLocked(id string, r *record) {
	s.stopTimerLocked(r)
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) armTimerLocked(r *record, d time.Duration) {
	s.stopTimerLocked(r)

	id := r.n.ID
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.expire(id, t)
	})
	r.timer = t
}

func (s *Store) stopTimerLocked(r *record) {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// expire is the timer callback. The timer identity check makes a stale
// callback (one that lost a race against re-arm or removal) a no-op.
func (s *Store) expire(id string, t *time.Timer) {
	s.mu.Lock()

	r, ok := s.records[id]
	if !ok || r.timer != t {
		s.mu.Unlock()
		return
	}

	s.deleteLocked(id, r)
	ev := Event{Type: EventRemoved, Notification: r.n}
	fns := s.listenersLocked()
	s.mu.Unlock()
	dispatch(fns, ev)
}

func (s *Store) listenersLocked() []ListenerFunc {
	if len(s.listeners) == 0 {
		return nil
	}
	fns := make([]ListenerFunc, len(s.listeners))
	for i, l := range s.listeners {
		fns[i] = l.fn
	}
	return fns
}

func dispatch(fns []ListenerFunc, ev Event) {
	for _, fn := range fns {
		fn(ev)
	}
}
