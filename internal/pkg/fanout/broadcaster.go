// Package fanout delivers each published value to every current subscriber.
//
// Every subscriber owns a bounded channel. Publish never blocks: when a
// subscriber's channel is full the new value is dropped for that subscriber
// only (drop-new) and its Dropped counter grows. Subscribers see only values
// published after they subscribed; there is no replay.
package fanout

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Errors returned by Subscribe.
var (
	ErrClosed        = errors.New("fanout: broadcaster closed")
	ErrInvalidBuffer = errors.New("fanout: buffer must be positive")
)

// Hooks observe broadcaster activity. Hooks run outside the broadcaster's
// write lock and must not call back into it.
type Hooks struct {
	// OnDrop is called once per value dropped for a full subscriber.
	OnDrop func(subscriberID uint64)
	// OnSubscribersChanged is called with the change in subscriber count:
	// +1 per Subscribe, -1 per Subscription.Close, minus the remaining
	// subscribers on Close. Deltas commute, so concurrent calls may arrive
	// in any order and still sum to Subscribers().
	OnSubscribersChanged func(delta int)
}

// Broadcaster fans values of type T out to subscribers.
type Broadcaster[T any] struct {
	mu        sync.RWMutex
	subs      map[uint64]*Subscription[T]
	nextID    uint64
	closed    bool
	published atomic.Uint64
	hooks     Hooks
}

// New creates an open broadcaster.
func New[T any](hooks Hooks) *Broadcaster[T] {
	return &Broadcaster[T]{
		subs:  make(map[uint64]*Subscription[T]),
		hooks: hooks,
	}
}

// Subscribe registers a subscriber whose channel holds up to buffer values.
func (b *Broadcaster[T]) Subscribe(buffer int) (*Subscription[T], error) {
	if buffer <= 0 {
		return nil, ErrInvalidBuffer
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	b.nextID++
	sub := &Subscription[T]{
		id:          b.nextID,
		ch:          make(chan T, buffer),
		broadcaster: b,
	}
	b.subs[sub.id] = sub
	b.mu.Unlock()

	b.subscribersChanged(1)
	return sub, nil
}

// Publish offers v to every subscriber without blocking.
// It is a no-op after Close.
func (b *Broadcaster[T]) Publish(v T) {
	var dropped []uint64

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	b.published.Add(1)
	for id, sub := range b.subs {
		select {
		case sub.ch <- v:
			sub.sent.Add(1)
		default:
			sub.dropped.Add(1)
			dropped = append(dropped, id)
		}
	}
	b.mu.RUnlock()

	if b.hooks.OnDrop != nil {
		for _, id := range dropped {
			b.hooks.OnDrop(id)
		}
	}
}

// Subscribers is the current subscriber count.
func (b *Broadcaster[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Published is the number of Publish calls accepted before Close.
func (b *Broadcaster[T]) Published() uint64 {
	return b.published.Load()
}

// Close closes every subscriber channel and rejects further subscriptions.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	removed := len(b.subs)
	for id, sub := range b.subs {
		sub.closeOnce.Do(func() { close(sub.ch) })
		delete(b.subs, id)
	}
	b.mu.Unlock()

	if removed > 0 {
		b.subscribersChanged(-removed)
	}
}

func (b *Broadcaster[T]) remove(sub *Subscription[T]) {
	b.mu.Lock()
	_, present := b.subs[sub.id]
	delete(b.subs, sub.id)
	sub.closeOnce.Do(func() { close(sub.ch) })
	b.mu.Unlock()

	if present {
		b.subscribersChanged(-1)
	}
}

func (b *Broadcaster[T]) subscribersChanged(delta int) {
	if b.hooks.OnSubscribersChanged != nil {
		b.hooks.OnSubscribersChanged(delta)
	}
}

// Subscription is one subscriber's view of a Broadcaster.
type Subscription[T any] struct {
	id          uint64
	ch          chan T
	broadcaster *Broadcaster[T]
	closeOnce   sync.Once
	sent        atomic.Uint64
	dropped     atomic.Uint64
}

// ID identifies the subscription within its broadcaster.
func (s *Subscription[T]) ID() uint64 {
	return s.id
}

// Events yields published values. It is closed by Close on either the
// subscription or the broadcaster.
func (s *Subscription[T]) Events() <-chan T {
	return s.ch
}

// Close unsubscribes. It is idempotent and does not affect other subscribers.
func (s *Subscription[T]) Close() {
	s.broadcaster.remove(s)
}

// Stats returns how many values were queued for and dropped from this subscriber.
func (s *Subscription[T]) Stats() (sent, dropped uint64) {
	return s.sent.Load(), s.dropped.Load()
}
