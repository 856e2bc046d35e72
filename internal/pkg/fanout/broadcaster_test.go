package fanout_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"logistics/internal/pkg/fanout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainNow[T any](ch <-chan T) []T {
	var out []T
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, v)
		default:
			return out
		}
	}
}

func TestBroadcaster_Subscribe(t *testing.T) {
	t.Run("rejects_non_positive_buffer", func(t *testing.T) {
		b := fanout.New[int](fanout.Hooks{})

		_, err := b.Subscribe(0)
		require.ErrorIs(t, err, fanout.ErrInvalidBuffer)
	})

	t.Run("rejects_after_close", func(t *testing.T) {
		b := fanout.New[int](fanout.Hooks{})
		b.Close()

		_, err := b.Subscribe(1)
		require.ErrorIs(t, err, fanout.ErrClosed)
	})

	t.Run("reports_subscriber_deltas", func(t *testing.T) {
		// Given
		var counts []int
		b := fanout.New[int](fanout.Hooks{
			OnSubscribersChanged: func(delta int) { counts = append(counts, delta) },
		})

		// When
		a, err := b.Subscribe(1)
		require.NoError(t, err)
		c, err := b.Subscribe(1)
		require.NoError(t, err)
		a.Close()
		a.Close()
		c.Close()

		// Then
		assert.Equal(t, []int{1, 1, -1, -1}, counts)
		assert.Zero(t, b.Subscribers())
	})

	t.Run("close_reports_remaining_subscribers_once", func(t *testing.T) {
		var counts []int
		b := fanout.New[int](fanout.Hooks{
			OnSubscribersChanged: func(delta int) { counts = append(counts, delta) },
		})
		for range 3 {
			_, err := b.Subscribe(1)
			require.NoError(t, err)
		}

		b.Close()
		b.Close()

		assert.Equal(t, []int{1, 1, 1, -3}, counts)
	})
}

func TestBroadcaster_ConcurrentSubscriberDeltas(t *testing.T) {
	// Given
	var total atomic.Int64
	b := fanout.New[int](fanout.Hooks{
		OnSubscribersChanged: func(delta int) { total.Add(int64(delta)) },
	})

	// When: half of the subscribers leave while the others join
	var (
		mu   sync.Mutex
		kept []*fanout.Subscription[int]
		wg   sync.WaitGroup
	)
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub, err := b.Subscribe(1)
			if !assert.NoError(t, err) {
				return
			}
			if i%2 == 0 {
				sub.Close()
				return
			}
			mu.Lock()
			kept = append(kept, sub)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Then
	assert.Equal(t, int64(b.Subscribers()), total.Load())
	assert.Len(t, kept, 32)

	b.Close()
	assert.Zero(t, total.Load())
}

func TestBroadcaster_Publish(t *testing.T) {
	t.Run("no_replay_for_late_subscribers", func(t *testing.T) {
		// Given
		b := fanout.New[int](fanout.Hooks{})
		early, err := b.Subscribe(16)
		require.NoError(t, err)
		b.Publish(1)
		b.Publish(2)

		// When
		late, err := b.Subscribe(16)
		require.NoError(t, err)
		b.Publish(3)

		// Then
		assert.Equal(t, []int{1, 2, 3}, drainNow(early.Events()))
		assert.Equal(t, []int{3}, drainNow(late.Events()))
		assert.Equal(t, uint64(3), b.Published())
	})

	t.Run("drop_new_when_subscriber_is_full", func(t *testing.T) {
		// Given
		var drops atomic.Int32
		b := fanout.New[int](fanout.Hooks{OnDrop: func(uint64) { drops.Add(1) }})
		slow, err := b.Subscribe(2)
		require.NoError(t, err)
		fast, err := b.Subscribe(10)
		require.NoError(t, err)

		// When
		for i := 1; i <= 5; i++ {
			b.Publish(i)
		}

		// Then: slow keeps the oldest values, fast gets everything
		assert.Equal(t, []int{1, 2}, drainNow(slow.Events()))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, drainNow(fast.Events()))
		sent, dropped := slow.Stats()
		assert.Equal(t, uint64(2), sent)
		assert.Equal(t, uint64(3), dropped)
		_, fastDropped := fast.Stats()
		assert.Zero(t, fastDropped)
		assert.Equal(t, int32(3), drops.Load())
	})

	t.Run("closed_subscription_stops_receiving", func(t *testing.T) {
		b := fanout.New[int](fanout.Hooks{})
		a, err := b.Subscribe(4)
		require.NoError(t, err)
		other, err := b.Subscribe(4)
		require.NoError(t, err)

		a.Close()
		b.Publish(7)

		_, open := <-a.Events()
		assert.False(t, open)
		assert.Equal(t, []int{7}, drainNow(other.Events()))
	})

	t.Run("publish_after_close_is_noop", func(t *testing.T) {
		b := fanout.New[int](fanout.Hooks{})
		sub, err := b.Subscribe(1)
		require.NoError(t, err)

		b.Close()
		b.Publish(1)
		sub.Close()

		_, open := <-sub.Events()
		assert.False(t, open)
		assert.Zero(t, b.Published())
	})
}

func TestBroadcaster_TwoSubscribersSeeEveryEventOnce(t *testing.T) {
	// Given
	b := fanout.New[int](fanout.Hooks{})
	a, err := b.Subscribe(1024)
	require.NoError(t, err)

	var wg sync.WaitGroup
	collect := func(sub *fanout.Subscription[int], into *[]int) {
		defer wg.Done()
		for v := range sub.Events() {
			*into = append(*into, v)
		}
	}
	var gotA, gotB []int
	wg.Add(1)
	go collect(a, &gotA)

	for i := range 100 {
		b.Publish(i)
	}
	later, err := b.Subscribe(1024)
	require.NoError(t, err)
	wg.Add(1)
	go collect(later, &gotB)
	for i := 100; i < 200; i++ {
		b.Publish(i)
	}

	// When
	b.Close()
	wg.Wait()

	// Then
	require.Len(t, gotA, 200)
	for i, v := range gotA {
		require.Equal(t, i, v)
	}
	require.Len(t, gotB, 100)
	assert.Equal(t, 100, gotB[0])
	assert.Equal(t, 199, gotB[99])
}

func TestBroadcaster_ConcurrentPublishAndUnsubscribe(t *testing.T) {
	b := fanout.New[int](fanout.Hooks{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := range 10000 {
			b.Publish(i)
		}
	}()

	for range 200 {
		sub, err := b.Subscribe(1)
		require.NoError(t, err)
		sub.Close()
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publisher blocked")
	}
}
