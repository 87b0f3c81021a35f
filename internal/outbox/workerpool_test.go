package outbox

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishPool(t *testing.T) {
	t.Run("runs every submitted task", func(t *testing.T) {
		pool := newPublishPool(2)

		var executed int64
		for i := 0; i < 10; i++ {
			err := pool.Submit(context.Background(), func() error {
				atomic.AddInt64(&executed, 1)
				return nil
			})
			require.NoError(t, err)
		}

		pool.Close()
		assert.Equal(t, int64(10), atomic.LoadInt64(&executed))
	})

	t.Run("a failing task does not stop the workers", func(t *testing.T) {
		pool := newPublishPool(1)

		var executed int64
		require.NoError(t, pool.Submit(context.Background(), func() error {
			return assert.AnError
		}))
		require.NoError(t, pool.Submit(context.Background(), func() error {
			atomic.AddInt64(&executed, 1)
			return nil
		}))

		pool.Close()
		assert.Equal(t, int64(1), atomic.LoadInt64(&executed))
	})

	t.Run("cancelled context rejects the submit", func(t *testing.T) {
		pool := newPublishPool(1)
		defer pool.Close()

		// fill the queue with a task that blocks until we let it go
		release := make(chan struct{})
		require.NoError(t, pool.Submit(context.Background(), func() error {
			<-release
			return nil
		}))
		require.NoError(t, pool.Submit(context.Background(), func() error { return nil }))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := pool.Submit(ctx, func() error { return nil })
		assert.ErrorIs(t, err, context.Canceled)

		close(release)
	})
}
