package outbox

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// PublishTask is one buffered unit of publish work.
type PublishTask func() error

type TaskPool interface {
	Submit(ctx context.Context, task PublishTask) error
	Close()
}

// publishPool bounds how many outbox events are published concurrently, so a
// large backlog cannot fan out into an unbounded number of broker writes.
type publishPool struct {
	tasks chan PublishTask
	wg    sync.WaitGroup
}

func newPublishPool(workers int) *publishPool {
	p := &publishPool{
		tasks: make(chan PublishTask, workers),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				if err := task(); err != nil {
					zap.L().Error("outbox publish task failed", zap.Error(err))
				}
			}
		}()
	}
	return p
}

// Submit blocks until a worker slot frees up or the context is cancelled.
func (p *publishPool) Submit(ctx context.Context, task PublishTask) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (p *publishPool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
