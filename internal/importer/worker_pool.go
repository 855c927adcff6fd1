package importer

import (
	"context"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

// WorkerPool runs submitted tasks on a fixed number of goroutines. With a
// rate limit set, workers share one ticker so the pool as a whole starts at
// most rps tasks per second.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	ticker  *time.Ticker
}

func NewWorkerPool(workers, buffer, rps int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	p := &WorkerPool{workers: workers, tasks: make(chan Task, buffer)}
	if rps > 0 {
		p.ticker = time.NewTicker(time.Second / time.Duration(rps))
	}
	return p
}

// Submit blocks while the buffer is full. It returns false once ctx is done.
func (p *WorkerPool) Submit(ctx context.Context, t Task) bool {
	if t == nil {
		return true
	}
	if ctx.Err() != nil {
		return false
	}
	select {
	case p.tasks <- t:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close stops accepting tasks. Results keeps draining until queued tasks
// finish.
func (p *WorkerPool) Close() {
	close(p.tasks)
}

// Run starts the workers and returns one error (nil on success) per task.
// The channel closes after Close once every worker has exited.
func (p *WorkerPool) Run(ctx context.Context) <-chan error {
	out := make(chan error, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				if err := p.wait(ctx); err != nil {
					out <- err
					continue
				}
				out <- t(ctx)
			}
		}()
	}

	go func() {
		p.wg.Wait()
		if p.ticker != nil {
			p.ticker.Stop()
		}
		close(out)
	}()

	return out
}

func (p *WorkerPool) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.ticker == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}
