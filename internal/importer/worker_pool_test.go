package importer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_RunsEveryTask(t *testing.T) {
	p := NewWorkerPool(3, 2, 0)
	results := p.Run(context.Background())

	var ran atomic.Int32
	go func() {
		for i := 0; i < 10; i++ {
			i := i
			p.Submit(context.Background(), func(context.Context) error {
				ran.Add(1)
				if i%5 == 0 {
					return errors.New("boom")
				}
				return nil
			})
		}
		p.Close()
	}()

	var ok, failed int
	for err := range results {
		if err != nil {
			failed++
		} else {
			ok++
		}
	}
	assert.Equal(t, int32(10), ran.Load())
	assert.Equal(t, 8, ok)
	assert.Equal(t, 2, failed)
}

func TestWorkerPool_RateLimit(t *testing.T) {
	p := NewWorkerPool(4, 4, 20)
	results := p.Run(context.Background())

	start := time.Now()
	go func() {
		for i := 0; i < 4; i++ {
			p.Submit(context.Background(), func(context.Context) error { return nil })
		}
		p.Close()
	}()
	for range results {
	}
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewWorkerPool(1, 0, 0)
	results := p.Run(ctx)
	assert.False(t, p.Submit(ctx, func(context.Context) error { return nil }))
	p.Close()
	for range results {
	}
}
