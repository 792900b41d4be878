package async

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	processed atomic.Int64
	release   chan struct{}
}

func (p *countingProcessor) ProcessJob(ctx context.Context, job Job) error {
	if p.release != nil {
		<-p.release
	}
	p.processed.Add(1)
	return nil
}

func TestQueueProcessesJobs(t *testing.T) {
	p := &countingProcessor{}
	q := NewProcessorQueue(p, nil, WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	}
	q.Shutdown(context.Background())
	assert.Equal(t, int64(5), p.processed.Load())
}

func TestEnqueueFullQueueFailsFast(t *testing.T) {
	release := make(chan struct{})
	p := &countingProcessor{release: release}
	q := NewProcessorQueue(p, nil, WithWorkers(1), WithQueueSize(1))

	// first job occupies the worker, second fills the buffer
	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	var sawFull bool
	for i := 0; i < 50; i++ {
		if err := q.Enqueue(context.Background(), Job{JobID: uuid.New()}); err != nil {
			assert.ErrorIs(t, err, ErrQueueFull)
			sawFull = true
			break
		}
	}
	assert.True(t, sawFull, "a bounded queue must refuse work at capacity")

	close(release)
	q.Shutdown(context.Background())
}

func TestEnqueueAfterShutdownFails(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil)
	q.Shutdown(context.Background())
	err := q.Enqueue(context.Background(), Job{JobID: uuid.New()})
	assert.Error(t, err)
}

func TestEnqueueDuringShutdownNeverPanics(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil, WithWorkers(2), WithQueueSize(4))

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 100; j++ {
				// closed-queue and full-queue errors are both fine here,
				// sending on the closed channel is not
				_ = q.Enqueue(context.Background(), Job{JobID: uuid.New()})
			}
		}()
	}
	close(start)
	q.Shutdown(context.Background())
	wg.Wait()

	err := q.Enqueue(context.Background(), Job{JobID: uuid.New()})
	assert.Error(t, err)
}

func TestEnqueueCancelledContext(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil)
	defer q.Shutdown(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, q.Enqueue(ctx, Job{JobID: uuid.New()}), context.Canceled)
}

func TestJobContextCarriesTimeout(t *testing.T) {
	var mu sync.Mutex
	var deadlineSeen bool
	p := processorFunc(func(ctx context.Context, job Job) error {
		_, ok := ctx.Deadline()
		mu.Lock()
		deadlineSeen = ok
		mu.Unlock()
		return nil
	})
	q := NewProcessorQueue(p, nil, WithProcessTimeout(time.Minute))
	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	q.Shutdown(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, deadlineSeen)
}

type processorFunc func(ctx context.Context, job Job) error

func (f processorFunc) ProcessJob(ctx context.Context, job Job) error { return f(ctx, job) }
