package async

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProcessor struct {
	mu        sync.Mutex
	processed []uuid.UUID
	started   chan struct{} // when set, receives one signal per invocation
	block     chan struct{} // when set, ProcessSubmission waits on it
}

func (p *recordingProcessor) ProcessSubmission(_ context.Context, id uuid.UUID) error {
	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = append(p.processed, id)
	return nil
}

func (p *recordingProcessor) snapshot() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]uuid.UUID, len(p.processed))
	copy(out, p.processed)
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestQueueProcessesInFIFOOrder(t *testing.T) {
	t.Parallel()

	proc := &recordingProcessor{}
	q := NewGradingQueue(proc, testLogger(), WithWorkers(1), WithQueueSize(16))

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, q.Enqueue(context.Background(), Job{SubmissionID: id}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, ids, proc.snapshot())
	assert.Equal(t, 0, q.Pending())
}

func TestQueueSkipsDuplicateInFlight(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	proc := &recordingProcessor{block: block}
	q := NewGradingQueue(proc, testLogger(), WithWorkers(1), WithQueueSize(16))

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{SubmissionID: id}))
	require.NoError(t, q.Enqueue(context.Background(), Job{SubmissionID: id}))
	require.NoError(t, q.Enqueue(context.Background(), Job{SubmissionID: id}))
	assert.Equal(t, 1, q.Pending())

	close(block)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Len(t, proc.snapshot(), 1)
}

func TestQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	t.Parallel()

	proc := &recordingProcessor{}
	q := NewGradingQueue(proc, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), Job{SubmissionID: uuid.New()}))
	assert.Empty(t, proc.snapshot())
}

func TestEnqueueBlockedOnFullQueueSurvivesShutdown(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	proc := &recordingProcessor{started: make(chan struct{}, 3), block: block}
	q := NewGradingQueue(proc, testLogger(), WithWorkers(1), WithQueueSize(1))

	// First job occupies the worker, second fills the buffer.
	require.NoError(t, q.Enqueue(context.Background(), Job{SubmissionID: uuid.New()}))
	<-proc.started
	require.NoError(t, q.Enqueue(context.Background(), Job{SubmissionID: uuid.New()}))

	// Third producer parks in the backpressure send.
	returned := make(chan error, 1)
	go func() {
		returned <- q.Enqueue(context.Background(), Job{SubmissionID: uuid.New()})
	}()
	time.Sleep(50 * time.Millisecond)

	shutdownDone := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		q.Shutdown(ctx)
		close(shutdownDone)
	}()

	close(block)

	select {
	case err := <-returned:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("blocked enqueue never returned")
	}
	<-shutdownDone
	assert.Len(t, proc.snapshot(), 3)
}

func TestQueueShutdownDrainsBacklog(t *testing.T) {
	t.Parallel()

	proc := &recordingProcessor{}
	q := NewGradingQueue(proc, testLogger(), WithWorkers(2), WithQueueSize(64))

	n := 20
	for i := 0; i < n; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{SubmissionID: uuid.New()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Len(t, proc.snapshot(), n)
}
