package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"FXBridge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (r *countingRunner) Run(_ context.Context) (*model.Result, error) {
	r.calls.Add(1)
	return &model.Result{}, r.err
}

func TestRegister(t *testing.T) {
	s := NewScheduler(context.Background(), &countingRunner{}, zap.NewNop())

	assert.NoError(t, s.Register("0 0 17 * * 1-5"))
	assert.Len(t, s.Cron.Entries(), 1)

	// five-field specs are rejected, seconds come first
	assert.Error(t, s.Register("0 17 * * *"))
	assert.Error(t, s.Register("not a cron"))
}

func TestRunNow(t *testing.T) {
	r := &countingRunner{err: errors.New("feed down")}
	s := NewScheduler(context.Background(), r, zap.NewNop())

	s.RunNow()
	s.RunNow()
	assert.Equal(t, int32(2), r.calls.Load())
}

func TestRunNow_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &countingRunner{}
	NewScheduler(ctx, r, zap.NewNop()).RunNow()
	assert.Zero(t, r.calls.Load())
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(context.Background(), &countingRunner{}, zap.NewNop())
	s.Start()
	s.Stop()
}

// blockingRunner holds every run until release is closed and records the
// highest number of runs in flight.
type blockingRunner struct {
	started  chan struct{}
	release  chan struct{}
	calls    atomic.Int32
	inFlight atomic.Int32
	peak     atomic.Int32
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{started: make(chan struct{}, 16), release: make(chan struct{})}
}

func (r *blockingRunner) Run(_ context.Context) (*model.Result, error) {
	r.calls.Add(1)
	n := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}
	r.started <- struct{}{}
	<-r.release
	return &model.Result{}, nil
}

func TestRunNow_SkippedWhileRunning(t *testing.T) {
	r := newBlockingRunner()
	s := NewScheduler(context.Background(), r, zap.NewNop())

	done := make(chan struct{})
	go func() {
		s.RunNow()
		close(done)
	}()
	<-r.started

	// returns at once, the first run still holds the job
	s.RunNow()
	assert.Equal(t, int32(1), r.calls.Load())

	close(r.release)
	<-done
	assert.Equal(t, int32(1), r.peak.Load())
}

func TestScheduledRun_DoesNotOverlapRunNow(t *testing.T) {
	r := newBlockingRunner()
	s := NewScheduler(context.Background(), r, zap.NewNop())
	require.NoError(t, s.Register("* * * * * *"))

	done := make(chan struct{})
	go func() {
		s.RunNow()
		close(done)
	}()
	<-r.started

	s.Start()
	// let at least two scheduled ticks fire while RunNow holds the job
	time.Sleep(2500 * time.Millisecond)

	assert.Equal(t, int32(1), r.calls.Load())
	assert.Equal(t, int32(1), r.peak.Load())

	close(r.release)
	<-done
	s.Stop()
	assert.Equal(t, int32(1), r.peak.Load())
}
