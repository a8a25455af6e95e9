// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/stretchr/testify/assert"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func runUntilCancelled(t *testing.T, ws *Workers, after time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), after)
	defer cancel()

	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(after + 2*time.Second):
		t.Fatal("workers did not stop after context cancellation")
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	runUntilCancelled(t, NewWorkers(w1, w2, w3), 20*time.Millisecond)

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should return immediately without workers
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

// fakeSweeper counts Sweep calls.
type fakeSweeper struct {
	mu    sync.Mutex
	calls []time.Time
}

func (f *fakeSweeper) Sweep(now time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, now)
	return 0
}

func (f *fakeSweeper) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSessionSweeper_SweepsOnTick(t *testing.T) {
	sweeper := &fakeSweeper{}
	w := NewSessionSweeper(sweeper, 5*time.Millisecond, logger.Nop())

	runUntilCancelled(t, NewWorkers(w), 100*time.Millisecond)

	assert.GreaterOrEqual(t, sweeper.count(), 2)
}

func TestSessionSweeper_StopsOnCancel(t *testing.T) {
	sweeper := &fakeSweeper{}
	w := NewSessionSweeper(sweeper, time.Hour, logger.Nop())

	runUntilCancelled(t, NewWorkers(w), 10*time.Millisecond)

	assert.Zero(t, sweeper.count())
}

func TestNewSessionSweeper_DefaultInterval(t *testing.T) {
	w := NewSessionSweeper(&fakeSweeper{}, 0, logger.Nop())
	assert.Equal(t, defaultSweepInterval, w.interval)
}
