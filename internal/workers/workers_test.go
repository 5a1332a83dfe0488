// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tieba/internal/logger"
)

// orderWorker records start and stop events into a shared log.
type orderWorker struct {
	id  int
	mu  *sync.Mutex
	log *[]string
}

func (w *orderWorker) Start(context.Context) { w.record("start") }
func (w *orderWorker) Stop()                 { w.record("stop") }

func (w *orderWorker) record(event string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	*w.log = append(*w.log, event+"-"+string(rune('0'+w.id)))
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var (
		mu     sync.Mutex
		events []string
	)
	newWorker := func(id int) Worker { return &orderWorker{id: id, mu: &mu, log: &events} }

	ws := NewWorkers(newWorker(1), newWorker(2), newWorker(3))
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start-1", "start-2", "start-3", "stop-3", "stop-2", "stop-1"}, events)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestNewPeriodicJob_DefaultInterval(t *testing.T) {
	job := NewPeriodicJob("test", 0, func(context.Context) error { return nil }, logger.Nop())
	assert.Equal(t, 5*time.Minute, job.Interval())

	var _ Worker = job
}

func TestPeriodicJob_Start_CallsTask(t *testing.T) {
	var calls atomic.Int64
	job := NewPeriodicJob("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestPeriodicJob_TaskErrorKeepsRunning(t *testing.T) {
	var calls atomic.Int64
	job := NewPeriodicJob("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("boom")
	}, logger.Nop())

	job.Start(context.Background())
	time.Sleep(45 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(2))
}

func TestPeriodicJob_Stop_StopsGoroutine(t *testing.T) {
	var calls atomic.Int64
	job := NewPeriodicJob("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestPeriodicJob_Stop_BeforeStart(t *testing.T) {
	job := NewPeriodicJob("test", time.Second, func(context.Context) error { return nil }, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestPeriodicJob_ContextCancel(t *testing.T) {
	var calls atomic.Int64
	job := NewPeriodicJob("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "Stop did not return after context cancellation")
	}
}

func TestPeriodicJob_RestartReplacesRunning(t *testing.T) {
	var calls atomic.Int64
	job := NewPeriodicJob("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "restart must not leave the first goroutine running")
}
