package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-tieba/internal/logger"
)

const defaultInterval = 5 * time.Minute

// Workers starts and stops a fixed set of workers.
type Workers struct {
	workers []Worker
}

func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Task is one run of a periodic job.
type Task func(ctx context.Context) error

// PeriodicJob calls a [Task] on a ticker. The job is idle until Start is
// called.
type PeriodicJob struct {
	name     string
	interval time.Duration
	task     Task
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodicJob creates a job running task every interval. A zero or
// negative interval defaults to 5 minutes.
func NewPeriodicJob(name string, interval time.Duration, task Task, log *logger.Logger) *PeriodicJob {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &PeriodicJob{name: name, interval: interval, task: task, logger: log}
}

// Interval returns the tick period.
func (j *PeriodicJob) Interval() time.Duration {
	return j.interval
}

// Start stops any previously running instance, then launches a goroutine
// that calls the task every interval. Task errors are logged; the job keeps
// running. The goroutine exits when ctx is cancelled or Stop is called.
func (j *PeriodicJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.task(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Warn().Err(err).Str("job", j.name).Msg("periodic job run failed")
				}
			}
		}
	}()
}

// Stop cancels the goroutine's context and blocks until it has exited.
func (j *PeriodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
