// Package worker decouples filing completion from the risk pipeline: the
// filing service enqueues without blocking, workers drain in the background.
package worker

import (
	"context"
	"log/slog"

	"hesabu/internal/audit"
	"hesabu/internal/audit/metrics"
)

// Queue is a bounded job buffer. Enqueueing never blocks; when the buffer is
// full the job is dropped, because a missed audit must not slow a filing.
type Queue struct {
	jobs    chan audit.Job
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewQueue constructs a queue with the given capacity.
func NewQueue(capacity int, logger *slog.Logger, m *metrics.Metrics) *Queue {
	if capacity <= 0 {
		capacity = 64
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{
		jobs:    make(chan audit.Job, capacity),
		logger:  logger,
		metrics: m,
	}
}

// TryEnqueue offers a job and reports whether it was accepted.
func (q *Queue) TryEnqueue(job audit.Job) bool {
	select {
	case q.jobs <- job:
		return true
	default:
		q.metrics.IncrementQueueDrop()
		q.logger.Warn("audit queue full, dropping job",
			"pin", job.PIN.String(),
		)
		return false
	}
}

// Runner executes one audit job.
type Runner interface {
	Run(ctx context.Context, job audit.Job) audit.RunOutcome
}

// Worker drains the queue. Jobs are independent, so any number of workers may
// run over the same queue.
type Worker struct {
	queue  *Queue
	runner Runner
}

func New(queue *Queue, runner Runner) *Worker {
	return &Worker{queue: queue, runner: runner}
}

// Run consumes jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job := <-w.queue.jobs:
			w.runner.Run(ctx, job)
		}
	}
}
