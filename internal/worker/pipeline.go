package worker

import (
	"context"
	"errors"
	"fmt"

	"lending/internal/jobs"
	"lending/pkg/logger"
	"lending/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PipelineWorker executes queued pipeline runs.
type PipelineWorker struct {
	river.WorkerDefaults[jobs.ProcessApplicationArgs]

	runner Runner
}

// NewPipelineWorker constructs a PipelineWorker around the given runner.
func NewPipelineWorker(runner Runner) *PipelineWorker {
	return &PipelineWorker{runner: runner}
}

// Work runs the automated pipeline for one application. Out-of-order jobs
// (application missing, or not in an approved stage) are canceled instead of
// retried: the workflow never re-runs a failed application on its own.
func (w *PipelineWorker) Work(ctx context.Context, job *river.Job[jobs.ProcessApplicationArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("applicationNumber", job.Args.Number))

	if err := w.runner.Run(ctx, job.Args.Number); err != nil {
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrPrecondition) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error processing application", zap.Error(err))

		return fmt.Errorf("could not process application: %w", err)
	}

	logger.Info(ctx, "application processed")

	return nil
}
