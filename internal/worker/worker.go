// Package worker runs the background job processing for the lending service.
// Pipeline jobs are delivered through the river queue; uniqueness by
// application number plus in-process locking keeps runs for the same
// application strictly serialized.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"lending/internal/jobs"
	"lending/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Runner processes one application through the automated pipeline.
type Runner interface {
	Run(ctx context.Context, number string) error
}

// Start registers the pipeline worker and starts the river queue client.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	runner Runner,
	maxWorkers int) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewPipelineWorker(runner))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			jobs.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
