package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"lending/internal/config"
	"lending/internal/ops"
	"lending/internal/pipeline"
	"lending/internal/review"
	"lending/internal/rules"
	"lending/internal/verification"
	"lending/internal/worker"
	"lending/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupOpsServer starts the operational HTTP server (metrics, pprof) and
// returns a closure that shuts it down.
func setupOpsServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	server, err := ops.NewServer(ops.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create ops server", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting ops server...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand that runs the automated
// pipeline workers together with the ops server.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts pipeline workers and the ops server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			stopOpsServer := setupOpsServer(ctx, cfg)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			doc, err := rules.LoadDocument(cfg.Pipeline.RulesPath)
			if err != nil {
				logger.Fatal(ctx, "could not load rule document", zap.Error(err))
			}
			registry := rules.NewRegistry(doc)

			verifier := verification.NewService(
				verification.SimulatedBureau{},
				verification.SimulatedIdentity{},
				verification.SimulatedEmployment{},
				verification.SimulatedBank{},
				cfg.Verification.Timeout)
			reviews := review.NewService(strg, review.Options{AutoAssign: cfg.Review.AutoAssign})
			orch := pipeline.New(strg, verifier, reviews, registry, pipeline.Options{
				ReviewAmountThreshold: decimal.NewFromFloat(cfg.Review.AmountThreshold),
			})

			riverClient, err := worker.Start(ctx, strg.Pool, orch, cfg.Pipeline.QueueMaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop river queue client", zap.Error(err))
			}

			stopOpsServer(shutdownCtx)
		},
	}

	return cmd
}
