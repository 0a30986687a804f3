package main

import (
	"context"

	"lending/internal/config"
	"lending/internal/review"
	"lending/pkg/domain"
	"lending/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reviewCommand constructs the 'review' subcommand that records a reviewer's
// verdict on an application parked under manual review.
func reviewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Records a reviewer decision on an application under review",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			number, _ := cmd.Flags().GetString("application")
			reviewer, _ := cmd.Flags().GetString("reviewer")
			decision, _ := cmd.Flags().GetString("decision")
			comment, _ := cmd.Flags().GetString("comment")

			reviewerID, err := uuid.Parse(reviewer)
			if err != nil {
				logger.Fatal(ctx, "could not parse reviewer id", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := review.NewService(strg, review.Options{AutoAssign: cfg.Review.AutoAssign})
			err = svc.RecordDecision(ctx, number,
				domain.ReviewerID(reviewerID),
				domain.ReviewDecision(decision),
				comment)
			if err != nil {
				logger.Fatal(ctx, "could not record review decision", zap.Error(err))
			}

			logger.Info(ctx, "review decision recorded",
				zap.String("applicationNumber", number),
				zap.String("decision", decision))
		},
	}

	cmd.Flags().String("application", "", "Application number, e.g. LN-2026-ABC123DEF0")
	cmd.Flags().String("reviewer", "", "Reviewer ID (UUID)")
	cmd.Flags().String("decision", "",
		"Review decision: approved, conditional_approval, rejected, refer_back or escalate")
	cmd.Flags().String("comment", "", "Reviewer comment")
	_ = cmd.MarkFlagRequired("application")
	_ = cmd.MarkFlagRequired("reviewer")
	_ = cmd.MarkFlagRequired("decision")

	return cmd
}
