package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"lending/internal/config"
	"lending/internal/intake"
	"lending/internal/review"
	"lending/internal/rules"
	"lending/pkg/domain"
	"lending/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// submissionFile is the on-disk format of a loan application submission.
type submissionFile struct {
	Number    string           `json:"number"`
	Amount    decimal.Decimal  `json:"amount"`
	Applicant domain.Applicant `json:"applicant"`
}

// submitCommand constructs the 'submit' subcommand that registers a new loan
// application from a JSON file and runs the intake stages on it.
func submitCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submits a loan application from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			path, _ := cmd.Flags().GetString("file")
			raw, err := os.ReadFile(path)
			if err != nil {
				logger.Fatal(ctx, "could not read application file", zap.Error(err))
			}

			var sub submissionFile
			if err := json.Unmarshal(raw, &sub); err != nil {
				logger.Fatal(ctx, "could not parse application file", zap.Error(err))
			}

			doc, err := rules.LoadDocument(cfg.Pipeline.RulesPath)
			if err != nil {
				logger.Fatal(ctx, "could not load rule document", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reviews := review.NewService(strg, review.Options{AutoAssign: cfg.Review.AutoAssign})
			svc := intake.NewService(strg, rules.NewRegistry(doc), reviews)

			app, err := svc.Submit(ctx, intake.Submission{
				Number:    sub.Number,
				Amount:    sub.Amount,
				Applicant: sub.Applicant,
			})
			if err != nil {
				logger.Fatal(ctx, "could not submit application", zap.Error(err))
			}

			out, err := json.MarshalIndent(app, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not render application", zap.Error(err))
			}

			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	cmd.Flags().StringP("file", "f", "", "Application JSON file path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
