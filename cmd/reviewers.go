package main

import (
	"context"
	"encoding/json"
	"os"

	"lending/internal/config"
	"lending/pkg/domain"
	"lending/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reviewersCommand constructs the 'reviewers' subcommand that loads reviewer
// directory records from a JSON file.
func reviewersCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviewers",
		Short: "Registers reviewers from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			path, _ := cmd.Flags().GetString("file")
			raw, err := os.ReadFile(path)
			if err != nil {
				logger.Fatal(ctx, "could not read reviewers file", zap.Error(err))
			}

			var reviewers []domain.Reviewer
			if err := json.Unmarshal(raw, &reviewers); err != nil {
				logger.Fatal(ctx, "could not parse reviewers file", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stored, err := strg.StoreReviewers(ctx, reviewers...)
			if err != nil {
				logger.Fatal(ctx, "could not store reviewers", zap.Error(err))
			}

			for _, r := range stored {
				logger.Info(ctx, "reviewer registered",
					zap.String("id", r.ID.String()),
					zap.String("name", r.Name),
					zap.String("role", r.Role))
			}
		},
	}

	cmd.Flags().StringP("file", "f", "", "Reviewers JSON file path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
