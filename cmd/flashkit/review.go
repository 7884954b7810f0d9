package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/flashkit-cli/flashkit/internal/cli"
)

func newReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review <deck>",
		Short: "Review the due cards of a deck with spaced repetition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repository, err := newDeckRepository(cfg)
			if err != nil {
				return err
			}

			historyRepository, db, err := newHistoryRepository(cfg)
			if err != nil {
				return err
			}
			if db != nil {
				defer func() {
					_ = db.Close()
				}()
			}

			reviewCLI := cli.NewReviewCLI(repository, historyRepository)
			return reviewCLI.Run(context.Background(), args[0])
		},
	}
}
