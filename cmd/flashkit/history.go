package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand() *cobra.Command {
	historyCommand := &cobra.Command{
		Use:   "history",
		Short: "Inspect the recorded review history (requires a database)",
	}

	historyCommand.AddCommand(newHistorySummaryCommand())
	historyCommand.AddCommand(newHistoryCardCommand())

	return historyCommand
}

func newHistorySummaryCommand() *cobra.Command {
	var sinceDays int

	command := &cobra.Command{
		Use:   "summary",
		Short: "Show how many reviews were recorded recently",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			historyRepository, db, err := newHistoryRepository(cfg)
			if err != nil {
				return err
			}
			if historyRepository == nil {
				return fmt.Errorf("no database configured; set database.host in the configuration")
			}
			defer func() {
				_ = db.Close()
			}()

			since := time.Now().AddDate(0, 0, -sinceDays)
			count, err := historyRepository.CountSince(context.Background(), since)
			if err != nil {
				return fmt.Errorf("historyRepository.CountSince() > %w", err)
			}

			fmt.Printf("%d reviews recorded in the last %d day(s).\n", count, sinceDays)
			return nil
		},
	}

	command.Flags().IntVar(&sinceDays, "since-days", 7, "How many days back to count")
	return command
}

func newHistoryCardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "card <card-id>",
		Short: "Show the review history of one card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			historyRepository, db, err := newHistoryRepository(cfg)
			if err != nil {
				return err
			}
			if historyRepository == nil {
				return fmt.Errorf("no database configured; set database.host in the configuration")
			}
			defer func() {
				_ = db.Close()
			}()

			logs, err := historyRepository.FindByCard(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("historyRepository.FindByCard(%s) > %w", args[0], err)
			}
			if len(logs) == 0 {
				fmt.Printf("No reviews recorded for card %s.\n", args[0])
				return nil
			}

			for _, log := range logs {
				fmt.Printf("%s  quality=%d  interval=%dd  ease=%.2f  kind=%s\n",
					log.ReviewedAt.Format("2006-01-02 15:04"), log.Quality,
					log.IntervalDays, log.EaseFactor, log.QuizKind)
			}
			return nil
		},
	}
}
