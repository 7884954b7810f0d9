package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashkit-cli/flashkit/internal/assessment"
	"github.com/flashkit-cli/flashkit/internal/cli"
	"github.com/flashkit-cli/flashkit/internal/deck"
	"github.com/flashkit-cli/flashkit/internal/report"
)

func newQuizCommand() *cobra.Command {
	var (
		kind               string
		questionCount      int
		totalSeconds       int
		perQuestionSeconds int
		revealSeconds      int
		shuffle            bool
		revealAnswer       bool
		instantFeedback    bool
		allowSkip          bool
		difficulty         string
		tag                string
	)

	command := &cobra.Command{
		Use:   "quiz <deck>",
		Short: "Run a timed quiz over a deck",
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

			settings := assessment.Settings{
				Kind:               assessment.Kind(kind),
				QuestionCount:      questionCount,
				TotalSeconds:       totalSeconds,
				PerQuestionSeconds: perQuestionSeconds,
				RevealSeconds:      revealSeconds,
				RandomOrder:        shuffle,
				RevealAnswer:       revealAnswer,
				InstantFeedback:    instantFeedback,
				AllowSkip:          allowSkip,
			}
			if !cmd.Flags().Changed("count") {
				settings.QuestionCount = cfg.Assessment.QuestionCount
			}
			if !cmd.Flags().Changed("per-question-seconds") {
				settings.PerQuestionSeconds = cfg.Assessment.PerQuestionSeconds
			}
			if !cmd.Flags().Changed("total-seconds") {
				settings.TotalSeconds = cfg.Assessment.TotalSeconds
			}
			if !cmd.Flags().Changed("reveal-seconds") {
				settings.RevealSeconds = cfg.Assessment.RevealSeconds
			}

			filter := deck.Filter{
				Difficulty: deck.Difficulty(difficulty),
				Tag:        tag,
			}
			quizCLI := cli.NewQuizCLI(repository, settings, filter)
			results, err := quizCLI.Run(args[0])
			if err != nil {
				return err
			}
			if results == nil {
				return nil
			}

			path, err := report.SaveResults(cfg.Reports.Directory, *results)
			if err != nil {
				return fmt.Errorf("report.SaveResults() > %w", err)
			}
			fmt.Printf("Results saved to %s\n", path)
			return nil
		},
	}

	command.Flags().StringVar(&kind, "kind", string(assessment.KindMixed), "Question kind: single_choice, free_text, pair_matching, boolean or mixed")
	command.Flags().IntVar(&questionCount, "count", 0, "Number of questions")
	command.Flags().IntVar(&totalSeconds, "total-seconds", 0, "Time limit for the whole quiz, 0 for none")
	command.Flags().IntVar(&perQuestionSeconds, "per-question-seconds", 0, "Time limit per question, 0 for none")
	command.Flags().IntVar(&revealSeconds, "reveal-seconds", 0, "How long the answer stays visible in instant feedback mode")
	command.Flags().BoolVar(&shuffle, "shuffle", true, "Shuffle the cards before generating questions")
	command.Flags().BoolVar(&revealAnswer, "reveal", false, "Show the correct answer after a mistake")
	command.Flags().BoolVar(&instantFeedback, "instant-feedback", false, "Pause on the correct answer before the next question")
	command.Flags().BoolVar(&allowSkip, "allow-skip", false, "Allow skipping questions with s")
	command.Flags().StringVar(&difficulty, "difficulty", "", "Only quiz cards of this difficulty: easy, medium or hard")
	command.Flags().StringVar(&tag, "tag", "", "Only quiz cards carrying this tag")

	return command
}
