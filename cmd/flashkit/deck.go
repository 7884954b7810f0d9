package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flashkit-cli/flashkit/internal/deck"
	"github.com/flashkit-cli/flashkit/internal/importer"
)

func newDeckCommand() *cobra.Command {
	deckCommand := &cobra.Command{
		Use:   "deck",
		Short: "Deck management commands",
	}

	deckCommand.AddCommand(newDeckListCommand())
	deckCommand.AddCommand(newDeckShowCommand())
	deckCommand.AddCommand(newDeckImportCommand())

	return deckCommand
}

func newDeckListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repository, err := newDeckRepository(cfg)
			if err != nil {
				return err
			}

			names, err := repository.ListDecks()
			if err != nil {
				return fmt.Errorf("repository.ListDecks() > %w", err)
			}
			if len(names) == 0 {
				fmt.Println("No decks found. Import one with 'flashkit deck import <url>'.")
				return nil
			}

			now := time.Now()
			for _, name := range names {
				d, err := repository.FindDeck(name)
				if err != nil {
					return fmt.Errorf("repository.FindDeck(%s) > %w", name, err)
				}
				due := len(deck.DueCards(d.Cards, now))
				fmt.Printf("%s (%d cards, %d due)\n", name, len(d.Cards), due)
			}
			return nil
		},
	}
}

func newDeckShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <deck>",
		Short: "Show the cards of a deck",
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

			d, err := repository.FindDeck(args[0])
			if err != nil {
				return fmt.Errorf("repository.FindDeck(%s) > %w", args[0], err)
			}

			fmt.Printf("%s: %d cards\n\n", d.Name, len(d.Cards))
			for _, card := range d.Cards {
				fmt.Printf("- %s: %s", card.Prompt, card.Answer)
				if card.Difficulty != "" {
					fmt.Printf(" [%s]", card.Difficulty)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func newDeckImportCommand() *cobra.Command {
	var name string

	command := &cobra.Command{
		Use:   "import <url>",
		Short: "Import a deck file from a URL",
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

			deckImporter := importer.New(repository)
			defer func() {
				_ = deckImporter.Close()
			}()

			imported, err := deckImporter.Import(context.Background(), args[0], name)
			if err != nil {
				return fmt.Errorf("deckImporter.Import(%s) > %w", args[0], err)
			}

			fmt.Printf("Imported deck %q with %d cards.\n", imported.Name, len(imported.Cards))
			return nil
		},
	}

	command.Flags().StringVar(&name, "name", "", "Store the deck under this name instead of its own")
	return command
}
