package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [deck]",
		Short: "Validate deck files for consistency and correctness",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repository, err := newDeckRepository(cfg)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names, err = repository.ListDecks()
				if err != nil {
					return fmt.Errorf("repository.ListDecks() > %w", err)
				}
			}

			totalErrors := 0
			for _, name := range names {
				d, err := repository.FindDeck(name)
				if err != nil {
					return fmt.Errorf("repository.FindDeck(%s) > %w", name, err)
				}

				validationErrors := d.Validate()
				if len(validationErrors) == 0 {
					fmt.Printf("✓ %s\n", name)
					continue
				}

				totalErrors += len(validationErrors)
				fmt.Printf("✗ %s (%d error(s)):\n", name, len(validationErrors))
				for _, validationErr := range validationErrors {
					fmt.Printf("  - %s\n", validationErr.Error())
				}
			}

			if totalErrors > 0 {
				return fmt.Errorf("validation failed with %d error(s)", totalErrors)
			}
			fmt.Println("All validations passed!")
			return nil
		},
	}
}
