package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashkit-cli/flashkit/internal/report"
)

func newReportCommand() *cobra.Command {
	var pdf bool

	command := &cobra.Command{
		Use:   "report",
		Short: "Render the latest saved quiz results as markdown or PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			results, err := report.LoadLatestResults(cfg.Reports.Directory)
			if err != nil {
				return fmt.Errorf("report.LoadLatestResults() > %w", err)
			}

			markdownPath, err := report.WriteMarkdown(cfg.Reports.Directory, *results)
			if err != nil {
				return fmt.Errorf("report.WriteMarkdown() > %w", err)
			}
			fmt.Printf("Report written to %s\n", markdownPath)

			if pdf {
				pdfPath, err := report.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("report.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Printf("PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}

	command.Flags().BoolVar(&pdf, "pdf", false, "Also convert the report to PDF")
	return command
}
