// Package report renders session results as markdown and PDF and persists
// them under the reports directory.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/flashkit-cli/flashkit/internal/assessment"
	"github.com/flashkit-cli/flashkit/internal/deck"
)

// SaveResults writes the results as YAML under the directory, named by
// session so repeated runs never collide.
func SaveResults(directory string, results assessment.Results) (string, error) {
	name := fmt.Sprintf("%s-%s.yml", results.EndedAt.Format("20060102-150405"), results.SessionID)
	path := filepath.Join(directory, name)
	if err := deck.WriteYamlFile(path, results); err != nil {
		return "", fmt.Errorf("deck.WriteYamlFile(%s) > %w", path, err)
	}
	return path, nil
}

// LoadLatestResults returns the most recently saved results in the
// directory. File names sort chronologically.
func LoadLatestResults(directory string) (*assessment.Results, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", directory, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".yml" {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no saved results in %s", directory)
	}
	sort.Strings(names)

	path := filepath.Join(directory, names[len(names)-1])
	results, err := deck.ReadYamlFile[assessment.Results](path)
	if err != nil {
		return nil, fmt.Errorf("deck.ReadYamlFile(%s) > %w", path, err)
	}
	return &results, nil
}

// RenderMarkdown builds the markdown report for one session's results.
func RenderMarkdown(results assessment.Results) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Quiz Report\n\n")
	fmt.Fprintf(&b, "Session: %s\n\n", results.SessionID)
	if !results.EndedAt.IsZero() {
		fmt.Fprintf(&b, "Finished: %s\n\n", results.EndedAt.Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Score | %d |\n", results.TotalScore)
	fmt.Fprintf(&b, "| Accuracy | %d%% |\n", results.Percentage)
	fmt.Fprintf(&b, "| Questions | %d |\n", results.TotalQuestions)
	fmt.Fprintf(&b, "| Correct | %d |\n", results.CorrectAnswers)
	fmt.Fprintf(&b, "| Wrong | %d |\n", results.WrongAnswers)
	fmt.Fprintf(&b, "| Skipped | %d |\n", results.SkippedAnswers)
	fmt.Fprintf(&b, "| Time spent | %ds |\n", results.TimeSpentSeconds)
	fmt.Fprintf(&b, "| Average per question | %.2fs |\n", results.AverageSecondsPerQuestion)
	fmt.Fprintf(&b, "\n")

	writeBreakdownTable(&b, "By Question Kind", kindBreakdowns(results.ByKind))
	writeBreakdownTable(&b, "By Difficulty", difficultyBreakdowns(results.ByDifficulty))
	writeBreakdownTable(&b, "By Deck", results.ByDeck)

	fmt.Fprintf(&b, "## Timing\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Fastest answer | %ds |\n", results.Performance.FastestSeconds)
	fmt.Fprintf(&b, "| Slowest answer | %ds |\n", results.Performance.SlowestSeconds)
	fmt.Fprintf(&b, "| Consistency | %.2f |\n", results.Performance.Consistency)

	return b.String()
}

// WriteMarkdown renders the results and writes the markdown file next to
// the saved results.
func WriteMarkdown(directory string, results assessment.Results) (string, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}

	name := fmt.Sprintf("%s-%s.md", results.EndedAt.Format("20060102-150405"), results.SessionID)
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, []byte(RenderMarkdown(results)), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}

func writeBreakdownTable(b *strings.Builder, title string, breakdowns map[string]assessment.Breakdown) {
	if len(breakdowns) == 0 {
		return
	}

	keys := make([]string, 0, len(breakdowns))
	for key := range breakdowns {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintf(b, "| | Correct | Total | Accuracy |\n|---|---|---|---|\n")
	for _, key := range keys {
		breakdown := breakdowns[key]
		fmt.Fprintf(b, "| %s | %d | %d | %d%% |\n", key, breakdown.Correct, breakdown.Total, breakdown.Percentage)
	}
	fmt.Fprintf(b, "\n")
}

func kindBreakdowns(byKind map[assessment.Kind]assessment.Breakdown) map[string]assessment.Breakdown {
	out := make(map[string]assessment.Breakdown, len(byKind))
	for kind, breakdown := range byKind {
		out[string(kind)] = breakdown
	}
	return out
}

func difficultyBreakdowns(byDifficulty map[deck.Difficulty]assessment.Breakdown) map[string]assessment.Breakdown {
	out := make(map[string]assessment.Breakdown, len(byDifficulty))
	for difficulty, breakdown := range byDifficulty {
		out[string(difficulty)] = breakdown
	}
	return out
}
