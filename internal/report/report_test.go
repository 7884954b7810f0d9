package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashkit-cli/flashkit/internal/assessment"
	"github.com/flashkit-cli/flashkit/internal/deck"
)

func sampleResults() assessment.Results {
	startedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return assessment.Results{
		SessionID:                 "session-1",
		TotalScore:                300,
		Percentage:                75,
		TotalQuestions:            4,
		CorrectAnswers:            3,
		WrongAnswers:              1,
		TimeSpentSeconds:          80,
		AverageSecondsPerQuestion: 20,
		ByKind: map[assessment.Kind]assessment.Breakdown{
			assessment.KindFreeText:     {Correct: 2, Total: 3, Percentage: 67},
			assessment.KindSingleChoice: {Correct: 1, Total: 1, Percentage: 100},
		},
		ByDifficulty: map[deck.Difficulty]assessment.Breakdown{
			deck.DifficultyEasy: {Correct: 3, Total: 4, Percentage: 75},
		},
		ByDeck: map[string]assessment.Breakdown{
			"spanish": {Correct: 3, Total: 4, Percentage: 75},
		},
		Performance: assessment.Performance{
			FastestSeconds: 10,
			SlowestSeconds: 30,
			Consistency:    0.84,
		},
		StartedAt: startedAt,
		EndedAt:   startedAt.Add(80 * time.Second),
	}
}

func TestRenderMarkdown(t *testing.T) {
	markdown := RenderMarkdown(sampleResults())

	assert.Contains(t, markdown, "# Quiz Report")
	assert.Contains(t, markdown, "Session: session-1")
	assert.Contains(t, markdown, "| Score | 300 |")
	assert.Contains(t, markdown, "| Accuracy | 75% |")
	assert.Contains(t, markdown, "## By Question Kind")
	assert.Contains(t, markdown, "| free_text | 2 | 3 | 67% |")
	assert.Contains(t, markdown, "| single_choice | 1 | 1 | 100% |")
	assert.Contains(t, markdown, "## By Difficulty")
	assert.Contains(t, markdown, "| easy | 3 | 4 | 75% |")
	assert.Contains(t, markdown, "## By Deck")
	assert.Contains(t, markdown, "| spanish | 3 | 4 | 75% |")
	assert.Contains(t, markdown, "| Consistency | 0.84 |")
}

func TestRenderMarkdown_EmptyBreakdownsOmitted(t *testing.T) {
	results := sampleResults()
	results.ByDifficulty = nil
	results.ByDeck = nil

	markdown := RenderMarkdown(results)
	assert.NotContains(t, markdown, "## By Difficulty")
	assert.NotContains(t, markdown, "## By Deck")
}

func TestSaveAndLoadLatestResults(t *testing.T) {
	directory := t.TempDir()

	older := sampleResults()
	older.SessionID = "session-old"
	older.EndedAt = older.EndedAt.Add(-time.Hour)
	_, err := SaveResults(directory, older)
	require.NoError(t, err)

	newest := sampleResults()
	path, err := SaveResults(directory, newest)
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, err := LoadLatestResults(directory)
	require.NoError(t, err)
	assert.Equal(t, "session-1", loaded.SessionID)
	assert.Equal(t, 300, loaded.TotalScore)
	assert.Equal(t, newest.ByKind, loaded.ByKind)
}

func TestLoadLatestResults_EmptyDirectory(t *testing.T) {
	_, err := LoadLatestResults(t.TempDir())
	assert.ErrorContains(t, err, "no saved results")
}

func TestWriteMarkdown(t *testing.T) {
	directory := t.TempDir()

	path, err := WriteMarkdown(directory, sampleResults())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Quiz Report")
}

func TestConvertMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name       string
		setupFile  func(t *testing.T) string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name: "invalid extension",
			setupFile: func(t *testing.T) string {
				return "report.txt"
			},
			wantErr:    true,
			wantErrMsg: "input file must have .md extension",
		},
		{
			name: "file not found",
			setupFile: func(t *testing.T) string {
				return "nonexistent.md"
			},
			wantErr:    true,
			wantErrMsg: "os.ReadFile",
		},
		{
			name: "successful conversion",
			setupFile: func(t *testing.T) string {
				path, err := WriteMarkdown(t.TempDir(), sampleResults())
				require.NoError(t, err)
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, err := ConvertMarkdownToPDF(tt.setupFile(t))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.FileExists(t, pdfPath)
			assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
		})
	}
}
