package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*DBReviewRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBReviewRepository(sqlx.NewDb(db, "mysql")), mock
}

func reviewLogRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "card_id", "quality", "response_time_ms", "interval_days",
		"ease_factor", "repetition", "quiz_kind", "reviewed_at", "created_at", "updated_at",
	})
}

func TestDBReviewRepository_BatchCreate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		logs      []*ReviewLog
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "inserts multiple logs in one statement",
			logs: []*ReviewLog{
				{CardID: "card-1", Quality: 5, ResponseTimeMs: 1500, IntervalDays: 6, EaseFactor: 2.6, Repetition: 2, QuizKind: "free_text", ReviewedAt: now},
				{CardID: "card-2", Quality: 2, ResponseTimeMs: 3000, IntervalDays: 1, EaseFactor: 2.1, Repetition: 0, QuizKind: "free_text", ReviewedAt: now},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO review_logs").
					WithArgs(
						"card-1", 5, int64(1500), 6, 2.6, 2, "free_text", now,
						"card-2", 2, int64(3000), 1, 2.1, 0, "free_text", now,
					).
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectCommit()
			},
		},
		{
			name:      "no logs is a no-op",
			logs:      nil,
			setupMock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "insert failure rolls back",
			logs: []*ReviewLog{
				{CardID: "card-1", Quality: 5, ReviewedAt: now},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO review_logs").
					WillReturnError(fmt.Errorf("duplicate entry"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			err := repo.BatchCreate(context.Background(), tt.logs)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBReviewRepository_FindAll(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns all review logs", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		rows := reviewLogRows().
			AddRow(1, "card-1", 4, 1500, 6, 2.5, 2, "free_text", now, now, now).
			AddRow(2, "card-2", 1, 3000, 1, 2.1, 0, "boolean", now, now, now)
		mock.ExpectQuery("SELECT \\* FROM review_logs ORDER BY id").WillReturnRows(rows)

		got, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "card-1", got[0].CardID)
		assert.Equal(t, 4, got[0].Quality)
		assert.Equal(t, "card-2", got[1].CardID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT \\* FROM review_logs ORDER BY id").
			WillReturnError(fmt.Errorf("connection refused"))

		_, err := repo.FindAll(context.Background())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBReviewRepository_FindByCard(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, mock := newMockRepository(t)
	rows := reviewLogRows().
		AddRow(1, "card-1", 3, 2000, 1, 2.36, 1, "free_text", now.Add(-48*time.Hour), now, now).
		AddRow(2, "card-1", 5, 1200, 6, 2.46, 2, "free_text", now, now, now)
	mock.ExpectQuery("SELECT \\* FROM review_logs WHERE card_id = \\? ORDER BY reviewed_at").
		WithArgs("card-1").
		WillReturnRows(rows)

	got, err := repo.FindByCard(context.Background(), "card-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Quality)
	assert.Equal(t, 5, got[1].Quality)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBReviewRepository_FindLatestByCard(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns the most recent log", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		rows := reviewLogRows().
			AddRow(2, "card-1", 5, 1200, 6, 2.46, 2, "free_text", now, now, now)
		mock.ExpectQuery("SELECT \\* FROM review_logs WHERE card_id = \\? ORDER BY reviewed_at DESC LIMIT 1").
			WithArgs("card-1").
			WillReturnRows(rows)

		got, err := repo.FindLatestByCard(context.Background(), "card-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 5, got.Quality)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no reviews yields nil without error", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT \\* FROM review_logs WHERE card_id = \\? ORDER BY reviewed_at DESC LIMIT 1").
			WithArgs("card-9").
			WillReturnRows(reviewLogRows())

		got, err := repo.FindLatestByCard(context.Background(), "card-9")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBReviewRepository_CountSince(t *testing.T) {
	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	repo, mock := newMockRepository(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM review_logs WHERE reviewed_at >= \\?").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	got, err := repo.CountSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
