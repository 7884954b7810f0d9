// Package history provides review log storage and retrieval.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/flashkit-cli/flashkit/internal/database"
)

// ReviewLog is one recorded card review.
type ReviewLog struct {
	ID             int64     `db:"id"`
	CardID         string    `db:"card_id"`
	Quality        int       `db:"quality"`
	ResponseTimeMs int64     `db:"response_time_ms"`
	IntervalDays   int       `db:"interval_days"`
	EaseFactor     float64   `db:"ease_factor"`
	Repetition     int       `db:"repetition"`
	QuizKind       string    `db:"quiz_kind"`
	ReviewedAt     time.Time `db:"reviewed_at"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/history/mock_repository.go -package=mock_history Repository

// Repository defines operations for managing review logs.
type Repository interface {
	BatchCreate(ctx context.Context, logs []*ReviewLog) error
	FindAll(ctx context.Context) ([]ReviewLog, error)
	FindByCard(ctx context.Context, cardID string) ([]ReviewLog, error)
	FindLatestByCard(ctx context.Context, cardID string) (*ReviewLog, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// DBReviewRepository implements Repository using MySQL.
type DBReviewRepository struct {
	db *sqlx.DB
}

func NewDBReviewRepository(db *sqlx.DB) *DBReviewRepository {
	return &DBReviewRepository{db: db}
}

// BatchCreate inserts multiple review logs in a single transaction using a
// multi-row INSERT.
func (r *DBReviewRepository) BatchCreate(ctx context.Context, logs []*ReviewLog) error {
	if len(logs) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		columns := []string{"card_id", "quality", "response_time_ms", "interval_days", "ease_factor", "repetition", "quiz_kind", "reviewed_at"}
		query := database.BuildMultiRowInsert("review_logs", columns, len(logs))

		var args []interface{}
		for _, l := range logs {
			args = append(args, l.CardID, l.Quality, l.ResponseTimeMs, l.IntervalDays, l.EaseFactor, l.Repetition, l.QuizKind, l.ReviewedAt)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert review logs: %w", err)
		}
		return nil
	})
}

// FindAll returns every review log, oldest first.
func (r *DBReviewRepository) FindAll(ctx context.Context) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs, "SELECT * FROM review_logs ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load all review logs: %w", err)
	}
	return logs, nil
}

// FindByCard returns the review logs for one card, oldest first.
func (r *DBReviewRepository) FindByCard(ctx context.Context, cardID string) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs, "SELECT * FROM review_logs WHERE card_id = ? ORDER BY reviewed_at", cardID); err != nil {
		return nil, fmt.Errorf("load review logs for card %s: %w", cardID, err)
	}
	return logs, nil
}

// FindLatestByCard returns the most recent review log for a card, or nil
// when the card has never been reviewed.
func (r *DBReviewRepository) FindLatestByCard(ctx context.Context, cardID string) (*ReviewLog, error) {
	var log ReviewLog
	err := r.db.GetContext(ctx, &log, "SELECT * FROM review_logs WHERE card_id = ? ORDER BY reviewed_at DESC LIMIT 1", cardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load latest review log for card %s: %w", cardID, err)
	}
	return &log, nil
}

// CountSince returns the number of reviews recorded at or after since.
func (r *DBReviewRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM review_logs WHERE reviewed_at >= ?", since); err != nil {
		return 0, fmt.Errorf("count review logs: %w", err)
	}
	return count, nil
}
