package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"healthtrack-be/internal/entities"
)

// SleepRepository defines the interface for sleep database operations
type SleepRepository interface {
	Create(ctx context.Context, userID int64, duration float64, quality string, date time.Time) (*entities.Sleep, error)
	GetByUserID(ctx context.Context, userID int64) ([]*entities.Sleep, error)
	SearchByQuality(ctx context.Context, userID int64, query string) ([]*entities.Sleep, error)
}

type sleepRepository struct {
	db *sql.DB
}

// NewSleepRepository creates a new sleep repository
func NewSleepRepository(db *sql.DB) SleepRepository {
	return &sleepRepository{db: db}
}

// Create inserts a new sleep entry for the given user
func (r *sleepRepository) Create(ctx context.Context, userID int64, duration float64, quality string, date time.Time) (*entities.Sleep, error) {
	query := `
		INSERT INTO sleep (user_id, duration, quality, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, duration, quality, date, created_at
	`

	var entry entities.Sleep
	err := r.db.QueryRowContext(ctx, query, userID, duration, quality, date).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Duration,
		&entry.Quality,
		&entry.Date,
		&entry.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create sleep entry: %w", err)
	}

	return &entry, nil
}

// GetByUserID retrieves all sleep entries for a specific user
func (r *sleepRepository) GetByUserID(ctx context.Context, userID int64) ([]*entities.Sleep, error) {
	query := `
		SELECT id, user_id, duration, quality, date, created_at
		FROM sleep
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sleep entries: %w", err)
	}
	defer rows.Close()

	return scanSleep(rows)
}

// SearchByQuality retrieves the user's sleep entries whose quality matches the query
func (r *sleepRepository) SearchByQuality(ctx context.Context, userID int64, query string) ([]*entities.Sleep, error) {
	stmt := `
		SELECT id, user_id, duration, quality, date, created_at
		FROM sleep
		WHERE user_id = $1 AND quality ILIKE '%' || $2 || '%'
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, stmt, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search sleep entries: %w", err)
	}
	defer rows.Close()

	return scanSleep(rows)
}

func scanSleep(rows *sql.Rows) ([]*entities.Sleep, error) {
	var entries []*entities.Sleep
	for rows.Next() {
		var entry entities.Sleep
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Duration,
			&entry.Quality,
			&entry.Date,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sleep entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sleep entries: %w", err)
	}

	return entries, nil
}
