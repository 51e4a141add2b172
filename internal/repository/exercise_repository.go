package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"healthtrack-be/internal/entities"
)

// ExerciseRepository defines the interface for exercise database operations.
// Every query is scoped by user_id; a caller can never reach another user's rows.
type ExerciseRepository interface {
	Create(ctx context.Context, userID int64, exerciseType string, duration, caloriesBurned int, date time.Time) (*entities.Exercise, error)
	GetByUserID(ctx context.Context, userID int64) ([]*entities.Exercise, error)
	SearchByType(ctx context.Context, userID int64, query string) ([]*entities.Exercise, error)
}

type exerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository creates a new exercise repository
func NewExerciseRepository(db *sql.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

// Create inserts a new exercise entry for the given user
func (r *exerciseRepository) Create(ctx context.Context, userID int64, exerciseType string, duration, caloriesBurned int, date time.Time) (*entities.Exercise, error) {
	query := `
		INSERT INTO exercises (user_id, type, duration, calories_burned, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, type, duration, calories_burned, date, created_at
	`

	var exercise entities.Exercise
	err := r.db.QueryRowContext(ctx, query, userID, exerciseType, duration, caloriesBurned, date).Scan(
		&exercise.ID,
		&exercise.UserID,
		&exercise.Type,
		&exercise.Duration,
		&exercise.CaloriesBurned,
		&exercise.Date,
		&exercise.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return &exercise, nil
}

// GetByUserID retrieves all exercise entries for a specific user
func (r *exerciseRepository) GetByUserID(ctx context.Context, userID int64) ([]*entities.Exercise, error) {
	query := `
		SELECT id, user_id, type, duration, calories_burned, date, created_at
		FROM exercises
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// SearchByType retrieves the user's exercise entries whose type matches the query
func (r *exerciseRepository) SearchByType(ctx context.Context, userID int64, query string) ([]*entities.Exercise, error) {
	stmt := `
		SELECT id, user_id, type, duration, calories_burned, date, created_at
		FROM exercises
		WHERE user_id = $1 AND type ILIKE '%' || $2 || '%'
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, stmt, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

func scanExercises(rows *sql.Rows) ([]*entities.Exercise, error) {
	var exercises []*entities.Exercise
	for rows.Next() {
		var exercise entities.Exercise
		err := rows.Scan(
			&exercise.ID,
			&exercise.UserID,
			&exercise.Type,
			&exercise.Duration,
			&exercise.CaloriesBurned,
			&exercise.Date,
			&exercise.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, &exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}

	return exercises, nil
}
