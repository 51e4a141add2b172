package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"healthtrack-be/internal/entities"
)

// NutritionRepository defines the interface for nutrition database operations
type NutritionRepository interface {
	Create(ctx context.Context, userID int64, foodItem string, caloriesGained int, date time.Time) (*entities.Nutrition, error)
	GetByUserID(ctx context.Context, userID int64) ([]*entities.Nutrition, error)
	SearchByFoodItem(ctx context.Context, userID int64, query string) ([]*entities.Nutrition, error)
}

type nutritionRepository struct {
	db *sql.DB
}

// NewNutritionRepository creates a new nutrition repository
func NewNutritionRepository(db *sql.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

// Create inserts a new nutrition entry for the given user
func (r *nutritionRepository) Create(ctx context.Context, userID int64, foodItem string, caloriesGained int, date time.Time) (*entities.Nutrition, error) {
	query := `
		INSERT INTO nutrition (user_id, food_item, calories_gained, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, food_item, calories_gained, date, created_at
	`

	var entry entities.Nutrition
	err := r.db.QueryRowContext(ctx, query, userID, foodItem, caloriesGained, date).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.FoodItem,
		&entry.CaloriesGained,
		&entry.Date,
		&entry.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition entry: %w", err)
	}

	return &entry, nil
}

// GetByUserID retrieves all nutrition entries for a specific user
func (r *nutritionRepository) GetByUserID(ctx context.Context, userID int64) ([]*entities.Nutrition, error) {
	query := `
		SELECT id, user_id, food_item, calories_gained, date, created_at
		FROM nutrition
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get nutrition entries: %w", err)
	}
	defer rows.Close()

	return scanNutrition(rows)
}

// SearchByFoodItem retrieves the user's nutrition entries whose food item matches the query
func (r *nutritionRepository) SearchByFoodItem(ctx context.Context, userID int64, query string) ([]*entities.Nutrition, error) {
	stmt := `
		SELECT id, user_id, food_item, calories_gained, date, created_at
		FROM nutrition
		WHERE user_id = $1 AND food_item ILIKE '%' || $2 || '%'
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, stmt, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search nutrition entries: %w", err)
	}
	defer rows.Close()

	return scanNutrition(rows)
}

func scanNutrition(rows *sql.Rows) ([]*entities.Nutrition, error) {
	var entries []*entities.Nutrition
	for rows.Next() {
		var entry entities.Nutrition
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.FoodItem,
			&entry.CaloriesGained,
			&entry.Date,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan nutrition entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nutrition entries: %w", err)
	}

	return entries, nil
}
