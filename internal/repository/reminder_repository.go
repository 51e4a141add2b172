package repository

import (
	"context"
	"database/sql"
	"fmt"

	"healthtrack-be/internal/entities"
)

// ReminderRepository defines the interface for capsule reminder database operations
type ReminderRepository interface {
	Create(ctx context.Context, userID int64, name, reminderTime string) (*entities.CapsuleReminder, error)
	GetByUserID(ctx context.Context, userID int64) ([]*entities.CapsuleReminder, error)
}

type reminderRepository struct {
	db *sql.DB
}

// NewReminderRepository creates a new capsule reminder repository
func NewReminderRepository(db *sql.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

// Create inserts a new capsule reminder for the given user
func (r *reminderRepository) Create(ctx context.Context, userID int64, name, reminderTime string) (*entities.CapsuleReminder, error) {
	query := `
		INSERT INTO capsule_reminders (user_id, name, time)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, time, created_at
	`

	var reminder entities.CapsuleReminder
	err := r.db.QueryRowContext(ctx, query, userID, name, reminderTime).Scan(
		&reminder.ID,
		&reminder.UserID,
		&reminder.Name,
		&reminder.Time,
		&reminder.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create capsule reminder: %w", err)
	}

	return &reminder, nil
}

// GetByUserID retrieves all capsule reminders for a specific user
func (r *reminderRepository) GetByUserID(ctx context.Context, userID int64) ([]*entities.CapsuleReminder, error) {
	query := `
		SELECT id, user_id, name, time, created_at
		FROM capsule_reminders
		WHERE user_id = $1
		ORDER BY time ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get capsule reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entities.CapsuleReminder
	for rows.Next() {
		var reminder entities.CapsuleReminder
		err := rows.Scan(
			&reminder.ID,
			&reminder.UserID,
			&reminder.Name,
			&reminder.Time,
			&reminder.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan capsule reminder: %w", err)
		}
		reminders = append(reminders, &reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating capsule reminders: %w", err)
	}

	return reminders, nil
}
