package service

import (
	"context"
	"fmt"
	"time"

	"healthtrack-be/internal/entities"
	"healthtrack-be/internal/models"
	"healthtrack-be/internal/repository"
)

const dateLayout = "2006-01-02"

// TrackerService defines the interface for the personal tracking resources
// (exercise, nutrition, sleep, capsule reminders). Every method takes the
// authenticated user's ID and only ever touches that user's rows.
type TrackerService interface {
	AddExercise(ctx context.Context, userID int64, req *models.CreateExerciseRequest) (*entities.Exercise, error)
	ListExercises(ctx context.Context, userID int64) ([]*entities.Exercise, error)
	AddNutrition(ctx context.Context, userID int64, req *models.CreateNutritionRequest) (*entities.Nutrition, error)
	ListNutrition(ctx context.Context, userID int64) ([]*entities.Nutrition, error)
	AddSleep(ctx context.Context, userID int64, req *models.CreateSleepRequest) (*entities.Sleep, error)
	ListSleep(ctx context.Context, userID int64) ([]*entities.Sleep, error)
	AddReminder(ctx context.Context, userID int64, req *models.CreateReminderRequest) (*entities.CapsuleReminder, error)
	ListReminders(ctx context.Context, userID int64) ([]*entities.CapsuleReminder, error)
}

type trackerService struct {
	exerciseRepo  repository.ExerciseRepository
	nutritionRepo repository.NutritionRepository
	sleepRepo     repository.SleepRepository
	reminderRepo  repository.ReminderRepository
}

// NewTrackerService creates a new tracker service
func NewTrackerService(
	exerciseRepo repository.ExerciseRepository,
	nutritionRepo repository.NutritionRepository,
	sleepRepo repository.SleepRepository,
	reminderRepo repository.ReminderRepository,
) TrackerService {
	return &trackerService{
		exerciseRepo:  exerciseRepo,
		nutritionRepo: nutritionRepo,
		sleepRepo:     sleepRepo,
		reminderRepo:  reminderRepo,
	}
}

// parseDate converts a validated "YYYY-MM-DD" string into a time.Time.
// Format errors are caught by request binding, so a failure here means the
// binding tag and this layout have drifted apart.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

// AddExercise logs a workout entry for the given user
func (s *trackerService) AddExercise(ctx context.Context, userID int64, req *models.CreateExerciseRequest) (*entities.Exercise, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return s.exerciseRepo.Create(ctx, userID, req.Type, req.Duration, req.CaloriesBurned, date)
}

// ListExercises returns all workout entries for the given user
func (s *trackerService) ListExercises(ctx context.Context, userID int64) ([]*entities.Exercise, error) {
	exercises, err := s.exerciseRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(exercises), nil
}

// AddNutrition logs a food intake entry for the given user
func (s *trackerService) AddNutrition(ctx context.Context, userID int64, req *models.CreateNutritionRequest) (*entities.Nutrition, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return s.nutritionRepo.Create(ctx, userID, req.FoodItem, req.CaloriesGained, date)
}

// ListNutrition returns all food intake entries for the given user
func (s *trackerService) ListNutrition(ctx context.Context, userID int64) ([]*entities.Nutrition, error) {
	entries, err := s.nutritionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(entries), nil
}

// AddSleep logs a sleep entry for the given user
func (s *trackerService) AddSleep(ctx context.Context, userID int64, req *models.CreateSleepRequest) (*entities.Sleep, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return s.sleepRepo.Create(ctx, userID, req.Duration, req.Quality, date)
}

// ListSleep returns all sleep entries for the given user
func (s *trackerService) ListSleep(ctx context.Context, userID int64) ([]*entities.Sleep, error) {
	entries, err := s.sleepRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(entries), nil
}

// AddReminder creates a capsule reminder for the given user
func (s *trackerService) AddReminder(ctx context.Context, userID int64, req *models.CreateReminderRequest) (*entities.CapsuleReminder, error) {
	return s.reminderRepo.Create(ctx, userID, req.Name, req.Time)
}

// ListReminders returns all capsule reminders for the given user
func (s *trackerService) ListReminders(ctx context.Context, userID int64) ([]*entities.CapsuleReminder, error) {
	reminders, err := s.reminderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(reminders), nil
}
