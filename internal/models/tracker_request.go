package models

// CreateExerciseRequest represents the request body for logging a workout
type CreateExerciseRequest struct {
	Type           string `json:"type" binding:"required"`
	Duration       int    `json:"duration" binding:"required,gt=0"` // minutes
	CaloriesBurned int    `json:"calories_burned" binding:"gte=0"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
}

// CreateNutritionRequest represents the request body for logging food intake
type CreateNutritionRequest struct {
	FoodItem       string `json:"food_item" binding:"required"`
	CaloriesGained int    `json:"calories_gained" binding:"gte=0"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
}

// CreateSleepRequest represents the request body for logging sleep
type CreateSleepRequest struct {
	Duration float64 `json:"duration" binding:"required,gt=0"` // hours
	Quality  string  `json:"quality" binding:"required"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
}

// CreateReminderRequest represents the request body for a capsule reminder
type CreateReminderRequest struct {
	Name string `json:"name" binding:"required"`
	Time string `json:"time" binding:"required,datetime=15:04"` // HH:MM, 24-hour
}
