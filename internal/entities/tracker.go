package entities

import "time"

// Exercise represents a logged workout entry
type Exercise struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Type           string    `json:"type"`
	Duration       int       `json:"duration"` // minutes
	CaloriesBurned int       `json:"calories_burned"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// Nutrition represents a logged food intake entry
type Nutrition struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	FoodItem       string    `json:"food_item"`
	CaloriesGained int       `json:"calories_gained"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// Sleep represents a logged sleep entry
type Sleep struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Duration  float64   `json:"duration"` // hours
	Quality   string    `json:"quality"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// CapsuleReminder represents a daily medication reminder
type CapsuleReminder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Time      string    `json:"time"` // HH:MM, 24-hour
	CreatedAt time.Time `json:"created_at"`
}
