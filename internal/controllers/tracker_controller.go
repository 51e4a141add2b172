package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack-be/internal/middleware"
	"healthtrack-be/internal/models"
	"healthtrack-be/internal/service"
)

type TrackerController struct {
	trackerService service.TrackerService
}

func NewTrackerController(trackerService service.TrackerService) *TrackerController {
	return &TrackerController{
		trackerService: trackerService,
	}
}

// currentUserID pulls the authenticated user's ID set by the auth gate.
// A missing ID means the route was wired without the gate; reject outright.
func currentUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// AddExercise handles POST /exercise
func (tc *TrackerController) AddExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	exercise, err := tc.trackerService.AddExercise(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error adding exercise: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding exercise"})
		return
	}

	c.JSON(http.StatusCreated, models.CreateResponse{ID: exercise.ID})
}

// GetExercises handles GET /exercise
func (tc *TrackerController) GetExercises(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	exercises, err := tc.trackerService.ListExercises(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching exercises: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching exercises"})
		return
	}

	c.JSON(http.StatusOK, exercises)
}

// AddNutrition handles POST /nutrition
func (tc *TrackerController) AddNutrition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	entry, err := tc.trackerService.AddNutrition(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error adding nutrition data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding nutrition data"})
		return
	}

	c.JSON(http.StatusCreated, models.CreateResponse{ID: entry.ID})
}

// GetNutrition handles GET /nutrition
func (tc *TrackerController) GetNutrition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := tc.trackerService.ListNutrition(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching nutrition data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching nutrition data"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AddSleep handles POST /sleep
func (tc *TrackerController) AddSleep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	entry, err := tc.trackerService.AddSleep(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error adding sleep data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding sleep data"})
		return
	}

	c.JSON(http.StatusCreated, models.CreateResponse{ID: entry.ID})
}

// GetSleep handles GET /sleep
func (tc *TrackerController) GetSleep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := tc.trackerService.ListSleep(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching sleep data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching sleep data"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AddReminder handles POST /capsule-reminders
func (tc *TrackerController) AddReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reminder, err := tc.trackerService.AddReminder(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error adding capsule reminder: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding capsule reminder"})
		return
	}

	c.JSON(http.StatusCreated, models.CreateResponse{ID: reminder.ID})
}

// GetReminders handles GET /capsule-reminders
func (tc *TrackerController) GetReminders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminders, err := tc.trackerService.ListReminders(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching capsule reminders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching capsule reminders"})
		return
	}

	c.JSON(http.StatusOK, reminders)
}
