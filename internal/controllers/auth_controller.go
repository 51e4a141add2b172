package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack-be/internal/apperrors"
	"healthtrack-be/internal/models"
	"healthtrack-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{
				"error": apperrors.ErrDuplicateEmail.Error(),
			})
			return
		}
		log.Printf("Error registering user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error registering user",
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		// Unknown email and wrong password share one response shape
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": apperrors.ErrInvalidCredentials.Error(),
			})
			return
		}
		log.Printf("Error logging in: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error logging in",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
