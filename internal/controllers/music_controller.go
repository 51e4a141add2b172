package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"healthtrack-be/internal/apperrors"
	"healthtrack-be/internal/models"
	"healthtrack-be/internal/service"
)

type MusicController struct {
	musicService service.MusicService
}

func NewMusicController(musicService service.MusicService) *MusicController {
	return &MusicController{
		musicService: musicService,
	}
}

// CreatePlaylist handles POST /playlists
func (mc *MusicController) CreatePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	playlist, err := mc.musicService.CreatePlaylist(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error creating playlist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating playlist"})
		return
	}

	c.JSON(http.StatusCreated, models.CreateResponse{ID: playlist.ID})
}

// GetPlaylists handles GET /playlists
func (mc *MusicController) GetPlaylists(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	playlists, err := mc.musicService.ListPlaylists(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching playlists: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching playlists"})
		return
	}

	c.JSON(http.StatusOK, playlists)
}

// AddTrack handles POST /tracks
func (mc *MusicController) AddTrack(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	track, err := mc.musicService.AddTrack(c.Request.Context(), userID, &req)
	if err != nil {
		// A playlist that doesn't exist and one owned by someone else
		// get the same answer.
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Playlist not found"})
			return
		}
		log.Printf("Error adding track: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding track"})
		return
	}

	c.JSON(http.StatusCreated, models.CreateResponse{ID: track.ID})
}

// GetTracks handles GET /tracks/:playlistId
func (mc *MusicController) GetTracks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	playlistID, err := strconv.ParseInt(c.Param("playlistId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid playlist id"})
		return
	}

	tracks, err := mc.musicService.ListTracks(c.Request.Context(), userID, playlistID)
	if err != nil {
		log.Printf("Error fetching tracks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching tracks"})
		return
	}

	c.JSON(http.StatusOK, tracks)
}
