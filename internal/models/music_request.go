package models

// CreatePlaylistRequest represents the request body for creating a playlist
type CreatePlaylistRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTrackRequest represents the request body for adding a track to a playlist
type CreateTrackRequest struct {
	PlaylistID int64  `json:"playlist_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Artist     string `json:"artist" binding:"required"`
	Duration   int    `json:"duration" binding:"required,gt=0"` // seconds
	FilePath   string `json:"file_path" binding:"required"`
}
