package entities

import "time"

// Playlist represents a user-owned music playlist
type Playlist struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Track represents a track inside a playlist. Tracks carry no user_id of
// their own; ownership is derived from the parent playlist.
type Track struct {
	ID         int64     `json:"id"`
	PlaylistID int64     `json:"playlist_id"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	Duration   int       `json:"duration"` // seconds
	FilePath   string    `json:"file_path"`
	CreatedAt  time.Time `json:"created_at"`
}
