package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"healthtrack-be/internal/apperrors"
	"healthtrack-be/internal/entities"
)

// MusicRepository defines the interface for playlist and track database
// operations. Tracks have no user_id column; every track query goes through
// the owning playlist so ownership is enforced by the join.
type MusicRepository interface {
	CreatePlaylist(ctx context.Context, userID int64, name string) (*entities.Playlist, error)
	GetPlaylistsByUserID(ctx context.Context, userID int64) ([]*entities.Playlist, error)
	CreateTrack(ctx context.Context, userID, playlistID int64, title, artist string, duration int, filePath string) (*entities.Track, error)
	GetTracksByPlaylist(ctx context.Context, userID, playlistID int64) ([]*entities.Track, error)
	SearchPlaylistsByName(ctx context.Context, userID int64, query string) ([]*entities.Playlist, error)
	SearchTracks(ctx context.Context, userID int64, query string) ([]*entities.Track, error)
}

type musicRepository struct {
	db *sql.DB
}

// NewMusicRepository creates a new music repository
func NewMusicRepository(db *sql.DB) MusicRepository {
	return &musicRepository{db: db}
}

// CreatePlaylist inserts a new playlist for the given user
func (r *musicRepository) CreatePlaylist(ctx context.Context, userID int64, name string) (*entities.Playlist, error) {
	query := `
		INSERT INTO playlists (user_id, name)
		VALUES ($1, $2)
		RETURNING id, user_id, name, created_at
	`

	var playlist entities.Playlist
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(
		&playlist.ID,
		&playlist.UserID,
		&playlist.Name,
		&playlist.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	return &playlist, nil
}

// GetPlaylistsByUserID retrieves all playlists for a specific user
func (r *musicRepository) GetPlaylistsByUserID(ctx context.Context, userID int64) ([]*entities.Playlist, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM playlists
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlists: %w", err)
	}
	defer rows.Close()

	return scanPlaylists(rows)
}

// CreateTrack inserts a track into a playlist. The insert only happens when
// the playlist belongs to the given user; otherwise ErrNotFound is returned,
// so a missing playlist and a foreign one are indistinguishable.
func (r *musicRepository) CreateTrack(ctx context.Context, userID, playlistID int64, title, artist string, duration int, filePath string) (*entities.Track, error) {
	query := `
		INSERT INTO tracks (playlist_id, title, artist, duration, file_path)
		SELECT $1, $3, $4, $5, $6
		WHERE EXISTS (SELECT 1 FROM playlists WHERE id = $1 AND user_id = $2)
		RETURNING id, playlist_id, title, artist, duration, file_path, created_at
	`

	var track entities.Track
	err := r.db.QueryRowContext(ctx, query, playlistID, userID, title, artist, duration, filePath).Scan(
		&track.ID,
		&track.PlaylistID,
		&track.Title,
		&track.Artist,
		&track.Duration,
		&track.FilePath,
		&track.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create track: %w", err)
	}

	return &track, nil
}

// GetTracksByPlaylist retrieves all tracks in a playlist owned by the given user
func (r *musicRepository) GetTracksByPlaylist(ctx context.Context, userID, playlistID int64) ([]*entities.Track, error) {
	query := `
		SELECT t.id, t.playlist_id, t.title, t.artist, t.duration, t.file_path, t.created_at
		FROM tracks t
		JOIN playlists p ON t.playlist_id = p.id
		WHERE p.id = $1 AND p.user_id = $2
		ORDER BY t.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, playlistID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracks: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

// SearchPlaylistsByName retrieves the user's playlists whose name matches the query
func (r *musicRepository) SearchPlaylistsByName(ctx context.Context, userID int64, query string) ([]*entities.Playlist, error) {
	stmt := `
		SELECT id, user_id, name, created_at
		FROM playlists
		WHERE user_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, stmt, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search playlists: %w", err)
	}
	defer rows.Close()

	return scanPlaylists(rows)
}

// SearchTracks retrieves tracks across the user's playlists whose title or
// artist matches the query
func (r *musicRepository) SearchTracks(ctx context.Context, userID int64, query string) ([]*entities.Track, error) {
	stmt := `
		SELECT t.id, t.playlist_id, t.title, t.artist, t.duration, t.file_path, t.created_at
		FROM tracks t
		JOIN playlists p ON t.playlist_id = p.id
		WHERE p.user_id = $1 AND (t.title ILIKE '%' || $2 || '%' OR t.artist ILIKE '%' || $2 || '%')
		ORDER BY t.id ASC
	`

	rows, err := r.db.QueryContext(ctx, stmt, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search tracks: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

func scanPlaylists(rows *sql.Rows) ([]*entities.Playlist, error) {
	var playlists []*entities.Playlist
	for rows.Next() {
		var playlist entities.Playlist
		err := rows.Scan(
			&playlist.ID,
			&playlist.UserID,
			&playlist.Name,
			&playlist.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, &playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating playlists: %w", err)
	}

	return playlists, nil
}

func scanTracks(rows *sql.Rows) ([]*entities.Track, error) {
	var tracks []*entities.Track
	for rows.Next() {
		var track entities.Track
		err := rows.Scan(
			&track.ID,
			&track.PlaylistID,
			&track.Title,
			&track.Artist,
			&track.Duration,
			&track.FilePath,
			&track.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		tracks = append(tracks, &track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracks: %w", err)
	}

	return tracks, nil
}
