package service

import (
	"context"

	"healthtrack-be/internal/entities"
	"healthtrack-be/internal/models"
	"healthtrack-be/internal/repository"
)

// MusicService defines the interface for playlist and track business logic
type MusicService interface {
	CreatePlaylist(ctx context.Context, userID int64, req *models.CreatePlaylistRequest) (*entities.Playlist, error)
	ListPlaylists(ctx context.Context, userID int64) ([]*entities.Playlist, error)
	AddTrack(ctx context.Context, userID int64, req *models.CreateTrackRequest) (*entities.Track, error)
	ListTracks(ctx context.Context, userID, playlistID int64) ([]*entities.Track, error)
}

type musicService struct {
	musicRepo repository.MusicRepository
}

// NewMusicService creates a new music service
func NewMusicService(musicRepo repository.MusicRepository) MusicService {
	return &musicService{musicRepo: musicRepo}
}

// CreatePlaylist creates a playlist owned by the given user
func (s *musicService) CreatePlaylist(ctx context.Context, userID int64, req *models.CreatePlaylistRequest) (*entities.Playlist, error) {
	return s.musicRepo.CreatePlaylist(ctx, userID, req.Name)
}

// ListPlaylists returns all playlists owned by the given user
func (s *musicService) ListPlaylists(ctx context.Context, userID int64) ([]*entities.Playlist, error) {
	playlists, err := s.musicRepo.GetPlaylistsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(playlists), nil
}

// AddTrack adds a track to one of the user's playlists. Attempts against a
// playlist the user does not own fail with ErrNotFound.
func (s *musicService) AddTrack(ctx context.Context, userID int64, req *models.CreateTrackRequest) (*entities.Track, error) {
	return s.musicRepo.CreateTrack(ctx, userID, req.PlaylistID, req.Title, req.Artist, req.Duration, req.FilePath)
}

// ListTracks returns the tracks of a playlist owned by the given user
func (s *musicService) ListTracks(ctx context.Context, userID, playlistID int64) ([]*entities.Track, error) {
	tracks, err := s.musicRepo.GetTracksByPlaylist(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(tracks), nil
}
