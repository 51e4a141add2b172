package service

import (
	"context"
	"fmt"
	"time"

	"healthtrack-be/internal/cache"
	"healthtrack-be/internal/models"
	"healthtrack-be/internal/repository"
)

// searchCacheTTL bounds how stale a cached search result may be
const searchCacheTTL = 30 * time.Second

// SearchService fans a text query out across every searchable resource type,
// always scoped to the requesting user.
type SearchService interface {
	Search(ctx context.Context, userID int64, query string) (*models.SearchResponse, error)
}

type searchService struct {
	exerciseRepo  repository.ExerciseRepository
	nutritionRepo repository.NutritionRepository
	sleepRepo     repository.SleepRepository
	musicRepo     repository.MusicRepository
	cache         cache.Cache
}

// NewSearchService creates a new search service. cacheClient may be nil, in
// which case every search hits the database.
func NewSearchService(
	exerciseRepo repository.ExerciseRepository,
	nutritionRepo repository.NutritionRepository,
	sleepRepo repository.SleepRepository,
	musicRepo repository.MusicRepository,
	cacheClient cache.Cache,
) SearchService {
	return &searchService{
		exerciseRepo:  exerciseRepo,
		nutritionRepo: nutritionRepo,
		sleepRepo:     sleepRepo,
		musicRepo:     musicRepo,
		cache:         cacheClient,
	}
}

// Search queries exercises by type, nutrition by food item, sleep by quality,
// playlists by name and tracks by title or artist. Results are cached per
// user and query for a short window.
func (s *searchService) Search(ctx context.Context, userID int64, query string) (*models.SearchResponse, error) {
	cacheKey := fmt.Sprintf("search:%d:%s", userID, query)

	if s.cache != nil {
		var cached models.SearchResponse
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	exercises, err := s.exerciseRepo.SearchByType(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	nutrition, err := s.nutritionRepo.SearchByFoodItem(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	sleep, err := s.sleepRepo.SearchByQuality(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	playlists, err := s.musicRepo.SearchPlaylistsByName(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	tracks, err := s.musicRepo.SearchTracks(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	result := &models.SearchResponse{
		Exercises: emptyIfNil(exercises),
		Nutrition: emptyIfNil(nutrition),
		Sleep:     emptyIfNil(sleep),
		Playlists: emptyIfNil(playlists),
		Tracks:    emptyIfNil(tracks),
	}

	if s.cache != nil {
		// Best effort; a cache write failure never fails the search
		_ = s.cache.SetJSON(ctx, cacheKey, result, searchCacheTTL)
	}

	return result, nil
}

func emptyIfNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
