package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack-be/internal/entities"
)

// Fakes below record which user each query was scoped to and count database
// round trips so cache behavior is observable.

type fakeExerciseRepo struct {
	byUser map[int64][]*entities.Exercise
	calls  int
}

func (r *fakeExerciseRepo) Create(_ context.Context, userID int64, exerciseType string, duration, caloriesBurned int, date time.Time) (*entities.Exercise, error) {
	exercise := &entities.Exercise{
		ID:             int64(len(r.byUser[userID]) + 1),
		UserID:         userID,
		Type:           exerciseType,
		Duration:       duration,
		CaloriesBurned: caloriesBurned,
		Date:           date,
	}
	r.byUser[userID] = append(r.byUser[userID], exercise)
	return exercise, nil
}

func (r *fakeExerciseRepo) GetByUserID(_ context.Context, userID int64) ([]*entities.Exercise, error) {
	return r.byUser[userID], nil
}

func (r *fakeExerciseRepo) SearchByType(_ context.Context, userID int64, query string) ([]*entities.Exercise, error) {
	r.calls++
	var matches []*entities.Exercise
	for _, e := range r.byUser[userID] {
		if containsFold(e.Type, query) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

type fakeNutritionRepo struct {
	byUser map[int64][]*entities.Nutrition
}

func (r *fakeNutritionRepo) Create(_ context.Context, userID int64, foodItem string, caloriesGained int, date time.Time) (*entities.Nutrition, error) {
	entry := &entities.Nutrition{
		ID:             int64(len(r.byUser[userID]) + 1),
		UserID:         userID,
		FoodItem:       foodItem,
		CaloriesGained: caloriesGained,
		Date:           date,
	}
	r.byUser[userID] = append(r.byUser[userID], entry)
	return entry, nil
}

func (r *fakeNutritionRepo) GetByUserID(_ context.Context, userID int64) ([]*entities.Nutrition, error) {
	return r.byUser[userID], nil
}

func (r *fakeNutritionRepo) SearchByFoodItem(_ context.Context, userID int64, query string) ([]*entities.Nutrition, error) {
	var matches []*entities.Nutrition
	for _, n := range r.byUser[userID] {
		if containsFold(n.FoodItem, query) {
			matches = append(matches, n)
		}
	}
	return matches, nil
}

type fakeSleepRepo struct {
	byUser map[int64][]*entities.Sleep
}

func (r *fakeSleepRepo) Create(_ context.Context, userID int64, duration float64, quality string, date time.Time) (*entities.Sleep, error) {
	entry := &entities.Sleep{
		ID:       int64(len(r.byUser[userID]) + 1),
		UserID:   userID,
		Duration: duration,
		Quality:  quality,
		Date:     date,
	}
	r.byUser[userID] = append(r.byUser[userID], entry)
	return entry, nil
}

func (r *fakeSleepRepo) GetByUserID(_ context.Context, userID int64) ([]*entities.Sleep, error) {
	return r.byUser[userID], nil
}

func (r *fakeSleepRepo) SearchByQuality(_ context.Context, userID int64, query string) ([]*entities.Sleep, error) {
	var matches []*entities.Sleep
	for _, s := range r.byUser[userID] {
		if containsFold(s.Quality, query) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

type fakeMusicRepo struct {
	playlists map[int64][]*entities.Playlist
	tracks    map[int64][]*entities.Track // keyed by playlist id
}

func (r *fakeMusicRepo) CreatePlaylist(_ context.Context, userID int64, name string) (*entities.Playlist, error) {
	playlist := &entities.Playlist{
		ID:     int64(len(r.playlists[userID]) + 1),
		UserID: userID,
		Name:   name,
	}
	r.playlists[userID] = append(r.playlists[userID], playlist)
	return playlist, nil
}

func (r *fakeMusicRepo) GetPlaylistsByUserID(_ context.Context, userID int64) ([]*entities.Playlist, error) {
	return r.playlists[userID], nil
}

func (r *fakeMusicRepo) CreateTrack(_ context.Context, _, playlistID int64, title, artist string, duration int, filePath string) (*entities.Track, error) {
	track := &entities.Track{
		ID:         int64(len(r.tracks[playlistID]) + 1),
		PlaylistID: playlistID,
		Title:      title,
		Artist:     artist,
		Duration:   duration,
		FilePath:   filePath,
	}
	r.tracks[playlistID] = append(r.tracks[playlistID], track)
	return track, nil
}

func (r *fakeMusicRepo) GetTracksByPlaylist(_ context.Context, userID, playlistID int64) ([]*entities.Track, error) {
	for _, p := range r.playlists[userID] {
		if p.ID == playlistID {
			return r.tracks[playlistID], nil
		}
	}
	return nil, nil
}

func (r *fakeMusicRepo) SearchPlaylistsByName(_ context.Context, userID int64, query string) ([]*entities.Playlist, error) {
	var matches []*entities.Playlist
	for _, p := range r.playlists[userID] {
		if containsFold(p.Name, query) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (r *fakeMusicRepo) SearchTracks(_ context.Context, userID int64, query string) ([]*entities.Track, error) {
	var matches []*entities.Track
	for _, p := range r.playlists[userID] {
		for _, t := range r.tracks[p.ID] {
			if containsFold(t.Title, query) || containsFold(t.Artist, query) {
				matches = append(matches, t)
			}
		}
	}
	return matches, nil
}

// fakeCache is an in-memory Cache with no expiry
type fakeCache struct {
	data map[string][]byte
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = data
	return nil
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	data, ok := c.data[key]
	if !ok {
		return assert.AnError
	}
	return json.Unmarshal(data, dest)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func newSearchFixture() (*fakeExerciseRepo, *fakeNutritionRepo, *fakeSleepRepo, *fakeMusicRepo) {
	exerciseRepo := &fakeExerciseRepo{byUser: make(map[int64][]*entities.Exercise)}
	nutritionRepo := &fakeNutritionRepo{byUser: make(map[int64][]*entities.Nutrition)}
	sleepRepo := &fakeSleepRepo{byUser: make(map[int64][]*entities.Sleep)}
	musicRepo := &fakeMusicRepo{playlists: make(map[int64][]*entities.Playlist), tracks: make(map[int64][]*entities.Track)}
	return exerciseRepo, nutritionRepo, sleepRepo, musicRepo
}

func TestSearch_FansOutAcrossResources(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	exerciseRepo, nutritionRepo, sleepRepo, musicRepo := newSearchFixture()

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := exerciseRepo.Create(ctx, 1, "morning run", 30, 250, date)
	require.NoError(t, err)
	_, err = nutritionRepo.Create(ctx, 1, "protein shake", 220, date)
	require.NoError(t, err)
	_, err = sleepRepo.Create(ctx, 1, 7.5, "deep and restful", date)
	require.NoError(t, err)
	playlist, err := musicRepo.CreatePlaylist(ctx, 1, "Running Mix")
	require.NoError(t, err)
	_, err = musicRepo.CreateTrack(ctx, 1, playlist.ID, "Run Boy Run", "Woodkid", 212, "/music/run-boy-run.mp3")
	require.NoError(t, err)

	svc := NewSearchService(exerciseRepo, nutritionRepo, sleepRepo, musicRepo, nil)

	result, err := svc.Search(ctx, 1, "run")
	require.NoError(t, err)

	assert.Len(t, result.Exercises, 1)
	assert.Len(t, result.Playlists, 1)
	assert.Len(t, result.Tracks, 1)
	assert.Empty(t, result.Nutrition)
	assert.Empty(t, result.Sleep)
	// Empty sections are [] not null
	assert.NotNil(t, result.Nutrition)
	assert.NotNil(t, result.Sleep)
}

func TestSearch_ScopedToUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	exerciseRepo, nutritionRepo, sleepRepo, musicRepo := newSearchFixture()

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := exerciseRepo.Create(ctx, 1, "yoga", 45, 120, date)
	require.NoError(t, err)

	svc := NewSearchService(exerciseRepo, nutritionRepo, sleepRepo, musicRepo, nil)

	// User 2 searching user 1's data finds nothing
	result, err := svc.Search(ctx, 2, "yoga")
	require.NoError(t, err)
	assert.Empty(t, result.Exercises)
}

func TestSearch_CacheShortCircuitsRepos(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	exerciseRepo, nutritionRepo, sleepRepo, musicRepo := newSearchFixture()

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := exerciseRepo.Create(ctx, 1, "swimming", 60, 400, date)
	require.NoError(t, err)

	cacheClient := &fakeCache{data: make(map[string][]byte)}
	svc := NewSearchService(exerciseRepo, nutritionRepo, sleepRepo, musicRepo, cacheClient)

	first, err := svc.Search(ctx, 1, "swim")
	require.NoError(t, err)
	require.Len(t, first.Exercises, 1)
	assert.Equal(t, 1, exerciseRepo.calls)

	second, err := svc.Search(ctx, 1, "swim")
	require.NoError(t, err)
	assert.Len(t, second.Exercises, 1)
	// Served from cache; no second repo round trip
	assert.Equal(t, 1, exerciseRepo.calls)
}
