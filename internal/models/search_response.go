package models

import "healthtrack-be/internal/entities"

// SearchResponse aggregates matches from every searchable resource type.
// Slices are always non-nil so empty sections serialize as [] rather than null.
type SearchResponse struct {
	Exercises []*entities.Exercise  `json:"exercises"`
	Nutrition []*entities.Nutrition `json:"nutrition"`
	Sleep     []*entities.Sleep     `json:"sleep"`
	Playlists []*entities.Playlist  `json:"playlists"`
	Tracks    []*entities.Track     `json:"tracks"`
}
