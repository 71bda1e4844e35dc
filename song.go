package kashi

import (
	"context"
	"strings"
	"time"
)

// Song represents lyrics found for a title, cached to avoid repeat lookups.
type Song struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	SourceURL   string    `json:"sourceUrl"`
	Lyrics      string    `json:"lyrics"`
	Romaji      string    `json:"romaji"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the song contains invalid fields.
func (s *Song) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return Errorf(EINVALID, "song title required")
	}
	if s.SourceURL == "" {
		return Errorf(EINVALID, "song source URL required")
	}
	if s.Lyrics == "" {
		return Errorf(EINVALID, "song lyrics required")
	}
	return nil
}

// SongService represents a service for managing cached songs.
type SongService interface {
	// CreateSong stores a new song.
	CreateSong(ctx context.Context, song *Song) error

	// FindSongByID retrieves a song by ID.
	// Returns ENOTFOUND if song does not exist.
	FindSongByID(ctx context.Context, id string) (*Song, error)

	// FindSongs retrieves songs matching the filter, newest first.
	FindSongs(ctx context.Context, filter SongFilter) ([]*Song, error)

	// DeleteSong permanently removes a song.
	// Returns ENOTFOUND if song does not exist.
	DeleteSong(ctx context.Context, id string) error
}

// SongFilter represents a filter for FindSongs.
// Title matches case-insensitively.
type SongFilter struct {
	ID        *string `json:"id"`
	Title     *string `json:"title"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
