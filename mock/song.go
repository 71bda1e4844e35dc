package mock

import (
	"context"

	"github.com/fwojciec/kashi"
)

var _ kashi.SongService = (*SongService)(nil)

// SongService is a mock implementation of kashi.SongService.
type SongService struct {
	CreateSongFn   func(ctx context.Context, song *kashi.Song) error
	FindSongByIDFn func(ctx context.Context, id string) (*kashi.Song, error)
	FindSongsFn    func(ctx context.Context, filter kashi.SongFilter) ([]*kashi.Song, error)
	DeleteSongFn   func(ctx context.Context, id string) error
}

func (s *SongService) CreateSong(ctx context.Context, song *kashi.Song) error {
	return s.CreateSongFn(ctx, song)
}

func (s *SongService) FindSongByID(ctx context.Context, id string) (*kashi.Song, error) {
	return s.FindSongByIDFn(ctx, id)
}

func (s *SongService) FindSongs(ctx context.Context, filter kashi.SongFilter) ([]*kashi.Song, error) {
	return s.FindSongsFn(ctx, filter)
}

func (s *SongService) DeleteSong(ctx context.Context, id string) error {
	return s.DeleteSongFn(ctx, id)
}
