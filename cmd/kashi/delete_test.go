package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/kashi"
	main "github.com/fwojciec/kashi/cmd/kashi"
	"github.com/fwojciec/kashi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes song when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		songs := &mock.SongService{
			FindSongsFn: func(_ context.Context, filter kashi.SongFilter) ([]*kashi.Song, error) {
				if filter.Title != nil && *filter.Title == "zankyosanka" {
					return []*kashi.Song{{ID: "song-123", Title: "Zankyosanka"}}, nil
				}
				return nil, nil
			},
			DeleteSongFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Songs:  songs,
		}

		err := (&main.DeleteCmd{Title: "zankyosanka", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "song-123", deletedID)
		assert.Contains(t, stdout.String(), `Deleted song "Zankyosanka"`)
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Songs:  &mock.SongService{},
		}

		err := (&main.DeleteCmd{Title: "zankyosanka"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("returns not found for uncached song", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Songs: &mock.SongService{
				FindSongsFn: func(_ context.Context, _ kashi.SongFilter) ([]*kashi.Song, error) {
					return nil, nil
				},
			},
		}

		err := (&main.DeleteCmd{Title: "unknown", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, kashi.ENOTFOUND, kashi.ErrorCode(err))
		assert.Contains(t, stderr.String(), "kashi list")
	})
}
