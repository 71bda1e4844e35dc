package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/kashi"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ kashi.SongService = (*SongService)(nil)

// SongService implements kashi.SongService using SQLite.
type SongService struct {
	db *DB
}

// NewSongService creates a new SongService.
func NewSongService(db *DB) *SongService {
	return &SongService{db: db}
}

const songColumns = "id, title, source_url, lyrics, romaji, content_hash, fetched_at"

// CreateSong stores a new song, assigning its ID, content hash and fetch
// time. Returns ECONFLICT if a song with the same title (ignoring case)
// is already cached.
func (s *SongService) CreateSong(ctx context.Context, song *kashi.Song) error {
	if err := song.Validate(); err != nil {
		return err
	}

	song.Title = strings.TrimSpace(song.Title)
	song.ID = uuid.New().String()
	song.FetchedAt = time.Now().UTC().Truncate(time.Second)
	song.ContentHash = hashContent(song.Lyrics)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO songs (`+songColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, song.ID, song.Title, song.SourceURL, song.Lyrics, song.Romaji, song.ContentHash,
		song.FetchedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return kashi.Errorf(kashi.ECONFLICT, "song %q already cached", song.Title)
	}
	return err
}

// FindSongByID retrieves a song by ID.
func (s *SongService) FindSongByID(ctx context.Context, id string) (*kashi.Song, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+songColumns+" FROM songs WHERE id = ?", id)

	song, err := scanSong(row)
	if err == sql.ErrNoRows {
		return nil, kashi.Errorf(kashi.ENOTFOUND, "song not found")
	}
	if err != nil {
		return nil, err
	}
	return song, nil
}

// FindSongs retrieves songs matching the filter, most recently fetched first.
func (s *SongService) FindSongs(ctx context.Context, filter kashi.SongFilter) ([]*kashi.Song, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + songColumns + " FROM songs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, strings.TrimSpace(*filter.Title))
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []*kashi.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	return songs, rows.Err()
}

// DeleteSong permanently removes a song.
func (s *SongService) DeleteSong(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM songs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return kashi.Errorf(kashi.ENOTFOUND, "song not found")
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSong(row scanner) (*kashi.Song, error) {
	var song kashi.Song
	var fetchedAt string

	if err := row.Scan(&song.ID, &song.Title, &song.SourceURL, &song.Lyrics, &song.Romaji,
		&song.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	song.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var serr *sqlite3.Error
	return errors.As(err, &serr) && serr.ExtendedCode() == sqlite3.CONSTRAINT_UNIQUE
}
