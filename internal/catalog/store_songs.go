package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const songColumns = "id, title, artist, original_key, easy_key, body, created_at, updated_at"

// Add inserts song and returns the stored copy with its ID and timestamps.
func (s *Store) Add(ctx context.Context, song Song) (*Song, error) {
	ctx = ensureContext(ctx)
	song.normalize()
	if err := song.validate(); err != nil {
		return nil, err
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO songs (title, artist, original_key, easy_key, body, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		song.Title,
		song.Artist,
		nullableString(song.OriginalKey),
		nullableString(song.EasyKey),
		song.Body,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert song: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.Get(ctx, id)
}

// Get returns the song with id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (*Song, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs WHERE id = ?`, id)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("song %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

// List returns all songs ordered by title, then artist.
func (s *Store) List(ctx context.Context) ([]*Song, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+songColumns+` FROM songs ORDER BY title COLLATE NOCASE, artist COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	var songs []*Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}

// Update replaces every editable field of the song with song.ID.
func (s *Store) Update(ctx context.Context, song Song) (*Song, error) {
	ctx = ensureContext(ctx)
	song.normalize()
	if err := song.validate(); err != nil {
		return nil, err
	}
	res, err := s.execWithRetry(
		ctx,
		`UPDATE songs SET title = ?, artist = ?, original_key = ?, easy_key = ?, body = ?, updated_at = ?
        WHERE id = ?`,
		song.Title,
		song.Artist,
		nullableString(song.OriginalKey),
		nullableString(song.EasyKey),
		song.Body,
		time.Now().UTC().Format(time.RFC3339Nano),
		song.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update song: %w", err)
	}
	if err := requireRow(res, song.ID); err != nil {
		return nil, err
	}
	return s.Get(ctx, song.ID)
}

// Delete removes the song with id, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.execWithRetry(ctx, `DELETE FROM songs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("song %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanSong(scanner interface{ Scan(dest ...any) error }) (*Song, error) {
	var (
		song        Song
		originalKey sql.NullString
		easyKey     sql.NullString
		createdRaw  string
		updatedRaw  string
	)
	if err := scanner.Scan(
		&song.ID,
		&song.Title,
		&song.Artist,
		&originalKey,
		&easyKey,
		&song.Body,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}
	song.OriginalKey = originalKey.String
	song.EasyKey = easyKey.String
	song.CreatedAt = parseTime(createdRaw)
	song.UpdatedAt = parseTime(updatedRaw)
	return &song, nil
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
