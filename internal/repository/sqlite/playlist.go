package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/nightset/nightset/pkg/models"
)

const playlistColumns = `id, dj_name, event_id, song_list, created_at`

// song_list persists as a JSON array in a text column.

func scanPlaylist(row interface{ Scan(...any) error }) (*models.Playlist, error) {
	var p models.Playlist
	var id, eventID int64
	var songList string
	if err := row.Scan(&id, &p.DJName, &eventID, &songList, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.ID = uint64(id)
	p.EventID = uint64(eventID)
	if err := json.Unmarshal([]byte(songList), &p.SongList); err != nil {
		return nil, fmt.Errorf("decode song list: %w", err)
	}

	return &p, nil
}

func (r *SQLiteRepo) GetPlaylist(ctx context.Context, id uint64) (*models.Playlist, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+playlistColumns+` FROM playlists WHERE id = ?`, int64(id))
	p, err := scanPlaylist(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return p, nil
}

func (r *SQLiteRepo) ContainsPlaylist(ctx context.Context, id uint64) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM playlists WHERE id = ?`, int64(id))
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SQLiteRepo) InsertPlaylist(ctx context.Context, p *models.Playlist) error {
	if p == nil {
		return fmt.Errorf("playlist is nil")
	}

	songList, err := json.Marshal(p.SongList)
	if err != nil {
		return fmt.Errorf("encode song list: %w", err)
	}

	_, err = r.conn.Exec(ctx,
		`INSERT OR REPLACE INTO playlists (`+playlistColumns+`) VALUES (?, ?, ?, ?, ?)`,
		int64(p.ID), p.DJName, int64(p.EventID), string(songList), p.CreatedAt)
	return err
}

func (r *SQLiteRepo) RemovePlaylist(ctx context.Context, id uint64) (*models.Playlist, error) {
	p, err := r.GetPlaylist(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}

	if _, err := r.conn.Exec(ctx, `DELETE FROM playlists WHERE id = ?`, int64(id)); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *SQLiteRepo) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return r.listPlaylists(ctx, `SELECT `+playlistColumns+` FROM playlists ORDER BY id`)
}

func (r *SQLiteRepo) ListPlaylistsByDJName(ctx context.Context, djName string) ([]models.Playlist, error) {
	return r.listPlaylists(ctx, `SELECT `+playlistColumns+` FROM playlists WHERE dj_name = ? ORDER BY id`, djName)
}

func (r *SQLiteRepo) ListPlaylistsByEventID(ctx context.Context, eventID uint64) ([]models.Playlist, error) {
	return r.listPlaylists(ctx, `SELECT `+playlistColumns+` FROM playlists WHERE event_id = ? ORDER BY id`, int64(eventID))
}

func (r *SQLiteRepo) listPlaylists(ctx context.Context, query string, args ...any) ([]models.Playlist, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := make([]models.Playlist, 0)
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, *p)
	}

	return playlists, rows.Err()
}
