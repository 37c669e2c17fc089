package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nightset/nightset/pkg/models"
)

const songRequestColumns = `id, user_id, song_name, status, created_at`

func scanSongRequest(row interface{ Scan(...any) error }) (*models.SongRequest, error) {
	var sr models.SongRequest
	var id, userID int64
	if err := row.Scan(&id, &userID, &sr.SongName, &sr.Status, &sr.CreatedAt); err != nil {
		return nil, err
	}
	sr.ID = uint64(id)
	sr.UserID = uint64(userID)

	return &sr, nil
}

func (r *SQLiteRepo) GetSongRequest(ctx context.Context, id uint64) (*models.SongRequest, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+songRequestColumns+` FROM song_requests WHERE id = ?`, int64(id))
	sr, err := scanSongRequest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return sr, nil
}

func (r *SQLiteRepo) ContainsSongRequest(ctx context.Context, id uint64) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM song_requests WHERE id = ?`, int64(id))
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SQLiteRepo) InsertSongRequest(ctx context.Context, sr *models.SongRequest) error {
	if sr == nil {
		return fmt.Errorf("song request is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT OR REPLACE INTO song_requests (`+songRequestColumns+`) VALUES (?, ?, ?, ?, ?)`,
		int64(sr.ID), int64(sr.UserID), sr.SongName, sr.Status, sr.CreatedAt)
	return err
}

func (r *SQLiteRepo) RemoveSongRequest(ctx context.Context, id uint64) (*models.SongRequest, error) {
	sr, err := r.GetSongRequest(ctx, id)
	if err != nil || sr == nil {
		return nil, err
	}

	if _, err := r.conn.Exec(ctx, `DELETE FROM song_requests WHERE id = ?`, int64(id)); err != nil {
		return nil, err
	}

	return sr, nil
}

func (r *SQLiteRepo) ListSongRequests(ctx context.Context) ([]models.SongRequest, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+songRequestColumns+` FROM song_requests ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.SongRequest, 0)
	for rows.Next() {
		sr, err := scanSongRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *sr)
	}

	return requests, rows.Err()
}

func (r *SQLiteRepo) SetSongRequestStatus(ctx context.Context, id uint64, status models.RequestStatus) (bool, error) {
	res, err := r.conn.Exec(ctx, `UPDATE song_requests SET status = ? WHERE id = ?`, status, int64(id))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
