package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nightset/nightset/pkg/models"
)

const ratingColumns = `id, user_id, dj_name, rating, review, created_at`

func scanRating(row interface{ Scan(...any) error }) (*models.Rating, error) {
	var rt models.Rating
	var id, userID, score int64
	if err := row.Scan(&id, &userID, &rt.DJName, &score, &rt.Review, &rt.CreatedAt); err != nil {
		return nil, err
	}
	rt.ID = uint64(id)
	rt.UserID = uint64(userID)
	rt.Rating = uint8(score)

	return &rt, nil
}

func (r *SQLiteRepo) GetRating(ctx context.Context, id uint64) (*models.Rating, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE id = ?`, int64(id))
	rt, err := scanRating(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return rt, nil
}

func (r *SQLiteRepo) ContainsRating(ctx context.Context, id uint64) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM ratings WHERE id = ?`, int64(id))
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SQLiteRepo) InsertRating(ctx context.Context, rt *models.Rating) error {
	if rt == nil {
		return fmt.Errorf("rating is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT OR REPLACE INTO ratings (`+ratingColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		int64(rt.ID), int64(rt.UserID), rt.DJName, int64(rt.Rating), rt.Review, rt.CreatedAt)
	return err
}

func (r *SQLiteRepo) RemoveRating(ctx context.Context, id uint64) (*models.Rating, error) {
	rt, err := r.GetRating(ctx, id)
	if err != nil || rt == nil {
		return nil, err
	}

	if _, err := r.conn.Exec(ctx, `DELETE FROM ratings WHERE id = ?`, int64(id)); err != nil {
		return nil, err
	}

	return rt, nil
}

func (r *SQLiteRepo) ListRatings(ctx context.Context) ([]models.Rating, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+ratingColumns+` FROM ratings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		rt, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, *rt)
	}

	return ratings, rows.Err()
}
