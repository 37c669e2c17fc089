package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nightset/nightset/pkg/models"
)

const tipColumns = `id, user_id, dj_name, amount, status, created_at`

func scanTip(row interface{ Scan(...any) error }) (*models.Tip, error) {
	var t models.Tip
	var id, userID, amount int64
	if err := row.Scan(&id, &userID, &t.DJName, &amount, &t.Status, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.ID = uint64(id)
	t.UserID = uint64(userID)
	t.Amount = uint64(amount)

	return &t, nil
}

func (r *SQLiteRepo) GetTip(ctx context.Context, id uint64) (*models.Tip, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+tipColumns+` FROM tips WHERE id = ?`, int64(id))
	t, err := scanTip(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return t, nil
}

func (r *SQLiteRepo) ContainsTip(ctx context.Context, id uint64) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM tips WHERE id = ?`, int64(id))
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SQLiteRepo) InsertTip(ctx context.Context, t *models.Tip) error {
	if t == nil {
		return fmt.Errorf("tip is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT OR REPLACE INTO tips (`+tipColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		int64(t.ID), int64(t.UserID), t.DJName, int64(t.Amount), t.Status, t.CreatedAt)
	return err
}

func (r *SQLiteRepo) RemoveTip(ctx context.Context, id uint64) (*models.Tip, error) {
	t, err := r.GetTip(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}

	if _, err := r.conn.Exec(ctx, `DELETE FROM tips WHERE id = ?`, int64(id)); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *SQLiteRepo) ListTips(ctx context.Context) ([]models.Tip, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+tipColumns+` FROM tips ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tips := make([]models.Tip, 0)
	for rows.Next() {
		t, err := scanTip(rows)
		if err != nil {
			return nil, err
		}
		tips = append(tips, *t)
	}

	return tips, rows.Err()
}

func (r *SQLiteRepo) SetTipStatus(ctx context.Context, id uint64, status models.TipStatus) (bool, error) {
	res, err := r.conn.Exec(ctx, `UPDATE tips SET status = ? WHERE id = ?`, status, int64(id))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
