package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nightset/nightset/pkg/models"
)

const userColumns = `id, name, contact, status, role, points, created_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	var id, points int64
	if err := row.Scan(&id, &u.Name, &u.Contact, &u.Status, &u.Role, &points, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.ID = uint64(id)
	u.Points = uint64(points)

	return &u, nil
}

func (r *SQLiteRepo) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, int64(id))
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return u, nil
}

func (r *SQLiteRepo) ContainsUser(ctx context.Context, id uint64) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM users WHERE id = ?`, int64(id))
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SQLiteRepo) InsertUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return fmt.Errorf("user is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT OR REPLACE INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(u.ID), u.Name, u.Contact, u.Status, u.Role, int64(u.Points), u.CreatedAt)
	return err
}

func (r *SQLiteRepo) RemoveUser(ctx context.Context, id uint64) (*models.User, error) {
	u, err := r.GetUser(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}

	if _, err := r.conn.Exec(ctx, `DELETE FROM users WHERE id = ?`, int64(id)); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *SQLiteRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.listUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
}

func (r *SQLiteRepo) ListUsersByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	return r.listUsers(ctx, `SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY id`, role)
}

func (r *SQLiteRepo) listUsers(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}

	return users, rows.Err()
}

// AddUserPoints awards points in place. Points only ever grow; the delta is
// unsigned by contract.
func (r *SQLiteRepo) AddUserPoints(ctx context.Context, id uint64, delta uint64) (bool, error) {
	res, err := r.conn.Exec(ctx, `UPDATE users SET points = points + ? WHERE id = ?`, int64(delta), int64(id))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *SQLiteRepo) SetUserStatus(ctx context.Context, id uint64, status models.UserStatus) (bool, error) {
	res, err := r.conn.Exec(ctx, `UPDATE users SET status = ? WHERE id = ?`, status, int64(id))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
