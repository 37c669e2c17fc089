package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nightset/nightset/pkg/models"
)

const eventColumns = `id, event_name, dj_name, venue, capacity, scheduled_at, created_at`

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	var e models.Event
	var id, capacity int64
	if err := row.Scan(&id, &e.EventName, &e.DJName, &e.Venue, &capacity, &e.ScheduledAt, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.ID = uint64(id)
	e.Capacity = uint64(capacity)

	return &e, nil
}

func (r *SQLiteRepo) GetEvent(ctx context.Context, id uint64) (*models.Event, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, int64(id))
	e, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return e, nil
}

func (r *SQLiteRepo) ContainsEvent(ctx context.Context, id uint64) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM events WHERE id = ?`, int64(id))
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SQLiteRepo) InsertEvent(ctx context.Context, e *models.Event) error {
	if e == nil {
		return fmt.Errorf("event is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT OR REPLACE INTO events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(e.ID), e.EventName, e.DJName, e.Venue, int64(e.Capacity), e.ScheduledAt, e.CreatedAt)
	return err
}

func (r *SQLiteRepo) RemoveEvent(ctx context.Context, id uint64) (*models.Event, error) {
	e, err := r.GetEvent(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}

	if _, err := r.conn.Exec(ctx, `DELETE FROM events WHERE id = ?`, int64(id)); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *SQLiteRepo) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}

	return events, rows.Err()
}

func (r *SQLiteRepo) FindEventByName(ctx context.Context, name string) (*models.Event, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE event_name = ? ORDER BY id LIMIT 1`, name)
	e, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return e, nil
}
