package sqlite

import (
	"context"
	"fmt"
)

// NextID bumps the shared counter and returns the new value. The UPDATE
// commits before any dependent row is written, so a crash between
// allocation and insertion can only leave an id gap, never a duplicate.
func (r *SQLiteRepo) NextID(ctx context.Context) (uint64, error) {
	var v int64
	row := r.conn.QueryRow(ctx, `UPDATE id_sequence SET value = value + 1 WHERE id = 1 RETURNING value`)
	if err := row.Scan(&v); err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}

	return uint64(v), nil
}
