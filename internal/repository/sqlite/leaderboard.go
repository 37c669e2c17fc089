package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nightset/nightset/pkg/models"
)

const leaderboardColumns = `dj_id, dj_name, total_tips, total_ratings, avg_rating`

func scanLeaderboardEntry(row interface{ Scan(...any) error }) (*models.LeaderboardEntry, error) {
	var e models.LeaderboardEntry
	var djID, totalTips, totalRatings int64
	if err := row.Scan(&djID, &e.DJName, &totalTips, &totalRatings, &e.AvgRating); err != nil {
		return nil, err
	}
	e.DJID = uint64(djID)
	e.TotalTips = uint64(totalTips)
	e.TotalRatings = uint64(totalRatings)

	return &e, nil
}

func (r *SQLiteRepo) GetLeaderboardEntry(ctx context.Context, djID uint64) (*models.LeaderboardEntry, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+leaderboardColumns+` FROM leaderboard_entries WHERE dj_id = ?`, int64(djID))
	e, err := scanLeaderboardEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return e, nil
}

func (r *SQLiteRepo) ContainsLeaderboardEntry(ctx context.Context, djID uint64) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM leaderboard_entries WHERE dj_id = ?`, int64(djID))
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SQLiteRepo) InsertLeaderboardEntry(ctx context.Context, e *models.LeaderboardEntry) error {
	if e == nil {
		return fmt.Errorf("leaderboard entry is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT OR REPLACE INTO leaderboard_entries (`+leaderboardColumns+`) VALUES (?, ?, ?, ?, ?)`,
		int64(e.DJID), e.DJName, int64(e.TotalTips), int64(e.TotalRatings), e.AvgRating)
	return err
}

func (r *SQLiteRepo) RemoveLeaderboardEntry(ctx context.Context, djID uint64) (*models.LeaderboardEntry, error) {
	e, err := r.GetLeaderboardEntry(ctx, djID)
	if err != nil || e == nil {
		return nil, err
	}

	if _, err := r.conn.Exec(ctx, `DELETE FROM leaderboard_entries WHERE dj_id = ?`, int64(djID)); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *SQLiteRepo) ListLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return r.listLeaderboard(ctx, `SELECT `+leaderboardColumns+` FROM leaderboard_entries ORDER BY dj_id`)
}

func (r *SQLiteRepo) ListLeaderboardByMinRating(ctx context.Context, minRating float64) ([]models.LeaderboardEntry, error) {
	return r.listLeaderboard(ctx,
		`SELECT `+leaderboardColumns+` FROM leaderboard_entries WHERE avg_rating >= ? ORDER BY dj_id`, minRating)
}

func (r *SQLiteRepo) listLeaderboard(ctx context.Context, query string, args ...any) ([]models.LeaderboardEntry, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.LeaderboardEntry, 0)
	for rows.Next() {
		e, err := scanLeaderboardEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}

	return entries, rows.Err()
}

// FoldRating updates the running mean in one statement, so the row is never
// visible half-updated:
//
//	avg = (avg*n + rating) / (n+1); n = n+1
func (r *SQLiteRepo) FoldRating(ctx context.Context, djID uint64, rating uint8) (bool, error) {
	res, err := r.conn.Exec(ctx, `
		UPDATE leaderboard_entries
		SET avg_rating = (avg_rating * total_ratings + ?) / (total_ratings + 1),
		    total_ratings = total_ratings + 1
		WHERE dj_id = ?`, float64(rating), int64(djID))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// FoldTip accumulates the tip total in one statement.
func (r *SQLiteRepo) FoldTip(ctx context.Context, djID uint64, amount uint64) (bool, error) {
	res, err := r.conn.Exec(ctx,
		`UPDATE leaderboard_entries SET total_tips = total_tips + ? WHERE dj_id = ?`,
		int64(amount), int64(djID))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
