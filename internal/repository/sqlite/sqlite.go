// Package sqlite implements the repository contracts on a single SQLite
// database. Each collection is one table keyed by the shared id sequence;
// ascending-key iteration is ORDER BY id. Read-modify-write operations
// (sequence bump, point award, leaderboard folds) are single UPDATE
// statements, so no caller can observe a half-updated row.
package sqlite

import (
	"log/slog"

	"github.com/nightset/nightset/internal/db"
	"github.com/nightset/nightset/pkg/repository"
)

// SQLiteRepo implements the repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public contracts.
var _ repository.Sequence = (*SQLiteRepo)(nil)
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.SongRequestRepo = (*SQLiteRepo)(nil)
var _ repository.TipRepo = (*SQLiteRepo)(nil)
var _ repository.EventRepo = (*SQLiteRepo)(nil)
var _ repository.RatingRepo = (*SQLiteRepo)(nil)
var _ repository.PlaylistRepo = (*SQLiteRepo)(nil)
var _ repository.LeaderboardRepo = (*SQLiteRepo)(nil)
var _ repository.Store = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}
