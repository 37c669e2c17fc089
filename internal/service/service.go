// Package service implements the store's operations: field validation,
// referential checks against the owning collections, id allocation, row
// construction, and the leaderboard folds. It receives already-parsed
// typed payloads and returns typed rows or errors from pkg/apperror; it
// never touches wire encoding.
//
// Mutations follow one ordering: validate fields, check referenced
// entities, allocate the id, insert. Validation runs before allocation so
// a rejected request never burns an id.
package service

import (
	"log/slog"
	"time"

	"github.com/nightset/nightset/pkg/repository"
)

// Store is the single entry point for every operation. It is constructed
// once at startup with the persistence backend injected; it holds no
// state of its own beyond the dependencies.
type Store struct {
	repo   repository.Store
	logger *slog.Logger
}

func New(repo repository.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{repo: repo, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
