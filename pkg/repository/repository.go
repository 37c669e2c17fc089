// Package repository declares the storage contracts for the store's
// collections and the shared id sequence. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Every collection follows the same shape: Get returns nil without error
// when the key is absent, Insert overwrites an existing row wholesale,
// Remove returns the removed row (nil if nothing was there), and List
// iterates in ascending key order. Keys are monotonically allocated, so
// ascending key order is also creation order.
package repository

import (
	"context"

	"github.com/nightset/nightset/pkg/models"
)

// Sequence issues globally unique, monotonically increasing ids shared by
// all entity kinds. The increment is durable before NextID returns; a
// crash after allocation can waste an id, never reuse one.
type Sequence interface {
	NextID(ctx context.Context) (uint64, error)
}

type UserRepo interface {
	GetUser(ctx context.Context, id uint64) (*models.User, error)
	ContainsUser(ctx context.Context, id uint64) (bool, error)
	InsertUser(ctx context.Context, u *models.User) error
	RemoveUser(ctx context.Context, id uint64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
	// AddUserPoints adds delta to the user's points as one atomic step and
	// reports whether a row was updated.
	AddUserPoints(ctx context.Context, id uint64, delta uint64) (bool, error)
	SetUserStatus(ctx context.Context, id uint64, status models.UserStatus) (bool, error)
}

type SongRequestRepo interface {
	GetSongRequest(ctx context.Context, id uint64) (*models.SongRequest, error)
	ContainsSongRequest(ctx context.Context, id uint64) (bool, error)
	InsertSongRequest(ctx context.Context, sr *models.SongRequest) error
	RemoveSongRequest(ctx context.Context, id uint64) (*models.SongRequest, error)
	ListSongRequests(ctx context.Context) ([]models.SongRequest, error)
	SetSongRequestStatus(ctx context.Context, id uint64, status models.RequestStatus) (bool, error)
}

type TipRepo interface {
	GetTip(ctx context.Context, id uint64) (*models.Tip, error)
	ContainsTip(ctx context.Context, id uint64) (bool, error)
	InsertTip(ctx context.Context, t *models.Tip) error
	RemoveTip(ctx context.Context, id uint64) (*models.Tip, error)
	ListTips(ctx context.Context) ([]models.Tip, error)
	SetTipStatus(ctx context.Context, id uint64, status models.TipStatus) (bool, error)
}

type EventRepo interface {
	GetEvent(ctx context.Context, id uint64) (*models.Event, error)
	ContainsEvent(ctx context.Context, id uint64) (bool, error)
	InsertEvent(ctx context.Context, e *models.Event) error
	RemoveEvent(ctx context.Context, id uint64) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	// FindEventByName returns the lowest-id event with that name, nil if none.
	FindEventByName(ctx context.Context, name string) (*models.Event, error)
}

type RatingRepo interface {
	GetRating(ctx context.Context, id uint64) (*models.Rating, error)
	ContainsRating(ctx context.Context, id uint64) (bool, error)
	InsertRating(ctx context.Context, r *models.Rating) error
	RemoveRating(ctx context.Context, id uint64) (*models.Rating, error)
	ListRatings(ctx context.Context) ([]models.Rating, error)
}

type PlaylistRepo interface {
	GetPlaylist(ctx context.Context, id uint64) (*models.Playlist, error)
	ContainsPlaylist(ctx context.Context, id uint64) (bool, error)
	InsertPlaylist(ctx context.Context, p *models.Playlist) error
	RemovePlaylist(ctx context.Context, id uint64) (*models.Playlist, error)
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	ListPlaylistsByDJName(ctx context.Context, djName string) ([]models.Playlist, error)
	ListPlaylistsByEventID(ctx context.Context, eventID uint64) ([]models.Playlist, error)
}

type LeaderboardRepo interface {
	GetLeaderboardEntry(ctx context.Context, djID uint64) (*models.LeaderboardEntry, error)
	ContainsLeaderboardEntry(ctx context.Context, djID uint64) (bool, error)
	InsertLeaderboardEntry(ctx context.Context, e *models.LeaderboardEntry) error
	RemoveLeaderboardEntry(ctx context.Context, djID uint64) (*models.LeaderboardEntry, error)
	ListLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	ListLeaderboardByMinRating(ctx context.Context, minRating float64) ([]models.LeaderboardEntry, error)
	// FoldRating folds one rating into the entry's running mean as a single
	// atomic read-modify-write:
	//   avg = (avg*n + r) / (n+1); n = n+1
	// It reports whether an entry for djID existed.
	FoldRating(ctx context.Context, djID uint64, rating uint8) (bool, error)
	// FoldTip adds amount to the entry's tip total atomically and reports
	// whether an entry for djID existed.
	FoldTip(ctx context.Context, djID uint64, amount uint64) (bool, error)
}

// Store is the full persistence surface the service layer depends on: the
// shared sequence plus all seven collections, implemented by one backend.
type Store interface {
	Sequence
	UserRepo
	SongRequestRepo
	TipRepo
	EventRepo
	RatingRepo
	PlaylistRepo
	LeaderboardRepo
}
