// Package mock provides an in-memory repository.Store for tests. It keeps
// the same observable contract as the SQLite backend: one shared monotonic
// sequence, nil-on-missing gets, overwrite-on-insert, and ascending-key
// iteration.
package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/nightset/nightset/pkg/models"
	"github.com/nightset/nightset/pkg/repository"
)

// Store is an in-memory implementation of repository.Store. Safe for
// concurrent use; every read-modify-write holds the mutex for its full
// duration.
type Store struct {
	mu          sync.Mutex
	counter     uint64
	users       map[uint64]models.User
	requests    map[uint64]models.SongRequest
	tips        map[uint64]models.Tip
	events      map[uint64]models.Event
	ratings     map[uint64]models.Rating
	playlists   map[uint64]models.Playlist
	leaderboard map[uint64]models.LeaderboardEntry
}

var _ repository.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		users:       make(map[uint64]models.User),
		requests:    make(map[uint64]models.SongRequest),
		tips:        make(map[uint64]models.Tip),
		events:      make(map[uint64]models.Event),
		ratings:     make(map[uint64]models.Rating),
		playlists:   make(map[uint64]models.Playlist),
		leaderboard: make(map[uint64]models.LeaderboardEntry),
	}
}

func (s *Store) NextID(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++

	return s.counter, nil
}

func sortedKeys[V any](m map[uint64]V) []uint64 {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// Users

func (s *Store) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}

	return nil, nil
}

func (s *Store) ContainsUser(ctx context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]

	return ok, nil
}

func (s *Store) InsertUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = *u

	return nil
}

func (s *Store) RemoveUser(ctx context.Context, id uint64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	delete(s.users, id)

	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, k := range sortedKeys(s.users) {
		out = append(out, s.users[k])
	}

	return out, nil
}

func (s *Store) ListUsersByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0)
	for _, k := range sortedKeys(s.users) {
		if s.users[k].Role == role {
			out = append(out, s.users[k])
		}
	}

	return out, nil
}

func (s *Store) AddUserPoints(ctx context.Context, id uint64, delta uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false, nil
	}
	u.Points += delta
	s.users[id] = u

	return true, nil
}

func (s *Store) SetUserStatus(ctx context.Context, id uint64, status models.UserStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false, nil
	}
	u.Status = status
	s.users[id] = u

	return true, nil
}

// Song requests

func (s *Store) GetSongRequest(ctx context.Context, id uint64) (*models.SongRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sr, ok := s.requests[id]; ok {
		return &sr, nil
	}

	return nil, nil
}

func (s *Store) ContainsSongRequest(ctx context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.requests[id]

	return ok, nil
}

func (s *Store) InsertSongRequest(ctx context.Context, sr *models.SongRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[sr.ID] = *sr

	return nil
}

func (s *Store) RemoveSongRequest(ctx context.Context, id uint64) (*models.SongRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sr, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	delete(s.requests, id)

	return &sr, nil
}

func (s *Store) ListSongRequests(ctx context.Context) ([]models.SongRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SongRequest, 0, len(s.requests))
	for _, k := range sortedKeys(s.requests) {
		out = append(out, s.requests[k])
	}

	return out, nil
}

func (s *Store) SetSongRequestStatus(ctx context.Context, id uint64, status models.RequestStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sr, ok := s.requests[id]
	if !ok {
		return false, nil
	}
	sr.Status = status
	s.requests[id] = sr

	return true, nil
}

// Tips

func (s *Store) GetTip(ctx context.Context, id uint64) (*models.Tip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tips[id]; ok {
		return &t, nil
	}

	return nil, nil
}

func (s *Store) ContainsTip(ctx context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tips[id]

	return ok, nil
}

func (s *Store) InsertTip(ctx context.Context, t *models.Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tips[t.ID] = *t

	return nil
}

func (s *Store) RemoveTip(ctx context.Context, id uint64) (*models.Tip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tips[id]
	if !ok {
		return nil, nil
	}
	delete(s.tips, id)

	return &t, nil
}

func (s *Store) ListTips(ctx context.Context) ([]models.Tip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Tip, 0, len(s.tips))
	for _, k := range sortedKeys(s.tips) {
		out = append(out, s.tips[k])
	}

	return out, nil
}

func (s *Store) SetTipStatus(ctx context.Context, id uint64, status models.TipStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tips[id]
	if !ok {
		return false, nil
	}
	t.Status = status
	s.tips[id] = t

	return true, nil
}

// Events

func (s *Store) GetEvent(ctx context.Context, id uint64) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.events[id]; ok {
		return &e, nil
	}

	return nil, nil
}

func (s *Store) ContainsEvent(ctx context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.events[id]

	return ok, nil
}

func (s *Store) InsertEvent(ctx context.Context, e *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = *e

	return nil
}

func (s *Store) RemoveEvent(ctx context.Context, id uint64) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	delete(s.events, id)

	return &e, nil
}

func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Event, 0, len(s.events))
	for _, k := range sortedKeys(s.events) {
		out = append(out, s.events[k])
	}

	return out, nil
}

func (s *Store) FindEventByName(ctx context.Context, name string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range sortedKeys(s.events) {
		if s.events[k].EventName == name {
			e := s.events[k]
			return &e, nil
		}
	}

	return nil, nil
}

// Ratings

func (s *Store) GetRating(ctx context.Context, id uint64) (*models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.ratings[id]; ok {
		return &r, nil
	}

	return nil, nil
}

func (s *Store) ContainsRating(ctx context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ratings[id]

	return ok, nil
}

func (s *Store) InsertRating(ctx context.Context, r *models.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[r.ID] = *r

	return nil
}

func (s *Store) RemoveRating(ctx context.Context, id uint64) (*models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.ratings[id]
	if !ok {
		return nil, nil
	}
	delete(s.ratings, id)

	return &r, nil
}

func (s *Store) ListRatings(ctx context.Context) ([]models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Rating, 0, len(s.ratings))
	for _, k := range sortedKeys(s.ratings) {
		out = append(out, s.ratings[k])
	}

	return out, nil
}

// Playlists

func (s *Store) GetPlaylist(ctx context.Context, id uint64) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.playlists[id]; ok {
		return &p, nil
	}

	return nil, nil
}

func (s *Store) ContainsPlaylist(ctx context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.playlists[id]

	return ok, nil
}

func (s *Store) InsertPlaylist(ctx context.Context, p *models.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playlists[p.ID] = *p

	return nil
}

func (s *Store) RemovePlaylist(ctx context.Context, id uint64) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok {
		return nil, nil
	}
	delete(s.playlists, id)

	return &p, nil
}

func (s *Store) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Playlist, 0, len(s.playlists))
	for _, k := range sortedKeys(s.playlists) {
		out = append(out, s.playlists[k])
	}

	return out, nil
}

func (s *Store) ListPlaylistsByDJName(ctx context.Context, djName string) ([]models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Playlist, 0)
	for _, k := range sortedKeys(s.playlists) {
		if s.playlists[k].DJName == djName {
			out = append(out, s.playlists[k])
		}
	}

	return out, nil
}

func (s *Store) ListPlaylistsByEventID(ctx context.Context, eventID uint64) ([]models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Playlist, 0)
	for _, k := range sortedKeys(s.playlists) {
		if s.playlists[k].EventID == eventID {
			out = append(out, s.playlists[k])
		}
	}

	return out, nil
}

// Leaderboard

func (s *Store) GetLeaderboardEntry(ctx context.Context, djID uint64) (*models.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.leaderboard[djID]; ok {
		return &e, nil
	}

	return nil, nil
}

func (s *Store) ContainsLeaderboardEntry(ctx context.Context, djID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.leaderboard[djID]

	return ok, nil
}

func (s *Store) InsertLeaderboardEntry(ctx context.Context, e *models.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboard[e.DJID] = *e

	return nil
}

func (s *Store) RemoveLeaderboardEntry(ctx context.Context, djID uint64) (*models.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.leaderboard[djID]
	if !ok {
		return nil, nil
	}
	delete(s.leaderboard, djID)

	return &e, nil
}

func (s *Store) ListLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LeaderboardEntry, 0, len(s.leaderboard))
	for _, k := range sortedKeys(s.leaderboard) {
		out = append(out, s.leaderboard[k])
	}

	return out, nil
}

func (s *Store) ListLeaderboardByMinRating(ctx context.Context, minRating float64) ([]models.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LeaderboardEntry, 0)
	for _, k := range sortedKeys(s.leaderboard) {
		if s.leaderboard[k].AvgRating >= minRating {
			out = append(out, s.leaderboard[k])
		}
	}

	return out, nil
}

func (s *Store) FoldRating(ctx context.Context, djID uint64, rating uint8) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.leaderboard[djID]
	if !ok {
		return false, nil
	}
	n := float64(e.TotalRatings)
	e.AvgRating = (e.AvgRating*n + float64(rating)) / (n + 1)
	e.TotalRatings++
	s.leaderboard[djID] = e

	return true, nil
}

func (s *Store) FoldTip(ctx context.Context, djID uint64, amount uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.leaderboard[djID]
	if !ok {
		return false, nil
	}
	e.TotalTips += amount
	s.leaderboard[djID] = e

	return true, nil
}
