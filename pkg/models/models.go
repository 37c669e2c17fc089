// Package models holds the domain entities and the typed request payloads
// the store operates on. These are the public contract; persistence lives
// under internal/.
package models

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserActive      UserStatus = "active"
	UserDeactivated UserStatus = "deactivated"
)

// UserRole is stored but never enforced by the store itself; permission
// checks belong to the caller.
type UserRole string

const (
	RoleRegular UserRole = "regular"
	RoleAdmin   UserRole = "admin"
	RoleDJ      UserRole = "dj"
)

// RequestStatus tracks whether a requested song has been played.
type RequestStatus string

const (
	RequestPending RequestStatus = "pending"
	RequestPlayed  RequestStatus = "played"
)

// TipStatus tracks whether a tip has been paid out.
type TipStatus string

const (
	TipPending   TipStatus = "pending"
	TipCompleted TipStatus = "completed"
)

// All ids are drawn from one shared monotonic sequence, so an id is unique
// across every entity kind, not just within its own collection.

type User struct {
	ID        uint64     `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Contact   string     `json:"contact" db:"contact"`
	Status    UserStatus `json:"status" db:"status"`
	Role      UserRole   `json:"role" db:"role"`
	Points    uint64     `json:"points" db:"points"`
	CreatedAt int64      `json:"created_at" db:"created_at"`
}

type SongRequest struct {
	ID        uint64        `json:"id" db:"id"`
	UserID    uint64        `json:"user_id" db:"user_id"`
	SongName  string        `json:"song_name" db:"song_name"`
	Status    RequestStatus `json:"status" db:"status"`
	CreatedAt int64         `json:"created_at" db:"created_at"`
}

type Tip struct {
	ID        uint64    `json:"id" db:"id"`
	UserID    uint64    `json:"user_id" db:"user_id"`
	DJName    string    `json:"dj_name" db:"dj_name"`
	Amount    uint64    `json:"amount" db:"amount"`
	Status    TipStatus `json:"status" db:"status"`
	CreatedAt int64     `json:"created_at" db:"created_at"`
}

type Event struct {
	ID          uint64 `json:"id" db:"id"`
	EventName   string `json:"event_name" db:"event_name"`
	DJName      string `json:"dj_name" db:"dj_name"`
	Venue       string `json:"venue" db:"venue"`
	Capacity    uint64 `json:"capacity" db:"capacity"`
	ScheduledAt int64  `json:"scheduled_at" db:"scheduled_at"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
}

type Rating struct {
	ID        uint64 `json:"id" db:"id"`
	UserID    uint64 `json:"user_id" db:"user_id"`
	DJName    string `json:"dj_name" db:"dj_name"`
	Rating    uint8  `json:"rating" db:"rating"` // 0..5
	Review    string `json:"review" db:"review"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

type Playlist struct {
	ID        uint64   `json:"id" db:"id"`
	DJName    string   `json:"dj_name" db:"dj_name"`
	EventID   uint64   `json:"event_id" db:"event_id"`
	SongList  []string `json:"song_list" db:"song_list"`
	CreatedAt int64    `json:"created_at" db:"created_at"`
}

// LeaderboardEntry is keyed by a DJ id, a key space distinct from dj_name.
// AvgRating and TotalRatings are maintained incrementally by the fold
// operations; TotalRatings counts folds, it is not derived from the ratings
// collection.
type LeaderboardEntry struct {
	DJID         uint64  `json:"dj_id" db:"dj_id"`
	DJName       string  `json:"dj_name" db:"dj_name"`
	TotalTips    uint64  `json:"total_tips" db:"total_tips"`
	TotalRatings uint64  `json:"total_ratings" db:"total_ratings"`
	AvgRating    float64 `json:"avg_rating" db:"avg_rating"`
}

// Payloads are the already-deserialized request structures handed to the
// store operations. Wire parsing is the caller's problem.

type UserPayload struct {
	Name    string   `json:"name"`
	Contact string   `json:"contact"`
	Role    UserRole `json:"role"`
}

type SongRequestPayload struct {
	UserID   uint64 `json:"user_id"`
	SongName string `json:"song_name"`
}

type TipPayload struct {
	UserID uint64 `json:"user_id"`
	DJName string `json:"dj_name"`
	Amount uint64 `json:"amount"`
}

type EventPayload struct {
	EventName   string `json:"event_name"`
	DJName      string `json:"dj_name"`
	Venue       string `json:"venue"`
	Capacity    uint64 `json:"capacity"`
	ScheduledAt int64  `json:"scheduled_at"`
}

type RatingPayload struct {
	UserID uint64 `json:"user_id"`
	DJName string `json:"dj_name"`
	Rating uint8  `json:"rating"`
	Review string `json:"review"`
}

type PlaylistPayload struct {
	DJName   string   `json:"dj_name"`
	EventID  uint64   `json:"event_id"`
	SongList []string `json:"song_list"`
}
