// Package seed loads a JSON dataset into the store through the service
// layer. The document is validated against the embedded JSON Schema before
// anything is written, so a malformed dataset never leaves a half-loaded
// database behind rows it would not have passed validation for.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/qri-io/jsonschema"

	dbfs "github.com/nightset/nightset/db"
	"github.com/nightset/nightset/internal/service"
	"github.com/nightset/nightset/pkg/models"
)

// Dataset is the shape of a seed document. Playlists reference events by
// their position in the events array, since real ids are only known after
// insertion.
type Dataset struct {
	Version   string         `json:"version"`
	Users     []UserSeed     `json:"users"`
	Events    []EventSeed    `json:"events"`
	Playlists []PlaylistSeed `json:"playlists"`
}

type UserSeed struct {
	Name    string          `json:"name"`
	Contact string          `json:"contact"`
	Role    models.UserRole `json:"role"`
}

type EventSeed struct {
	EventName   string `json:"event_name"`
	DJName      string `json:"dj_name"`
	Venue       string `json:"venue"`
	Capacity    uint64 `json:"capacity"`
	ScheduledAt int64  `json:"scheduled_at"`
}

type PlaylistSeed struct {
	DJName     string   `json:"dj_name"`
	EventIndex int      `json:"event_index"`
	SongList   []string `json:"song_list"`
}

// Summary reports what a load created.
type Summary struct {
	Users     int
	Events    int
	Playlists int
}

// Parse validates raw against the embedded schema and decodes it.
func Parse(ctx context.Context, raw []byte) (*Dataset, error) {
	schemaBytes, err := fs.ReadFile(dbfs.SeedFiles, path.Join("seed", "seed_schema.json"))
	if err != nil {
		return nil, fmt.Errorf("read seed schema: %w", err)
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(schemaBytes, rs); err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}

	verrs, err := rs.ValidateBytes(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("validate seed: %w", err)
	}
	if len(verrs) > 0 {
		return nil, fmt.Errorf("seed does not match schema: %s", verrs[0].Error())
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	return &ds, nil
}

// ParseFile reads and validates a seed document from disk.
func ParseFile(ctx context.Context, fpath string) (*Dataset, error) {
	raw, err := os.ReadFile(fpath)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	return Parse(ctx, raw)
}

// ParseEmbedded returns the demo dataset shipped with the repository.
func ParseEmbedded(ctx context.Context) (*Dataset, error) {
	raw, err := fs.ReadFile(dbfs.SeedFiles, path.Join("seed", "demo_data.json"))
	if err != nil {
		return nil, fmt.Errorf("read embedded seed: %w", err)
	}

	return Parse(ctx, raw)
}

// Apply writes the dataset through the service layer, so all validation
// and referential checks still run.
func Apply(ctx context.Context, ds *Dataset, store *service.Store, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}

	sum := &Summary{}

	for _, u := range ds.Users {
		if _, err := store.CreateUser(ctx, models.UserPayload{Name: u.Name, Contact: u.Contact, Role: u.Role}); err != nil {
			return sum, fmt.Errorf("seed user %q: %w", u.Name, err)
		}
		sum.Users++
	}

	eventIDs := make([]uint64, 0, len(ds.Events))
	for _, e := range ds.Events {
		event, err := store.CreateEvent(ctx, models.EventPayload{
			EventName:   e.EventName,
			DJName:      e.DJName,
			Venue:       e.Venue,
			Capacity:    e.Capacity,
			ScheduledAt: e.ScheduledAt,
		})
		if err != nil {
			return sum, fmt.Errorf("seed event %q: %w", e.EventName, err)
		}
		eventIDs = append(eventIDs, event.ID)
		sum.Events++
	}

	for _, p := range ds.Playlists {
		if p.EventIndex < 0 || p.EventIndex >= len(eventIDs) {
			return sum, fmt.Errorf("seed playlist for %q: event_index %d out of range", p.DJName, p.EventIndex)
		}
		if _, err := store.CreatePlaylist(ctx, models.PlaylistPayload{
			DJName:   p.DJName,
			EventID:  eventIDs[p.EventIndex],
			SongList: p.SongList,
		}); err != nil {
			return sum, fmt.Errorf("seed playlist for %q: %w", p.DJName, err)
		}
		sum.Playlists++
	}

	logger.Info("seed applied", "users", sum.Users, "events", sum.Events, "playlists", sum.Playlists)
	return sum, nil
}
