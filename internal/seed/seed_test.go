package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightset/nightset/internal/seed"
	"github.com/nightset/nightset/internal/service"
	"github.com/nightset/nightset/pkg/models"
	"github.com/nightset/nightset/pkg/repository/mock"
)

func TestParseValidDocument(t *testing.T) {
	raw := []byte(`{
		"version": "1",
		"users": [
			{"name": "Ana", "contact": "ana@example.com", "role": "regular"},
			{"name": "DJ Nova", "contact": "nova@example.com", "role": "dj"}
		],
		"events": [
			{"event_name": "Rave", "dj_name": "DJ Nova", "venue": "Warehouse", "capacity": 100, "scheduled_at": 1000}
		],
		"playlists": [
			{"dj_name": "DJ Nova", "event_index": 0, "song_list": ["a", "b"]}
		]
	}`)

	ds, err := seed.Parse(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "1", ds.Version)
	assert.Len(t, ds.Users, 2)
	assert.Len(t, ds.Events, 1)
	assert.Len(t, ds.Playlists, 1)
	assert.Equal(t, models.RoleDJ, ds.Users[1].Role)
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing users", `{"version": "1", "events": []}`},
		{"bad role", `{"version": "1", "users": [{"name": "A", "contact": "a@x", "role": "superadmin"}], "events": []}`},
		{"zero capacity", `{"version": "1", "users": [], "events": [{"event_name": "E", "dj_name": "D", "venue": "V", "capacity": 0, "scheduled_at": 0}]}`},
		{"empty name", `{"version": "1", "users": [{"name": "", "contact": "a@x", "role": "regular"}], "events": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse(context.Background(), []byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParseEmbeddedDemoData(t *testing.T) {
	ds, err := seed.ParseEmbedded(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, ds.Users)
	assert.NotEmpty(t, ds.Events)
}

func TestApply(t *testing.T) {
	store := service.New(mock.NewStore(), nil)
	ctx := context.Background()

	ds, err := seed.ParseEmbedded(ctx)
	require.NoError(t, err)

	sum, err := seed.Apply(ctx, ds, store, nil)
	require.NoError(t, err)
	assert.Equal(t, len(ds.Users), sum.Users)
	assert.Equal(t, len(ds.Events), sum.Events)
	assert.Equal(t, len(ds.Playlists), sum.Playlists)

	events, err := store.GetAllEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, len(ds.Events))
}

func TestApplyRejectsEventIndexOutOfRange(t *testing.T) {
	store := service.New(mock.NewStore(), nil)
	ctx := context.Background()

	ds := &seed.Dataset{
		Version: "1",
		Events: []seed.EventSeed{
			{EventName: "Rave", DJName: "DJ Nova", Venue: "Warehouse", Capacity: 100},
		},
		Playlists: []seed.PlaylistSeed{
			{DJName: "DJ Nova", EventIndex: 3, SongList: []string{"a"}},
		},
	}

	sum, err := seed.Apply(ctx, ds, store, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	assert.Equal(t, 1, sum.Events)
	assert.Zero(t, sum.Playlists)
}
