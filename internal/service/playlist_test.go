package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightset/nightset/pkg/apperror"
	"github.com/nightset/nightset/pkg/models"
)

func TestCreatePlaylistValidation(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	event, err := store.CreateEvent(ctx, models.EventPayload{
		EventName: "Rave", DJName: "DJ Nova", Venue: "Warehouse", Capacity: 100, ScheduledAt: 1,
	})
	require.NoError(t, err)

	// invalid only when dj name and song list are both empty
	_, err = store.CreatePlaylist(ctx, models.PlaylistPayload{EventID: event.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	only, err := store.CreatePlaylist(ctx, models.PlaylistPayload{DJName: "DJ Nova", EventID: event.ID})
	require.NoError(t, err)
	assert.Empty(t, only.SongList)

	songs, err := store.CreatePlaylist(ctx, models.PlaylistPayload{EventID: event.ID, SongList: []string{"a"}})
	require.NoError(t, err)
	assert.Len(t, songs.SongList, 1)
}

func TestCreatePlaylistRequiresExistingEvent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.CreatePlaylist(ctx, models.PlaylistPayload{DJName: "DJ Nova", EventID: 99, SongList: []string{"a"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestPlaylistQueries(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	e1, err := store.CreateEvent(ctx, models.EventPayload{
		EventName: "Rave", DJName: "DJ Nova", Venue: "Warehouse", Capacity: 100, ScheduledAt: 1,
	})
	require.NoError(t, err)
	e2, err := store.CreateEvent(ctx, models.EventPayload{
		EventName: "Chill", DJName: "DJ Ana", Venue: "Rooftop", Capacity: 50, ScheduledAt: 2,
	})
	require.NoError(t, err)

	_, err = store.CreatePlaylist(ctx, models.PlaylistPayload{DJName: "DJ Nova", EventID: e1.ID, SongList: []string{"a"}})
	require.NoError(t, err)
	_, err = store.CreatePlaylist(ctx, models.PlaylistPayload{DJName: "DJ Nova", EventID: e2.ID, SongList: []string{"b"}})
	require.NoError(t, err)
	_, err = store.CreatePlaylist(ctx, models.PlaylistPayload{DJName: "DJ Ana", EventID: e2.ID, SongList: []string{"c"}})
	require.NoError(t, err)

	byDJ, err := store.GetPlaylistsByDJName(ctx, "DJ Nova")
	require.NoError(t, err)
	assert.Len(t, byDJ, 2)

	byEvent, err := store.GetPlaylistsByEventID(ctx, e2.ID)
	require.NoError(t, err)
	assert.Len(t, byEvent, 2)

	// playlist queries report absence as NotFound
	_, err = store.GetPlaylistsByDJName(ctx, "DJ Zero")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err = store.GetPlaylistsByEventID(ctx, 999)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
