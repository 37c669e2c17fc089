package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightset/nightset/pkg/apperror"
)

func TestInitLeaderboardEntry(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	entry, err := store.InitLeaderboardEntry(ctx, 7, "DJ Nova")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), entry.DJID)
	assert.Zero(t, entry.TotalTips)
	assert.Zero(t, entry.TotalRatings)
	assert.Zero(t, entry.AvgRating)

	_, err = store.InitLeaderboardEntry(ctx, 7, "DJ Nova")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrAlreadyExists))

	_, err = store.InitLeaderboardEntry(ctx, 8, "")
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestUpdateLeaderboardAfterRatingMaintainsMean(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.InitLeaderboardEntry(ctx, 1, "DJ Nova")
	require.NoError(t, err)

	ratings := []uint8{5, 3, 4, 0, 2}
	var sum float64
	for _, r := range ratings {
		require.NoError(t, store.UpdateLeaderboardAfterRating(ctx, 1, r))
		sum += float64(r)
	}

	djs, err := store.SearchDJs(ctx, "", 0, "")
	require.NoError(t, err)
	require.Len(t, djs, 1)
	assert.Equal(t, uint64(len(ratings)), djs[0].TotalRatings)
	assert.InDelta(t, sum/float64(len(ratings)), djs[0].AvgRating, 1e-9)
}

func TestUpdateLeaderboardAfterRatingErrors(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	err := store.UpdateLeaderboardAfterRating(ctx, 99, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err2 := store.InitLeaderboardEntry(ctx, 1, "DJ Nova")
	require.NoError(t, err2)

	err = store.UpdateLeaderboardAfterRating(ctx, 1, 6)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestUpdateLeaderboardAfterTip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.InitLeaderboardEntry(ctx, 1, "DJ Nova")
	require.NoError(t, err)

	require.NoError(t, store.UpdateLeaderboardAfterTip(ctx, 1, 10))
	require.NoError(t, store.UpdateLeaderboardAfterTip(ctx, 1, 15))

	djs, err := store.SearchDJs(ctx, "", 0, "")
	require.NoError(t, err)
	require.Len(t, djs, 1)
	assert.Equal(t, uint64(25), djs[0].TotalTips)

	err = store.UpdateLeaderboardAfterTip(ctx, 1, 0)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	err = store.UpdateLeaderboardAfterTip(ctx, 99, 10)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestSearchDJsFiltersByMinRating(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.InitLeaderboardEntry(ctx, 1, "DJ Low")
	require.NoError(t, err)
	_, err = store.InitLeaderboardEntry(ctx, 2, "DJ High")
	require.NoError(t, err)

	for _, r := range []uint8{2, 3} {
		require.NoError(t, store.UpdateLeaderboardAfterRating(ctx, 1, r))
	}
	for _, r := range []uint8{5, 4} {
		require.NoError(t, store.UpdateLeaderboardAfterRating(ctx, 2, r))
	}

	djs, err := store.SearchDJs(ctx, "techno", 4, "berlin")
	require.NoError(t, err)
	require.Len(t, djs, 1)
	assert.Equal(t, "DJ High", djs[0].DJName)

	// no match is an empty result, not an error
	djs, err = store.SearchDJs(ctx, "", 5, "")
	require.NoError(t, err)
	assert.Empty(t, djs)
}
