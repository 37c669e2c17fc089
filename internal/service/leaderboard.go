package service

import (
	"context"
	"fmt"

	"github.com/nightset/nightset/pkg/apperror"
	"github.com/nightset/nightset/pkg/models"
)

// InitLeaderboardEntry creates the leaderboard row for a DJ. Folding into
// a missing row fails, so this must be called once per DJ before any
// rating or tip is aggregated; ratings and tips never auto-create rows.
// The dj id is supplied by the caller (typically the DJ's user id) and
// must be unused on the leaderboard.
func (s *Store) InitLeaderboardEntry(ctx context.Context, djID uint64, djName string) (*models.LeaderboardEntry, error) {
	if djName == "" {
		return nil, apperror.InvalidInput("dj_name", "dj name is required")
	}

	exists, err := s.repo.ContainsLeaderboardEntry(ctx, djID)
	if err != nil {
		return nil, fmt.Errorf("initializing leaderboard entry: %w", err)
	}
	if exists {
		return nil, apperror.AlreadyExists("Leaderboard entry already exists for DJ id %d", djID)
	}

	entry := &models.LeaderboardEntry{
		DJID:         djID,
		DJName:       djName,
		TotalTips:    0,
		TotalRatings: 0,
		AvgRating:    0,
	}
	if err := s.repo.InsertLeaderboardEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("initializing leaderboard entry: %w", err)
	}

	s.logger.Info("leaderboard entry initialized", "dj_id", djID, "dj", djName)
	return entry, nil
}

// UpdateLeaderboardAfterRating folds one rating into the DJ's running
// mean. The fold is a single atomic read-modify-write; a half-updated row
// is never visible.
func (s *Store) UpdateLeaderboardAfterRating(ctx context.Context, djID uint64, rating uint8) error {
	if rating > MaxRating {
		return apperror.InvalidInput("rating", "rating must be between 0 and 5")
	}

	folded, err := s.repo.FoldRating(ctx, djID, rating)
	if err != nil {
		return fmt.Errorf("updating leaderboard after rating: %w", err)
	}
	if !folded {
		return apperror.NotFound("Leaderboard entry not found for DJ id %d", djID)
	}

	s.logger.Info("leaderboard rating folded", "dj_id", djID, "rating", rating)
	return nil
}

// UpdateLeaderboardAfterTip adds a tip amount to the DJ's total.
func (s *Store) UpdateLeaderboardAfterTip(ctx context.Context, djID uint64, amount uint64) error {
	if amount == 0 {
		return apperror.InvalidInput("amount", "amount must be greater than zero")
	}

	folded, err := s.repo.FoldTip(ctx, djID, amount)
	if err != nil {
		return fmt.Errorf("updating leaderboard after tip: %w", err)
	}
	if !folded {
		return apperror.NotFound("Leaderboard entry not found for DJ id %d", djID)
	}

	s.logger.Info("leaderboard tip folded", "dj_id", djID, "amount", amount)
	return nil
}

// SearchDJs returns leaderboard entries with an average rating of at least
// minRating. The genre and location filters are accepted for interface
// compatibility but not indexed yet, so they are ignored. An empty result
// is a valid response.
func (s *Store) SearchDJs(ctx context.Context, genre string, minRating uint8, location string) ([]models.LeaderboardEntry, error) {
	_ = genre
	_ = location

	entries, err := s.repo.ListLeaderboardByMinRating(ctx, float64(minRating))
	if err != nil {
		return nil, fmt.Errorf("searching djs: %w", err)
	}

	return entries, nil
}
