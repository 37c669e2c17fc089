package service

import (
	"context"
	"fmt"

	"github.com/nightset/nightset/pkg/apperror"
	"github.com/nightset/nightset/pkg/models"
)

// MaxRating is the top of the rating scale.
const MaxRating = 5

// CreateRating records a rating from an existing user. Creating a rating
// does not touch the leaderboard; the caller folds it in explicitly with
// UpdateLeaderboardAfterRating.
func (s *Store) CreateRating(ctx context.Context, payload models.RatingPayload) (*models.Rating, error) {
	if payload.DJName == "" {
		return nil, apperror.InvalidInput("dj_name", "dj name is required")
	}
	if payload.Rating > MaxRating {
		return nil, apperror.InvalidInput("rating", "rating must be between 0 and 5")
	}

	exists, err := s.repo.ContainsUser(ctx, payload.UserID)
	if err != nil {
		return nil, fmt.Errorf("creating rating: %w", err)
	}
	if !exists {
		return nil, apperror.NotFound("User not found")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating rating: %w", err)
	}

	rating := &models.Rating{
		ID:        id,
		UserID:    payload.UserID,
		DJName:    payload.DJName,
		Rating:    payload.Rating,
		Review:    payload.Review,
		CreatedAt: now(),
	}
	if err := s.repo.InsertRating(ctx, rating); err != nil {
		return nil, fmt.Errorf("creating rating: %w", err)
	}

	s.logger.Info("rating created", "id", rating.ID, "dj", rating.DJName, "rating", rating.Rating)
	return rating, nil
}
