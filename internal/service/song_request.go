package service

import (
	"context"
	"fmt"

	"github.com/nightset/nightset/pkg/apperror"
	"github.com/nightset/nightset/pkg/models"
)

// CreateSongRequest records a pending song request for an existing user.
func (s *Store) CreateSongRequest(ctx context.Context, payload models.SongRequestPayload) (*models.SongRequest, error) {
	if payload.SongName == "" {
		return nil, apperror.InvalidInput("song_name", "song name is required")
	}

	exists, err := s.repo.ContainsUser(ctx, payload.UserID)
	if err != nil {
		return nil, fmt.Errorf("creating song request: %w", err)
	}
	if !exists {
		return nil, apperror.NotFound("User not found")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating song request: %w", err)
	}

	request := &models.SongRequest{
		ID:        id,
		UserID:    payload.UserID,
		SongName:  payload.SongName,
		Status:    models.RequestPending,
		CreatedAt: now(),
	}
	if err := s.repo.InsertSongRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("creating song request: %w", err)
	}

	s.logger.Info("song request created", "id", request.ID, "user_id", request.UserID)
	return request, nil
}

// MarkSongRequestPlayed transitions a request from pending to played.
func (s *Store) MarkSongRequestPlayed(ctx context.Context, id uint64) error {
	updated, err := s.repo.SetSongRequestStatus(ctx, id, models.RequestPlayed)
	if err != nil {
		return fmt.Errorf("marking song request played: %w", err)
	}
	if !updated {
		return apperror.NotFound("Song request not found")
	}

	s.logger.Info("song request played", "id", id)
	return nil
}
