package service

import (
	"context"
	"fmt"

	"github.com/nightset/nightset/pkg/apperror"
	"github.com/nightset/nightset/pkg/models"
)

// CreateTip records a pending tip from an existing user to a DJ.
func (s *Store) CreateTip(ctx context.Context, payload models.TipPayload) (*models.Tip, error) {
	if payload.DJName == "" {
		return nil, apperror.InvalidInput("dj_name", "dj name is required")
	}
	if payload.Amount == 0 {
		return nil, apperror.InvalidInput("amount", "amount must be greater than zero")
	}

	exists, err := s.repo.ContainsUser(ctx, payload.UserID)
	if err != nil {
		return nil, fmt.Errorf("creating tip: %w", err)
	}
	if !exists {
		return nil, apperror.NotFound("User not found")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating tip: %w", err)
	}

	tip := &models.Tip{
		ID:        id,
		UserID:    payload.UserID,
		DJName:    payload.DJName,
		Amount:    payload.Amount,
		Status:    models.TipPending,
		CreatedAt: now(),
	}
	if err := s.repo.InsertTip(ctx, tip); err != nil {
		return nil, fmt.Errorf("creating tip: %w", err)
	}

	s.logger.Info("tip created", "id", tip.ID, "user_id", tip.UserID, "amount", tip.Amount)
	return tip, nil
}

// CompleteTip transitions a tip from pending to completed.
func (s *Store) CompleteTip(ctx context.Context, id uint64) error {
	updated, err := s.repo.SetTipStatus(ctx, id, models.TipCompleted)
	if err != nil {
		return fmt.Errorf("completing tip: %w", err)
	}
	if !updated {
		return apperror.NotFound("Tip not found")
	}

	s.logger.Info("tip completed", "id", id)
	return nil
}
