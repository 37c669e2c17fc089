package service

import (
	"context"
	"fmt"

	"github.com/nightset/nightset/pkg/apperror"
	"github.com/nightset/nightset/pkg/models"
)

// CreateUser registers a new user with zero points and active status.
func (s *Store) CreateUser(ctx context.Context, payload models.UserPayload) (*models.User, error) {
	if payload.Name == "" {
		return nil, apperror.InvalidInput("name", "name is required")
	}
	if payload.Contact == "" {
		return nil, apperror.InvalidInput("contact", "contact is required")
	}

	role := payload.Role
	if role == "" {
		role = models.RoleRegular
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	user := &models.User{
		ID:        id,
		Name:      payload.Name,
		Contact:   payload.Contact,
		Status:    models.UserActive,
		Role:      role,
		Points:    0,
		CreatedAt: now(),
	}
	if err := s.repo.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created", "id", user.ID, "role", user.Role)
	return user, nil
}

// GetUser returns the user or NotFound.
func (s *Store) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	return user, nil
}

// DeleteUser removes the user row. Dependent song requests, tips and
// ratings keep their user_id and become orphans; foreign keys are checked
// at creation time only.
func (s *Store) DeleteUser(ctx context.Context, id uint64) error {
	removed, err := s.repo.RemoveUser(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if removed == nil {
		return apperror.NotFound("User not found")
	}

	s.logger.Info("user deleted", "id", id)
	return nil
}

// UpdateUserPoints awards points to a user. It reports false, not an
// error, when the user does not exist.
func (s *Store) UpdateUserPoints(ctx context.Context, id uint64, points uint64) (bool, error) {
	updated, err := s.repo.AddUserPoints(ctx, id, points)
	if err != nil {
		return false, fmt.Errorf("updating user points: %w", err)
	}

	return updated, nil
}

// DeactivateUser flips the user's status to deactivated.
func (s *Store) DeactivateUser(ctx context.Context, id uint64) error {
	updated, err := s.repo.SetUserStatus(ctx, id, models.UserDeactivated)
	if err != nil {
		return fmt.Errorf("deactivating user: %w", err)
	}
	if !updated {
		return apperror.NotFound("User not found")
	}

	s.logger.Info("user deactivated", "id", id)
	return nil
}

// SearchUsersByRole returns every user with the given role. An empty
// result is a valid response, not an error.
func (s *Store) SearchUsersByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	users, err := s.repo.ListUsersByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("searching users by role: %w", err)
	}

	return users, nil
}
