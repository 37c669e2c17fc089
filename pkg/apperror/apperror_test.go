package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nightset/nightset/pkg/apperror"
)

func TestKindsMatchWithErrorsIs(t *testing.T) {
	assert.ErrorIs(t, apperror.NotFound("User not found"), apperror.ErrNotFound)
	assert.ErrorIs(t, apperror.InvalidInput("name", "name is required"), apperror.ErrInvalidInput)
	assert.ErrorIs(t, apperror.AlreadyExists("leaderboard entry exists for dj %d", 7), apperror.ErrAlreadyExists)
	assert.ErrorIs(t, apperror.Unauthorized("admin role required"), apperror.ErrUnauthorized)
}

func TestMessageIsTheErrorString(t *testing.T) {
	err := apperror.NotFound("No playlists found for DJ: %s", "DJ Nova")
	assert.Equal(t, "No playlists found for DJ: DJ Nova", err.Error())

	verr := apperror.InvalidInput("amount", "amount must be greater than zero")
	assert.Equal(t, "amount must be greater than zero", verr.Error())
	assert.Equal(t, "amount", verr.Field)
}

func TestWrappedKindsSurviveFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("creating tip: %w", apperror.NotFound("User not found"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "User not found", appErr.Message)
}
