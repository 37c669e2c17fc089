package service

import (
	"context"
	"fmt"

	"github.com/nightset/nightset/pkg/apperror"
	"github.com/nightset/nightset/pkg/models"
)

// CreatePlaylist records a playlist for an existing event. The input is
// invalid only when the dj name and the song list are both empty.
func (s *Store) CreatePlaylist(ctx context.Context, payload models.PlaylistPayload) (*models.Playlist, error) {
	if payload.DJName == "" && len(payload.SongList) == 0 {
		return nil, apperror.InvalidInput("dj_name", "dj name or song list is required")
	}

	exists, err := s.repo.ContainsEvent(ctx, payload.EventID)
	if err != nil {
		return nil, fmt.Errorf("creating playlist: %w", err)
	}
	if !exists {
		return nil, apperror.NotFound("Event not found")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating playlist: %w", err)
	}

	playlist := &models.Playlist{
		ID:        id,
		DJName:    payload.DJName,
		EventID:   payload.EventID,
		SongList:  payload.SongList,
		CreatedAt: now(),
	}
	if err := s.repo.InsertPlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("creating playlist: %w", err)
	}

	s.logger.Info("playlist created", "id", playlist.ID, "event_id", playlist.EventID)
	return playlist, nil
}

// GetPlaylistsByDJName returns the DJ's playlists in creation order. No
// matches is NotFound: playlist queries report absence as an error, unlike
// the user role search.
func (s *Store) GetPlaylistsByDJName(ctx context.Context, djName string) ([]models.Playlist, error) {
	playlists, err := s.repo.ListPlaylistsByDJName(ctx, djName)
	if err != nil {
		return nil, fmt.Errorf("listing playlists by dj: %w", err)
	}
	if len(playlists) == 0 {
		return nil, apperror.NotFound("No playlists found for DJ: %s", djName)
	}

	return playlists, nil
}

// GetPlaylistsByEventID returns the event's playlists in creation order.
func (s *Store) GetPlaylistsByEventID(ctx context.Context, eventID uint64) ([]models.Playlist, error) {
	playlists, err := s.repo.ListPlaylistsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("listing playlists by event: %w", err)
	}
	if len(playlists) == 0 {
		return nil, apperror.NotFound("No playlists found for event ID: %d", eventID)
	}

	return playlists, nil
}
