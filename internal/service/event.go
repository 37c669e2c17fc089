package service

import (
	"context"
	"fmt"

	"github.com/nightset/nightset/pkg/apperror"
	"github.com/nightset/nightset/pkg/models"
	"github.com/nightset/nightset/pkg/pagination"
)

// CreateEvent registers a new event. Every descriptive field is required
// and capacity must be non-zero.
func (s *Store) CreateEvent(ctx context.Context, payload models.EventPayload) (*models.Event, error) {
	if payload.EventName == "" {
		return nil, apperror.InvalidInput("event_name", "event name is required")
	}
	if payload.DJName == "" {
		return nil, apperror.InvalidInput("dj_name", "dj name is required")
	}
	if payload.Venue == "" {
		return nil, apperror.InvalidInput("venue", "venue is required")
	}
	if payload.Capacity == 0 {
		return nil, apperror.InvalidInput("capacity", "capacity must be greater than zero")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	event := &models.Event{
		ID:          id,
		EventName:   payload.EventName,
		DJName:      payload.DJName,
		Venue:       payload.Venue,
		Capacity:    payload.Capacity,
		ScheduledAt: payload.ScheduledAt,
		CreatedAt:   now(),
	}
	if err := s.repo.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	s.logger.Info("event created", "id", event.ID, "name", event.EventName)
	return event, nil
}

// GetEvent returns the event or NotFound.
func (s *Store) GetEvent(ctx context.Context, id uint64) (*models.Event, error) {
	event, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting event: %w", err)
	}
	if event == nil {
		return nil, apperror.NotFound("Event not found")
	}

	return event, nil
}

// DeleteEvent removes the event row. Playlists referencing it are left in
// place; foreign keys are checked at creation time only.
func (s *Store) DeleteEvent(ctx context.Context, id uint64) error {
	removed, err := s.repo.RemoveEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if removed == nil {
		return apperror.NotFound("Event not found")
	}

	s.logger.Info("event deleted", "id", id)
	return nil
}

// GetAllEvents returns every event in creation order. An empty collection
// is NotFound by contract, unlike the search-style queries.
func (s *Store) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	if len(events) == 0 {
		return nil, apperror.NotFound("No events found")
	}

	return events, nil
}

// GetEventByName returns the first event with that name.
func (s *Store) GetEventByName(ctx context.Context, name string) (*models.Event, error) {
	event, err := s.repo.FindEventByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("finding event by name: %w", err)
	}
	if event == nil {
		return nil, apperror.NotFound("Event not found")
	}

	return event, nil
}

// GetPaginatedEvents returns the 1-based page of events. An empty
// collection is NotFound; an out-of-range page over a non-empty collection
// is an empty page.
func (s *Store) GetPaginatedEvents(ctx context.Context, page, perPage int) ([]models.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	if len(events) == 0 {
		return nil, apperror.NotFound("No events found")
	}

	return pagination.Page(events, page, perPage), nil
}
