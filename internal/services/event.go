package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=event.go -destination=event_mock.go -package=services

// EventStore reads and writes events; single-event access is owner-scoped.
type EventStore interface {
	ListByUser(ctx context.Context, userID int64) ([]models.EventDB, error)
	ListAll(ctx context.Context) ([]models.EventDB, error)
	GetByID(ctx context.Context, userID, eventID int64) (*models.EventDB, error)
	Create(ctx context.Context, userID int64, in models.EventInput) (int64, error)
	Update(ctx context.Context, userID, eventID int64, in models.EventInput) (int64, error)
	Delete(ctx context.Context, userID, eventID int64) (int64, error)
}

// EventService serves the event read models and owner-scoped event CRUD.
type EventService struct {
	store EventStore
}

// NewEventService creates a new EventService.
func NewEventService(store EventStore) *EventService {
	return &EventService{store: store}
}

func (s *EventService) ListByUser(ctx context.Context, userID int64) ([]models.EventDB, error) {
	events, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list events", "user_id", userID, "error", err)
		return nil, err
	}
	return events, nil
}

func (s *EventService) ListAll(ctx context.Context) ([]models.EventDB, error) {
	events, err := s.store.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list all events", "error", err)
		return nil, err
	}
	return events, nil
}

// Get returns an event owned by userID; ErrNotFound otherwise.
func (s *EventService) Get(ctx context.Context, userID, eventID int64) (*models.EventDB, error) {
	event, err := s.store.GetByID(ctx, userID, eventID)
	if err != nil {
		logger.Log.Errorw("failed to get event", "user_id", userID, "event_id", eventID, "error", err)
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event", ErrNotFound)
	}
	return event, nil
}

// Create inserts an event owned by userID and returns the stored row.
func (s *EventService) Create(ctx context.Context, userID int64, req models.EventRequest) (*models.EventDB, error) {
	in, err := eventInput(req)
	if err != nil {
		return nil, err
	}

	eventID, err := s.store.Create(ctx, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to create event", "user_id", userID, "error", err)
		return nil, err
	}
	return s.Get(ctx, userID, eventID)
}

// Update overwrites an owned event and returns the stored row; ErrNotFound when not owned.
func (s *EventService) Update(ctx context.Context, userID, eventID int64, req models.EventRequest) (*models.EventDB, error) {
	in, err := eventInput(req)
	if err != nil {
		return nil, err
	}

	n, err := s.store.Update(ctx, userID, eventID, in)
	if err != nil {
		logger.Log.Errorw("failed to update event", "user_id", userID, "event_id", eventID, "error", err)
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: event", ErrNotFound)
	}
	return s.Get(ctx, userID, eventID)
}

// Delete removes an owned event; ErrNotFound when not owned.
func (s *EventService) Delete(ctx context.Context, userID, eventID int64) error {
	n, err := s.store.Delete(ctx, userID, eventID)
	if err != nil {
		logger.Log.Errorw("failed to delete event", "user_id", userID, "event_id", eventID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: event", ErrNotFound)
	}
	return nil
}

func eventInput(req models.EventRequest) (models.EventInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.EventInput{}, fmt.Errorf("%w: event_title is required", ErrInvalidInput)
	}

	start, err := parseDatetime("event_startdatetime", req.StartDatetime)
	if err != nil {
		return models.EventInput{}, err
	}
	end, err := parseDatetime("event_enddatetime", req.EndDatetime)
	if err != nil {
		return models.EventInput{}, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return models.EventInput{}, fmt.Errorf("%w: event_enddatetime is before event_startdatetime", ErrInvalidInput)
	}

	var budget float64
	if req.Budget != nil {
		budget = *req.Budget
	}
	if budget < 0 {
		return models.EventInput{}, fmt.Errorf("%w: event_budget must not be negative", ErrInvalidInput)
	}

	return models.EventInput{
		Title:         title,
		Description:   req.Description,
		StartDatetime: start,
		EndDatetime:   end,
		Budget:        budget,
		VenueID:       req.VenueID,
		VenuePlaceID:  req.VenuePlaceID,
		VenueName:     req.VenueName,
		VenueAddress:  req.VenueAddress,
	}, nil
}
