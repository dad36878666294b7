package services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=eventfinda.go -destination=eventfinda_mock.go -package=services

// Eventfinda proxy defaults.
const (
	EventfindaMaxRows    = 100
	DefaultLocationQuery = "melbourne"
)

// EventfindaReader reads the Eventfinda API.
type EventfindaReader interface {
	FindLocationID(ctx context.Context, query string) (int64, error)
	ListEvents(ctx context.Context, locationID int64, q models.EventfindaQuery) (models.EventfindaEvents, error)
	ListCategories(ctx context.Context) (models.EventfindaCategories, error)
}

// EventfindaCache caches Eventfinda lookups.
type EventfindaCache interface {
	GetLocationID(ctx context.Context, query string) (int64, error)
	SetLocationID(ctx context.Context, query string, id int64) error
	GetCategories(ctx context.Context) ([]byte, error)
	SetCategories(ctx context.Context, data []byte) error
}

// EventfindaService proxies Eventfinda listings for one configured location.
type EventfindaService struct {
	reader        EventfindaReader
	cache         EventfindaCache
	locationQuery string
}

// NewEventfindaService creates a new EventfindaService; an empty locationQuery selects DefaultLocationQuery.
func NewEventfindaService(reader EventfindaReader, cache EventfindaCache, locationQuery string) *EventfindaService {
	if locationQuery == "" {
		locationQuery = DefaultLocationQuery
	}
	return &EventfindaService{
		reader:        reader,
		cache:         cache,
		locationQuery: locationQuery,
	}
}

// NormalizeQuery clamps page to at least 1 and rows to 1..EventfindaMaxRows.
func NormalizeQuery(q models.EventfindaQuery) models.EventfindaQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Rows < 1 {
		q.Rows = 1
	}
	if q.Rows > EventfindaMaxRows {
		q.Rows = EventfindaMaxRows
	}
	return q
}

// Events returns one page of events for the configured location.
func (s *EventfindaService) Events(ctx context.Context, q models.EventfindaQuery) (models.EventfindaEvents, error) {
	locationID, err := s.locationID(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.reader.ListEvents(ctx, locationID, NormalizeQuery(q))
	if err != nil {
		logger.Log.Errorw("failed to list eventfinda events", "location_id", locationID, "error", err)
		return nil, err
	}
	return events, nil
}

// locationID resolves the configured location through the cache, refreshing it on a miss.
func (s *EventfindaService) locationID(ctx context.Context) (int64, error) {
	id, err := s.cache.GetLocationID(ctx, s.locationQuery)
	if err == nil && id > 0 {
		return id, nil
	}

	id, err = s.reader.FindLocationID(ctx, s.locationQuery)
	if err != nil {
		logger.Log.Errorw("failed to resolve location", "query", s.locationQuery, "error", err)
		return 0, err
	}

	if err := s.cache.SetLocationID(ctx, s.locationQuery, id); err != nil {
		logger.Log.Errorw("failed to cache location id", "query", s.locationQuery, "id", id, "error", err)
	}
	return id, nil
}

// Categories returns the Eventfinda category list, served from cache when possible.
func (s *EventfindaService) Categories(ctx context.Context) (json.RawMessage, error) {
	if data, err := s.cache.GetCategories(ctx); err == nil && json.Valid(data) {
		return data, nil
	}

	categories, err := s.reader.ListCategories(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list eventfinda categories", "error", err)
		return nil, err
	}

	data, err := json.Marshal(categories)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCategories(ctx, data); err != nil {
		logger.Log.Errorw("failed to cache eventfinda categories", "error", err)
	}
	return data, nil
}
