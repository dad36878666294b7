package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=saved_event.go -destination=saved_event_mock.go -package=services

// SavedEventWriter writes bookmarks.
type SavedEventWriter interface {
	Save(ctx context.Context, userID int64, in models.SavedEventInput) (created bool, err error)
	Delete(ctx context.Context, userID, eventID int64) (int64, error)
}

// SavedEventReader reads bookmarks.
type SavedEventReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.SavedEventDB, error)
}

// UserEventWriter writes favourite links.
type UserEventWriter interface {
	Upsert(ctx context.Context, userID, eventID int64, favorite bool) error
	SetFavorite(ctx context.Context, userID, eventID int64, favorite bool) (int64, error)
	Delete(ctx context.Context, userID, eventID int64) (int64, error)
}

// UserEventReader reads favourite links.
type UserEventReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.FavoriteEventDB, error)
}

// SavedEventService keeps per-user bookmarks and favourite links in sync.
// Every method expects an already resolved user id.
type SavedEventService struct {
	savedWriter SavedEventWriter
	savedReader SavedEventReader
	linkWriter  UserEventWriter
	linkReader  UserEventReader
	activityPublisher
}

// NewSavedEventService creates a new SavedEventService.
func NewSavedEventService(
	savedWriter SavedEventWriter,
	savedReader SavedEventReader,
	linkWriter UserEventWriter,
	linkReader UserEventReader,
	kafkaWriter KafkaWriter,
) *SavedEventService {
	return &SavedEventService{
		savedWriter:       savedWriter,
		savedReader:       savedReader,
		linkWriter:        linkWriter,
		linkReader:        linkReader,
		activityPublisher: activityPublisher{writer: kafkaWriter},
	}
}

// List returns the user's bookmarks, favourites first, then by start time.
func (s *SavedEventService) List(ctx context.Context, userID int64) ([]models.SavedEventDB, error) {
	events, err := s.savedReader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list saved events", "user_id", userID, "error", err)
		return nil, err
	}
	return events, nil
}

// Save bookmarks an event. Saving an already saved event is a no-op; the first snapshot is kept.
func (s *SavedEventService) Save(ctx context.Context, userID int64, req models.SaveEventRequest) error {
	in, err := savedEventInput(req)
	if err != nil {
		return err
	}

	created, err := s.savedWriter.Save(ctx, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to save event", "user_id", userID, "event_id", in.EventID, "error", err)
		return err
	}

	if created {
		s.publish(ctx, userID, in.EventID, models.OperationSave, in.EventName)
	}
	return nil
}

func savedEventInput(req models.SaveEventRequest) (models.SavedEventInput, error) {
	name := strings.TrimSpace(req.EventName)
	url := strings.TrimSpace(req.EventURL)
	if req.EventID <= 0 || name == "" || url == "" {
		return models.SavedEventInput{}, fmt.Errorf("%w: event_id, event_name and event_url are required", ErrInvalidInput)
	}

	start, err := parseDatetime("datetime_start", req.DatetimeStart)
	if err != nil {
		return models.SavedEventInput{}, err
	}
	end, err := parseDatetime("datetime_end", req.DatetimeEnd)
	if err != nil {
		return models.SavedEventInput{}, err
	}

	var thumbnail *string
	if req.ThumbnailURL != nil && strings.TrimSpace(*req.ThumbnailURL) != "" {
		thumbnail = req.ThumbnailURL
	}

	return models.SavedEventInput{
		EventID:       req.EventID,
		EventName:     name,
		EventURL:      url,
		ThumbnailURL:  thumbnail,
		DatetimeStart: start,
		DatetimeEnd:   end,
	}, nil
}

// Unsave removes a bookmark and returns the number of removed rows (0 or 1).
func (s *SavedEventService) Unsave(ctx context.Context, userID, eventID int64) (int64, error) {
	if eventID <= 0 {
		return 0, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	deleted, err := s.savedWriter.Delete(ctx, userID, eventID)
	if err != nil {
		logger.Log.Errorw("failed to unsave event", "user_id", userID, "event_id", eventID, "error", err)
		return 0, err
	}

	if deleted > 0 {
		s.publish(ctx, userID, eventID, models.OperationUnsave, "")
	}
	return deleted, nil
}

// ListFavorites returns the user's linked events, favourites first, then by start time.
func (s *SavedEventService) ListFavorites(ctx context.Context, userID int64) ([]models.FavoriteEventDB, error) {
	events, err := s.linkReader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user events", "user_id", userID, "error", err)
		return nil, err
	}
	return events, nil
}

// ToggleFavorite creates the link or overwrites its flag; the last write wins.
func (s *SavedEventService) ToggleFavorite(ctx context.Context, userID, eventID int64, favorite bool) error {
	if eventID <= 0 {
		return fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	if err := s.linkWriter.Upsert(ctx, userID, eventID, favorite); err != nil {
		logger.Log.Errorw("failed to upsert user event", "user_id", userID, "event_id", eventID, "error", err)
		return err
	}

	s.publish(ctx, userID, eventID, models.OperationFavorite, strconv.FormatBool(favorite))
	return nil
}

// SetFavorite updates the flag of an existing link; ErrNotFound when there is none.
func (s *SavedEventService) SetFavorite(ctx context.Context, userID, eventID int64, favorite bool) error {
	if eventID <= 0 {
		return fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	n, err := s.linkWriter.SetFavorite(ctx, userID, eventID, favorite)
	if err != nil {
		logger.Log.Errorw("failed to update user event", "user_id", userID, "event_id", eventID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: link", ErrNotFound)
	}

	s.publish(ctx, userID, eventID, models.OperationFavorite, strconv.FormatBool(favorite))
	return nil
}

// Unlink removes the favourite link and returns the number of removed rows.
func (s *SavedEventService) Unlink(ctx context.Context, userID, eventID int64) (int64, error) {
	if eventID <= 0 {
		return 0, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	deleted, err := s.linkWriter.Delete(ctx, userID, eventID)
	if err != nil {
		logger.Log.Errorw("failed to delete user event", "user_id", userID, "event_id", eventID, "error", err)
		return 0, err
	}

	if deleted > 0 {
		s.publish(ctx, userID, eventID, models.OperationUnlink, "")
	}
	return deleted, nil
}
