package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=participant.go -destination=participant_mock.go -package=services

// ParticipantStore reads and writes participants.
type ParticipantStore interface {
	Search(ctx context.Context, search string) ([]models.ParticipantDB, error)
	GetByID(ctx context.Context, participantID int64) (*models.ParticipantDB, error)
	Create(ctx context.Context, in models.ParticipantInput) (int64, error)
	Update(ctx context.Context, participantID int64, in models.ParticipantInput) (int64, error)
	Delete(ctx context.Context, participantID int64) (int64, error)
	ListCategories(ctx context.Context) ([]models.ParticipantCategoryDB, error)
}

// ParticipantService manages the participant directory.
type ParticipantService struct {
	store ParticipantStore
}

// NewParticipantService creates a new ParticipantService.
func NewParticipantService(store ParticipantStore) *ParticipantService {
	return &ParticipantService{store: store}
}

// Search lists participants whose name or description contains search.
func (s *ParticipantService) Search(ctx context.Context, search string) ([]models.ParticipantDB, error) {
	participants, err := s.store.Search(ctx, strings.TrimSpace(search))
	if err != nil {
		logger.Log.Errorw("failed to search participants", "search", search, "error", err)
		return nil, err
	}
	return participants, nil
}

// Get returns a participant; ErrNotFound when there is none.
func (s *ParticipantService) Get(ctx context.Context, participantID int64) (*models.ParticipantDB, error) {
	if err := requireID("participant_id", participantID); err != nil {
		return nil, err
	}
	participant, err := s.store.GetByID(ctx, participantID)
	if err != nil {
		logger.Log.Errorw("failed to get participant", "participant_id", participantID, "error", err)
		return nil, err
	}
	if participant == nil {
		return nil, fmt.Errorf("%w: participant", ErrNotFound)
	}
	return participant, nil
}

func participantInput(req models.ParticipantRequest) (models.ParticipantInput, error) {
	name := strings.TrimSpace(req.Fullname)
	if name == "" {
		return models.ParticipantInput{}, fmt.Errorf("%w: participant_fullname is required", ErrInvalidInput)
	}
	return models.ParticipantInput{
		Fullname:    name,
		Description: req.Description,
		EthnicityID: req.EthnicityID,
		CategoryID:  req.CategoryID,
	}, nil
}

// Create adds a participant and returns its id.
func (s *ParticipantService) Create(ctx context.Context, req models.ParticipantRequest) (int64, error) {
	in, err := participantInput(req)
	if err != nil {
		return 0, err
	}
	id, err := s.store.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create participant", "error", err)
		return 0, err
	}
	return id, nil
}

// Update overwrites a participant; ErrNotFound when there is none.
func (s *ParticipantService) Update(ctx context.Context, participantID int64, req models.ParticipantRequest) error {
	if err := requireID("participant_id", participantID); err != nil {
		return err
	}
	in, err := participantInput(req)
	if err != nil {
		return err
	}
	n, err := s.store.Update(ctx, participantID, in)
	if err != nil {
		logger.Log.Errorw("failed to update participant", "participant_id", participantID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: participant", ErrNotFound)
	}
	return nil
}

// Delete removes a participant together with its RSVP links.
func (s *ParticipantService) Delete(ctx context.Context, participantID int64) error {
	if err := requireID("participant_id", participantID); err != nil {
		return err
	}
	if _, err := s.store.Delete(ctx, participantID); err != nil {
		logger.Log.Errorw("failed to delete participant", "participant_id", participantID, "error", err)
		return err
	}
	return nil
}

func (s *ParticipantService) Categories(ctx context.Context) ([]models.ParticipantCategoryDB, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list participant categories", "error", err)
		return nil, err
	}
	return categories, nil
}
