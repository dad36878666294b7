package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=rsvp.go -destination=rsvp_mock.go -package=services

// EventParticipantWriter writes RSVP links.
type EventParticipantWriter interface {
	Create(ctx context.Context, eventID, participantID int64, status string) (created bool, err error)
	UpdateStatus(ctx context.Context, eventID, participantID int64, status string) (int64, error)
	Delete(ctx context.Context, eventID, participantID int64) (int64, error)
}

// EventParticipantReader reads RSVP links.
type EventParticipantReader interface {
	ListByEvent(ctx context.Context, eventID int64) ([]models.EventParticipantDB, error)
}

// RSVPService manages the RSVP status of event participants.
type RSVPService struct {
	writer EventParticipantWriter
	reader EventParticipantReader
	activityPublisher
}

// NewRSVPService creates a new RSVPService.
func NewRSVPService(writer EventParticipantWriter, reader EventParticipantReader, kafkaWriter KafkaWriter) *RSVPService {
	return &RSVPService{
		writer:            writer,
		reader:            reader,
		activityPublisher: activityPublisher{writer: kafkaWriter},
	}
}

func validateLink(eventID, participantID int64) error {
	if eventID <= 0 || participantID <= 0 {
		return fmt.Errorf("%w: event_id and participant_id are required", ErrInvalidInput)
	}
	return nil
}

func validateStatus(status string) error {
	if !models.ValidRSVPStatus(status) {
		return fmt.Errorf("%w: rsvp_status must be one of %s, %s or %s",
			ErrInvalidInput, models.RSVPPending, models.RSVPAccepted, models.RSVPDeclined)
	}
	return nil
}

// Create links a participant to an event with status, Pending when nil.
// An existing link is left untouched and reported as created == false.
func (s *RSVPService) Create(ctx context.Context, userID, eventID, participantID int64, status *string) (bool, error) {
	if err := validateLink(eventID, participantID); err != nil {
		return false, err
	}
	st := models.RSVPPending
	if status != nil && *status != "" {
		st = *status
	}
	if err := validateStatus(st); err != nil {
		return false, err
	}

	created, err := s.writer.Create(ctx, eventID, participantID, st)
	if err != nil {
		logger.Log.Errorw("failed to link participant", "event_id", eventID, "participant_id", participantID, "error", err)
		return false, err
	}

	if created {
		s.publish(ctx, userID, eventID, models.OperationRSVPCreate, participantDetail(participantID, st))
	}
	return created, nil
}

// UpdateStatus sets the status of an existing link; ErrNotFound when the pair is not linked.
func (s *RSVPService) UpdateStatus(ctx context.Context, userID, eventID, participantID int64, status string) error {
	if err := validateLink(eventID, participantID); err != nil {
		return err
	}
	if status == "" {
		return fmt.Errorf("%w: rsvp_status is required", ErrInvalidInput)
	}
	if err := validateStatus(status); err != nil {
		return err
	}

	n, err := s.writer.UpdateStatus(ctx, eventID, participantID, status)
	if err != nil {
		logger.Log.Errorw("failed to update rsvp", "event_id", eventID, "participant_id", participantID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: link", ErrNotFound)
	}

	s.publish(ctx, userID, eventID, models.OperationRSVPUpdate, participantDetail(participantID, status))
	return nil
}

// List returns the participants of an event with their RSVP status.
func (s *RSVPService) List(ctx context.Context, eventID int64) ([]models.EventParticipantDB, error) {
	if eventID <= 0 {
		return nil, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	participants, err := s.reader.ListByEvent(ctx, eventID)
	if err != nil {
		logger.Log.Errorw("failed to list event participants", "event_id", eventID, "error", err)
		return nil, err
	}
	return participants, nil
}

// Remove unlinks a participant from an event. Removing an absent link succeeds.
func (s *RSVPService) Remove(ctx context.Context, userID, eventID, participantID int64) error {
	if err := validateLink(eventID, participantID); err != nil {
		return err
	}

	n, err := s.writer.Delete(ctx, eventID, participantID)
	if err != nil {
		logger.Log.Errorw("failed to unlink participant", "event_id", eventID, "participant_id", participantID, "error", err)
		return err
	}

	if n > 0 {
		s.publish(ctx, userID, eventID, models.OperationRSVPRemove, participantDetail(participantID, ""))
	}
	return nil
}

func participantDetail(participantID int64, status string) string {
	detail := "participant_id=" + strconv.FormatInt(participantID, 10)
	if status != "" {
		detail += " rsvp_status=" + status
	}
	return detail
}
