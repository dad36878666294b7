package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// EventParticipantWriteRepository writes RSVP links between events and participants.
type EventParticipantWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEventParticipantWriteRepository(db *sqlx.DB, txGetter TxGetter) *EventParticipantWriteRepository {
	return &EventParticipantWriteRepository{db: db, txGetter: txGetter}
}

// Create links a participant to an event unless the link exists; created reports whether a row was written.
func (r *EventParticipantWriteRepository) Create(ctx context.Context, eventID, participantID int64, status string) (bool, error) {
	const query = `
		INSERT INTO event_participants (event_id, participant_id, rsvp_status)
		VALUES (?, ?, ?)
		ON CONFLICT (event_id, participant_id) DO NOTHING
	`
	args := []any{eventID, participantID, status}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n == 1, err
}

// UpdateStatus sets the RSVP status of an existing link and returns the number of matched rows.
func (r *EventParticipantWriteRepository) UpdateStatus(ctx context.Context, eventID, participantID int64, status string) (int64, error) {
	const query = `
		UPDATE event_participants
		SET rsvp_status = ?
		WHERE event_id = ? AND participant_id = ?
	`
	args := []any{status, eventID, participantID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// Delete removes the link and returns the number of removed rows.
func (r *EventParticipantWriteRepository) Delete(ctx context.Context, eventID, participantID int64) (int64, error) {
	const query = `
		DELETE FROM event_participants
		WHERE event_id = ? AND participant_id = ?
	`
	args := []any{eventID, participantID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// EventParticipantReadRepository reads RSVP links.
type EventParticipantReadRepository struct {
	db *sqlx.DB
}

func NewEventParticipantReadRepository(db *sqlx.DB) *EventParticipantReadRepository {
	return &EventParticipantReadRepository{db: db}
}

// ListByEvent returns the event's participants with ethnicity, category and RSVP status.
func (r *EventParticipantReadRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.EventParticipantDB, error) {
	const query = `
		SELECT ` + participantColumns + `, ep.rsvp_status
		FROM event_participants ep
		JOIN participants p ON p.participant_id = ep.participant_id
		LEFT JOIN ethnicities et ON et.ethnicity_id = p.ethnicity_id
		LEFT JOIN participant_categories c ON c.category_id = p.category_id
		WHERE ep.event_id = ?
		ORDER BY p.participant_fullname ASC, p.participant_id ASC
	`

	participants := []models.EventParticipantDB{}
	err := r.db.SelectContext(ctx, &participants, r.db.Rebind(query), eventID)

	logQuery(query, []any{eventID}, len(participants), err)

	if err != nil {
		return nil, err
	}
	return participants, nil
}
