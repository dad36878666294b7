package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// eventColumns selects an event with the linked venue name taking precedence over the free-text one.
const eventColumns = `e.event_id, e.user_id, e.event_title, e.event_description,
	e.event_startdatetime, e.event_enddatetime, e.event_budget,
	e.venue_id, e.venue_place_id, COALESCE(v.venue_name, e.venue_name) AS venue_name,
	e.venue_address, e.created_at`

// EventRepository reads and writes events. Single-event access is scoped to the owner.
type EventRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEventRepository(db *sqlx.DB, txGetter TxGetter) *EventRepository {
	return &EventRepository{db: db, txGetter: txGetter}
}

// ListByUser returns the user's events ordered by start time.
func (r *EventRepository) ListByUser(ctx context.Context, userID int64) ([]models.EventDB, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM events e
		LEFT JOIN venues v ON v.venue_id = e.venue_id
		WHERE e.user_id = ?
		ORDER BY e.event_startdatetime ASC NULLS LAST, e.event_id ASC
	`
	return r.list(ctx, query, userID)
}

// ListAll returns every event ordered by start time.
func (r *EventRepository) ListAll(ctx context.Context) ([]models.EventDB, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM events e
		LEFT JOIN venues v ON v.venue_id = e.venue_id
		ORDER BY e.event_startdatetime ASC NULLS LAST, e.event_id ASC
	`
	return r.list(ctx, query)
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]models.EventDB, error) {
	events := []models.EventDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &events, r.db.Rebind(query), args...)

	logQuery(query, args, len(events), err)

	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID returns the event if userID owns it, otherwise nil.
func (r *EventRepository) GetByID(ctx context.Context, userID, eventID int64) (*models.EventDB, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM events e
		LEFT JOIN venues v ON v.venue_id = e.venue_id
		WHERE e.event_id = ? AND e.user_id = ?
	`
	args := []any{eventID, userID}

	var event models.EventDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &event, r.db.Rebind(query), args...)

	logQuery(query, args, event.EventID, err)

	if err != nil {
		return nil, noRows(err)
	}
	return &event, nil
}

// Create inserts an event owned by userID and returns its id.
func (r *EventRepository) Create(ctx context.Context, userID int64, in models.EventInput) (int64, error) {
	const query = `
		INSERT INTO events
			(user_id, event_title, event_description, event_startdatetime, event_enddatetime,
			 event_budget, venue_id, venue_place_id, venue_name, venue_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		RETURNING event_id
	`
	args := []any{
		userID, in.Title, in.Description, in.StartDatetime, in.EndDatetime,
		in.Budget, in.VenueID, in.VenuePlaceID, in.VenueName, in.VenueAddress,
	}

	var eventID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &eventID, r.db.Rebind(query), args...)

	logQuery(query, args, eventID, err)

	return eventID, err
}

// Update overwrites an owned event and returns the number of matched rows.
func (r *EventRepository) Update(ctx context.Context, userID, eventID int64, in models.EventInput) (int64, error) {
	const query = `
		UPDATE events
		SET event_title = ?,
		    event_description = ?,
		    event_startdatetime = ?,
		    event_enddatetime = ?,
		    event_budget = ?,
		    venue_id = ?,
		    venue_place_id = ?,
		    venue_name = ?,
		    venue_address = ?
		WHERE event_id = ? AND user_id = ?
	`
	args := []any{
		in.Title, in.Description, in.StartDatetime, in.EndDatetime, in.Budget,
		in.VenueID, in.VenuePlaceID, in.VenueName, in.VenueAddress, eventID, userID,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// Delete removes an owned event and returns the number of removed rows.
func (r *EventRepository) Delete(ctx context.Context, userID, eventID int64) (int64, error) {
	const query = `
		DELETE FROM events
		WHERE event_id = ? AND user_id = ?
	`
	args := []any{eventID, userID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}
