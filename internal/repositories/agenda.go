package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// AgendaRepository reads and writes event agenda items.
type AgendaRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAgendaRepository(db *sqlx.DB, txGetter TxGetter) *AgendaRepository {
	return &AgendaRepository{db: db, txGetter: txGetter}
}

func (r *AgendaRepository) Create(ctx context.Context, in models.AgendaInput) (int64, error) {
	const query = `
		INSERT INTO event_agenda
			(event_id, agenda_timeframe, agenda_title, agenda_description, agenda_status, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		RETURNING agenda_id
	`
	args := []any{in.EventID, in.Timeframe, in.Title, in.Description, in.Status}

	var agendaID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &agendaID, r.db.Rebind(query), args...)

	logQuery(query, args, agendaID, err)

	return agendaID, err
}

// ListByEvent returns the event's agenda, newest first.
func (r *AgendaRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.AgendaDB, error) {
	const query = `
		SELECT agenda_id, event_id, agenda_timeframe, agenda_title, agenda_description, agenda_status, created_at
		FROM event_agenda
		WHERE event_id = ?
		ORDER BY created_at DESC, agenda_id DESC
	`

	items := []models.AgendaDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &items, r.db.Rebind(query), eventID)

	logQuery(query, []any{eventID}, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *AgendaRepository) Update(ctx context.Context, agendaID int64, in models.AgendaInput) (int64, error) {
	const query = `
		UPDATE event_agenda
		SET event_id = ?,
		    agenda_timeframe = ?,
		    agenda_title = ?,
		    agenda_description = ?,
		    agenda_status = ?
		WHERE agenda_id = ?
	`
	args := []any{in.EventID, in.Timeframe, in.Title, in.Description, in.Status, agendaID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

func (r *AgendaRepository) Delete(ctx context.Context, agendaID int64) (int64, error) {
	const query = `DELETE FROM event_agenda WHERE agenda_id = ?`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), agendaID)
	n := rowsAffected(res)

	logQuery(query, []any{agendaID}, n, err)

	return n, err
}
