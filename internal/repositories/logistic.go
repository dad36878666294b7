package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// LogisticRepository reads and writes event logistics tasks.
type LogisticRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLogisticRepository(db *sqlx.DB, txGetter TxGetter) *LogisticRepository {
	return &LogisticRepository{db: db, txGetter: txGetter}
}

func (r *LogisticRepository) Create(ctx context.Context, in models.LogisticInput) (int64, error) {
	const query = `
		INSERT INTO event_logistics (event_id, logistic_title, logistic_description, logistic_status, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		RETURNING logistic_id
	`
	args := []any{in.EventID, in.Title, in.Description, in.Status}

	var logisticID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &logisticID, r.db.Rebind(query), args...)

	logQuery(query, args, logisticID, err)

	return logisticID, err
}

// ListByEvent returns the event's tasks, newest first.
func (r *LogisticRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.LogisticDB, error) {
	const query = `
		SELECT logistic_id, event_id, logistic_title, logistic_description, logistic_status, created_at
		FROM event_logistics
		WHERE event_id = ?
		ORDER BY created_at DESC, logistic_id DESC
	`

	logistics := []models.LogisticDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &logistics, r.db.Rebind(query), eventID)

	logQuery(query, []any{eventID}, len(logistics), err)

	if err != nil {
		return nil, err
	}
	return logistics, nil
}

func (r *LogisticRepository) Update(ctx context.Context, logisticID int64, in models.LogisticInput) (int64, error) {
	const query = `
		UPDATE event_logistics
		SET event_id = ?,
		    logistic_title = ?,
		    logistic_description = ?,
		    logistic_status = ?
		WHERE logistic_id = ?
	`
	args := []any{in.EventID, in.Title, in.Description, in.Status, logisticID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

func (r *LogisticRepository) Delete(ctx context.Context, logisticID int64) (int64, error) {
	const query = `DELETE FROM event_logistics WHERE logistic_id = ?`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), logisticID)
	n := rowsAffected(res)

	logQuery(query, []any{logisticID}, n, err)

	return n, err
}
