package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// UserEventWriteRepository writes favourite links between users and events.
type UserEventWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserEventWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserEventWriteRepository {
	return &UserEventWriteRepository{db: db, txGetter: txGetter}
}

// Upsert creates the link or overwrites its favourite flag.
func (r *UserEventWriteRepository) Upsert(ctx context.Context, userID, eventID int64, favorite bool) error {
	const query = `
		INSERT INTO user_events (user_id, event_id, user_favorite)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, event_id)
		DO UPDATE SET user_favorite = EXCLUDED.user_favorite
	`
	args := []any{userID, eventID, favorite}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)

	logQuery(query, args, rowsAffected(res), err)

	return err
}

// SetFavorite updates an existing link and returns the number of matched rows.
func (r *UserEventWriteRepository) SetFavorite(ctx context.Context, userID, eventID int64, favorite bool) (int64, error) {
	const query = `
		UPDATE user_events
		SET user_favorite = ?
		WHERE user_id = ? AND event_id = ?
	`
	args := []any{favorite, userID, eventID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// Delete removes the link and returns the number of removed rows.
func (r *UserEventWriteRepository) Delete(ctx context.Context, userID, eventID int64) (int64, error) {
	const query = `
		DELETE FROM user_events
		WHERE user_id = ? AND event_id = ?
	`
	args := []any{userID, eventID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// UserEventReadRepository reads favourite links.
type UserEventReadRepository struct {
	db *sqlx.DB
}

func NewUserEventReadRepository(db *sqlx.DB) *UserEventReadRepository {
	return &UserEventReadRepository{db: db}
}

// ListByUser returns the linked events with venue names, favourites first, then by start time.
func (r *UserEventReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.FavoriteEventDB, error) {
	const query = `
		SELECT ` + eventColumns + `, ue.user_favorite
		FROM user_events ue
		JOIN events e ON e.event_id = ue.event_id
		LEFT JOIN venues v ON v.venue_id = e.venue_id
		WHERE ue.user_id = ?
		ORDER BY ue.user_favorite DESC, e.event_startdatetime ASC NULLS LAST, e.event_id ASC
	`

	events := []models.FavoriteEventDB{}
	err := r.db.SelectContext(ctx, &events, r.db.Rebind(query), userID)

	logQuery(query, []any{userID}, len(events), err)

	if err != nil {
		return nil, err
	}
	return events, nil
}
