package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// SavedEventWriteRepository writes per-user event bookmarks.
type SavedEventWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSavedEventWriteRepository(db *sqlx.DB, txGetter TxGetter) *SavedEventWriteRepository {
	return &SavedEventWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a bookmark unless the (user, event) pair already exists.
// The first snapshot wins; created reports whether a row was written.
func (r *SavedEventWriteRepository) Save(ctx context.Context, userID int64, in models.SavedEventInput) (bool, error) {
	const query = `
		INSERT INTO saved_events
			(user_id, event_id, event_name, event_url, thumbnail_url, datetime_start, datetime_end, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`
	args := []any{userID, in.EventID, in.EventName, in.EventURL, in.ThumbnailURL, in.DatetimeStart, in.DatetimeEnd}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n == 1, err
}

// Delete removes the bookmark and returns the number of removed rows.
func (r *SavedEventWriteRepository) Delete(ctx context.Context, userID, eventID int64) (int64, error) {
	const query = `
		DELETE FROM saved_events
		WHERE user_id = ? AND event_id = ?
	`
	args := []any{userID, eventID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// SavedEventReadRepository reads per-user event bookmarks.
type SavedEventReadRepository struct {
	db *sqlx.DB
}

func NewSavedEventReadRepository(db *sqlx.DB) *SavedEventReadRepository {
	return &SavedEventReadRepository{db: db}
}

// ListByUser returns the user's bookmarks, favourites first, then by start time.
func (r *SavedEventReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.SavedEventDB, error) {
	const query = `
		SELECT s.id, s.user_id, s.event_id, s.event_name, s.event_url, s.thumbnail_url,
		       s.datetime_start, s.datetime_end, s.created_at,
		       COALESCE(ue.user_favorite, FALSE) AS favorite
		FROM saved_events s
		LEFT JOIN user_events ue ON ue.user_id = s.user_id AND ue.event_id = s.event_id
		WHERE s.user_id = ?
		ORDER BY favorite DESC, s.datetime_start ASC NULLS LAST, s.id ASC
	`

	events := []models.SavedEventDB{}
	err := r.db.SelectContext(ctx, &events, r.db.Rebind(query), userID)

	logQuery(query, []any{userID}, len(events), err)

	if err != nil {
		return nil, err
	}
	return events, nil
}
