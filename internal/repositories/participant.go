package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

const participantColumns = `p.participant_id, p.participant_fullname, p.participant_description,
	p.ethnicity_id, p.category_id, et.ethnicity_name, c.category_name`

// ParticipantRepository reads and writes participants and their lookup tables.
type ParticipantRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewParticipantRepository(db *sqlx.DB, txGetter TxGetter) *ParticipantRepository {
	return &ParticipantRepository{db: db, txGetter: txGetter}
}

// Search returns participants whose name or description contains search, case-insensitively.
// An empty search returns every participant.
func (r *ParticipantRepository) Search(ctx context.Context, search string) ([]models.ParticipantDB, error) {
	const query = `
		SELECT ` + participantColumns + `
		FROM participants p
		LEFT JOIN ethnicities et ON et.ethnicity_id = p.ethnicity_id
		LEFT JOIN participant_categories c ON c.category_id = p.category_id
		WHERE LOWER(p.participant_fullname) LIKE ?
		   OR LOWER(COALESCE(p.participant_description, '')) LIKE ?
		ORDER BY p.participant_fullname ASC, p.participant_id ASC
	`
	pattern := "%" + strings.ToLower(search) + "%"
	args := []any{pattern, pattern}

	participants := []models.ParticipantDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &participants, r.db.Rebind(query), args...)

	logQuery(query, args, len(participants), err)

	if err != nil {
		return nil, err
	}
	return participants, nil
}

// GetByID returns the participant, or nil when there is none.
func (r *ParticipantRepository) GetByID(ctx context.Context, participantID int64) (*models.ParticipantDB, error) {
	const query = `
		SELECT ` + participantColumns + `
		FROM participants p
		LEFT JOIN ethnicities et ON et.ethnicity_id = p.ethnicity_id
		LEFT JOIN participant_categories c ON c.category_id = p.category_id
		WHERE p.participant_id = ?
	`

	var participant models.ParticipantDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &participant, r.db.Rebind(query), participantID)

	logQuery(query, []any{participantID}, participant.ParticipantID, err)

	if err != nil {
		return nil, noRows(err)
	}
	return &participant, nil
}

// Create inserts a participant and returns its id.
func (r *ParticipantRepository) Create(ctx context.Context, in models.ParticipantInput) (int64, error) {
	const query = `
		INSERT INTO participants (participant_fullname, participant_description, ethnicity_id, category_id)
		VALUES (?, ?, ?, ?)
		RETURNING participant_id
	`
	args := []any{in.Fullname, in.Description, in.EthnicityID, in.CategoryID}

	var participantID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &participantID, r.db.Rebind(query), args...)

	logQuery(query, args, participantID, err)

	return participantID, err
}

// Update overwrites a participant and returns the number of matched rows.
func (r *ParticipantRepository) Update(ctx context.Context, participantID int64, in models.ParticipantInput) (int64, error) {
	const query = `
		UPDATE participants
		SET participant_fullname = ?,
		    participant_description = ?,
		    ethnicity_id = ?,
		    category_id = ?
		WHERE participant_id = ?
	`
	args := []any{in.Fullname, in.Description, in.EthnicityID, in.CategoryID, participantID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// Delete removes a participant and returns the number of removed rows.
func (r *ParticipantRepository) Delete(ctx context.Context, participantID int64) (int64, error) {
	const query = `DELETE FROM participants WHERE participant_id = ?`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), participantID)
	n := rowsAffected(res)

	logQuery(query, []any{participantID}, n, err)

	return n, err
}

// ListCategories returns every participant category.
func (r *ParticipantRepository) ListCategories(ctx context.Context) ([]models.ParticipantCategoryDB, error) {
	const query = `
		SELECT category_id, category_name
		FROM participant_categories
		ORDER BY category_id ASC
	`

	categories := []models.ParticipantCategoryDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &categories, query)

	logQuery(query, nil, len(categories), err)

	if err != nil {
		return nil, err
	}
	return categories, nil
}
