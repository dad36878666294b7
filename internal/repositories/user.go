package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`
	return r.get(ctx, query, email)
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, created_at
		FROM users
		WHERE user_id = ?
	`
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, r.db.Rebind(query), arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if err != nil {
		return nil, noRows(err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user and returns its id. An existing email yields created == false.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (userID int64, created bool, err error) {
	const query = `
		INSERT INTO users (email, password_hash, created_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (email) DO NOTHING
		RETURNING user_id
	`

	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &userID, r.db.Rebind(query), email, passwordHash)

	logQuery(query, []any{email}, userID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return userID, true, nil
}
