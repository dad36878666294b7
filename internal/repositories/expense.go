package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// ExpenseRepository reads and writes expenses and their event_finance links.
// Create issues two statements; run it inside a request transaction to keep them atomic.
type ExpenseRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewExpenseRepository(db *sqlx.DB, txGetter TxGetter) *ExpenseRepository {
	return &ExpenseRepository{db: db, txGetter: txGetter}
}

// ListByEvent returns the expenses linked to the event.
func (r *ExpenseRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.ExpenseDB, error) {
	const query = `
		SELECT x.expense_id,
		       x.expense_type AS category,
		       x.title,
		       x.expense_amount AS amount,
		       x.expense_description AS description
		FROM expenses x
		JOIN event_finance ef ON ef.expense_id = x.expense_id
		WHERE ef.event_id = ?
		ORDER BY x.expense_id ASC
	`

	expenses := []models.ExpenseDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &expenses, r.db.Rebind(query), eventID)

	logQuery(query, []any{eventID}, len(expenses), err)

	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// Create inserts the expense, links it to the event and returns its id.
func (r *ExpenseRepository) Create(ctx context.Context, eventID int64, in models.ExpenseInput) (int64, error) {
	const insertExpense = `
		INSERT INTO expenses (expense_type, title, expense_amount, expense_description)
		VALUES (?, ?, ?, ?)
		RETURNING expense_id
	`
	const insertLink = `
		INSERT INTO event_finance (event_id, expense_id)
		VALUES (?, ?)
	`

	exec := executor(ctx, r.db, r.txGetter)

	args := []any{in.Category, in.Title, in.Amount, in.Description}
	var expenseID int64
	err := sqlx.GetContext(ctx, exec, &expenseID, r.db.Rebind(insertExpense), args...)

	logQuery(insertExpense, args, expenseID, err)

	if err != nil {
		return 0, err
	}

	args = []any{eventID, expenseID}
	res, err := exec.ExecContext(ctx, r.db.Rebind(insertLink), args...)

	logQuery(insertLink, args, rowsAffected(res), err)

	if err != nil {
		return 0, err
	}
	return expenseID, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expenseID int64, in models.ExpenseInput) (int64, error) {
	const query = `
		UPDATE expenses
		SET expense_type = ?,
		    title = ?,
		    expense_amount = ?,
		    expense_description = ?
		WHERE expense_id = ?
	`
	args := []any{in.Category, in.Title, in.Amount, in.Description, expenseID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// Delete removes the expense; its event_finance link cascades.
func (r *ExpenseRepository) Delete(ctx context.Context, expenseID int64) (int64, error) {
	const query = `DELETE FROM expenses WHERE expense_id = ?`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, r.db.Rebind(query), expenseID)
	n := rowsAffected(res)

	logQuery(query, []any{expenseID}, n, err)

	return n, err
}
