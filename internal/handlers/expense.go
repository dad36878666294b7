package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=expense.go -destination=expense_mock.go -package=handlers

// ExpenseManager defines the event budget operations.
type ExpenseManager interface {
	ListExpenses(ctx context.Context, eventID int64) ([]models.ExpenseDB, error)
	CreateExpense(ctx context.Context, req models.ExpenseRequest) (int64, error)
	UpdateExpense(ctx context.Context, expenseID int64, req models.ExpenseRequest) error
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// NewListExpensesHandler lists the expenses recorded against an event.
// @Summary List expenses
// @Tags expense
// @Produce json
// @Param event_id query int true "Event id"
// @Success 200 {array} models.ExpenseDB
// @Failure 400 {object} models.ErrorResponse "Missing event_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /expense [get]
// @Security CookieAuth
func NewListExpensesHandler(svc ExpenseManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, "event_id", r.URL.Query().Get("event_id"))
		if !ok {
			return
		}

		items, err := svc.ListExpenses(r.Context(), eventID)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		if items == nil {
			items = []models.ExpenseDB{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// NewCreateExpenseHandler records an expense and links it to its event.
// Mounted behind TxMiddleware so both rows commit together.
// @Summary Create an expense
// @Tags expense
// @Accept json
// @Produce json
// @Param expenseRequest body models.ExpenseRequest true "Expense"
// @Success 201 {object} models.ExpenseCreateResponse
// @Failure 400 {object} models.ErrorResponse "Missing event_id, category or amount"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /expense [post]
// @Security CookieAuth
func NewCreateExpenseHandler(svc ExpenseManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ExpenseRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		id, err := svc.CreateExpense(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusCreated, models.ExpenseCreateResponse{Success: true, ExpenseID: id})
	}
}

// NewUpdateExpenseHandler overwrites an expense.
// @Summary Update an expense
// @Tags expense
// @Accept json
// @Produce json
// @Param expense_id query int true "Expense id"
// @Param expenseRequest body models.ExpenseRequest true "Expense"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid expense"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Expense not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /expense [put]
// @Security CookieAuth
func NewUpdateExpenseHandler(svc ExpenseManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenseID, ok := parseID(w, "expense_id", r.URL.Query().Get("expense_id"))
		if !ok {
			return
		}

		var req models.ExpenseRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.UpdateExpense(r.Context(), expenseID, req); err != nil {
			writeServiceError(w, r, err, "Expense not found")
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}

// NewDeleteExpenseHandler removes an expense.
// @Summary Delete an expense
// @Tags expense
// @Produce json
// @Param expense_id query int true "Expense id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Missing expense_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /expense [delete]
// @Security CookieAuth
func NewDeleteExpenseHandler(svc ExpenseManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenseID, ok := parseID(w, "expense_id", r.URL.Query().Get("expense_id"))
		if !ok {
			return
		}

		if err := svc.DeleteExpense(r.Context(), expenseID); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}
