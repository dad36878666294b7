package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=planning.go -destination=planning_mock.go -package=services

// LogisticStore reads and writes logistics tasks.
type LogisticStore interface {
	Create(ctx context.Context, in models.LogisticInput) (int64, error)
	ListByEvent(ctx context.Context, eventID int64) ([]models.LogisticDB, error)
	Update(ctx context.Context, logisticID int64, in models.LogisticInput) (int64, error)
	Delete(ctx context.Context, logisticID int64) (int64, error)
}

// AgendaStore reads and writes agenda items.
type AgendaStore interface {
	Create(ctx context.Context, in models.AgendaInput) (int64, error)
	ListByEvent(ctx context.Context, eventID int64) ([]models.AgendaDB, error)
	Update(ctx context.Context, agendaID int64, in models.AgendaInput) (int64, error)
	Delete(ctx context.Context, agendaID int64) (int64, error)
}

// ExpenseStore reads and writes expenses.
type ExpenseStore interface {
	ListByEvent(ctx context.Context, eventID int64) ([]models.ExpenseDB, error)
	Create(ctx context.Context, eventID int64, in models.ExpenseInput) (int64, error)
	Update(ctx context.Context, expenseID int64, in models.ExpenseInput) (int64, error)
	Delete(ctx context.Context, expenseID int64) (int64, error)
}

// PlanningService manages the logistics, agenda and budget of events.
type PlanningService struct {
	logistics LogisticStore
	agenda    AgendaStore
	expenses  ExpenseStore
}

// NewPlanningService creates a new PlanningService.
func NewPlanningService(logistics LogisticStore, agenda AgendaStore, expenses ExpenseStore) *PlanningService {
	return &PlanningService{
		logistics: logistics,
		agenda:    agenda,
		expenses:  expenses,
	}
}

func requireID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	return nil
}

func statusOrPending(status *string) string {
	if status == nil || strings.TrimSpace(*status) == "" {
		return models.StatusPending
	}
	return strings.TrimSpace(*status)
}

func logisticInput(req models.LogisticRequest) (models.LogisticInput, error) {
	if err := requireID("event_id", req.EventID); err != nil {
		return models.LogisticInput{}, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.LogisticInput{}, fmt.Errorf("%w: logistic_title is required", ErrInvalidInput)
	}
	return models.LogisticInput{
		EventID:     req.EventID,
		Title:       title,
		Description: req.Description,
		Status:      statusOrPending(req.Status),
	}, nil
}

// CreateLogistic adds a logistics task; status defaults to Pending.
func (s *PlanningService) CreateLogistic(ctx context.Context, req models.LogisticRequest) (int64, error) {
	in, err := logisticInput(req)
	if err != nil {
		return 0, err
	}
	id, err := s.logistics.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create logistics task", "event_id", in.EventID, "error", err)
		return 0, err
	}
	return id, nil
}

func (s *PlanningService) ListLogistics(ctx context.Context, eventID int64) ([]models.LogisticDB, error) {
	if err := requireID("event_id", eventID); err != nil {
		return nil, err
	}
	items, err := s.logistics.ListByEvent(ctx, eventID)
	if err != nil {
		logger.Log.Errorw("failed to list logistics tasks", "event_id", eventID, "error", err)
		return nil, err
	}
	return items, nil
}

// UpdateLogistic overwrites a task; ErrNotFound when it does not exist.
func (s *PlanningService) UpdateLogistic(ctx context.Context, logisticID int64, req models.LogisticRequest) error {
	if err := requireID("logistic_id", logisticID); err != nil {
		return err
	}
	in, err := logisticInput(req)
	if err != nil {
		return err
	}
	n, err := s.logistics.Update(ctx, logisticID, in)
	if err != nil {
		logger.Log.Errorw("failed to update logistics task", "logistic_id", logisticID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: logistics task", ErrNotFound)
	}
	return nil
}

// DeleteLogistic removes a task. Removing an absent task succeeds.
func (s *PlanningService) DeleteLogistic(ctx context.Context, logisticID int64) error {
	if err := requireID("logistic_id", logisticID); err != nil {
		return err
	}
	if _, err := s.logistics.Delete(ctx, logisticID); err != nil {
		logger.Log.Errorw("failed to delete logistics task", "logistic_id", logisticID, "error", err)
		return err
	}
	return nil
}

func agendaInput(req models.AgendaRequest) (models.AgendaInput, error) {
	if err := requireID("event_id", req.EventID); err != nil {
		return models.AgendaInput{}, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.AgendaInput{}, fmt.Errorf("%w: agenda_title is required", ErrInvalidInput)
	}
	return models.AgendaInput{
		EventID:     req.EventID,
		Timeframe:   req.Timeframe,
		Title:       title,
		Description: req.Description,
		Status:      statusOrPending(req.Status),
	}, nil
}

// CreateAgenda adds an agenda item; status defaults to Pending.
func (s *PlanningService) CreateAgenda(ctx context.Context, req models.AgendaRequest) (int64, error) {
	in, err := agendaInput(req)
	if err != nil {
		return 0, err
	}
	id, err := s.agenda.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create agenda item", "event_id", in.EventID, "error", err)
		return 0, err
	}
	return id, nil
}

func (s *PlanningService) ListAgenda(ctx context.Context, eventID int64) ([]models.AgendaDB, error) {
	if err := requireID("event_id", eventID); err != nil {
		return nil, err
	}
	items, err := s.agenda.ListByEvent(ctx, eventID)
	if err != nil {
		logger.Log.Errorw("failed to list agenda items", "event_id", eventID, "error", err)
		return nil, err
	}
	return items, nil
}

// UpdateAgenda overwrites an agenda item; ErrNotFound when it does not exist.
func (s *PlanningService) UpdateAgenda(ctx context.Context, agendaID int64, req models.AgendaRequest) error {
	if err := requireID("agenda_id", agendaID); err != nil {
		return err
	}
	in, err := agendaInput(req)
	if err != nil {
		return err
	}
	n, err := s.agenda.Update(ctx, agendaID, in)
	if err != nil {
		logger.Log.Errorw("failed to update agenda item", "agenda_id", agendaID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: agenda item", ErrNotFound)
	}
	return nil
}

// DeleteAgenda removes an agenda item. Removing an absent item succeeds.
func (s *PlanningService) DeleteAgenda(ctx context.Context, agendaID int64) error {
	if err := requireID("agenda_id", agendaID); err != nil {
		return err
	}
	if _, err := s.agenda.Delete(ctx, agendaID); err != nil {
		logger.Log.Errorw("failed to delete agenda item", "agenda_id", agendaID, "error", err)
		return err
	}
	return nil
}

func expenseInput(req models.ExpenseRequest) (models.ExpenseInput, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" || req.Amount <= 0 {
		return models.ExpenseInput{}, fmt.Errorf("%w: category and a positive amount are required", ErrInvalidInput)
	}
	return models.ExpenseInput{
		Category:    category,
		Title:       strings.TrimSpace(req.Title),
		Amount:      req.Amount,
		Description: req.Description,
	}, nil
}

func (s *PlanningService) ListExpenses(ctx context.Context, eventID int64) ([]models.ExpenseDB, error) {
	if err := requireID("event_id", eventID); err != nil {
		return nil, err
	}
	items, err := s.expenses.ListByEvent(ctx, eventID)
	if err != nil {
		logger.Log.Errorw("failed to list expenses", "event_id", eventID, "error", err)
		return nil, err
	}
	return items, nil
}

// CreateExpense records an expense against an event and returns its id.
func (s *PlanningService) CreateExpense(ctx context.Context, req models.ExpenseRequest) (int64, error) {
	if err := requireID("event_id", req.EventID); err != nil {
		return 0, err
	}
	in, err := expenseInput(req)
	if err != nil {
		return 0, err
	}
	id, err := s.expenses.Create(ctx, req.EventID, in)
	if err != nil {
		logger.Log.Errorw("failed to create expense", "event_id", req.EventID, "error", err)
		return 0, err
	}
	return id, nil
}

// UpdateExpense overwrites an expense; ErrNotFound when it does not exist.
func (s *PlanningService) UpdateExpense(ctx context.Context, expenseID int64, req models.ExpenseRequest) error {
	if err := requireID("expense_id", expenseID); err != nil {
		return err
	}
	in, err := expenseInput(req)
	if err != nil {
		return err
	}
	n, err := s.expenses.Update(ctx, expenseID, in)
	if err != nil {
		logger.Log.Errorw("failed to update expense", "expense_id", expenseID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: expense", ErrNotFound)
	}
	return nil
}

// DeleteExpense removes an expense. Removing an absent expense succeeds.
func (s *PlanningService) DeleteExpense(ctx context.Context, expenseID int64) error {
	if err := requireID("expense_id", expenseID); err != nil {
		return err
	}
	if _, err := s.expenses.Delete(ctx, expenseID); err != nil {
		logger.Log.Errorw("failed to delete expense", "expense_id", expenseID, "error", err)
		return err
	}
	return nil
}
