package models

import "time"

// Default status for new planning items.
const StatusPending = "Pending"

// LogisticDB is a logistics task attached to an event.
type LogisticDB struct {
	LogisticID  int64     `json:"logistic_id" db:"logistic_id"`
	EventID     int64     `json:"event_id" db:"event_id"`
	Title       string    `json:"logistic_title" db:"logistic_title"`
	Description *string   `json:"logistic_description" db:"logistic_description"`
	Status      string    `json:"logistic_status" db:"logistic_status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// AgendaDB is an agenda item attached to an event.
type AgendaDB struct {
	AgendaID    int64     `json:"agenda_id" db:"agenda_id"`
	EventID     int64     `json:"event_id" db:"event_id"`
	Timeframe   *string   `json:"agenda_timeframe" db:"agenda_timeframe"`
	Title       string    `json:"agenda_title" db:"agenda_title"`
	Description *string   `json:"agenda_description" db:"agenda_description"`
	Status      string    `json:"agenda_status" db:"agenda_status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ExpenseDB is an expense linked to an event through event_finance.
type ExpenseDB struct {
	ExpenseID   int64   `json:"expense_id" db:"expense_id"`
	Category    string  `json:"category" db:"category"`
	Title       string  `json:"title" db:"title"`
	Amount      float64 `json:"amount" db:"amount"`
	Description string  `json:"description" db:"description"`
}

// LogisticInput carries the writable logistics columns.
type LogisticInput struct {
	EventID     int64
	Title       string
	Description *string
	Status      string
}

// AgendaInput carries the writable agenda columns.
type AgendaInput struct {
	EventID     int64
	Timeframe   *string
	Title       string
	Description *string
	Status      string
}

// ExpenseInput carries the writable expense columns.
type ExpenseInput struct {
	Category    string
	Title       string
	Amount      float64
	Description string
}

// LogisticRequest represents the JSON body for logistics writes
// swagger:model LogisticRequest
type LogisticRequest struct {
	// Required on PUT /logistics
	LogisticID int64 `json:"logistic_id"`

	// required: true
	EventID int64 `json:"event_id"`

	// required: true
	// example: Book sound system
	Title string `json:"logistic_title"`

	Description *string `json:"logistic_description"`

	// Defaults to Pending
	Status *string `json:"logistic_status"`
}

// AgendaRequest represents the JSON body for agenda writes
// swagger:model AgendaRequest
type AgendaRequest struct {
	// Required on PUT /agenda
	AgendaID int64 `json:"agenda_id"`

	// required: true
	EventID int64 `json:"event_id"`

	// example: 18:00-18:30
	Timeframe *string `json:"agenda_timeframe"`

	// required: true
	// example: Welcome speech
	Title string `json:"agenda_title"`

	Description *string `json:"agenda_description"`

	// Defaults to Pending
	Status *string `json:"agenda_status"`
}

// ExpenseRequest represents the JSON body for expense writes
// swagger:model ExpenseRequest
type ExpenseRequest struct {
	// Required on POST
	EventID int64 `json:"event_id"`

	// required: true
	// example: Venue
	Category string `json:"category"`

	// example: Main Hall
	Title string `json:"title"`

	// required: true
	// example: 2000
	Amount float64 `json:"amount"`

	// example: Conference hall booking
	Description string `json:"description"`
}

// ExpenseCreateResponse carries the id of a new expense
// swagger:model ExpenseCreateResponse
type ExpenseCreateResponse struct {
	Success   bool  `json:"success"`
	ExpenseID int64 `json:"expense_id"`
}

// CreatedResponse reports the id of a newly created planning row
// swagger:model CreatedResponse
type CreatedResponse struct {
	// example: true
	Success bool `json:"success"`

	// example: 12
	ID int64 `json:"id"`
}
