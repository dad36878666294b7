package models

import "time"

// EventDB represents an event row joined with its venue name.
type EventDB struct {
	EventID       int64      `json:"event_id" db:"event_id"`
	UserID        *int64     `json:"user_id" db:"user_id"` // Owner, NULL for imported events
	Title         string     `json:"event_title" db:"event_title"`
	Description   *string    `json:"event_description" db:"event_description"`
	StartDatetime *time.Time `json:"event_startdatetime" db:"event_startdatetime"`
	EndDatetime   *time.Time `json:"event_enddatetime" db:"event_enddatetime"`
	Budget        float64    `json:"event_budget" db:"event_budget"`
	VenueID       *int64     `json:"venue_id" db:"venue_id"`
	VenuePlaceID  *string    `json:"venue_place_id" db:"venue_place_id"`
	VenueName     *string    `json:"venue_name" db:"venue_name"` // Linked venue name, else free-text name
	VenueAddress  *string    `json:"venue_address" db:"venue_address"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// EventInput carries the writable event columns.
type EventInput struct {
	Title         string
	Description   *string
	StartDatetime *time.Time
	EndDatetime   *time.Time
	Budget        float64
	VenueID       *int64
	VenuePlaceID  *string
	VenueName     *string
	VenueAddress  *string
}

// FavoriteEventDB is an event linked to a user with its favourite flag.
type FavoriteEventDB struct {
	EventDB
	Favorite bool `json:"user_favorite" db:"user_favorite"`
}

// EventRequest represents the JSON body for event create and update
// swagger:model EventRequest
type EventRequest struct {
	// required: true
	// example: Diwali Night
	Title string `json:"event_title"`

	// example: Community celebration
	Description *string `json:"event_description"`

	// RFC3339, "2006-01-02T15:04" or "2006-01-02 15:04:05"
	// example: 2025-11-01T18:00
	StartDatetime *string `json:"event_startdatetime"`

	// example: 2025-11-01T22:00
	EndDatetime *string `json:"event_enddatetime"`

	// example: 1500
	Budget *float64 `json:"event_budget"`

	VenueID      *int64  `json:"venue_id"`
	VenuePlaceID *string `json:"venue_place_id"`
	VenueName    *string `json:"venue_name"`
	VenueAddress *string `json:"venue_address"`
}
