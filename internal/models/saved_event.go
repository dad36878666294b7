package models

import "time"

// SavedEventDB is a user's bookmark of an event with its metadata snapshot.
type SavedEventDB struct {
	ID            int64      `json:"id" db:"id"`
	UserID        int64      `json:"user_id" db:"user_id"`
	EventID       int64      `json:"event_id" db:"event_id"`
	EventName     string     `json:"event_name" db:"event_name"`
	EventURL      string     `json:"event_url" db:"event_url"`
	ThumbnailURL  *string    `json:"thumbnail_url" db:"thumbnail_url"`
	DatetimeStart *time.Time `json:"datetime_start" db:"datetime_start"`
	DatetimeEnd   *time.Time `json:"datetime_end" db:"datetime_end"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	Favorite      bool       `json:"favorite" db:"favorite"` // From the user's favourite link, false if none
}

// SavedEventInput is the snapshot written when a bookmark is first created.
type SavedEventInput struct {
	EventID       int64
	EventName     string
	EventURL      string
	ThumbnailURL  *string
	DatetimeStart *time.Time
	DatetimeEnd   *time.Time
}

// SaveEventRequest represents the JSON body for bookmarking an event
// swagger:model SaveEventRequest
type SaveEventRequest struct {
	// required: true
	// example: 42
	EventID int64 `json:"event_id"`

	// required: true
	// example: Jazz in the Park
	EventName string `json:"event_name"`

	// required: true
	// example: https://www.eventfinda.com.au/2025/jazz-in-the-park/melbourne
	EventURL string `json:"event_url"`

	// example: https://cdn.eventfinda.com.au/uploads/events/transformed/1.jpg
	ThumbnailURL *string `json:"thumbnail_url"`

	// RFC3339 or "2006-01-02 15:04:05"
	// example: 2025-10-01 18:00:00
	DatetimeStart *string `json:"datetime_start"`

	// example: 2025-10-01 21:00:00
	DatetimeEnd *string `json:"datetime_end"`
}

// DeletedResponse reports how many rows a delete removed
// swagger:model DeletedResponse
type DeletedResponse struct {
	// example: 1
	Deleted int64 `json:"deleted"`
}

// UserEventRequest represents the JSON body for favourite link writes
// swagger:model UserEventRequest
type UserEventRequest struct {
	// required: true
	// example: 7
	EventID int64 `json:"event_id"`

	// Defaults to false on POST, required on PATCH
	// example: true
	Favorite *bool `json:"favorite"`
}
