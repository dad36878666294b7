package models

// Activity operations published to the activity stream.
const (
	OperationSave       = "saved_event.save"
	OperationUnsave     = "saved_event.unsave"
	OperationFavorite   = "user_event.favorite"
	OperationUnlink     = "user_event.unlink"
	OperationRSVPCreate = "rsvp.create"
	OperationRSVPUpdate = "rsvp.update"
	OperationRSVPRemove = "rsvp.remove"
)

// Activity represents a user-visible state change, including who, what and when.
type Activity struct {
	ActivityID string `json:"activity_id"`       // Unique identifier of the activity
	Timestamp  int64  `json:"timestamp"`         // Unix timestamp (seconds)
	UserID     int64  `json:"user_id,omitempty"` // Acting user, 0 when not user-scoped
	EventID    int64  `json:"event_id"`          // Event the activity refers to
	Operation  string `json:"operation"`         // One of the Operation* constants
	Detail     string `json:"detail,omitempty"`  // Free-form detail, e.g. the new status
}
