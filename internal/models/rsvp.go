package models

// RSVP statuses of an event participant link.
const (
	RSVPPending  = "Pending"
	RSVPAccepted = "Accepted"
	RSVPDeclined = "Declined"
)

// ValidRSVPStatus reports whether status is one of the known RSVP statuses.
func ValidRSVPStatus(status string) bool {
	switch status {
	case RSVPPending, RSVPAccepted, RSVPDeclined:
		return true
	}
	return false
}

// EventParticipantDB is a participant of an event with its RSVP status.
type EventParticipantDB struct {
	ParticipantDB
	RSVPStatus string `json:"rsvp_status" db:"rsvp_status"`
}

// RSVPCreateRequest links a participant to an event
// swagger:model RSVPCreateRequest
type RSVPCreateRequest struct {
	// required: true
	EventID int64 `json:"event_id"`

	// required: true
	ParticipantID int64 `json:"participant_id"`

	// Defaults to Pending
	// example: Pending
	RSVPStatus *string `json:"rsvp_status"`
}

// RSVPCreateResponse reports whether a new link was written
// swagger:model RSVPCreateResponse
type RSVPCreateResponse struct {
	Success bool `json:"success"`
	Created bool `json:"created"`
}

// RSVPUpdateRequest sets the status of an existing link
// swagger:model RSVPUpdateRequest
type RSVPUpdateRequest struct {
	// required: true
	EventID int64 `json:"event_id"`

	// required: true
	ParticipantID int64 `json:"participant_id"`

	// required: true
	// example: Accepted
	RSVPStatus string `json:"rsvp_status"`
}

// SuccessResponse is returned by planning endpoints on success
// swagger:model SuccessResponse
type SuccessResponse struct {
	// example: true
	Success bool `json:"success"`
}
