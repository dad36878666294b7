package models

// ParticipantDB represents a participant denormalized with ethnicity and category names.
type ParticipantDB struct {
	ParticipantID int64   `json:"participant_id" db:"participant_id"`
	Fullname      string  `json:"participant_fullname" db:"participant_fullname"`
	Description   *string `json:"participant_description" db:"participant_description"`
	EthnicityID   *int64  `json:"ethnicity_id" db:"ethnicity_id"`
	CategoryID    *int64  `json:"category_id" db:"category_id"`
	EthnicityName *string `json:"ethnicity_name" db:"ethnicity_name"`
	CategoryName  *string `json:"category_name" db:"category_name"`
}

// ParticipantInput carries the writable participant columns.
type ParticipantInput struct {
	Fullname    string
	Description *string
	EthnicityID *int64
	CategoryID  *int64
}

// ParticipantCategoryDB is a participant category lookup row.
type ParticipantCategoryDB struct {
	CategoryID   int64  `json:"category_id" db:"category_id"`
	CategoryName string `json:"category_name" db:"category_name"`
}

// ParticipantRequest represents the JSON body for participant writes
// swagger:model ParticipantRequest
type ParticipantRequest struct {
	// required: true
	// example: Jane Doe
	Fullname string `json:"participant_fullname"`

	Description *string `json:"participant_description"`
	EthnicityID *int64  `json:"ethnicity_id"`
	CategoryID  *int64  `json:"category_id"`
}
