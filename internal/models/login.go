package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// MeResponse describes the caller's session identity
// swagger:model MeResponse
type MeResponse struct {
	// example: 12
	ID int64 `json:"id"`

	// example: jane@example.com
	Email string `json:"email"`
}
