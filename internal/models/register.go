package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// OKResponse is returned by session endpoints on success
// swagger:model OKResponse
type OKResponse struct {
	// example: true
	OK bool `json:"ok"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Email already in use
	Error string `json:"error"`
}
