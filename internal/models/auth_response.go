package models

// RegisterResponse represents the response after user registration.
// Registration does not issue a token; login is a separate step.
type RegisterResponse struct {
	ID int64 `json:"id"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Token string `json:"token"`
}
