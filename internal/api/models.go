package api

// Request and response payloads.

// RegisterRequest is the payload for POST /api/users/register.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=16"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// LoginRequest is the payload for POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// TokenResponse is the success payload for login.
type TokenResponse struct {
	Token string `json:"token"`
}

// PostRequest is the payload for creating or updating a post.
type PostRequest struct {
	Content string `json:"content" validate:"required,notblank"`
}
