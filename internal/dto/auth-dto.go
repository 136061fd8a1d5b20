package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// UserResponse is the credential-free projection returned by auth endpoints.
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthClaims is what the middleware resolves from a verified token.
type AuthClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
