package dto

// Events published to the notification topic. Consumers live outside this
// service; delivery is best effort.

type UserRegisteredEvent struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	RegisteredAt string `json:"registered_at"`
}

type NomineeVerifiedEvent struct {
	NomineeID  string `json:"nominee_id"`
	PolicyID   string `json:"policy_id"`
	Email      string `json:"email"`
	VerifiedAt string `json:"verified_at"`
}
