package dto

type NomineeCreateRequest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PolicyID     string `json:"policyId"`
}

// NomineeUpdateRequest mirrors PolicyUpdateRequest: nil means "leave as is".
// The policy reference and owner are never updatable.
type NomineeUpdateRequest struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Verified     *bool   `json:"verified"`
	Status       *string `json:"status"`
}
