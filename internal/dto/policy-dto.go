package dto

type PolicyCreateRequest struct {
	Name      string  `json:"name"`
	Company   string  `json:"company"`
	Value     float64 `json:"value"`
	Premium   float64 `json:"premium"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Status    string  `json:"status"`
}

// PolicyUpdateRequest uses pointers so absent fields are left untouched.
// Identifier and owner are never updatable.
type PolicyUpdateRequest struct {
	Name      *string  `json:"name"`
	Company   *string  `json:"company"`
	Value     *float64 `json:"value"`
	Premium   *float64 `json:"premium"`
	StartDate *string  `json:"startDate"`
	EndDate   *string  `json:"endDate"`
	Status    *string  `json:"status"`
}
