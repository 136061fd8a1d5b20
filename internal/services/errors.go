package services

import "errors"

var (
	ErrInvalidInput = errors.New("invalid inputs")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidPolicyRef means the policy reference is not even a
	// syntactically valid identifier; no lookup was attempted.
	ErrInvalidPolicyRef = errors.New("invalid policy id format")
)
