package application

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrAlreadyExists is returned when a write collides with an existing
	// row, such as a signup with a taken email or a repeated favorite.
	ErrAlreadyExists = errors.New("application: already exists")
	// ErrInvalidCredentials is returned when authentication fails.
	ErrInvalidCredentials = errors.New("application: invalid credentials")
	// ErrSessionExpired is returned when a session token is no longer valid.
	ErrSessionExpired = errors.New("application: session expired")
	// ErrMissingIdentity is returned when a flow is entered without the
	// user email that every screen must carry. Callers abort and return to
	// the authentication entry point.
	ErrMissingIdentity = errors.New("application: missing identity")
	// ErrPaymentDeclined is returned when the simulated payment processor
	// rejects a charge.
	ErrPaymentDeclined = errors.New("application: payment declined")
)

// ValidationError captures field level validation issues that callers can
// surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
