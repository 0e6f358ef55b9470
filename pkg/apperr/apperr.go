// pkg/apperr/apperr.go
package apperr

import "errors"

// Sentinel errors for the request boundary. Services wrap these with
// fmt.Errorf("%w: ...") so handlers can match with errors.Is while the
// message still carries the specifics.
var (
	ErrValidation    = errors.New("validation failed")
	ErrAuth          = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrWindowExpired = errors.New("window expired")
	ErrNotEligible   = errors.New("not eligible")
	ErrConflict      = errors.New("conflict")
)
