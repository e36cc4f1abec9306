package services

import "github.com/pkg/errors"

// Sentinel errors returned by the service layer. The HTTP layer maps them to
// status codes in one place; ownership failures are folded into ErrNotFound so
// responses never confirm that a resource exists.
var (
	ErrNotFound           = errors.New("not found")
	ErrJobNotAvailable    = errors.New("job not available")
	ErrDuplicateContact   = errors.New("phone or email already registered")
	ErrDuplicateApplicant = errors.New("already applied to this job with this phone or email")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
