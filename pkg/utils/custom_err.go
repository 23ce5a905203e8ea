package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrAgendaItemNotFound = errors.New("agenda item not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSessionIDTaken     = errors.New("session id already taken")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
)

// CodeInvalidToken is the machine-readable error code every endpoint returns
// when the caller's credential is missing, invalid, or expired. Clients key
// their re-authentication flow off this value.
const CodeInvalidToken = "invalid-token"
