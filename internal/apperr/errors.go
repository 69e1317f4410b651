package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason identifies which upstream condition produced an error when
// several conditions share one external message. The profiles lookup
// reports a single 404 for three distinct inputs; Reason keeps them
// distinguishable in logs.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonPlayerNull - the player key held an explicit null
	ReasonPlayerNull
	// ReasonProfilesNull - the profiles key held an explicit null
	ReasonProfilesNull
	// ReasonProfilesMissing - the profiles key was absent entirely
	ReasonProfilesMissing
	// ReasonAllFiltered - profiles were listed but none passed the membership predicate
	ReasonAllFiltered
)

func (r Reason) String() string {
	switch r {
	case ReasonPlayerNull:
		return "player_null"
	case ReasonProfilesNull:
		return "profiles_null"
	case ReasonProfilesMissing:
		return "profiles_missing"
	case ReasonAllFiltered:
		return "all_filtered"
	default:
		return "none"
	}
}

// Error is a caller-facing error carrying the HTTP status the
// surrounding transport layer should translate it into
type Error struct {
	Status  int
	Message string
	Reason  Reason
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a 404 error with a formatted message
func NotFound(reason Reason, format string, args ...interface{}) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf(format, args...),
		Reason:  reason,
	}
}

// StatusOf returns the HTTP status carried by err, or 500 when err
// carries no status
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err carries a 404 status
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// ReasonOf returns the Reason carried by err, or ReasonNone
func ReasonOf(err error) Reason {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Reason
	}
	return ReasonNone
}
