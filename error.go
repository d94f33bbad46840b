package reeldata

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"    // unexpected internal error
	EINVALID     = "invalid"     // unparsable input (e.g. pagination count header)
	ENOTFOUND    = "not_found"   // no FX rate for the requested pair/date
	ESTRUCTURE   = "structure"   // page layout drifted from the expected shape
	EUNAVAILABLE = "unavailable" // transport failure or non-success status
)

// Error represents an application error with a machine-readable code.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("reeldata error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors map to EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors report a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "An internal error has occurred."
}

// Errorf is a helper for constructing an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
