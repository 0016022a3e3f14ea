// Package apierr defines the application error taxonomy of the Fast Note
// Sync Service. Failures arrive inside the JSON response envelope as an
// integer code; FromCode translates that code into a typed *Error that
// unwraps to one of the sentinel errors below. Callers should use errors.Is
// to match a kind and errors.As to reach the carried code/message/details.
package apierr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// User and registration errors.
	ErrRegistrationClosed = errors.New("registration closed")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	// Resource errors.
	ErrVaultNotFound = errors.New("vault not found")
	ErrNoteNotFound  = errors.New("note not found")

	// Access errors.
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")

	// Request errors.
	ErrValidation = errors.New("validation failed")
)

// codeMap is the fixed mapping from server error codes to sentinel kinds.
// Codes outside the map produce a generic *Error matching no sentinel.
var codeMap = map[int]error{
	405: ErrRegistrationClosed,
	407: ErrUserNotFound,
	408: ErrUserExists,
	414: ErrVaultNotFound,
	428: ErrNoteNotFound,
	445: ErrPermissionDenied,
	505: ErrValidation,
	507: ErrNotAuthenticated,
	508: ErrSessionExpired,
}

// Error is an application-level failure reported by the server. Code,
// Message and Details are carried through unchanged from the response
// envelope.
type Error struct {
	Code    int
	Message string
	Details []string

	kind error
}

// FromCode builds the typed error for a server error code. The mapping is
// total: an unknown code still yields an *Error, just one that matches no
// sentinel.
func FromCode(code int, message string, details []string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: details,
		kind:    codeMap[code],
	}
}

func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("[%d] %s | %s", e.Code, e.Message, strings.Join(e.Details, "; "))
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap exposes the sentinel kind for errors.Is. Generic errors unwrap to nil.
func (e *Error) Unwrap() error {
	return e.kind
}
