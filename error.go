package useravatar

import "errors"

type ErrorKind byte

const (
	KindAuthentication ErrorKind = iota + 1
	KindValidation
	KindBackend
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// Error is the only error type the avatar endpoint replies with.
// Message is what the client gets to see.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind and message equality so sentinel errors keep working
// when compared against copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrNotAuthenticated = &Error{Kind: KindAuthentication, Message: "User not authenticated"}
	ErrNoFile           = &Error{Kind: KindValidation, Message: "No file provided"}
)

func Validation(err error) *Error {
	return &Error{Kind: KindValidation, Message: err.Error(), Err: err}
}

// BackendFailure classifies err as a backend failure. Errors that are already
// classified are returned unchanged.
func BackendFailure(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindBackend, Message: err.Error(), Err: err}
}
