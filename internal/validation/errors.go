package validation

import "errors"

// ErrRejected is matched by every validation failure, whatever its kind.
var ErrRejected = errors.New("value rejected")

// Kind tells why a value was rejected.
type Kind string

const (
	KindCoercion    Kind = "coercion"
	KindOutOfRange  Kind = "out_of_range"
	KindInvalidEnum Kind = "invalid_enum"
)

// RejectedError carries the field, the failure kind and a message naming the valid bounds or members.
type RejectedError struct {
	Field   string
	Kind    Kind
	Message string
	Err     error // underlying coercion error, if any
}

func (e *RejectedError) Error() string { return e.Message }

func (e *RejectedError) Is(target error) bool { return target == ErrRejected }

func (e *RejectedError) Unwrap() error { return e.Err }

// AsRejected returns the *RejectedError in err's chain, if any.
func AsRejected(err error) (*RejectedError, bool) {
	var re *RejectedError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
