package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the outer adapters can map it to a transport code
// without inspecting message text.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: malformed or missing input, detected before any transaction opens.
	KindValidation
	// KindNotFound: missing placement, ledger, rate period or similar lookup miss.
	KindNotFound
	// KindStateConflict: illegal status transition or ineligible approver.
	KindStateConflict
	// KindPersistence: transaction or commit failure; always carries the cause.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStateConflict:
		return "state_conflict"
	case KindPersistence:
		return "persistence"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func StateConflict(format string, args ...any) error {
	return &Error{Kind: KindStateConflict, Msg: fmt.Sprintf(format, args...)}
}

// Persistence wraps a store/transaction failure with its cause attached.
func Persistence(msg string, cause error) error {
	return &Error{Kind: KindPersistence, Msg: msg, Err: cause}
}

// KindOf reports the Kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

func Is(err error, k Kind) bool { return KindOf(err) == k }
