package address

import (
	"errors"
	"fmt"
)

// Kind classifies an address Error.
type Kind int

const (
	KindWeirdInput Kind = iota // a run matched none of the token shapes
	KindLinum                  // a resolved line is 0 or past the last line
	KindMalformed              // the first address exceeds the second
	KindUnderflow              // '-' applied to address 0
)

var (
	ErrWeirdInput = errors.New("unsupported address")
	ErrLinum      = errors.New("invalid line number")
	ErrMalformed  = errors.New("address malformed")
	ErrUnderflow  = errors.New("address underflow")
)

// Error reports why an address expression could not be resolved.
type Error struct {
	Kind Kind
	Text string // offending run (KindWeirdInput)
	Line int    // offending line number (KindLinum)
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindWeirdInput:
		return fmt.Sprintf("%s: %s", e.Text, ErrWeirdInput)
	case KindLinum:
		return fmt.Sprintf("%d: %s", e.Line, ErrLinum)
	}
	return e.Unwrap().Error()
}

// Unwrap lets errors.Is match an Error against the sentinel of its kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindWeirdInput:
		return ErrWeirdInput
	case KindLinum:
		return ErrLinum
	case KindMalformed:
		return ErrMalformed
	default:
		return ErrUnderflow
	}
}

func weirdInput(s string) error { return &Error{Kind: KindWeirdInput, Text: s} }

func linum(n int) error { return &Error{Kind: KindLinum, Line: n} }
