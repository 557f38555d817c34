// Package moneyerr implements the "fails with kind K and diagnostic payload
// D" error contract used across the moneycore packages. Every failure in
// pkg/money is reported through this package: a fixed taxonomy of Kinds, a
// single Error type carrying the offending inputs for diagnostics, and
// sentinel values so callers can keep using errors.Is.
package moneyerr

import (
	"errors"
	"fmt"
)

// Kind is the closed taxonomy of failure categories the core can raise.
type Kind string

// The full set of Kinds. No operation in pkg/money raises anything outside
// this set.
const (
	InvalidFormat    Kind = "InvalidFormat"
	CurrencyMismatch Kind = "CurrencyMismatch"
	EmptyInput       Kind = "EmptyInput"
	DivideByZero     Kind = "DivideByZero"
	InvalidPartition Kind = "InvalidPartition"
	InvalidScale     Kind = "InvalidScale"
)

// Sentinel errors, one per Kind, so callers can write
// errors.Is(err, moneyerr.ErrCurrencyMismatch) without knowing about Error.
var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrEmptyInput       = errors.New("empty input")
	ErrDivideByZero     = errors.New("divide by zero")
	ErrInvalidPartition = errors.New("invalid partition")
	ErrInvalidScale     = errors.New("invalid scale")
)

var sentinels = map[Kind]error{
	InvalidFormat:    ErrInvalidFormat,
	CurrencyMismatch: ErrCurrencyMismatch,
	EmptyInput:       ErrEmptyInput,
	DivideByZero:     ErrDivideByZero,
	InvalidPartition: ErrInvalidPartition,
	InvalidScale:     ErrInvalidScale,
}

// Error is the diagnostic payload D for a failure of kind K. Diagnostics
// holds the offending inputs by name, e.g. {"a": "USD", "b": "EUR"} (the
// two currency codes) for a CurrencyMismatch raised by pkg/money.
type Error struct {
	Kind        Kind
	Message     string
	Diagnostics map[string]any
}

// New builds an *Error of the given kind. kvs must come in (key, value)
// pairs; an odd trailing key is dropped.
func New(kind Kind, message string, kvs ...any) *Error {
	diag := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			continue
		}
		diag[key] = kvs[i+1]
	}
	return &Error{Kind: kind, Message: message, Diagnostics: diag}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %v", e.Kind, e.Message, e.Diagnostics)
}

// Unwrap exposes the Kind's sentinel so errors.Is(err, moneyerr.ErrXxx)
// keeps working regardless of message or diagnostics.
func (e *Error) Unwrap() error {
	return sentinels[e.Kind]
}

// Is reports whether target is the sentinel for e's Kind, or another *Error
// of the same Kind.
func (e *Error) Is(target error) bool {
	if other, ok := target.(*Error); ok {
		return other.Kind == e.Kind
	}
	return sentinels[e.Kind] == target
}
