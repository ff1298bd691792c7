package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrMissingField        = errors.New("missing required field")
	ErrBelowMinimumPayout  = errors.New("amount below minimum payout tier")
	ErrAmountMismatch      = errors.New("declared usd amount does not match tier rate")
	ErrSelfTransfer        = errors.New("sender and recipient must differ")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidState        = errors.New("invalid state transition")
)

// AccessorError wraps a failure from the underlying ledger store so callers
// can distinguish infrastructure faults from domain rule violations.
type AccessorError struct {
	Op  string
	Err error
}

func (e *AccessorError) Error() string {
	return fmt.Sprintf("ledger accessor: %s: %v", e.Op, e.Err)
}

func (e *AccessorError) Unwrap() error {
	return e.Err
}

// NewAccessorError wraps err with the failed operation name.
func NewAccessorError(op string, err error) *AccessorError {
	return &AccessorError{Op: op, Err: err}
}

// IsAccessor reports whether err originated at the store boundary.
func IsAccessor(err error) bool {
	var ae *AccessorError
	return errors.As(err, &ae)
}
