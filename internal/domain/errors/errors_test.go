package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrInvalidAmount,
		ErrMissingField,
		ErrBelowMinimumPayout,
		ErrAmountMismatch,
		ErrSelfTransfer,
		ErrInsufficientBalance,
		ErrInvalidState,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}

func TestAccessorErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewAccessorError("apply transfer", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if !IsAccessor(err) {
		t.Fatal("expected IsAccessor to detect accessor error")
	}
	if IsAccessor(cause) {
		t.Fatal("plain error must not be classified as accessor error")
	}
	if !IsAccessor(fmt.Errorf("engine: %w", err)) {
		t.Fatal("expected IsAccessor to see through wrapping")
	}

	want := "ledger accessor: apply transfer: connection reset"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
