package usecase

import (
	"errors"
	"fmt"
	"movequote/internal/usecase/interfaces"
)

// Error categories. Callers match them with errors.Is; the specific errors
// below wrap exactly one category.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid quote state")
	ErrInvalidInput = errors.New("invalid input")
	ErrStore        = errors.New("store failure")
)

var (
	ErrQuoteRequestNotFound         = fmt.Errorf("quote request %w", ErrNotFound)
	ErrTargetedQuoteRequestNotFound = fmt.Errorf("targeted quote request %w", ErrNotFound)
	ErrQuoteNotFound                = fmt.Errorf("quote %w", ErrNotFound)

	ErrQuoteNotRequested = fmt.Errorf("%w: current status is not QUOTE_REQUESTED", ErrInvalidState)

	ErrInvalidQuoteRequestID  = fmt.Errorf("%w: quote_request_id", ErrInvalidInput)
	ErrInvalidQuoteID         = fmt.Errorf("%w: quote_id", ErrInvalidInput)
	ErrInvalidMoverID         = fmt.Errorf("%w: mover_id", ErrInvalidInput)
	ErrInvalidCustomerID      = fmt.Errorf("%w: customer_id", ErrInvalidInput)
	ErrInvalidPrice           = fmt.Errorf("%w: price must be greater than zero with at most two decimals", ErrInvalidInput)
	ErrInvalidComment         = fmt.Errorf("%w: comment too long", ErrInvalidInput)
	ErrInvalidRejectionReason = fmt.Errorf("%w: rejection_reason", ErrInvalidInput)
	ErrInvalidMoveDate        = fmt.Errorf("%w: move_date", ErrInvalidInput)
)

// isDomainError reports whether err already belongs to a category the caller
// can act on, as opposed to a raw store failure.
func isDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrStore)
}

func storeError(op string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	// A uniqueness violation means another writer already moved the request on.
	if errors.Is(err, interfaces.ErrDuplicate) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidState, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
