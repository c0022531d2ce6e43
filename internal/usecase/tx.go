package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"movequote/internal/usecase/interfaces"
	"time"
)

const (
	defaultMaxTxAttempts = 3
	txRetryBaseDelay     = 15 * time.Millisecond
)

// inTx runs fn inside one store transaction; fn's value becomes the
// transaction's result and is only returned once the commit succeeded.
func inTx[T any](
	ctx context.Context,
	store interfaces.IQuoteStore,
	fn func(ctx context.Context, tx interfaces.IQuoteTx) (T, error),
) (T, error) {
	var out T
	err := store.WithinTx(ctx, func(ctx context.Context, tx interfaces.IQuoteTx) error {
		v, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// retryTx re-runs the whole transaction while it fails with a store
// conflict, at most maxAttempts times. Domain errors and other store
// failures are returned on the first occurrence.
func retryTx[T any](
	ctx context.Context,
	store interfaces.IQuoteStore,
	maxAttempts int,
	op string,
	fn func(ctx context.Context, tx interfaces.IQuoteTx) (T, error),
) (T, error) {
	var zero T
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		v, err := inTx(ctx, store, fn)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, interfaces.ErrTxConflict) {
			return zero, storeError(op, err)
		}
		lastErr = err
		log.Printf("[quote][usecase] %s conflict attempt=%d/%d err=%v", op, attempt, maxAttempts, err)
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("%w: %s: %w", ErrStore, op, ctx.Err())
		case <-time.After(time.Duration(attempt) * txRetryBaseDelay):
		}
	}
	return zero, fmt.Errorf("%w: %s gave up after %d attempts: %w", ErrStore, op, maxAttempts, lastErr)
}
