package usecase

import (
	"context"
	"fmt"
	"log"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"
	"time"
)

// StatusLedger reads and appends the status history of quote requests.
//
// It knows nothing about which transitions are legal; that policy belongs to
// the callers. Every read goes to the store through the caller's transaction.
type StatusLedger struct {
	now   func() time.Time
	newID func() string
}

func NewStatusLedger(now func() time.Time, newID func() string) StatusLedger {
	return StatusLedger{now: now, newID: newID}
}

// CurrentStatus loads the request inside tx, holding it for the rest of the
// transaction, and returns it together with its current status. A request
// without any history yields an empty status.
func (l StatusLedger) CurrentStatus(ctx context.Context, tx interfaces.IQuoteTx, quoteRequestID string) (entities.QuoteRequest, entities.QuoteStatus, error) {
	req, err := tx.GetQuoteRequestForUpdate(ctx, quoteRequestID)
	if err != nil {
		return entities.QuoteRequest{}, "", err
	}
	if req.ID == "" {
		return entities.QuoteRequest{}, "", ErrQuoteRequestNotFound
	}
	status, ok := req.CurrentStatus()
	if !ok {
		log.Printf("[quote][ledger] quote request without history quote_request_id=%s", req.ID)
		return req, "", nil
	}
	return req, status, nil
}

// Append records status as the newest entry of req and mirrors it into
// req.StatusHistories. The entry is stamped strictly after the current
// latest entry so the derived status never moves backwards.
func (l StatusLedger) Append(ctx context.Context, tx interfaces.IQuoteTx, req *entities.QuoteRequest, status entities.QuoteStatus) (entities.StatusHistoryEntry, error) {
	if !status.Valid() {
		return entities.StatusHistoryEntry{}, fmt.Errorf("%w: status %q", ErrInvalidInput, status)
	}

	createdAt := l.now().UTC().Truncate(time.Millisecond)
	if latest, ok := entities.LatestStatusEntry(req.StatusHistories); ok && !createdAt.After(latest.CreatedAt) {
		createdAt = latest.CreatedAt.Add(time.Millisecond)
	}

	entry := entities.StatusHistoryEntry{
		ID:             l.newID(),
		QuoteRequestID: req.ID,
		Status:         status,
		CreatedAt:      createdAt,
	}
	if err := tx.AppendStatusHistory(ctx, entry); err != nil {
		return entities.StatusHistoryEntry{}, err
	}
	req.StatusHistories = append(req.StatusHistories, entry)
	return entry, nil
}
