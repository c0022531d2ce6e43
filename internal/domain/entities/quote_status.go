package entities

import (
	"fmt"
	"strings"
	"time"
)

// QuoteStatus is the lifecycle state recorded in a quote request's status history.
//
// Domain notes:
//   - The persisted string must match the constant exactly.
//   - The transition engine only moves QUOTE_REQUESTED to MOVER_SUBMITTED or
//     TARGETED_QUOTE_REJECTED. The remaining values belong to the wider
//     lifecycle (confirmation, completion, expiry) and are never produced here.

type QuoteStatus string

const (
	QuoteStatusQuoteRequested        QuoteStatus = "QUOTE_REQUESTED"
	QuoteStatusMoverSubmitted        QuoteStatus = "MOVER_SUBMITTED"
	QuoteStatusTargetedQuoteRejected QuoteStatus = "TARGETED_QUOTE_REJECTED"
	QuoteStatusQuoteConfirmed        QuoteStatus = "QUOTE_CONFIRMED"
	QuoteStatusMoveCompleted         QuoteStatus = "MOVE_COMPLETED"
	QuoteStatusQuoteExpired          QuoteStatus = "QUOTE_EXPIRED"
)

var quoteStatuses = map[QuoteStatus]struct{}{
	QuoteStatusQuoteRequested:        {},
	QuoteStatusMoverSubmitted:        {},
	QuoteStatusTargetedQuoteRejected: {},
	QuoteStatusQuoteConfirmed:        {},
	QuoteStatusMoveCompleted:         {},
	QuoteStatusQuoteExpired:          {},
}

func (s QuoteStatus) Valid() bool {
	_, ok := quoteStatuses[s]
	return ok
}

// ParseQuoteStatus converts a persisted value into a QuoteStatus, rejecting
// anything outside the closed set.
func ParseQuoteStatus(raw string) (QuoteStatus, error) {
	s := QuoteStatus(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("unknown quote status %q", raw)
	}
	return s, nil
}

// StatusHistoryEntry is one append-only record of a quote request's status.
type StatusHistoryEntry struct {
	ID             string      `json:"id"`
	QuoteRequestID string      `json:"quote_request_id"`
	Status         QuoteStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}

// LatestStatusEntry returns the entry with the greatest CreatedAt. When two
// entries share a timestamp the one appearing later in the slice wins, which
// matches insertion order for histories loaded oldest first.
func LatestStatusEntry(history []StatusHistoryEntry) (StatusHistoryEntry, bool) {
	if len(history) == 0 {
		return StatusHistoryEntry{}, false
	}
	latest := history[0]
	for _, e := range history[1:] {
		if !e.CreatedAt.Before(latest.CreatedAt) {
			latest = e
		}
	}
	return latest, true
}

// CurrentStatus derives the current status from the history log.
func CurrentStatus(history []StatusHistoryEntry) (QuoteStatus, bool) {
	latest, ok := LatestStatusEntry(history)
	if !ok {
		return "", false
	}
	return latest.Status, true
}
