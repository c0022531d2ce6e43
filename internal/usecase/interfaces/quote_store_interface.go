package interfaces

import (
	"context"
	"errors"
	"movequote/internal/domain/entities"
)

// ErrTxConflict reports that a store transaction lost a race with another
// transaction (serialization failure, deadlock, busy database, failed commit
// condition). Nothing was committed; the whole unit may be retried.
var ErrTxConflict = errors.New("store transaction conflict")

// ErrDuplicate reports a write rejected by a uniqueness constraint, such as
// a second quote by the same mover on the same request.
var ErrDuplicate = errors.New("duplicate record")

// IQuoteTx is the transactional handle passed to IQuoteStore.WithinTx.
//
// Lookups follow the repository convention of returning a zero value (empty
// ID) with a nil error when the row does not exist. Reads observe the
// writes already made through the same handle.

type IQuoteTx interface {
	// GetQuoteRequestForUpdate loads the request with addresses and status
	// history (oldest first) and locks it, or registers it for commit-time
	// re-validation, until the transaction ends.
	GetQuoteRequestForUpdate(ctx context.Context, id string) (entities.QuoteRequest, error)
	// GetQuoteRequest loads the request with addresses and full history.
	GetQuoteRequest(ctx context.Context, id string) (entities.QuoteRequest, error)
	// AppendStatusHistory inserts a history entry. Entries are never updated.
	AppendStatusHistory(ctx context.Context, e entities.StatusHistoryEntry) error

	CreateQuoteRequest(ctx context.Context, q entities.QuoteRequest) error
	CreateMoverQuote(ctx context.Context, q entities.MoverQuote) error
	FindMoverQuote(ctx context.Context, quoteRequestID, moverID string) (entities.MoverQuote, error)

	CreateTargetedQuoteRequest(ctx context.Context, t entities.TargetedQuoteRequest) error
	FindTargetedQuoteRequest(ctx context.Context, quoteRequestID, moverID string) (entities.TargetedQuoteRequest, error)
	CreateTargetedQuoteRejection(ctx context.Context, r entities.TargetedQuoteRejection) error

	GetMoverProfile(ctx context.Context, moverID string) (entities.MoverProfile, error)
	FindQuoteMatch(ctx context.Context, moverQuoteID string) (entities.QuoteMatch, error)
}

// IQuoteStore abstracts the entity store (PostgreSQL, SQLite or DynamoDB).
//
// WithinTx runs fn inside one atomic transaction: it commits when fn returns
// nil and rolls back when fn returns an error or panics. Commit conflicts
// are reported wrapping ErrTxConflict.

type IQuoteStore interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx IQuoteTx) error) error

	GetQuoteForCustomer(ctx context.Context, quoteID string) (entities.QuoteView, error)
	GetQuoteForMover(ctx context.Context, quoteID string) (entities.QuoteView, error)
	// ListQuotesForMover returns one page of the mover's quotes whose request
	// is untargeted for that mover or targeted without a rejection, ordered by
	// move date descending, plus the total count of eligible quotes.
	ListQuotesForMover(ctx context.Context, moverID string, page entities.PageRequest) ([]entities.QuoteView, int, error)
	GetLatestQuoteRequestForCustomer(ctx context.Context, customerID string) (entities.QuoteRequest, error)
	// ListOpenQuoteRequests returns one page of the requests whose current
	// status is QUOTE_REQUESTED, with addresses and history, ordered by move
	// date descending, plus the total count of open requests.
	ListOpenQuoteRequests(ctx context.Context, page entities.PageRequest) ([]entities.QuoteRequest, int, error)
}
