package usecase

import (
	"context"
	"fmt"
	"log"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// CreateQuoteRequestInput is the customer's move request. Region and
// sub-region values arrive already normalized by the caller.
type CreateQuoteRequestInput struct {
	CustomerID string
	MoveType   entities.MoveType
	MoveDate   time.Time
	Departure  entities.Address
	Arrival    entities.Address
}

// IQuoteRequestUseCase covers the intake side of quote requests: creation,
// targeting a mover, and the customer's latest request.

type IQuoteRequestUseCase interface {
	CreateQuoteRequest(ctx context.Context, in CreateQuoteRequestInput) (entities.QuoteRequest, error)
	TargetMover(ctx context.Context, customerID, quoteRequestID, moverID string) (entities.TargetedQuoteRequest, error)
	GetLatestQuoteRequestForCustomer(ctx context.Context, customerID string) (entities.QuoteRequest, error)
}

type QuoteRequestUseCase struct {
	store       interfaces.IQuoteStore
	ledger      StatusLedger
	maxAttempts int
	now         func() time.Time
	newID       func() string
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

func NewQuoteRequestUseCase(store interfaces.IQuoteStore, maxAttempts int) *QuoteRequestUseCase {
	if maxAttempts < 1 {
		maxAttempts = defaultMaxTxAttempts
	}
	return &QuoteRequestUseCase{
		store:       store,
		ledger:      NewStatusLedger(time.Now, uuid.NewString),
		maxAttempts: maxAttempts,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// CreateQuoteRequest stores the request, its two addresses and the initial
// QUOTE_REQUESTED entry in one transaction.
func (u *QuoteRequestUseCase) CreateQuoteRequest(ctx context.Context, in CreateQuoteRequestInput) (req entities.QuoteRequest, err error) {
	customerID := strings.TrimSpace(in.CustomerID)
	ctx, span := startSpan(ctx, "QuoteRequest.Create", attribute.String("customer.id", customerID))
	defer func() { endSpan(span, err) }()

	if customerID == "" {
		return entities.QuoteRequest{}, ErrInvalidCustomerID
	}
	if in.MoveDate.IsZero() {
		return entities.QuoteRequest{}, ErrInvalidMoveDate
	}

	id := u.newID()
	departure := in.Departure
	departure.ID, departure.QuoteRequestID, departure.Type = u.newID(), id, entities.AddressTypeDeparture
	arrival := in.Arrival
	arrival.ID, arrival.QuoteRequestID, arrival.Type = u.newID(), id, entities.AddressTypeArrival

	candidate := entities.QuoteRequest{
		ID:         id,
		CustomerID: customerID,
		MoveType:   in.MoveType,
		MoveDate:   in.MoveDate.UTC().Truncate(time.Millisecond),
		CreatedAt:  u.now().UTC().Truncate(time.Millisecond),
		Addresses:  []entities.Address{departure, arrival},
	}
	if err := candidate.ValidateForCreate(); err != nil {
		return entities.QuoteRequest{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	req, err = retryTx(ctx, u.store, u.maxAttempts, "create-quote-request", func(ctx context.Context, tx interfaces.IQuoteTx) (entities.QuoteRequest, error) {
		q := candidate
		q.StatusHistories = nil
		if err := tx.CreateQuoteRequest(ctx, q); err != nil {
			return entities.QuoteRequest{}, err
		}
		if _, err := u.ledger.Append(ctx, tx, &q, entities.QuoteStatusQuoteRequested); err != nil {
			return entities.QuoteRequest{}, err
		}
		return q, nil
	})
	if err != nil {
		log.Printf("[quote-request][usecase] create failed customer_id=%s err=%v", customerID, err)
		return entities.QuoteRequest{}, err
	}
	log.Printf("[quote-request][usecase] create success customer_id=%s quote_request_id=%s", customerID, req.ID)
	return req, nil
}

// TargetMover invites a mover to quote on a request still in QUOTE_REQUESTED.
// Only the customer who owns the request may target; anyone else sees
// ErrQuoteRequestNotFound. Targeting the same mover twice returns the
// existing row.
func (u *QuoteRequestUseCase) TargetMover(ctx context.Context, customerID, quoteRequestID, moverID string) (t entities.TargetedQuoteRequest, err error) {
	customerID = strings.TrimSpace(customerID)
	quoteRequestID = strings.TrimSpace(quoteRequestID)
	moverID = strings.TrimSpace(moverID)
	ctx, span := startSpan(ctx, "QuoteRequest.TargetMover",
		attribute.String("customer.id", customerID),
		attribute.String("quote_request.id", quoteRequestID),
		attribute.String("mover.id", moverID),
	)
	defer func() { endSpan(span, err) }()

	if customerID == "" {
		return entities.TargetedQuoteRequest{}, ErrInvalidCustomerID
	}
	if quoteRequestID == "" {
		return entities.TargetedQuoteRequest{}, ErrInvalidQuoteRequestID
	}
	if moverID == "" {
		return entities.TargetedQuoteRequest{}, ErrInvalidMoverID
	}

	return retryTx(ctx, u.store, u.maxAttempts, "target-mover", func(ctx context.Context, tx interfaces.IQuoteTx) (entities.TargetedQuoteRequest, error) {
		req, status, err := u.ledger.CurrentStatus(ctx, tx, quoteRequestID)
		if err != nil {
			return entities.TargetedQuoteRequest{}, err
		}
		if req.CustomerID != customerID {
			log.Printf("[quote-request][usecase] target denied quote_request_id=%s caller_id=%s", quoteRequestID, customerID)
			return entities.TargetedQuoteRequest{}, ErrQuoteRequestNotFound
		}
		if status != entities.QuoteStatusQuoteRequested {
			return entities.TargetedQuoteRequest{}, fmt.Errorf("%w (status=%s)", ErrQuoteNotRequested, status)
		}

		existing, err := tx.FindTargetedQuoteRequest(ctx, quoteRequestID, moverID)
		if err != nil {
			return entities.TargetedQuoteRequest{}, err
		}
		if existing.ID != "" {
			return existing, nil
		}

		created := entities.TargetedQuoteRequest{
			ID:             u.newID(),
			QuoteRequestID: quoteRequestID,
			MoverID:        moverID,
			CreatedAt:      u.now().UTC().Truncate(time.Millisecond),
		}
		if err := tx.CreateTargetedQuoteRequest(ctx, created); err != nil {
			return entities.TargetedQuoteRequest{}, err
		}
		return created, nil
	})
}

func (u *QuoteRequestUseCase) GetLatestQuoteRequestForCustomer(ctx context.Context, customerID string) (req entities.QuoteRequest, err error) {
	customerID = strings.TrimSpace(customerID)
	ctx, span := startSpan(ctx, "QuoteRequest.GetLatestForCustomer", attribute.String("customer.id", customerID))
	defer func() { endSpan(span, err) }()

	if customerID == "" {
		return entities.QuoteRequest{}, ErrInvalidCustomerID
	}
	req, err = u.store.GetLatestQuoteRequestForCustomer(ctx, customerID)
	if err != nil {
		return entities.QuoteRequest{}, storeError("get latest quote request", err)
	}
	if req.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return req, nil
}
