package usecase

import (
	"context"
	"fmt"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

const defaultMaxPageSize = 50

// IQuoteQueryUseCase assembles quotes for display. It never mutates state.
//
// Customers see the mover's public profile; movers only see the customer's
// name.

type IQuoteQueryUseCase interface {
	GetQuoteForCustomer(ctx context.Context, quoteID string) (entities.QuoteView, error)
	GetQuoteForMover(ctx context.Context, quoteID string) (entities.QuoteView, error)
	ListQuotesForMover(ctx context.Context, page, pageSize int, moverID string) (entities.PagedResult[entities.QuoteView], error)
	ListOpenQuoteRequests(ctx context.Context, page, pageSize int) (entities.PagedResult[entities.QuoteRequest], error)
}

type QuoteQueryUseCase struct {
	store       interfaces.IQuoteStore
	maxPageSize int
}

var _ IQuoteQueryUseCase = (*QuoteQueryUseCase)(nil)

func NewQuoteQueryUseCase(store interfaces.IQuoteStore, maxPageSize int) *QuoteQueryUseCase {
	if maxPageSize < 1 {
		maxPageSize = defaultMaxPageSize
	}
	return &QuoteQueryUseCase{store: store, maxPageSize: maxPageSize}
}

func (u *QuoteQueryUseCase) GetQuoteForCustomer(ctx context.Context, quoteID string) (entities.QuoteView, error) {
	return u.getQuote(ctx, "QuoteQuery.GetQuoteForCustomer", quoteID, u.store.GetQuoteForCustomer)
}

func (u *QuoteQueryUseCase) GetQuoteForMover(ctx context.Context, quoteID string) (entities.QuoteView, error) {
	return u.getQuote(ctx, "QuoteQuery.GetQuoteForMover", quoteID, u.store.GetQuoteForMover)
}

func (u *QuoteQueryUseCase) getQuote(
	ctx context.Context,
	spanName string,
	quoteID string,
	load func(ctx context.Context, quoteID string) (entities.QuoteView, error),
) (view entities.QuoteView, err error) {
	quoteID = strings.TrimSpace(quoteID)
	ctx, span := startSpan(ctx, spanName, attribute.String("quote.id", quoteID))
	defer func() { endSpan(span, err) }()

	if quoteID == "" {
		return entities.QuoteView{}, ErrInvalidQuoteID
	}

	view, err = load(ctx, quoteID)
	if err != nil {
		return entities.QuoteView{}, storeError("get quote", err)
	}
	if view.Quote.ID == "" {
		return entities.QuoteView{}, ErrQuoteNotFound
	}
	return view, nil
}

func (u *QuoteQueryUseCase) ListQuotesForMover(ctx context.Context, page, pageSize int, moverID string) (res entities.PagedResult[entities.QuoteView], err error) {
	moverID = strings.TrimSpace(moverID)
	ctx, span := startSpan(ctx, "QuoteQuery.ListQuotesForMover",
		attribute.String("mover.id", moverID),
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	)
	defer func() { endSpan(span, err) }()

	if moverID == "" {
		return entities.PagedResult[entities.QuoteView]{}, ErrInvalidMoverID
	}
	p, err := entities.NewPageRequest(page, pageSize, u.maxPageSize)
	if err != nil {
		return entities.PagedResult[entities.QuoteView]{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	list, total, err := u.store.ListQuotesForMover(ctx, moverID, p)
	if err != nil {
		return entities.PagedResult[entities.QuoteView]{}, storeError("list quotes for mover", err)
	}
	return entities.NewPagedResult(list, total, p), nil
}

// ListOpenQuoteRequests pages through the requests movers can still quote on,
// latest move date first.
func (u *QuoteQueryUseCase) ListOpenQuoteRequests(ctx context.Context, page, pageSize int) (res entities.PagedResult[entities.QuoteRequest], err error) {
	ctx, span := startSpan(ctx, "QuoteQuery.ListOpenQuoteRequests",
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	)
	defer func() { endSpan(span, err) }()

	p, err := entities.NewPageRequest(page, pageSize, u.maxPageSize)
	if err != nil {
		return entities.PagedResult[entities.QuoteRequest]{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	list, total, err := u.store.ListOpenQuoteRequests(ctx, p)
	if err != nil {
		return entities.PagedResult[entities.QuoteRequest]{}, storeError("list open quote requests", err)
	}
	return entities.NewPagedResult(list, total, p), nil
}
