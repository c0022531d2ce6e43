package usecase

import (
	"context"
	"fmt"
	"log"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

const maxFreeTextLength = 500

// Prices are stored as NUMERIC(14,2).
const priceScale = 2

var maxPrice = decimal.New(1, 12)

func validPrice(price decimal.Decimal) bool {
	return price.IsPositive() &&
		price.Equal(price.Round(priceScale)) &&
		price.LessThan(maxPrice)
}

// IQuoteTransitionUseCase moves a quote request out of QUOTE_REQUESTED.
//
// Both operations require the current status to be exactly QUOTE_REQUESTED
// and run as one store transaction, so a second call for the same request
// (concurrent or not) fails with ErrInvalidState.

type IQuoteTransitionUseCase interface {
	SubmitQuote(ctx context.Context, quoteRequestID, moverID string, price decimal.Decimal, comment string) (entities.MoverQuoteView, error)
	RejectQuote(ctx context.Context, quoteRequestID, moverID, rejectionReason string) (entities.MoverQuoteView, error)
}

type QuoteTransitionUseCase struct {
	store       interfaces.IQuoteStore
	ledger      StatusLedger
	maxAttempts int
	now         func() time.Time
	newID       func() string
}

var _ IQuoteTransitionUseCase = (*QuoteTransitionUseCase)(nil)

func NewQuoteTransitionUseCase(store interfaces.IQuoteStore, maxAttempts int) *QuoteTransitionUseCase {
	if maxAttempts < 1 {
		maxAttempts = defaultMaxTxAttempts
	}
	return &QuoteTransitionUseCase{
		store:       store,
		ledger:      NewStatusLedger(time.Now, uuid.NewString),
		maxAttempts: maxAttempts,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (u *QuoteTransitionUseCase) SubmitQuote(ctx context.Context, quoteRequestID, moverID string, price decimal.Decimal, comment string) (view entities.MoverQuoteView, err error) {
	quoteRequestID = strings.TrimSpace(quoteRequestID)
	moverID = strings.TrimSpace(moverID)
	comment = strings.TrimSpace(comment)

	ctx, span := startSpan(ctx, "QuoteTransition.SubmitQuote",
		attribute.String("quote_request.id", quoteRequestID),
		attribute.String("mover.id", moverID),
	)
	defer func() { endSpan(span, err) }()

	if quoteRequestID == "" {
		return entities.MoverQuoteView{}, ErrInvalidQuoteRequestID
	}
	if moverID == "" {
		return entities.MoverQuoteView{}, ErrInvalidMoverID
	}
	if !validPrice(price) {
		return entities.MoverQuoteView{}, ErrInvalidPrice
	}
	if utf8.RuneCountInString(comment) > maxFreeTextLength {
		return entities.MoverQuoteView{}, ErrInvalidComment
	}

	log.Printf("[quote][usecase] submit start quote_request_id=%s mover_id=%s price=%s", quoteRequestID, moverID, price.String())
	view, err = retryTx(ctx, u.store, u.maxAttempts, "submit-quote", func(ctx context.Context, tx interfaces.IQuoteTx) (entities.MoverQuoteView, error) {
		req, status, err := u.ledger.CurrentStatus(ctx, tx, quoteRequestID)
		if err != nil {
			return entities.MoverQuoteView{}, err
		}
		if status != entities.QuoteStatusQuoteRequested {
			return entities.MoverQuoteView{}, fmt.Errorf("%w (status=%s)", ErrQuoteNotRequested, status)
		}

		if _, err := u.ledger.Append(ctx, tx, &req, entities.QuoteStatusMoverSubmitted); err != nil {
			return entities.MoverQuoteView{}, err
		}

		quote := entities.MoverQuote{
			ID:             u.newID(),
			MoverID:        moverID,
			QuoteRequestID: quoteRequestID,
			Price:          price,
			Comment:        comment,
			CreatedAt:      u.now().UTC().Truncate(time.Millisecond),
		}
		if err := tx.CreateMoverQuote(ctx, quote); err != nil {
			return entities.MoverQuoteView{}, err
		}

		view, err := loadMoverQuoteView(ctx, tx, quoteRequestID, moverID)
		if err != nil {
			return entities.MoverQuoteView{}, err
		}
		if view.Quote == nil || view.Quote.ID != quote.ID {
			return entities.MoverQuoteView{}, fmt.Errorf("%w: submitted quote %s not visible in transaction", ErrStore, quote.ID)
		}
		return view, nil
	})
	if err != nil {
		log.Printf("[quote][usecase] submit failed quote_request_id=%s mover_id=%s err=%v", quoteRequestID, moverID, err)
		return entities.MoverQuoteView{}, err
	}
	log.Printf("[quote][usecase] submit success quote_request_id=%s mover_id=%s quote_id=%s", quoteRequestID, moverID, view.Quote.ID)
	return view, nil
}

func (u *QuoteTransitionUseCase) RejectQuote(ctx context.Context, quoteRequestID, moverID, rejectionReason string) (view entities.MoverQuoteView, err error) {
	quoteRequestID = strings.TrimSpace(quoteRequestID)
	moverID = strings.TrimSpace(moverID)
	rejectionReason = strings.TrimSpace(rejectionReason)

	ctx, span := startSpan(ctx, "QuoteTransition.RejectQuote",
		attribute.String("quote_request.id", quoteRequestID),
		attribute.String("mover.id", moverID),
	)
	defer func() { endSpan(span, err) }()

	if quoteRequestID == "" {
		return entities.MoverQuoteView{}, ErrInvalidQuoteRequestID
	}
	if moverID == "" {
		return entities.MoverQuoteView{}, ErrInvalidMoverID
	}
	if rejectionReason == "" || utf8.RuneCountInString(rejectionReason) > maxFreeTextLength {
		return entities.MoverQuoteView{}, ErrInvalidRejectionReason
	}

	log.Printf("[quote][usecase] reject start quote_request_id=%s mover_id=%s", quoteRequestID, moverID)
	view, err = retryTx(ctx, u.store, u.maxAttempts, "reject-quote", func(ctx context.Context, tx interfaces.IQuoteTx) (entities.MoverQuoteView, error) {
		req, status, err := u.ledger.CurrentStatus(ctx, tx, quoteRequestID)
		if err != nil {
			return entities.MoverQuoteView{}, err
		}
		if status != entities.QuoteStatusQuoteRequested {
			return entities.MoverQuoteView{}, fmt.Errorf("%w (status=%s)", ErrQuoteNotRequested, status)
		}

		if _, err := u.ledger.Append(ctx, tx, &req, entities.QuoteStatusTargetedQuoteRejected); err != nil {
			return entities.MoverQuoteView{}, err
		}

		targeted, err := tx.FindTargetedQuoteRequest(ctx, quoteRequestID, moverID)
		if err != nil {
			return entities.MoverQuoteView{}, err
		}
		if targeted.ID == "" {
			return entities.MoverQuoteView{}, ErrTargetedQuoteRequestNotFound
		}

		rejection := entities.TargetedQuoteRejection{
			ID:                     u.newID(),
			TargetedQuoteRequestID: targeted.ID,
			RejectionReason:        rejectionReason,
			CreatedAt:              u.now().UTC().Truncate(time.Millisecond),
		}
		if err := tx.CreateTargetedQuoteRejection(ctx, rejection); err != nil {
			return entities.MoverQuoteView{}, err
		}

		return loadMoverQuoteView(ctx, tx, quoteRequestID, moverID)
	})
	if err != nil {
		log.Printf("[quote][usecase] reject failed quote_request_id=%s mover_id=%s err=%v", quoteRequestID, moverID, err)
		return entities.MoverQuoteView{}, err
	}
	log.Printf("[quote][usecase] reject success quote_request_id=%s mover_id=%s has_quote=%t", quoteRequestID, moverID, view.Quote != nil)
	return view, nil
}

// loadMoverQuoteView re-reads the request, the mover's quote and its joins
// through tx so the result reflects the transaction's own writes.
func loadMoverQuoteView(ctx context.Context, tx interfaces.IQuoteTx, quoteRequestID, moverID string) (entities.MoverQuoteView, error) {
	req, err := tx.GetQuoteRequest(ctx, quoteRequestID)
	if err != nil {
		return entities.MoverQuoteView{}, err
	}
	if req.ID == "" {
		return entities.MoverQuoteView{}, ErrQuoteRequestNotFound
	}
	view := entities.MoverQuoteView{QuoteRequest: req}

	mover, err := tx.GetMoverProfile(ctx, moverID)
	if err != nil {
		return entities.MoverQuoteView{}, err
	}
	if mover.ID != "" {
		view.Mover = &mover
	}

	quote, err := tx.FindMoverQuote(ctx, quoteRequestID, moverID)
	if err != nil {
		return entities.MoverQuoteView{}, err
	}
	if quote.ID == "" {
		return view, nil
	}
	view.Quote = &quote

	match, err := tx.FindQuoteMatch(ctx, quote.ID)
	if err != nil {
		return entities.MoverQuoteView{}, err
	}
	if match.ID != "" {
		view.Match = &match
	}
	return view, nil
}
