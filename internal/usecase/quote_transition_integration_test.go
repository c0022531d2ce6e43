package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"movequote/internal/adapter/persistence/repository"
	"movequote/internal/domain/entities"
	"movequote/internal/infrastructure/database"
	"movequote/internal/usecase"
	"movequote/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) (*repository.SQLQuoteStore, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := repository.NewSQLiteQuoteStore(db)
	require.NoError(t, store.Migrate(ctx))
	return store, db
}

func createRequest(t *testing.T, store interfaces.IQuoteStore, customerID string) entities.QuoteRequest {
	t.Helper()
	uc := usecase.NewQuoteRequestUseCase(store, 3)
	req, err := uc.CreateQuoteRequest(context.Background(), usecase.CreateQuoteRequestInput{
		CustomerID: customerID,
		MoveType:   entities.MoveTypeSmall,
		MoveDate:   time.Now().Add(48 * time.Hour),
		Departure:  entities.Address{Region: "Seoul", SubRegion: "Mapo", FullAddress: "10 Worldcup-ro"},
		Arrival:    entities.Address{Region: "Seoul", SubRegion: "Jongno", FullAddress: "5 Sejong-daero"},
	})
	require.NoError(t, err)
	return req
}

func insertMover(t *testing.T, db *sql.DB, id, name string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO movers (id, name, experience_years, average_rating) VALUES (?, ?, ?, ?)`, id, name, 7, 4.5)
	require.NoError(t, err)
}

func latestHistory(t *testing.T, store interfaces.IQuoteStore, customerID string) []entities.StatusHistoryEntry {
	t.Helper()
	req, err := store.GetLatestQuoteRequestForCustomer(context.Background(), customerID)
	require.NoError(t, err)
	require.NotEmpty(t, req.ID)
	return req.StatusHistories
}

func statuses(history []entities.StatusHistoryEntry) []entities.QuoteStatus {
	out := make([]entities.QuoteStatus, len(history))
	for i, e := range history {
		out[i] = e.Status
	}
	return out
}

func TestTransitions_ConcurrentSubmitAndRejectOnlyOneWins(t *testing.T) {
	store, db := newSQLiteStore(t)
	req := createRequest(t, store, "customer-1")
	intake := usecase.NewQuoteRequestUseCase(store, 3)
	uc := usecase.NewQuoteTransitionUseCase(store, 5)

	const callers = 8
	for i := 0; i < callers; i++ {
		moverID := fmt.Sprintf("mover-%d", i)
		insertMover(t, db, moverID, fmt.Sprintf("Mover %d", i))
		// odd movers were asked directly and race to reject
		if i%2 == 1 {
			_, err := intake.TargetMover(context.Background(), "customer-1", req.ID, moverID)
			require.NoError(t, err)
		}
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		start     = make(chan struct{})
		successes int
		invalid   int
		others    []error
		winner    string
	)
	for i := 0; i < callers; i++ {
		moverID := fmt.Sprintf("mover-%d", i)
		wg.Add(1)
		go func(moverID string, reject bool) {
			defer wg.Done()
			<-start
			var err error
			if reject {
				_, err = uc.RejectQuote(context.Background(), req.ID, moverID, "busy that day")
			} else {
				_, err = uc.SubmitQuote(context.Background(), req.ID, moverID, decimal.NewFromInt(90000), "")
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
				winner = moverID
			case errors.Is(err, usecase.ErrInvalidState):
				invalid++
			default:
				others = append(others, err)
			}
		}(moverID, i%2 == 1)
	}
	close(start)
	wg.Wait()

	require.Empty(t, others)
	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, invalid)

	history := latestHistory(t, store, "customer-1")
	require.Len(t, history, 2)

	var quotes, rejections int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM mover_quotes WHERE quote_request_id = ?`, req.ID).Scan(&quotes))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM targeted_quote_rejections`).Scan(&rejections))

	var winnerIndex int
	_, err := fmt.Sscanf(winner, "mover-%d", &winnerIndex)
	require.NoError(t, err)
	if winnerIndex%2 == 1 {
		assert.Equal(t, entities.QuoteStatusTargetedQuoteRejected, history[1].Status)
		assert.Zero(t, quotes)
		assert.Equal(t, 1, rejections)
	} else {
		assert.Equal(t, entities.QuoteStatusMoverSubmitted, history[1].Status)
		assert.Equal(t, 1, quotes)
		assert.Zero(t, rejections)
	}
}

// failAfterQuoteInsert delegates to the real store but fails every
// transaction right after the mover quote insert.
type failAfterQuoteInsert struct {
	interfaces.IQuoteStore
}

func (s failAfterQuoteInsert) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.IQuoteTx) error) error {
	return s.IQuoteStore.WithinTx(ctx, func(ctx context.Context, tx interfaces.IQuoteTx) error {
		return fn(ctx, failingQuoteTx{tx})
	})
}

type failingQuoteTx struct {
	interfaces.IQuoteTx
}

func (t failingQuoteTx) CreateMoverQuote(ctx context.Context, q entities.MoverQuote) error {
	if err := t.IQuoteTx.CreateMoverQuote(ctx, q); err != nil {
		return err
	}
	return errors.New("injected failure")
}

func TestSubmitQuote_FailureRollsBackHistory(t *testing.T) {
	store, db := newSQLiteStore(t)
	req := createRequest(t, store, "customer-1")

	uc := usecase.NewQuoteTransitionUseCase(failAfterQuoteInsert{store}, 3)
	_, err := uc.SubmitQuote(context.Background(), req.ID, "mover-1", decimal.NewFromInt(50000), "")
	require.ErrorIs(t, err, usecase.ErrStore)

	history := latestHistory(t, store, "customer-1")
	assert.Equal(t, []entities.QuoteStatus{entities.QuoteStatusQuoteRequested}, statuses(history))

	var quotes int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM mover_quotes`).Scan(&quotes))
	assert.Zero(t, quotes)

	// the request is still open after the failed attempt
	_, err = usecase.NewQuoteTransitionUseCase(store, 3).SubmitQuote(context.Background(), req.ID, "mover-1", decimal.NewFromInt(50000), "")
	require.NoError(t, err)
}

func TestSubmitQuote_SecondSubmitFails(t *testing.T) {
	store, db := newSQLiteStore(t)
	insertMover(t, db, "mover-1", "Park Moving")
	req := createRequest(t, store, "customer-1")
	uc := usecase.NewQuoteTransitionUseCase(store, 3)

	price := decimal.RequireFromString("120000.50")
	view, err := uc.SubmitQuote(context.Background(), req.ID, "mover-1", price, "two trucks")
	require.NoError(t, err)
	require.NotNil(t, view.Quote)
	assert.True(t, view.Quote.Price.Equal(price))
	assert.Equal(t, "two trucks", view.Quote.Comment)
	require.NotNil(t, view.Mover)
	assert.Equal(t, "Park Moving", view.Mover.Name)
	assert.Nil(t, view.Match)
	assert.Len(t, view.QuoteRequest.Addresses, 2)
	status, _ := view.QuoteRequest.CurrentStatus()
	assert.Equal(t, entities.QuoteStatusMoverSubmitted, status)

	_, err = uc.SubmitQuote(context.Background(), req.ID, "mover-2", price, "")
	require.ErrorIs(t, err, usecase.ErrInvalidState)

	_, err = uc.SubmitQuote(context.Background(), req.ID, "mover-1", price, "")
	require.ErrorIs(t, err, usecase.ErrInvalidState)

	assert.Equal(t,
		[]entities.QuoteStatus{entities.QuoteStatusQuoteRequested, entities.QuoteStatusMoverSubmitted},
		statuses(latestHistory(t, store, "customer-1")),
	)
}

func TestRejectQuote_RequiresTarget(t *testing.T) {
	store, _ := newSQLiteStore(t)
	req := createRequest(t, store, "customer-1")
	uc := usecase.NewQuoteTransitionUseCase(store, 3)

	_, err := uc.RejectQuote(context.Background(), req.ID, "mover-1", "no capacity")
	require.ErrorIs(t, err, usecase.ErrNotFound)

	// the appended entry was rolled back with the transaction
	assert.Equal(t, []entities.QuoteStatus{entities.QuoteStatusQuoteRequested}, statuses(latestHistory(t, store, "customer-1")))

	_, err = uc.RejectQuote(context.Background(), "missing", "mover-1", "no capacity")
	require.ErrorIs(t, err, usecase.ErrQuoteRequestNotFound)
}

func TestRejectQuote_EndToEnd(t *testing.T) {
	store, db := newSQLiteStore(t)
	req := createRequest(t, store, "customer-1")

	intake := usecase.NewQuoteRequestUseCase(store, 3)
	target, err := intake.TargetMover(context.Background(), "customer-1", req.ID, "mover-1")
	require.NoError(t, err)

	again, err := intake.TargetMover(context.Background(), "customer-1", req.ID, "mover-1")
	require.NoError(t, err)
	assert.Equal(t, target.ID, again.ID)

	uc := usecase.NewQuoteTransitionUseCase(store, 3)
	view, err := uc.RejectQuote(context.Background(), req.ID, "mover-1", "truck under repair")
	require.NoError(t, err)
	assert.Nil(t, view.Quote)
	assert.Nil(t, view.Mover)

	history := latestHistory(t, store, "customer-1")
	require.Len(t, history, 2)
	assert.Equal(t, entities.QuoteStatusTargetedQuoteRejected, history[1].Status)
	assert.True(t, history[1].CreatedAt.After(history[0].CreatedAt))

	var reason string
	require.NoError(t, db.QueryRow(
		`SELECT rejection_reason FROM targeted_quote_rejections WHERE targeted_quote_request_id = ?`, target.ID,
	).Scan(&reason))
	assert.Equal(t, "truck under repair", reason)

	// status never returns to QUOTE_REQUESTED
	_, err = uc.SubmitQuote(context.Background(), req.ID, "mover-1", decimal.NewFromInt(1000), "")
	require.ErrorIs(t, err, usecase.ErrInvalidState)
	_, err = intake.TargetMover(context.Background(), "customer-1", req.ID, "mover-2")
	require.ErrorIs(t, err, usecase.ErrInvalidState)
}

func TestSubmitQuote_SubCentPriceIsRejectedBeforeStore(t *testing.T) {
	store, db := newSQLiteStore(t)
	req := createRequest(t, store, "customer-1")
	uc := usecase.NewQuoteTransitionUseCase(store, 3)

	_, err := uc.SubmitQuote(context.Background(), req.ID, "mover-1", decimal.RequireFromString("0.004"), "")
	require.ErrorIs(t, err, usecase.ErrInvalidPrice)

	var quotes int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM mover_quotes`).Scan(&quotes))
	assert.Zero(t, quotes)
	assert.Equal(t, []entities.QuoteStatus{entities.QuoteStatusQuoteRequested}, statuses(latestHistory(t, store, "customer-1")))
}

func TestTargetMover_OnlyRequestOwner(t *testing.T) {
	store, db := newSQLiteStore(t)
	req := createRequest(t, store, "customer-1")
	intake := usecase.NewQuoteRequestUseCase(store, 3)

	_, err := intake.TargetMover(context.Background(), "mover-1", req.ID, "mover-1")
	require.ErrorIs(t, err, usecase.ErrQuoteRequestNotFound)

	var targets int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM targeted_quote_requests`).Scan(&targets))
	assert.Zero(t, targets)

	// without a target the foreign mover cannot close the request
	_, err = usecase.NewQuoteTransitionUseCase(store, 3).RejectQuote(context.Background(), req.ID, "mover-1", "not interested")
	require.ErrorIs(t, err, usecase.ErrTargetedQuoteRequestNotFound)
	assert.Equal(t, []entities.QuoteStatus{entities.QuoteStatusQuoteRequested}, statuses(latestHistory(t, store, "customer-1")))
}
