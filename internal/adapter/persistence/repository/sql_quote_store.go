package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"movequote/internal/adapter/persistence/repository/migrations"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"
)

// SQLQuoteStore persists quote requests, their status ledger and mover quotes
// in PostgreSQL or SQLite.
//
// Transition serialization:
//   - postgres: the quote_requests row is read with SELECT ... FOR UPDATE
//   - sqlite: the connection uses _txlock=immediate, so BEGIN takes the
//     database write lock
//
// Timestamps are stored as Unix milliseconds.

type SQLQuoteStore struct {
	db      *sql.DB
	dialect sqlDialect
}

var _ interfaces.IQuoteStore = (*SQLQuoteStore)(nil)

func NewPostgresQuoteStore(db *sql.DB) *SQLQuoteStore {
	return &SQLQuoteStore{db: db, dialect: postgresDialect{}}
}

func NewSQLiteQuoteStore(db *sql.DB) *SQLQuoteStore {
	return &SQLQuoteStore{db: db, dialect: sqliteDialect{}}
}

// Migrate applies the embedded schema for the store's dialect.
func (s *SQLQuoteStore) Migrate(ctx context.Context) error {
	return applyMigrations(ctx, s.db, s.dialect, migrations.FS)
}

func (s *SQLQuoteStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.IQuoteTx) error) (err error) {
	sqlTx, err := s.db.BeginTx(ctx, s.dialect.txOptions())
	if err != nil {
		return s.wrapErr("begin tx", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, &sqlQuoteTx{tx: sqlTx, dialect: s.dialect}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return s.wrapErr("commit tx", err)
	}
	return nil
}

func (s *SQLQuoteStore) wrapErr(op string, err error) error {
	return wrapSQLErr(s.dialect, op, err)
}

// wrapSQLErr classifies driver errors into the store's sentinel errors.
func wrapSQLErr(d sqlDialect, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case d.isConflict(err):
		return fmt.Errorf("%s: %w: %w", op, interfaces.ErrTxConflict, err)
	case d.isUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, interfaces.ErrDuplicate, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

const quoteViewColumns = `
       mq.id, mq.mover_id, mq.quote_request_id, mq.price, mq.comment, mq.created_at,
       qr.customer_id, qr.move_type, qr.move_date, qr.created_at,
       COALESCE(qm.id, '')`

const quoteViewJoins = `
  FROM mover_quotes mq
  JOIN quote_requests qr ON qr.id = mq.quote_request_id
  LEFT JOIN quote_matches qm ON qm.mover_quote_id = mq.id`

const moverProfileColumns = `
       COALESCE(m.id, ''), COALESCE(m.name, ''), COALESCE(m.experience_years, 0),
       COALESCE(m.profile_image, ''), COALESCE(m.introduction, ''),
       COALESCE(m.total_confirmed_count, 0), COALESCE(m.total_customer_favorite, 0),
       COALESCE(m.total_reviews, 0), COALESCE(m.average_rating, 0)`

// quotes whose request targeted the mover and was rejected are hidden
const notRejectedForMover = `
   AND NOT EXISTS (
       SELECT 1
         FROM targeted_quote_requests tq
         JOIN targeted_quote_rejections tr ON tr.targeted_quote_request_id = tq.id
        WHERE tq.quote_request_id = mq.quote_request_id
          AND tq.mover_id = mq.mover_id)`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuoteView(row rowScanner, extra ...any) (entities.QuoteView, error) {
	var (
		v                                      entities.QuoteView
		quoteCreated, moveDate, requestCreated int64
		moveType                               string
	)
	dest := []any{
		&v.Quote.ID, &v.Quote.MoverID, &v.Quote.QuoteRequestID, &v.Quote.Price, &v.Quote.Comment, &quoteCreated,
		&v.Request.CustomerID, &moveType, &moveDate, &requestCreated,
		&v.MatchID,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return entities.QuoteView{}, err
	}
	v.Quote.CreatedAt = fromMillis(quoteCreated)
	v.Request.ID = v.Quote.QuoteRequestID
	v.Request.MoveType = entities.MoveType(moveType)
	v.Request.MoveDate = fromMillis(moveDate)
	v.Request.CreatedAt = fromMillis(requestCreated)
	return v, nil
}

func moverProfileDest(m *entities.MoverProfile) []any {
	return []any{
		&m.ID, &m.Name, &m.ExperienceYears,
		&m.ProfileImage, &m.Introduction,
		&m.TotalConfirmedCount, &m.TotalCustomerFavorite,
		&m.TotalReviews, &m.AverageRating,
	}
}

func (s *SQLQuoteStore) GetQuoteForCustomer(ctx context.Context, quoteID string) (entities.QuoteView, error) {
	q := `SELECT` + quoteViewColumns + `,` + moverProfileColumns + quoteViewJoins + `
  LEFT JOIN movers m ON m.id = mq.mover_id
 WHERE mq.id = ?`

	var mover entities.MoverProfile
	v, err := scanQuoteView(s.db.QueryRowContext(ctx, s.dialect.rebind(q), quoteID), moverProfileDest(&mover)...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteView{}, nil
	}
	if err != nil {
		return entities.QuoteView{}, s.wrapErr("get quote for customer", err)
	}
	if mover.ID != "" {
		v.Mover = &mover
	}
	if err := s.attachAddresses(ctx, []*entities.QuoteRequest{&v.Request}); err != nil {
		return entities.QuoteView{}, err
	}
	return v, nil
}

func (s *SQLQuoteStore) GetQuoteForMover(ctx context.Context, quoteID string) (entities.QuoteView, error) {
	q := `SELECT` + quoteViewColumns + `,
       COALESCE(c.id, ''), COALESCE(c.name, '')` + quoteViewJoins + `
  LEFT JOIN customers c ON c.id = qr.customer_id
 WHERE mq.id = ?`

	var customer entities.CustomerProfile
	v, err := scanQuoteView(s.db.QueryRowContext(ctx, s.dialect.rebind(q), quoteID), &customer.ID, &customer.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteView{}, nil
	}
	if err != nil {
		return entities.QuoteView{}, s.wrapErr("get quote for mover", err)
	}
	if customer.ID != "" {
		v.Customer = &customer
	}
	if err := s.attachAddresses(ctx, []*entities.QuoteRequest{&v.Request}); err != nil {
		return entities.QuoteView{}, err
	}
	return v, nil
}

func (s *SQLQuoteStore) ListQuotesForMover(ctx context.Context, moverID string, page entities.PageRequest) ([]entities.QuoteView, int, error) {
	countQ := `SELECT COUNT(*) FROM mover_quotes mq WHERE mq.mover_id = ?` + notRejectedForMover
	var total int
	if err := s.db.QueryRowContext(ctx, s.dialect.rebind(countQ), moverID).Scan(&total); err != nil {
		return nil, 0, s.wrapErr("count mover quotes", err)
	}
	if total == 0 || page.Offset() >= total {
		return []entities.QuoteView{}, total, nil
	}

	listQ := `SELECT` + quoteViewColumns + `,
       COALESCE(c.id, ''), COALESCE(c.name, '')` + quoteViewJoins + `
  LEFT JOIN customers c ON c.id = qr.customer_id
 WHERE mq.mover_id = ?` + notRejectedForMover + `
 ORDER BY qr.move_date DESC, mq.id ASC
 LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(listQ), moverID, page.PageSize(), page.Offset())
	if err != nil {
		return nil, 0, s.wrapErr("list mover quotes", err)
	}
	defer rows.Close()

	list := make([]entities.QuoteView, 0, page.PageSize())
	for rows.Next() {
		var customer entities.CustomerProfile
		v, err := scanQuoteView(rows, &customer.ID, &customer.Name)
		if err != nil {
			return nil, 0, s.wrapErr("scan mover quote", err)
		}
		if customer.ID != "" {
			v.Customer = &customer
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, s.wrapErr("list mover quotes", err)
	}

	reqs := make([]*entities.QuoteRequest, len(list))
	for i := range list {
		reqs[i] = &list[i].Request
	}
	if err := s.attachAddresses(ctx, reqs); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *SQLQuoteStore) GetLatestQuoteRequestForCustomer(ctx context.Context, customerID string) (entities.QuoteRequest, error) {
	var id string
	err := s.db.QueryRowContext(ctx, s.dialect.rebind(`
SELECT id FROM quote_requests
 WHERE customer_id = ?
 ORDER BY created_at DESC, id DESC
 LIMIT 1`), customerID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteRequest{}, nil
	}
	if err != nil {
		return entities.QuoteRequest{}, s.wrapErr("get latest quote request", err)
	}
	return loadQuoteRequest(ctx, s.db, s.dialect, id, false)
}

// a request is open while its newest history entry is QUOTE_REQUESTED
const openQuoteRequest = `
 WHERE (SELECT h.status
          FROM quote_status_histories h
         WHERE h.quote_request_id = qr.id
         ORDER BY h.created_at DESC, h.id DESC
         LIMIT 1) = 'QUOTE_REQUESTED'`

func (s *SQLQuoteStore) ListOpenQuoteRequests(ctx context.Context, page entities.PageRequest) ([]entities.QuoteRequest, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quote_requests qr`+openQuoteRequest).Scan(&total); err != nil {
		return nil, 0, s.wrapErr("count open quote requests", err)
	}
	if total == 0 || page.Offset() >= total {
		return []entities.QuoteRequest{}, total, nil
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(`SELECT qr.id FROM quote_requests qr`+openQuoteRequest+`
 ORDER BY qr.move_date DESC, qr.id ASC
 LIMIT ? OFFSET ?`), page.PageSize(), page.Offset())
	if err != nil {
		return nil, 0, s.wrapErr("list open quote requests", err)
	}
	ids := make([]string, 0, page.PageSize())
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, 0, s.wrapErr("scan open quote request", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, s.wrapErr("list open quote requests", err)
	}

	list := make([]entities.QuoteRequest, 0, len(ids))
	for _, id := range ids {
		req, err := loadQuoteRequest(ctx, s.db, s.dialect, id, false)
		if err != nil {
			return nil, 0, err
		}
		if req.ID != "" {
			list = append(list, req)
		}
	}
	return list, total, nil
}

// attachAddresses loads the addresses of every request in reqs with a single
// query.
func (s *SQLQuoteStore) attachAddresses(ctx context.Context, reqs []*entities.QuoteRequest) error {
	if len(reqs) == 0 {
		return nil
	}
	byID := make(map[string][]*entities.QuoteRequest, len(reqs))
	args := make([]any, 0, len(reqs))
	for _, r := range reqs {
		if _, ok := byID[r.ID]; !ok {
			args = append(args, r.ID)
		}
		byID[r.ID] = append(byID[r.ID], r)
	}

	q := `SELECT ` + addressColumns + ` FROM quote_request_addresses
 WHERE quote_request_id IN (` + placeholders(len(args)) + `)
 ORDER BY quote_request_id, CASE type WHEN 'DEPARTURE' THEN 0 ELSE 1 END`
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(q), args...)
	if err != nil {
		return s.wrapErr("load addresses", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return s.wrapErr("scan address", err)
		}
		for _, r := range byID[a.QuoteRequestID] {
			r.Addresses = append(r.Addresses, a)
		}
	}
	if err := rows.Err(); err != nil {
		return s.wrapErr("load addresses", err)
	}
	return nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
