package repository

import (
	"context"
	"database/sql"
	"errors"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlQuoteTx struct {
	tx      *sql.Tx
	dialect sqlDialect
}

var _ interfaces.IQuoteTx = (*sqlQuoteTx)(nil)

func (t *sqlQuoteTx) exec(ctx context.Context, op, query string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, t.dialect.rebind(query), args...)
	return wrapSQLErr(t.dialect, op, err)
}

func (t *sqlQuoteTx) GetQuoteRequestForUpdate(ctx context.Context, id string) (entities.QuoteRequest, error) {
	return loadQuoteRequest(ctx, t.tx, t.dialect, id, true)
}

func (t *sqlQuoteTx) GetQuoteRequest(ctx context.Context, id string) (entities.QuoteRequest, error) {
	return loadQuoteRequest(ctx, t.tx, t.dialect, id, false)
}

func (t *sqlQuoteTx) AppendStatusHistory(ctx context.Context, e entities.StatusHistoryEntry) error {
	return t.exec(ctx, "append status history",
		`INSERT INTO quote_status_histories (id, quote_request_id, status, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.QuoteRequestID, string(e.Status), toMillis(e.CreatedAt),
	)
}

func (t *sqlQuoteTx) CreateQuoteRequest(ctx context.Context, q entities.QuoteRequest) error {
	if err := t.exec(ctx, "create quote request",
		`INSERT INTO quote_requests (id, customer_id, move_type, move_date, created_at) VALUES (?, ?, ?, ?, ?)`,
		q.ID, q.CustomerID, string(q.MoveType), toMillis(q.MoveDate), toMillis(q.CreatedAt),
	); err != nil {
		return err
	}
	for _, a := range q.Addresses {
		if err := t.exec(ctx, "create quote request address",
			`INSERT INTO quote_request_addresses (id, quote_request_id, type, region, sub_region, street, full_address)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, q.ID, string(a.Type), a.Region, a.SubRegion, a.Street, a.FullAddress,
		); err != nil {
			return err
		}
	}
	return nil
}

func (t *sqlQuoteTx) CreateMoverQuote(ctx context.Context, q entities.MoverQuote) error {
	return t.exec(ctx, "create mover quote",
		`INSERT INTO mover_quotes (id, mover_id, quote_request_id, price, comment, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		q.ID, q.MoverID, q.QuoteRequestID, q.Price.StringFixed(2), q.Comment, toMillis(q.CreatedAt),
	)
}

func (t *sqlQuoteTx) FindMoverQuote(ctx context.Context, quoteRequestID, moverID string) (entities.MoverQuote, error) {
	var (
		q       entities.MoverQuote
		created int64
	)
	err := t.tx.QueryRowContext(ctx, t.dialect.rebind(`
SELECT id, mover_id, quote_request_id, price, comment, created_at
  FROM mover_quotes
 WHERE quote_request_id = ? AND mover_id = ?`), quoteRequestID, moverID).
		Scan(&q.ID, &q.MoverID, &q.QuoteRequestID, &q.Price, &q.Comment, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.MoverQuote{}, nil
	}
	if err != nil {
		return entities.MoverQuote{}, wrapSQLErr(t.dialect, "find mover quote", err)
	}
	q.CreatedAt = fromMillis(created)
	return q, nil
}

func (t *sqlQuoteTx) CreateTargetedQuoteRequest(ctx context.Context, tq entities.TargetedQuoteRequest) error {
	return t.exec(ctx, "create targeted quote request",
		`INSERT INTO targeted_quote_requests (id, quote_request_id, mover_id, created_at) VALUES (?, ?, ?, ?)`,
		tq.ID, tq.QuoteRequestID, tq.MoverID, toMillis(tq.CreatedAt),
	)
}

func (t *sqlQuoteTx) FindTargetedQuoteRequest(ctx context.Context, quoteRequestID, moverID string) (entities.TargetedQuoteRequest, error) {
	var (
		tq      entities.TargetedQuoteRequest
		created int64
	)
	err := t.tx.QueryRowContext(ctx, t.dialect.rebind(`
SELECT id, quote_request_id, mover_id, created_at
  FROM targeted_quote_requests
 WHERE quote_request_id = ? AND mover_id = ?`), quoteRequestID, moverID).
		Scan(&tq.ID, &tq.QuoteRequestID, &tq.MoverID, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.TargetedQuoteRequest{}, nil
	}
	if err != nil {
		return entities.TargetedQuoteRequest{}, wrapSQLErr(t.dialect, "find targeted quote request", err)
	}
	tq.CreatedAt = fromMillis(created)
	return tq, nil
}

func (t *sqlQuoteTx) CreateTargetedQuoteRejection(ctx context.Context, r entities.TargetedQuoteRejection) error {
	return t.exec(ctx, "create targeted quote rejection",
		`INSERT INTO targeted_quote_rejections (id, targeted_quote_request_id, rejection_reason, created_at) VALUES (?, ?, ?, ?)`,
		r.ID, r.TargetedQuoteRequestID, r.RejectionReason, toMillis(r.CreatedAt),
	)
}

func (t *sqlQuoteTx) GetMoverProfile(ctx context.Context, moverID string) (entities.MoverProfile, error) {
	var m entities.MoverProfile
	err := t.tx.QueryRowContext(ctx, t.dialect.rebind(`
SELECT id, name, experience_years, profile_image, introduction,
       total_confirmed_count, total_customer_favorite, total_reviews, average_rating
  FROM movers
 WHERE id = ?`), moverID).Scan(moverProfileDest(&m)...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.MoverProfile{}, nil
	}
	if err != nil {
		return entities.MoverProfile{}, wrapSQLErr(t.dialect, "get mover profile", err)
	}
	return m, nil
}

func (t *sqlQuoteTx) FindQuoteMatch(ctx context.Context, moverQuoteID string) (entities.QuoteMatch, error) {
	var (
		m       entities.QuoteMatch
		created int64
	)
	err := t.tx.QueryRowContext(ctx, t.dialect.rebind(
		`SELECT id, mover_quote_id, created_at FROM quote_matches WHERE mover_quote_id = ?`), moverQuoteID).
		Scan(&m.ID, &m.MoverQuoteID, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteMatch{}, nil
	}
	if err != nil {
		return entities.QuoteMatch{}, wrapSQLErr(t.dialect, "find quote match", err)
	}
	m.CreatedAt = fromMillis(created)
	return m, nil
}

const addressColumns = `id, quote_request_id, type, region, sub_region, street, full_address`

func scanAddress(row rowScanner) (entities.Address, error) {
	var (
		a       entities.Address
		addrTyp string
	)
	if err := row.Scan(&a.ID, &a.QuoteRequestID, &addrTyp, &a.Region, &a.SubRegion, &a.Street, &a.FullAddress); err != nil {
		return entities.Address{}, err
	}
	a.Type = entities.AddressType(addrTyp)
	return a, nil
}

// loadQuoteRequest reads a request with its addresses and full status
// history, oldest entry first. forUpdate appends the dialect's lock clause
// to the request read.
func loadQuoteRequest(ctx context.Context, q queryer, d sqlDialect, id string, forUpdate bool) (entities.QuoteRequest, error) {
	query := `SELECT id, customer_id, move_type, move_date, created_at FROM quote_requests WHERE id = ?`
	if forUpdate {
		query += d.lockClause()
	}

	var (
		req                 entities.QuoteRequest
		moveType            string
		moveDate, createdAt int64
	)
	err := q.QueryRowContext(ctx, d.rebind(query), id).Scan(&req.ID, &req.CustomerID, &moveType, &moveDate, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteRequest{}, nil
	}
	if err != nil {
		return entities.QuoteRequest{}, wrapSQLErr(d, "get quote request", err)
	}
	req.MoveType = entities.MoveType(moveType)
	req.MoveDate = fromMillis(moveDate)
	req.CreatedAt = fromMillis(createdAt)

	rows, err := q.QueryContext(ctx, d.rebind(`SELECT `+addressColumns+` FROM quote_request_addresses
 WHERE quote_request_id = ?
 ORDER BY CASE type WHEN 'DEPARTURE' THEN 0 ELSE 1 END`), id)
	if err != nil {
		return entities.QuoteRequest{}, wrapSQLErr(d, "load addresses", err)
	}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			rows.Close()
			return entities.QuoteRequest{}, wrapSQLErr(d, "scan address", err)
		}
		req.Addresses = append(req.Addresses, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return entities.QuoteRequest{}, wrapSQLErr(d, "load addresses", err)
	}

	rows, err = q.QueryContext(ctx, d.rebind(`
SELECT id, quote_request_id, status, created_at
  FROM quote_status_histories
 WHERE quote_request_id = ?
 ORDER BY created_at ASC`), id)
	if err != nil {
		return entities.QuoteRequest{}, wrapSQLErr(d, "load status history", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			e       entities.StatusHistoryEntry
			status  string
			created int64
		)
		if err := rows.Scan(&e.ID, &e.QuoteRequestID, &status, &created); err != nil {
			return entities.QuoteRequest{}, wrapSQLErr(d, "scan status history", err)
		}
		e.Status = entities.QuoteStatus(status)
		e.CreatedAt = fromMillis(created)
		req.StatusHistories = append(req.StatusHistories, e)
	}
	if err := rows.Err(); err != nil {
		return entities.QuoteRequest{}, wrapSQLErr(d, "load status history", err)
	}
	return req, nil
}
