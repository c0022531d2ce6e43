package repository

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// sqlDialect isolates what differs between the PostgreSQL and SQLite
// backends. Queries are written with '?' placeholders and rebound.
type sqlDialect interface {
	name() string
	rebind(query string) string
	// lockClause is appended to the quote request read that guards a
	// transition.
	lockClause() string
	txOptions() *sql.TxOptions
	isConflict(err error) bool
	isUniqueViolation(err error) bool
	migrationsRoot() string
	recordMigrationSQL() string
}

type postgresDialect struct{}

func (postgresDialect) name() string { return "postgres" }

func (postgresDialect) rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (postgresDialect) lockClause() string { return " FOR UPDATE" }

// Row locks on quote_requests serialize transitions of the same request;
// READ COMMITTED then lets the waiting transaction see the winner's history.
func (postgresDialect) txOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelReadCommitted}
}

func (postgresDialect) isConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}

func (postgresDialect) isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (postgresDialect) migrationsRoot() string { return "postgres" }

func (postgresDialect) recordMigrationSQL() string {
	return "INSERT INTO schema_migrations (name, applied_at) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING"
}

type sqliteDialect struct{}

func (sqliteDialect) name() string { return "sqlite" }

func (sqliteDialect) rebind(query string) string { return query }

// SQLite has no row locks; the connection is opened with _txlock=immediate
// so every transaction owns the database write lock from BEGIN.
func (sqliteDialect) lockClause() string { return "" }

func (sqliteDialect) txOptions() *sql.TxOptions { return nil }

func (sqliteDialect) isConflict(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() & 0xff {
	case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
		return true
	}
	return false
}

func (sqliteDialect) isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func (sqliteDialect) migrationsRoot() string { return "sqlite" }

func (sqliteDialect) recordMigrationSQL() string {
	return "INSERT OR IGNORE INTO schema_migrations (name, applied_at) VALUES (?, ?)"
}
