package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"adventure-server/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate value for unique field")
	ErrConstraint = errors.New("constraint violation")
)

const (
	pgUniqueViolation = "23505"
	pgClassIntegrity  = "23"
	pgClassDataError  = "22"
)

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

// New opens a connection pool. The pool is lazy; use Ping to check connectivity.
func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return Store{db: db, logger: logger}, nil
}

// NewFromDB wraps an existing connection pool
func NewFromDB(db *sqlx.DB, logger *observability.Logger) Store {
	return Store{db: db, logger: logger}
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// Ping verifies the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool
func (s *Store) Close() error {
	return s.db.Close()
}

// classifyError maps Postgres constraint failures onto the store sentinels.
// Other errors are returned unchanged.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == pgUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	case len(pgErr.Code) >= 2 && (pgErr.Code[:2] == pgClassIntegrity || pgErr.Code[:2] == pgClassDataError):
		return fmt.Errorf("%w: %s", ErrConstraint, pgErr.Message)
	default:
		return err
	}
}

// totalPages returns ceil(total/limit), 0 when limit is not positive
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// pageOffset returns the row offset of a 1-based page. Pages below 1 start at
// 0 and offsets that would overflow saturate at math.MaxInt.
func pageOffset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
