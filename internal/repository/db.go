package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Lookups in this package return (nil, nil) when the row does not exist.
// Callers decide whether absence is an error.

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewDB opens a connection pool for driver ("mysql" or "sqlite3") and checks
// that the server is reachable.
func NewDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	switch driver {
	case "sqlite3":
		// SQLite has a single writer, and ":memory:" databases exist per
		// connection, so the pool is pinned to one connection.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}

// Store groups the repositories that share one Querier.
type Store struct {
	db *sql.DB
	q  Querier

	Users     *UserRepository
	Campaigns *CampaignRepository
	Comments  *CommentRepository
	Contacts  *ContactRepository
	Lists     *InverseListRepository
}

// NewStore creates a Store whose repositories run directly against db.
func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q Querier) *Store {
	return &Store{
		db:        db,
		q:         q,
		Users:     NewUserRepository(q),
		Campaigns: NewCampaignRepository(q),
		Comments:  NewCommentRepository(q),
		Contacts:  NewContactRepository(q),
		Lists:     NewInverseListRepository(q),
	}
}

// InTx runs fn with a Store bound to a single transaction, committing when fn
// returns nil and rolling back otherwise. Calling InTx on a Store that is
// already transactional reuses the open transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx *Store) error) error {
	if _, ok := s.q.(*sql.Tx); ok {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(newStore(s.db, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Warn("transaction rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// timestamp is the creation/update time written to rows. MySQL DATETIME
// has second precision, so the value is truncated to keep what callers
// see equal to what is read back.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
