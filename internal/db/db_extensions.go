package db

import (
	"context"

	"github.com/facturepro/facturepro-api/internal/helpers"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultTxRetries bounds how often a transaction is replayed after a serialization failure.
const defaultTxRetries = 3

// Store is the persistence surface used by the services: every generated query
// plus ExecTx for read-modify-write sequences that must commit atomically.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore implements Store on top of a pgx connection pool.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

// NewStore creates a Store backed by pool.
func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

// ExecTx runs fn inside a single transaction. fn may be invoked more than once
// when Postgres reports a serialization failure, so it must not have side
// effects outside the Querier it receives.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	return helpers.WithTransactionRetry(ctx, s.pool, defaultTxRetries, func(tx pgx.Tx) error {
		return fn(s.WithTx(tx))
	})
}

var _ Store = (*SQLStore)(nil)
