// Package unitofwork scopes repositories to a single pgx transaction so a
// business operation commits or rolls back as a whole.
package unitofwork

import (
	"context"
	"errors"

	"shop-backend/internal/db"
	"shop-backend/internal/logger"
	customerrepo "shop-backend/internal/repository/customer"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("unit of work: no active transaction")

// Factory hands out one UnitOfWork per operation.
type Factory struct {
	pool *pgxpool.Pool
	log  *zap.SugaredLogger
}

func NewFactory(pool *pgxpool.Pool, log *zap.SugaredLogger) *Factory {
	return &Factory{pool: pool, log: logger.OrNop(log)}
}

func (f *Factory) Create() *UnitOfWork {
	return &UnitOfWork{pool: f.pool, log: f.log}
}

// UnitOfWork is not safe for concurrent use; create one per request.
type UnitOfWork struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
	log  *zap.SugaredLogger
}

// Begin opens the transaction. Calling it twice keeps the first one.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	err := u.tx.Commit(ctx)
	u.tx = nil
	return err
}

func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	err := u.tx.Rollback(ctx)
	u.tx = nil
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

// Customers returns a customer repository bound to the open transaction, or
// to the pool when Begin has not been called.
func (u *UnitOfWork) Customers() customerrepo.Repository {
	var q db.Querier = u.pool
	if u.tx != nil {
		q = u.tx
	}
	return customerrepo.NewPostgres(q, u.log)
}
