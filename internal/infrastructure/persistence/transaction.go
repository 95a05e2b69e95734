package persistence

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxFromContext returns the transactional *gorm.DB carried by the context, or
// nil when the context is outside a transaction.
func TxFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txKey{}).(*gorm.DB)
	return tx
}

// withTx returns a child context carrying the transactional handle.
func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// conn returns the database handle a repository should use for the given
// context: the surrounding transaction when one is in flight, the shared
// pool otherwise.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

// GormTransactionManager implements shared.TransactionManager on GORM.
// Execute opens a transaction and threads the transactional handle through the
// context so repositories called inside fn join the same transaction.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GormTransactionManager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// Execute runs fn within a database transaction. A non-nil error from fn
// rolls the transaction back; otherwise it commits.
func (m *GormTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested Execute joins the surrounding transaction instead of opening
	// a second one.
	if tx := TxFromContext(ctx); tx != nil {
		return fn(ctx)
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
