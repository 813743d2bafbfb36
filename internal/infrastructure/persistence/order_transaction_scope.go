package persistence

import (
	"context"

	appordering "github.com/foodcourt/backend/internal/application/ordering"
	"github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/foodcourt/backend/internal/domain/ordering"
	"gorm.io/gorm"
)

// GormTransactionScope implements the order engine's TransactionScope
// using GORM transactions. The stock decrement, the order insert and the
// in-transaction cap re-check all commit or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. An
// error from the function rolls everything back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appordering.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories exposes transaction-scoped repositories
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Orders returns the order repository scoped to the current transaction
func (r *gormTransactionalRepositories) Orders() ordering.Repository {
	return NewGormOrderRepository(r.tx)
}

// FoodItems returns the food item repository scoped to the current transaction
func (r *gormTransactionalRepositories) FoodItems() catalog.Repository {
	return NewGormFoodRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appordering.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appordering.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
