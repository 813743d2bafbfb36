package ordering

import (
	"context"

	"github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/foodcourt/backend/internal/domain/ordering"
)

// TransactionScope provides transactional access to the repositories the
// order engine mutates. When a function is executed within a transaction
// scope, all repository operations are part of the same database
// transaction and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the order and food item
// repositories within a transaction. Both share the same underlying
// database transaction, so an order insert and its stock decrements are
// committed together or not at all.
type TransactionalRepositories interface {
	// Orders returns the order repository scoped to the current transaction
	Orders() ordering.Repository
	// FoodItems returns the food item repository scoped to the current transaction
	FoodItems() catalog.Repository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	orderRepo ordering.Repository
	foodRepo  catalog.Repository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(orderRepo ordering.Repository, foodRepo catalog.Repository) *NoOpTransactionScope {
	return &NoOpTransactionScope{orderRepo: orderRepo, foodRepo: foodRepo}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Orders returns the order repository.
func (s *NoOpTransactionScope) Orders() ordering.Repository {
	return s.orderRepo
}

// FoodItems returns the food item repository.
func (s *NoOpTransactionScope) FoodItems() catalog.Repository {
	return s.foodRepo
}
