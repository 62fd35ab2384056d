package repository

import (
	"context"

	"paddlemarket/internal/domain"
)

// OrderStore is the transaction-scoped persistence gateway handed to the
// order workflow: everything done against one store instance commits or
// rolls back as a unit.
type OrderStore interface {
	SaveOrder(order *domain.Order) error
	SaveItem(item *domain.OrderItem) error

	// GetProduct returns (nil, nil) when the product does not exist.
	GetProduct(id uint64) (*domain.Product, error)

	// DecrementStock applies stock -= qty, soldCount += qty in a single
	// conditional statement guarded by stock >= qty. Returns false when the
	// guard rejects the update, i.e. insufficient stock.
	DecrementStock(productID uint64, qty int) (bool, error)

	// RestoreStock reverses DecrementStock: stock += qty, soldCount -= qty.
	RestoreStock(productID uint64, qty int) error

	DeleteOrder(order *domain.Order) error
}

type OrderRepository interface {
	// InTx runs fn against a store bound to one database transaction.
	InTx(ctx context.Context, fn func(store OrderStore) error) error

	FindAll(ctx context.Context) ([]domain.Order, error)
	// FindByID returns (nil, nil) when no order matches.
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByUser(ctx context.Context, userID uint64) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}
