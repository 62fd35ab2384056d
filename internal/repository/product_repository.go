package repository

import (
	"context"

	"paddlemarket/internal/domain"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	// FindByID returns (nil, nil) when no product matches.
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	FindByType(ctx context.Context, typeID uint64) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, product *domain.Product) error

	// CountByName counts other products of the same seller sharing a name,
	// excluding excludeID (0 to exclude nothing).
	CountByName(ctx context.Context, name string, sellerID *uint64, excludeID uint64) (int64, error)

	// CountOrderItems counts order items still referencing the product; a
	// product with live references must not be deleted.
	CountOrderItems(ctx context.Context, productID uint64) (int64, error)
}

type ProductTypeRepository interface {
	FindAllByKind(ctx context.Context, kind domain.TypeKind) ([]domain.ProductType, error)
	// FindByID returns (nil, nil) when no type matches.
	FindByID(ctx context.Context, kind domain.TypeKind, id uint64) (*domain.ProductType, error)
	FindByName(ctx context.Context, kind domain.TypeKind, name string) (*domain.ProductType, error)
	Create(ctx context.Context, t *domain.ProductType) error
	Update(ctx context.Context, t *domain.ProductType) error
	Delete(ctx context.Context, t *domain.ProductType) error

	// CountProducts counts products categorized by the type; a type with
	// products must not be deleted.
	CountProducts(ctx context.Context, typeID uint64) (int64, error)
}
