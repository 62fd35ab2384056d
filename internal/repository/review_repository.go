package repository

import (
	"context"

	"paddlemarket/internal/domain"
)

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]domain.Review, error)
	// FindByID returns (nil, nil) when no review matches.
	FindByID(ctx context.Context, id uint64) (*domain.Review, error)
	FindByProduct(ctx context.Context, productID uint64) ([]domain.Review, error)
	Create(ctx context.Context, r *domain.Review) error
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, r *domain.Review) error
}
