package repository

import (
	"context"

	"paddlemarket/internal/domain"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	// FindByID returns (nil, nil) when no user matches.
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, user *domain.User) error
}
