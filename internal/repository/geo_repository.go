package repository

import (
	"context"

	"paddlemarket/internal/domain"
)

type ProvinceRepository interface {
	FindAll(ctx context.Context) ([]domain.Province, error)
	// FindByID returns (nil, nil) when no province matches.
	FindByID(ctx context.Context, id uint64) (*domain.Province, error)
	FindByName(ctx context.Context, name string) (*domain.Province, error)
	Create(ctx context.Context, p *domain.Province) error
	Update(ctx context.Context, p *domain.Province) error
	Delete(ctx context.Context, p *domain.Province) error
	CountLocalities(ctx context.Context, provinceID uint64) (int64, error)
}

type LocalityRepository interface {
	FindAll(ctx context.Context) ([]domain.Locality, error)
	// FindByID returns (nil, nil) when no locality matches.
	FindByID(ctx context.Context, id uint64) (*domain.Locality, error)
	Create(ctx context.Context, l *domain.Locality) error
	Update(ctx context.Context, l *domain.Locality) error
	Delete(ctx context.Context, l *domain.Locality) error
	CountPickupPoints(ctx context.Context, localityID uint64) (int64, error)
}

type PickupPointRepository interface {
	FindAll(ctx context.Context) ([]domain.PickupPoint, error)
	FindActive(ctx context.Context) ([]domain.PickupPoint, error)
	// FindByID returns (nil, nil) when no pickup point matches.
	FindByID(ctx context.Context, id uint64) (*domain.PickupPoint, error)
	FindByLocality(ctx context.Context, localityID uint64) ([]domain.PickupPoint, error)
	Create(ctx context.Context, p *domain.PickupPoint) error
	Update(ctx context.Context, p *domain.PickupPoint) error
	Delete(ctx context.Context, p *domain.PickupPoint) error
}
