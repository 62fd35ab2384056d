package mysql

import (
	"context"
	"errors"
	"log"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"

	"gorm.io/gorm"
)

type productTypeRepo struct {
	db *gorm.DB
}

func NewProductTypeRepository(db *gorm.DB) repository.ProductTypeRepository {
	return &productTypeRepo{db: db}
}

func (r *productTypeRepo) FindAllByKind(ctx context.Context, kind domain.TypeKind) ([]domain.ProductType, error) {
	var out []domain.ProductType
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		log.Printf("product type repo: find all: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *productTypeRepo) FindByID(ctx context.Context, kind domain.TypeKind, id uint64) (*domain.ProductType, error) {
	var t domain.ProductType
	err := r.db.WithContext(ctx).Where("kind = ?", kind).First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("product type repo: find by id: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *productTypeRepo) FindByName(ctx context.Context, kind domain.TypeKind, name string) (*domain.ProductType, error) {
	var t domain.ProductType
	err := r.db.WithContext(ctx).
		Where("kind = ? AND name = ?", kind, name).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("product type repo: find by name: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *productTypeRepo) Create(ctx context.Context, t *domain.ProductType) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		log.Printf("product type repo: create: %v", err)
		return err
	}
	return nil
}

func (r *productTypeRepo) Update(ctx context.Context, t *domain.ProductType) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		log.Printf("product type repo: update: %v", err)
		return err
	}
	return nil
}

func (r *productTypeRepo) Delete(ctx context.Context, t *domain.ProductType) error {
	if err := r.db.WithContext(ctx).Delete(t).Error; err != nil {
		log.Printf("product type repo: delete: %v", err)
		return err
	}
	return nil
}

func (r *productTypeRepo) CountProducts(ctx context.Context, typeID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("type_id = ?", typeID).
		Count(&n).Error
	if err != nil {
		log.Printf("product type repo: count products: %v", err)
		return 0, err
	}
	return n, nil
}
