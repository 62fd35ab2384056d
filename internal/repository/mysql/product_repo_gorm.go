package mysql

import (
	"context"
	"errors"
	"log"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).Preload("Type").Order("id ASC").Find(&out).Error
	if err != nil {
		log.Printf("product repo: find all: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Preload("Type").First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("product repo: find by id: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByType(ctx context.Context, typeID uint64) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).
		Preload("Type").
		Where("type_id = ?", typeID).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		log.Printf("product repo: find by type: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		log.Printf("product repo: create: %v", err)
		return err
	}
	return nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		log.Printf("product repo: update: %v", err)
		return err
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Delete(product).Error; err != nil {
		log.Printf("product repo: delete: %v", err)
		return err
	}
	return nil
}

func (r *productRepo) CountByName(ctx context.Context, name string, sellerID *uint64, excludeID uint64) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{}).Where("name = ?", name)
	if sellerID != nil {
		q = q.Where("seller_id = ?", *sellerID)
	} else {
		q = q.Where("seller_id IS NULL")
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		log.Printf("product repo: count by name: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *productRepo) CountOrderItems(ctx context.Context, productID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&n).Error
	if err != nil {
		log.Printf("product repo: count order items: %v", err)
		return 0, err
	}
	return n, nil
}
