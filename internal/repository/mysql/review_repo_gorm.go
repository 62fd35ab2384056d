package mysql

import (
	"context"
	"errors"
	"log"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"

	"gorm.io/gorm"
)

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) FindAll(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&out).Error; err != nil {
		log.Printf("review repo: find all: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *reviewRepo) FindByID(ctx context.Context, id uint64) (*domain.Review, error) {
	var rev domain.Review
	if err := r.db.WithContext(ctx).First(&rev, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("review repo: find by id: %v", err)
		return nil, err
	}
	return &rev, nil
}

func (r *reviewRepo) FindByProduct(ctx context.Context, productID uint64) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("review repo: find by product: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *reviewRepo) Create(ctx context.Context, rev *domain.Review) error {
	if err := r.db.WithContext(ctx).Create(rev).Error; err != nil {
		log.Printf("review repo: create: %v", err)
		return err
	}
	return nil
}

func (r *reviewRepo) Update(ctx context.Context, rev *domain.Review) error {
	if err := r.db.WithContext(ctx).Save(rev).Error; err != nil {
		log.Printf("review repo: update: %v", err)
		return err
	}
	return nil
}

func (r *reviewRepo) Delete(ctx context.Context, rev *domain.Review) error {
	if err := r.db.WithContext(ctx).Delete(rev).Error; err != nil {
		log.Printf("review repo: delete: %v", err)
		return err
	}
	return nil
}
