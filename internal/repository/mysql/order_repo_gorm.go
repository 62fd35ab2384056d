package mysql

import (
	"context"
	"errors"
	"log"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// orderStore wraps one transaction handle. Either every statement issued
// through it commits, or gorm rolls the whole aggregate back.
type orderStore struct {
	tx *gorm.DB
}

func (r *orderRepo) InTx(ctx context.Context, fn func(store repository.OrderStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderStore{tx: tx})
	})
}

func (s *orderStore) SaveOrder(order *domain.Order) error {
	if err := s.tx.Create(order).Error; err != nil {
		log.Printf("order store: save order: %v", err)
		return err
	}
	return nil
}

func (s *orderStore) SaveItem(item *domain.OrderItem) error {
	if err := s.tx.Create(item).Error; err != nil {
		log.Printf("order store: save item: %v", err)
		return err
	}
	return nil
}

func (s *orderStore) GetProduct(id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := s.tx.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order store: get product: %v", err)
		return nil, err
	}
	return &p, nil
}

// DecrementStock folds the stock check and the decrement into one statement
// so concurrent orders cannot both pass a read-then-write check.
func (s *orderStore) DecrementStock(productID uint64, qty int) (bool, error) {
	res := s.tx.Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", qty),
			"sold_count": gorm.Expr("sold_count + ?", qty),
		})
	if res.Error != nil {
		log.Printf("order store: decrement stock: %v", res.Error)
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *orderStore) RestoreStock(productID uint64, qty int) error {
	res := s.tx.Model(&domain.Product{}).
		Where("id = ?", productID).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock + ?", qty),
			"sold_count": gorm.Expr("sold_count - ?", qty),
		})
	if res.Error != nil {
		log.Printf("order store: restore stock: %v", res.Error)
	}
	return res.Error
}

func (s *orderStore) DeleteOrder(order *domain.Order) error {
	// Items go with the order via the FK cascade.
	if err := s.tx.Select("Items").Delete(order).Error; err != nil {
		log.Printf("order store: delete order: %v", err)
		return err
	}
	return nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("order_date DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("order repo: find all: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order repo: find by id: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("order repo: find by user: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) Update(ctx context.Context, order *domain.Order) error {
	// Items are immutable after creation; only the order row is written.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error; err != nil {
		log.Printf("order repo: update: %v", err)
		return err
	}
	return nil
}
