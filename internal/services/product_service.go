package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

const productCacheTTL = time.Minute

func productCacheKey(id uint64) string {
	return fmt.Sprintf("product:%d", id)
}

type CreateProductInput struct {
	Name        string
	Description string
	Image       string
	Price       float64
	Stock       int
	Category    domain.ProductCategory
	TypeID      *uint64
	SellerID    *uint64
	SellerName  string
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Image       *string
	Price       *float64
	Stock       *int
	Approved    *bool
	Category    *domain.ProductCategory
	TypeID      *uint64
}

type ProductService struct {
	products    repository.ProductRepository
	types       repository.ProductTypeRepository
	redisClient *redis.Client
	group       singleflight.Group
}

func NewProductService(products repository.ProductRepository, types repository.ProductTypeRepository) *ProductService {
	return &ProductService{products: products, types: types}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *ProductService) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

// GetProduct serves reads through the cache; concurrent misses for the same
// id collapse into one database round trip.
func (s *ProductService) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	key := productCacheKey(id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, key).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.NotFound("product", id)
		}
		if s.redisClient != nil {
			if data, err := json.Marshal(product); err == nil {
				s.redisClient.Set(ctx, key, data, productCacheTTL)
			}
		}
		return product, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

func (s *ProductService) GetProductsByType(ctx context.Context, kind domain.TypeKind, typeID uint64) ([]domain.Product, error) {
	t, err := s.types.FindByID(ctx, kind, typeID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound(string(kind)+" type", typeID)
	}
	return s.products.FindByType(ctx, typeID)
}

func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	if in.TypeID != nil {
		if err := s.checkTypeExists(ctx, in.Category, *in.TypeID); err != nil {
			return nil, err
		}
	}

	n, err := s.products.CountByName(ctx, in.Name, in.SellerID, 0)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, domain.Conflictf("a product named '%s' already exists for this seller", in.Name)
	}

	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		TypeID:      in.TypeID,
		SellerID:    in.SellerID,
		SellerName:  in.SellerName,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint64, in UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("product", id)
	}

	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.TypeID != nil {
		if err := s.checkTypeExists(ctx, product.Category, *in.TypeID); err != nil {
			return nil, err
		}
		product.TypeID = in.TypeID
	}
	if in.Name != nil && *in.Name != product.Name {
		n, err := s.products.CountByName(ctx, *in.Name, product.SellerID, product.ID)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, domain.Conflictf("a product named '%s' already exists for this seller", *in.Name)
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Approved != nil {
		product.Approved = *in.Approved
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx, product.ID)
	return product, nil
}

// DeleteProduct refuses to remove a product that order items still reference,
// so order deletion can always restore the stock it took.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint64) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NotFound("product", id)
	}

	n, err := s.products.CountOrderItems(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Conflictf("product '%s' is referenced by %d order item(s)", product.Name, n)
	}

	if err := s.products.Delete(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) checkTypeExists(ctx context.Context, category domain.ProductCategory, typeID uint64) error {
	kind := typeKindForCategory(category)
	t, err := s.types.FindByID(ctx, kind, typeID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.NotFound(string(kind)+" type", typeID)
	}
	return nil
}

// Accessories are categorized by article types; craft by their own kind.
func typeKindForCategory(c domain.ProductCategory) domain.TypeKind {
	switch c {
	case domain.CategoryKayak:
		return domain.KindKayak
	case domain.CategoryBoat:
		return domain.KindBoat
	case domain.CategorySUP:
		return domain.KindSUP
	default:
		return domain.KindArticle
	}
}

func (s *ProductService) invalidate(ctx context.Context, id uint64) {
	if s.redisClient == nil {
		return
	}
	s.redisClient.Del(ctx, productCacheKey(id))
}
