package services

import (
	"context"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"
)

// CatalogService manages the category-specific type tables (article, kayak,
// boat and sup types). All four kinds share one table and one rule set.
type CatalogService struct {
	types repository.ProductTypeRepository
}

func NewCatalogService(types repository.ProductTypeRepository) *CatalogService {
	return &CatalogService{types: types}
}

func (s *CatalogService) GetTypes(ctx context.Context, kind domain.TypeKind) ([]domain.ProductType, error) {
	return s.types.FindAllByKind(ctx, kind)
}

func (s *CatalogService) GetType(ctx context.Context, kind domain.TypeKind, id uint64) (*domain.ProductType, error) {
	t, err := s.types.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound(string(kind)+" type", id)
	}
	return t, nil
}

func (s *CatalogService) CreateType(ctx context.Context, kind domain.TypeKind, name, mainUse string) (*domain.ProductType, error) {
	existing, err := s.types.FindByName(ctx, kind, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("the %s type '%s' already exists", kind, name)
	}

	t := &domain.ProductType{Kind: kind, Name: name, MainUse: mainUse}
	if err := s.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) UpdateType(ctx context.Context, kind domain.TypeKind, id uint64, name, mainUse *string) (*domain.ProductType, error) {
	t, err := s.GetType(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != t.Name {
		existing, err := s.types.FindByName(ctx, kind, *name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.Conflictf("the %s type '%s' already exists", kind, *name)
		}
		t.Name = *name
	}
	if mainUse != nil {
		t.MainUse = *mainUse
	}

	if err := s.types.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteType refuses to remove a type that still categorizes products.
func (s *CatalogService) DeleteType(ctx context.Context, kind domain.TypeKind, id uint64) error {
	t, err := s.GetType(ctx, kind, id)
	if err != nil {
		return err
	}

	n, err := s.types.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Conflictf("the %s type '%s' categorizes %d product(s)", kind, t.Name, n)
	}

	return s.types.Delete(ctx, t)
}
