package mocks

import (
	"context"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) InTx(ctx context.Context, fn func(store repository.OrderStore) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockPickupPointRepository struct {
	mock.Mock
}

func (m *MockPickupPointRepository) FindAll(ctx context.Context) ([]domain.PickupPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PickupPoint), args.Error(1)
}

func (m *MockPickupPointRepository) FindActive(ctx context.Context) ([]domain.PickupPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PickupPoint), args.Error(1)
}

func (m *MockPickupPointRepository) FindByID(ctx context.Context, id uint64) (*domain.PickupPoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickupPoint), args.Error(1)
}

func (m *MockPickupPointRepository) FindByLocality(ctx context.Context, localityID uint64) ([]domain.PickupPoint, error) {
	args := m.Called(ctx, localityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PickupPoint), args.Error(1)
}

func (m *MockPickupPointRepository) Create(ctx context.Context, p *domain.PickupPoint) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPickupPointRepository) Update(ctx context.Context, p *domain.PickupPoint) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPickupPointRepository) Delete(ctx context.Context, p *domain.PickupPoint) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByType(ctx context.Context, typeID uint64) ([]domain.Product, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) CountByName(ctx context.Context, name string, sellerID *uint64, excludeID uint64) (int64, error) {
	args := m.Called(ctx, name, sellerID, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountOrderItems(ctx context.Context, productID uint64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductTypeRepository struct {
	mock.Mock
}

func (m *MockProductTypeRepository) FindAllByKind(ctx context.Context, kind domain.TypeKind) ([]domain.ProductType, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductType), args.Error(1)
}

func (m *MockProductTypeRepository) FindByID(ctx context.Context, kind domain.TypeKind, id uint64) (*domain.ProductType, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductType), args.Error(1)
}

func (m *MockProductTypeRepository) FindByName(ctx context.Context, kind domain.TypeKind, name string) (*domain.ProductType, error) {
	args := m.Called(ctx, kind, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductType), args.Error(1)
}

func (m *MockProductTypeRepository) Create(ctx context.Context, t *domain.ProductType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockProductTypeRepository) Update(ctx context.Context, t *domain.ProductType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockProductTypeRepository) Delete(ctx context.Context, t *domain.ProductType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockProductTypeRepository) CountProducts(ctx context.Context, typeID uint64) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}
