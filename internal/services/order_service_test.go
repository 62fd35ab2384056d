package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func assertErrorType[T error](t *testing.T, err error) {
	t.Helper()
	var target T
	assert.ErrorAs(t, err, &target)
}

func newOrderServiceForTest(repo *memOrderRepo) (*OrderService, *mocks.MockUserRepository, *mocks.MockPickupPointRepository, *mocks.MockPublisher) {
	mockUsers := new(mocks.MockUserRepository)
	mockPickups := new(mocks.MockPickupPointRepository)
	mockPublisher := new(mocks.MockPublisher)
	mockPublisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return NewOrderService(repo, mockUsers, mockPickups, mockPublisher), mockUsers, mockPickups, mockPublisher
}

func TestOrderService_PlaceOrder(t *testing.T) {
	pickupID := uint64(3)
	missingUserID := uint64(999)
	missingPickupID := uint64(888)

	tests := []struct {
		name          string
		products      []*domain.Product
		input         PlaceOrderInput
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPickupPointRepository)
		expectedError string
		assertType    func(*testing.T, error)
		checkState    func(*testing.T, *memOrderRepo, *domain.Order)
	}{
		{
			name:     "pickup order decrements stock and snapshots the product",
			products: []*domain.Product{CreateTestProduct(TestProductID, TestProductName, TestProductPrice, TestProductStock)},
			input: PlaceOrderInput{
				DeliveryType:  domain.DeliveryPickup,
				TotalAmount:   99.98,
				BuyerName:     "Jane Paddler",
				BuyerEmail:    "jane@example.com",
				PickupPointID: &pickupID,
				Items: []domain.OrderItemInput{
					{ProductID: TestProductID, Quantity: 2, PriceAtPurchase: "$49.99"},
				},
			},
			setupMocks: func(users *mocks.MockUserRepository, pickups *mocks.MockPickupPointRepository) {
				pickups.On("FindByID", mock.Anything, pickupID).Return(&domain.PickupPoint{ID: pickupID, Name: "Harbor Kiosk"}, nil)
			},
			checkState: func(t *testing.T, repo *memOrderRepo, order *domain.Order) {
				assert.Equal(t, domain.StatusPending, order.Status)
				assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
				assert.WithinDuration(t, time.Now(), order.OrderDate, time.Second)

				assert.Len(t, order.Items, 1)
				item := order.Items[0]
				assert.Equal(t, 2, item.Quantity)
				assert.Equal(t, "$49.99", item.PriceAtPurchase)
				assert.InDelta(t, 99.98, item.Subtotal, 0.0001)
				assert.Equal(t, TestProductName, item.ProductName)
				assert.Equal(t, "Test Seller", item.SellerName)

				product := repo.ProductState(TestProductID)
				assert.Equal(t, TestProductStock-2, product.Stock)
				assert.Equal(t, 2, product.SoldCount)
				assert.Equal(t, 1, repo.OrderCount())
			},
		},
		{
			name:     "insufficient stock rejects the order and leaves stock untouched",
			products: []*domain.Product{CreateTestProduct(TestProductID, TestProductName, TestProductPrice, 1)},
			input: PlaceOrderInput{
				DeliveryType: domain.DeliveryShip,
				TotalAmount:  99.98,
				BuyerName:    "Jane Paddler",
				BuyerEmail:   "jane@example.com",
				Items: []domain.OrderItemInput{
					{ProductID: TestProductID, Quantity: 2, PriceAtPurchase: "$49.99"},
				},
			},
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockPickupPointRepository) {},
			expectedError: "insufficient stock",
			assertType:    assertErrorType[*domain.ConflictError],
			checkState: func(t *testing.T, repo *memOrderRepo, _ *domain.Order) {
				product := repo.ProductState(TestProductID)
				assert.Equal(t, 1, product.Stock)
				assert.Equal(t, 0, product.SoldCount)
				assert.Equal(t, 0, repo.OrderCount())
			},
		},
		{
			name: "failure on a later item rolls back earlier decrements",
			products: []*domain.Product{
				CreateTestProduct(1, "Touring Kayak", 899, 5),
				CreateTestProduct(2, "Carbon Paddle", 249, 1),
			},
			input: PlaceOrderInput{
				DeliveryType: domain.DeliveryShip,
				TotalAmount:  2047,
				BuyerName:    "Jane Paddler",
				BuyerEmail:   "jane@example.com",
				Items: []domain.OrderItemInput{
					{ProductID: 1, Quantity: 2, PriceAtPurchase: "899"},
					{ProductID: 2, Quantity: 3, PriceAtPurchase: "249"},
				},
			},
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockPickupPointRepository) {},
			expectedError: "insufficient stock for product 'Carbon Paddle'",
			assertType:    assertErrorType[*domain.ConflictError],
			checkState: func(t *testing.T, repo *memOrderRepo, _ *domain.Order) {
				assert.Equal(t, 5, repo.ProductState(1).Stock)
				assert.Equal(t, 0, repo.ProductState(1).SoldCount)
				assert.Equal(t, 1, repo.ProductState(2).Stock)
				assert.Equal(t, 0, repo.OrderCount())
			},
		},
		{
			name:     "unknown product aborts the whole order",
			products: []*domain.Product{CreateTestProduct(TestProductID, TestProductName, TestProductPrice, TestProductStock)},
			input: PlaceOrderInput{
				DeliveryType: domain.DeliveryShip,
				TotalAmount:  49.99,
				BuyerName:    "Jane Paddler",
				BuyerEmail:   "jane@example.com",
				Items: []domain.OrderItemInput{
					{ProductID: 777, Quantity: 1, PriceAtPurchase: "49.99"},
				},
			},
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockPickupPointRepository) {},
			expectedError: "product with id 777 not found",
			assertType:    assertErrorType[*domain.NotFoundError],
			checkState: func(t *testing.T, repo *memOrderRepo, _ *domain.Order) {
				assert.Equal(t, 0, repo.OrderCount())
			},
		},
		{
			name:     "unknown user is rejected before any stock moves",
			products: []*domain.Product{CreateTestProduct(TestProductID, TestProductName, TestProductPrice, TestProductStock)},
			input: PlaceOrderInput{
				DeliveryType: domain.DeliveryShip,
				TotalAmount:  49.99,
				BuyerName:    "Jane Paddler",
				BuyerEmail:   "jane@example.com",
				UserID:       &missingUserID,
				Items: []domain.OrderItemInput{
					{ProductID: TestProductID, Quantity: 1, PriceAtPurchase: "49.99"},
				},
			},
			setupMocks: func(users *mocks.MockUserRepository, pickups *mocks.MockPickupPointRepository) {
				users.On("FindByID", mock.Anything, missingUserID).Return(nil, nil)
			},
			expectedError: "user with id 999 not found",
			assertType:    assertErrorType[*domain.NotFoundError],
			checkState: func(t *testing.T, repo *memOrderRepo, _ *domain.Order) {
				assert.Equal(t, TestProductStock, repo.ProductState(TestProductID).Stock)
				assert.Equal(t, 0, repo.OrderCount())
			},
		},
		{
			name:     "unknown pickup point is rejected",
			products: []*domain.Product{CreateTestProduct(TestProductID, TestProductName, TestProductPrice, TestProductStock)},
			input: PlaceOrderInput{
				DeliveryType:  domain.DeliveryPickup,
				TotalAmount:   49.99,
				BuyerName:     "Jane Paddler",
				BuyerEmail:    "jane@example.com",
				PickupPointID: &missingPickupID,
				Items: []domain.OrderItemInput{
					{ProductID: TestProductID, Quantity: 1, PriceAtPurchase: "49.99"},
				},
			},
			setupMocks: func(users *mocks.MockUserRepository, pickups *mocks.MockPickupPointRepository) {
				pickups.On("FindByID", mock.Anything, missingPickupID).Return(nil, nil)
			},
			expectedError: "pickup point with id 888 not found",
			assertType:    assertErrorType[*domain.NotFoundError],
		},
		{
			name:     "unparseable price rolls back the stock decrement",
			products: []*domain.Product{CreateTestProduct(TestProductID, TestProductName, TestProductPrice, TestProductStock)},
			input: PlaceOrderInput{
				DeliveryType: domain.DeliveryShip,
				TotalAmount:  49.99,
				BuyerName:    "Jane Paddler",
				BuyerEmail:   "jane@example.com",
				Items: []domain.OrderItemInput{
					{ProductID: TestProductID, Quantity: 1, PriceAtPurchase: "$."},
				},
			},
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockPickupPointRepository) {},
			expectedError: "price",
			assertType:    assertErrorType[*domain.ValidationError],
			checkState: func(t *testing.T, repo *memOrderRepo, _ *domain.Order) {
				assert.Equal(t, TestProductStock, repo.ProductState(TestProductID).Stock)
				assert.Equal(t, 0, repo.ProductState(TestProductID).SoldCount)
				assert.Equal(t, 0, repo.OrderCount())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemOrderRepo(tt.products...)
			service, mockUsers, mockPickups, _ := newOrderServiceForTest(repo)
			tt.setupMocks(mockUsers, mockPickups)

			order, err := service.PlaceOrder(context.Background(), tt.input)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, order)
				if tt.assertType != nil {
					tt.assertType(t, err)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
			}

			if tt.checkState != nil {
				tt.checkState(t, repo, order)
			}

			mockUsers.AssertExpectations(t)
			mockPickups.AssertExpectations(t)
		})
	}
}

func TestOrderService_PlaceOrder_PersistsOneItemPerRequestEntry(t *testing.T) {
	repo := newMemOrderRepo(
		CreateTestProduct(1, "Touring Kayak", 899, 5),
		CreateTestProduct(2, "Carbon Paddle", 249, 5),
		CreateTestProduct(3, "Dry Bag", 29.5, 5),
	)
	service, _, _, _ := newOrderServiceForTest(repo)

	order, err := service.PlaceOrder(context.Background(), PlaceOrderInput{
		DeliveryType: domain.DeliveryShip,
		TotalAmount:  1426.5,
		BuyerName:    "Jane Paddler",
		BuyerEmail:   "jane@example.com",
		Items: []domain.OrderItemInput{
			{ProductID: 1, Quantity: 1, PriceAtPurchase: "899"},
			{ProductID: 2, Quantity: 2, PriceAtPurchase: "249"},
			{ProductID: 3, Quantity: 1, PriceAtPurchase: "29.50"},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, order.Items, 3)

	stored, err := repo.FindByID(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.Len(t, stored.Items, 3)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	repo := newMemOrderRepo(CreateTestProduct(TestProductID, TestProductName, TestProductPrice, TestProductStock))
	service, _, _, _ := newOrderServiceForTest(repo)

	order, err := service.PlaceOrder(context.Background(), PlaceOrderInput{
		DeliveryType: domain.DeliveryShip,
		TotalAmount:  99.98,
		BuyerName:    "Jane Paddler",
		BuyerEmail:   "jane@example.com",
		Items: []domain.OrderItemInput{
			{ProductID: TestProductID, Quantity: 2, PriceAtPurchase: "$49.99"},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, TestProductStock-2, repo.ProductState(TestProductID).Stock)

	err = service.DeleteOrder(context.Background(), order.ID)
	assert.NoError(t, err)

	// Create followed by delete is a stock no-op.
	product := repo.ProductState(TestProductID)
	assert.Equal(t, TestProductStock, product.Stock)
	assert.Equal(t, 0, product.SoldCount)
	assert.Equal(t, 0, repo.OrderCount())
}

func TestOrderService_DeleteOrder_SkipsVanishedProducts(t *testing.T) {
	repo := newMemOrderRepo(CreateTestProduct(TestProductID, TestProductName, TestProductPrice, TestProductStock))
	service, _, _, _ := newOrderServiceForTest(repo)

	order, err := service.PlaceOrder(context.Background(), PlaceOrderInput{
		DeliveryType: domain.DeliveryShip,
		TotalAmount:  49.99,
		BuyerName:    "Jane Paddler",
		BuyerEmail:   "jane@example.com",
		Items: []domain.OrderItemInput{
			{ProductID: TestProductID, Quantity: 1, PriceAtPurchase: "49.99"},
		},
	})
	assert.NoError(t, err)

	// Product removed out of band between create and delete.
	repo.mu.Lock()
	delete(repo.products, TestProductID)
	repo.mu.Unlock()

	err = service.DeleteOrder(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, repo.OrderCount())
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	repo := newMemOrderRepo()
	service, _, _, _ := newOrderServiceForTest(repo)

	err := service.DeleteOrder(context.Background(), 404)
	assert.Error(t, err)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := newMemOrderRepo(CreateTestProduct(TestProductID, TestProductName, TestProductPrice, TestProductStock))
	service, _, _, _ := newOrderServiceForTest(repo)

	order, err := service.PlaceOrder(context.Background(), PlaceOrderInput{
		DeliveryType: domain.DeliveryShip,
		TotalAmount:  49.99,
		BuyerName:    "Jane Paddler",
		BuyerEmail:   "jane@example.com",
		Items: []domain.OrderItemInput{
			{ProductID: TestProductID, Quantity: 1, PriceAtPurchase: "49.99"},
		},
	})
	assert.NoError(t, err)

	// Any status from the enumeration may overwrite any other, in any
	// direction.
	for _, status := range []domain.OrderStatus{
		domain.StatusDelivered,
		domain.StatusPending,
		domain.StatusCancelled,
		domain.StatusConfirmed,
	} {
		updated, err := service.UpdateStatus(context.Background(), order.ID, status)
		assert.NoError(t, err)
		assert.Equal(t, status, updated.Status)

		stored, err := repo.FindByID(context.Background(), order.ID)
		assert.NoError(t, err)
		assert.Equal(t, status, stored.Status)
	}
}

func TestOrderService_UpdateStatus_Invalid(t *testing.T) {
	repo := newMemOrderRepo()
	service, _, _, _ := newOrderServiceForTest(repo)

	updated, err := service.UpdateStatus(context.Background(), 1, "teleported")
	assert.Error(t, err)
	assert.Nil(t, updated)
	var invalid *domain.ValidationError
	assert.ErrorAs(t, err, &invalid)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	repo := newMemOrderRepo()
	service, _, _, _ := newOrderServiceForTest(repo)

	order, err := service.GetOrder(context.Background(), 12345)
	assert.Error(t, err)
	assert.Nil(t, order)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
