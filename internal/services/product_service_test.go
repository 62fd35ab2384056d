package services

import (
	"context"
	"testing"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_CreateProduct(t *testing.T) {
	typeID := uint64(5)
	sellerID := uint64(7)

	tests := []struct {
		name          string
		input         CreateProductInput
		setupMocks    func(*mocks.MockProductRepository, *mocks.MockProductTypeRepository)
		expectedError string
	}{
		{
			name: "creates a product when the name is free",
			input: CreateProductInput{
				Name:     "Touring Kayak",
				Price:    899,
				Stock:    5,
				Category: domain.CategoryKayak,
				SellerID: &sellerID,
			},
			setupMocks: func(products *mocks.MockProductRepository, types *mocks.MockProductTypeRepository) {
				products.On("CountByName", mock.Anything, "Touring Kayak", &sellerID, uint64(0)).Return(int64(0), nil)
				products.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)
			},
		},
		{
			name: "rejects a duplicate name for the same seller",
			input: CreateProductInput{
				Name:     "Touring Kayak",
				Price:    899,
				Category: domain.CategoryKayak,
				SellerID: &sellerID,
			},
			setupMocks: func(products *mocks.MockProductRepository, types *mocks.MockProductTypeRepository) {
				products.On("CountByName", mock.Anything, "Touring Kayak", &sellerID, uint64(0)).Return(int64(1), nil)
			},
			expectedError: "already exists for this seller",
		},
		{
			name: "rejects an unknown type",
			input: CreateProductInput{
				Name:     "Touring Kayak",
				Price:    899,
				Category: domain.CategoryKayak,
				TypeID:   &typeID,
			},
			setupMocks: func(products *mocks.MockProductRepository, types *mocks.MockProductTypeRepository) {
				types.On("FindByID", mock.Anything, domain.KindKayak, typeID).Return(nil, nil)
			},
			expectedError: "kayak type with id 5 not found",
		},
		{
			name: "accessory types resolve against article types",
			input: CreateProductInput{
				Name:     "Dry Bag",
				Price:    29.5,
				Category: domain.CategoryAccessory,
				TypeID:   &typeID,
			},
			setupMocks: func(products *mocks.MockProductRepository, types *mocks.MockProductTypeRepository) {
				types.On("FindByID", mock.Anything, domain.KindArticle, typeID).
					Return(&domain.ProductType{ID: typeID, Kind: domain.KindArticle, Name: "Storage"}, nil)
				products.On("CountByName", mock.Anything, "Dry Bag", (*uint64)(nil), uint64(0)).Return(int64(0), nil)
				products.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProducts := new(mocks.MockProductRepository)
			mockTypes := new(mocks.MockProductTypeRepository)
			tt.setupMocks(mockProducts, mockTypes)

			service := NewProductService(mockProducts, mockTypes)
			product, err := service.CreateProduct(context.Background(), tt.input)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, product)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, product)
				assert.Equal(t, tt.input.Name, product.Name)
				assert.False(t, product.Approved)
			}

			mockProducts.AssertExpectations(t)
			mockTypes.AssertExpectations(t)
		})
	}
}

func TestProductService_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockProducts := new(mocks.MockProductRepository)
		mockTypes := new(mocks.MockProductTypeRepository)
		mockProducts.On("FindByID", mock.Anything, uint64(1)).
			Return(&domain.Product{ID: 1, Name: "Touring Kayak"}, nil).Once()

		service := NewProductService(mockProducts, mockTypes)
		product, err := service.GetProduct(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "Touring Kayak", product.Name)
		mockProducts.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockProducts := new(mocks.MockProductRepository)
		mockTypes := new(mocks.MockProductTypeRepository)
		mockProducts.On("FindByID", mock.Anything, uint64(404)).Return(nil, nil)

		service := NewProductService(mockProducts, mockTypes)
		product, err := service.GetProduct(context.Background(), 404)

		assert.Error(t, err)
		assert.Nil(t, product)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	t.Run("patches only the provided fields", func(t *testing.T) {
		mockProducts := new(mocks.MockProductRepository)
		mockTypes := new(mocks.MockProductTypeRepository)
		mockProducts.On("FindByID", mock.Anything, uint64(1)).
			Return(&domain.Product{ID: 1, Name: "Touring Kayak", Price: 899, Stock: 5}, nil)
		mockProducts.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

		newPrice := 799.0
		approved := true
		service := NewProductService(mockProducts, mockTypes)
		product, err := service.UpdateProduct(context.Background(), 1, UpdateProductInput{
			Price:    &newPrice,
			Approved: &approved,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Touring Kayak", product.Name)
		assert.Equal(t, 799.0, product.Price)
		assert.Equal(t, 5, product.Stock)
		assert.True(t, product.Approved)
		mockProducts.AssertExpectations(t)
	})

	t.Run("rejects a rename onto a taken name", func(t *testing.T) {
		mockProducts := new(mocks.MockProductRepository)
		mockTypes := new(mocks.MockProductTypeRepository)
		mockProducts.On("FindByID", mock.Anything, uint64(1)).
			Return(&domain.Product{ID: 1, Name: "Touring Kayak"}, nil)
		mockProducts.On("CountByName", mock.Anything, "Sea Kayak", (*uint64)(nil), uint64(1)).Return(int64(1), nil)

		newName := "Sea Kayak"
		service := NewProductService(mockProducts, mockTypes)
		product, err := service.UpdateProduct(context.Background(), 1, UpdateProductInput{Name: &newName})

		assert.Error(t, err)
		assert.Nil(t, product)
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	t.Run("refuses while order items reference the product", func(t *testing.T) {
		mockProducts := new(mocks.MockProductRepository)
		mockTypes := new(mocks.MockProductTypeRepository)
		mockProducts.On("FindByID", mock.Anything, uint64(1)).
			Return(&domain.Product{ID: 1, Name: "Touring Kayak"}, nil)
		mockProducts.On("CountOrderItems", mock.Anything, uint64(1)).Return(int64(2), nil)

		service := NewProductService(mockProducts, mockTypes)
		err := service.DeleteProduct(context.Background(), 1)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "referenced by 2 order item(s)")
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
		mockProducts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes when unreferenced", func(t *testing.T) {
		mockProducts := new(mocks.MockProductRepository)
		mockTypes := new(mocks.MockProductTypeRepository)
		mockProducts.On("FindByID", mock.Anything, uint64(1)).
			Return(&domain.Product{ID: 1, Name: "Touring Kayak"}, nil)
		mockProducts.On("CountOrderItems", mock.Anything, uint64(1)).Return(int64(0), nil)
		mockProducts.On("Delete", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

		service := NewProductService(mockProducts, mockTypes)
		err := service.DeleteProduct(context.Background(), 1)

		assert.NoError(t, err)
		mockProducts.AssertExpectations(t)
	})
}

func TestCatalogService_CreateType(t *testing.T) {
	t.Run("rejects a duplicate name within the kind", func(t *testing.T) {
		mockTypes := new(mocks.MockProductTypeRepository)
		mockTypes.On("FindByName", mock.Anything, domain.KindKayak, "Touring").
			Return(&domain.ProductType{ID: 1, Kind: domain.KindKayak, Name: "Touring"}, nil)

		service := NewCatalogService(mockTypes)
		created, err := service.CreateType(context.Background(), domain.KindKayak, "Touring", "")

		assert.Error(t, err)
		assert.Nil(t, created)
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("creates when the name is free for the kind", func(t *testing.T) {
		mockTypes := new(mocks.MockProductTypeRepository)
		mockTypes.On("FindByName", mock.Anything, domain.KindSUP, "Touring").Return(nil, nil)
		mockTypes.On("Create", mock.Anything, mock.AnythingOfType("*domain.ProductType")).Return(nil)

		service := NewCatalogService(mockTypes)
		created, err := service.CreateType(context.Background(), domain.KindSUP, "Touring", "long distance")

		assert.NoError(t, err)
		assert.Equal(t, domain.KindSUP, created.Kind)
		assert.Equal(t, "Touring", created.Name)
		mockTypes.AssertExpectations(t)
	})
}

func TestCatalogService_DeleteType(t *testing.T) {
	t.Run("refuses while products use the type", func(t *testing.T) {
		mockTypes := new(mocks.MockProductTypeRepository)
		mockTypes.On("FindByID", mock.Anything, domain.KindBoat, uint64(3)).
			Return(&domain.ProductType{ID: 3, Kind: domain.KindBoat, Name: "Dinghy"}, nil)
		mockTypes.On("CountProducts", mock.Anything, uint64(3)).Return(int64(4), nil)

		service := NewCatalogService(mockTypes)
		err := service.DeleteType(context.Background(), domain.KindBoat, 3)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "categorizes 4 product(s)")
		mockTypes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes an unused type", func(t *testing.T) {
		mockTypes := new(mocks.MockProductTypeRepository)
		mockTypes.On("FindByID", mock.Anything, domain.KindBoat, uint64(3)).
			Return(&domain.ProductType{ID: 3, Kind: domain.KindBoat, Name: "Dinghy"}, nil)
		mockTypes.On("CountProducts", mock.Anything, uint64(3)).Return(int64(0), nil)
		mockTypes.On("Delete", mock.Anything, mock.AnythingOfType("*domain.ProductType")).Return(nil)

		service := NewCatalogService(mockTypes)
		err := service.DeleteType(context.Background(), domain.KindBoat, 3)

		assert.NoError(t, err)
		mockTypes.AssertExpectations(t)
	})
}
