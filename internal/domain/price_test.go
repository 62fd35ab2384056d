package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain number", input: "49.99", want: 49.99},
		{name: "dollar sign", input: "$49.99", want: 49.99},
		{name: "thousands separator", input: "$1,299.50", want: 1299.50},
		{name: "currency suffix", input: "1299.50 EUR", want: 1299.50},
		{name: "integer", input: "899", want: 899},
		{name: "surrounding noise", input: " 12.00 ", want: 12},
		{name: "zero", input: "0", want: 0},
		{name: "no digits", input: "free", wantErr: true},
		{name: "only a dot", input: "$.", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "two dots", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				var invalid *ValidationError
				assert.ErrorAs(t, err, &invalid)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestNewOrderItem(t *testing.T) {
	sellerID := uint64(7)
	product := &Product{
		ID:         42,
		Name:       "Touring Kayak",
		Image:      "https://cdn.example.com/kayak.jpg",
		Price:      999.00,
		SellerID:   &sellerID,
		SellerName: "Harbor Outfitters",
	}

	item, err := NewOrderItem(product, OrderItemInput{
		ProductID:       42,
		Quantity:        3,
		PriceAtPurchase: "$899.00",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint64(42), *item.ProductID)
	assert.Equal(t, 3, item.Quantity)
	// Subtotal comes from the purchase-time price, not the current product
	// price.
	assert.InDelta(t, 2697.00, item.Subtotal, 0.0001)
	assert.Equal(t, "$899.00", item.PriceAtPurchase)
	assert.Equal(t, "Touring Kayak", item.ProductName)
	assert.Equal(t, "https://cdn.example.com/kayak.jpg", item.ProductImage)
	assert.Equal(t, sellerID, *item.SellerID)
	assert.Equal(t, "Harbor Outfitters", item.SellerName)
}

func TestNewOrderItem_BadPrice(t *testing.T) {
	_, err := NewOrderItem(&Product{ID: 1, Name: "Dry Bag"}, OrderItemInput{
		ProductID:       1,
		Quantity:        1,
		PriceAtPurchase: "n/a",
	})
	assert.Error(t, err)
}
