package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validShipRequest() CreateOrderRequest {
	return CreateOrderRequest{
		DeliveryType:       "ship",
		TotalAmount:        99.98,
		BuyerName:          "Jane Paddler",
		BuyerEmail:         "jane@example.com",
		BuyerPhone:         "+34 600 123 456",
		ShippingAddress:    "12 Marina Way",
		ShippingCity:       "Santander",
		ShippingPostalCode: "39001",
		ShippingProvince:   "Cantabria",
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 2, PriceAtPurchase: "$49.99"},
		},
	}
}

func validPickupRequest() CreateOrderRequest {
	pickupID := uint64(3)
	return CreateOrderRequest{
		DeliveryType:  "pickup",
		TotalAmount:   99.98,
		BuyerName:     "Jane Paddler",
		BuyerEmail:    "jane@example.com",
		PickupPointID: &pickupID,
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 2, PriceAtPurchase: "$49.99"},
		},
	}
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	negative := -1.0

	tests := []struct {
		name    string
		mutate  func(*CreateOrderRequest)
		wantErr string
	}{
		{name: "valid ship request", mutate: func(r *CreateOrderRequest) {}},
		{
			name:   "valid pickup request",
			mutate: func(r *CreateOrderRequest) { *r = validPickupRequest() },
		},
		{
			name:    "missing delivery type",
			mutate:  func(r *CreateOrderRequest) { r.DeliveryType = "" },
			wantErr: "delivery type is required",
		},
		{
			name:    "unknown delivery type",
			mutate:  func(r *CreateOrderRequest) { r.DeliveryType = "drone" },
			wantErr: "invalid delivery type",
		},
		{
			name:    "zero total amount",
			mutate:  func(r *CreateOrderRequest) { r.TotalAmount = 0 },
			wantErr: "total amount must be a number greater than 0",
		},
		{
			name:    "buyer name too short",
			mutate:  func(r *CreateOrderRequest) { r.BuyerName = "J" },
			wantErr: "at least 2 characters",
		},
		{
			name:    "bad email",
			mutate:  func(r *CreateOrderRequest) { r.BuyerEmail = "not-an-email" },
			wantErr: "buyer email is not valid",
		},
		{
			name:    "bad phone",
			mutate:  func(r *CreateOrderRequest) { r.BuyerPhone = "12345" },
			wantErr: "buyer phone is not valid",
		},
		{
			name:    "negative shipping cost",
			mutate:  func(r *CreateOrderRequest) { r.ShippingCost = &negative },
			wantErr: "shipping cost must be a non-negative number",
		},
		{
			name:    "negative tax amount",
			mutate:  func(r *CreateOrderRequest) { r.TaxAmount = &negative },
			wantErr: "tax amount must be a non-negative number",
		},
		{
			name:    "no items",
			mutate:  func(r *CreateOrderRequest) { r.Items = nil },
			wantErr: "at least one item",
		},
		{
			name:    "item with zero quantity",
			mutate:  func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 },
			wantErr: "item 1: quantity is invalid",
		},
		{
			name:    "item with zero product id",
			mutate:  func(r *CreateOrderRequest) { r.Items[0].ProductID = 0 },
			wantErr: "item 1: productId is invalid",
		},
		{
			name:    "item with unparseable price",
			mutate:  func(r *CreateOrderRequest) { r.Items[0].PriceAtPurchase = "free" },
			wantErr: "item 1: priceAtPurchase is not valid",
		},
		{
			name:    "item with zero price",
			mutate:  func(r *CreateOrderRequest) { r.Items[0].PriceAtPurchase = "$0.00" },
			wantErr: "item 1: priceAtPurchase is not valid",
		},
		{
			name:    "ship without shipping address",
			mutate:  func(r *CreateOrderRequest) { r.ShippingAddress = "" },
			wantErr: "shipping address is required for home delivery",
		},
		{
			name:    "ship without shipping city",
			mutate:  func(r *CreateOrderRequest) { r.ShippingCity = "" },
			wantErr: "shipping city is required for home delivery",
		},
		{
			name:    "ship without postal code",
			mutate:  func(r *CreateOrderRequest) { r.ShippingPostalCode = "" },
			wantErr: "shipping postal code is required for home delivery",
		},
		{
			name:    "ship without province",
			mutate:  func(r *CreateOrderRequest) { r.ShippingProvince = "" },
			wantErr: "shipping province is required for home delivery",
		},
		{
			name: "pickup without pickup point",
			mutate: func(r *CreateOrderRequest) {
				*r = validPickupRequest()
				r.PickupPointID = nil
			},
			wantErr: "pickup point is required for store pickup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validShipRequest()
			tt.mutate(&req)
			req.Sanitize()
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCreateOrderRequest_Sanitize(t *testing.T) {
	req := CreateOrderRequest{
		DeliveryType:       "  SHIP ",
		BuyerName:          "  Jane Paddler  ",
		BuyerEmail:         " Jane@Example.COM ",
		BuyerPhone:         " +34 600 123 456 ",
		ShippingPostalCode: " 39 001 ",
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 1, PriceAtPurchase: " $49.99 "},
		},
	}
	req.Sanitize()

	assert.Equal(t, "ship", req.DeliveryType)
	assert.Equal(t, "Jane Paddler", req.BuyerName)
	assert.Equal(t, "jane@example.com", req.BuyerEmail)
	assert.Equal(t, "+34600123456", req.BuyerPhone)
	assert.Equal(t, "39001", req.ShippingPostalCode)
	assert.Equal(t, "$49.99", req.Items[0].PriceAtPurchase)
}

func TestUpdateOrderStatusRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr string
	}{
		{name: "valid status", status: "shipped"},
		{name: "uppercase is normalized", status: " DELIVERED "},
		{name: "empty", status: "", wantErr: "status is required"},
		{name: "unknown", status: "teleported", wantErr: "invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := UpdateOrderStatusRequest{Status: tt.status}
			req.Sanitize()
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
