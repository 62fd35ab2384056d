package http

import (
	"regexp"
	"strings"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/services"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9\s\-()]{10,}$`)
	spaceRe = regexp.MustCompile(`\s+`)
)

type OrderItemRequest struct {
	ProductID       uint64 `json:"productId"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"priceAtPurchase"`
}

type CreateOrderRequest struct {
	DeliveryType string   `json:"deliveryType"`
	TotalAmount  float64  `json:"totalAmount"`
	ShippingCost *float64 `json:"shippingCost"`
	TaxAmount    *float64 `json:"taxAmount"`

	BuyerName  string `json:"buyerName"`
	BuyerEmail string `json:"buyerEmail"`
	BuyerPhone string `json:"buyerPhone"`

	ShippingAddress    string `json:"shippingAddress"`
	ShippingCity       string `json:"shippingCity"`
	ShippingPostalCode string `json:"shippingPostalCode"`
	ShippingProvince   string `json:"shippingProvince"`

	PickupPointID *uint64 `json:"pickupPointId"`
	Notes         string  `json:"notes"`
	UserID        *uint64 `json:"userId"`

	Items []OrderItemRequest `json:"items"`
}

// Sanitize normalizes free-text fields before validation: trims everything,
// lowercases the email and delivery type, collapses whitespace out of phone
// and postal code.
func (r *CreateOrderRequest) Sanitize() {
	r.DeliveryType = strings.ToLower(strings.TrimSpace(r.DeliveryType))
	r.BuyerName = strings.TrimSpace(r.BuyerName)
	r.BuyerEmail = strings.ToLower(strings.TrimSpace(r.BuyerEmail))
	r.BuyerPhone = spaceRe.ReplaceAllString(strings.TrimSpace(r.BuyerPhone), "")
	r.ShippingAddress = strings.TrimSpace(r.ShippingAddress)
	r.ShippingCity = strings.TrimSpace(r.ShippingCity)
	r.ShippingPostalCode = spaceRe.ReplaceAllString(strings.TrimSpace(r.ShippingPostalCode), "")
	r.ShippingProvince = strings.TrimSpace(r.ShippingProvince)
	r.Notes = strings.TrimSpace(r.Notes)
	for i := range r.Items {
		r.Items[i].PriceAtPurchase = strings.TrimSpace(r.Items[i].PriceAtPurchase)
	}
}

// Validate enforces the request contract before any product is touched.
func (r *CreateOrderRequest) Validate() error {
	if r.DeliveryType == "" {
		return domain.Invalidf("delivery type is required")
	}
	if !domain.ValidDeliveryType(domain.DeliveryType(r.DeliveryType)) {
		return domain.Invalidf("invalid delivery type, must be one of: ship, pickup")
	}
	if r.TotalAmount <= 0 {
		return domain.Invalidf("total amount must be a number greater than 0")
	}
	if r.BuyerName == "" {
		return domain.Invalidf("buyer name is required")
	}
	if len(r.BuyerName) < 2 {
		return domain.Invalidf("buyer name must be at least 2 characters long")
	}
	if len(r.BuyerName) > 100 {
		return domain.Invalidf("buyer name cannot exceed 100 characters")
	}
	if r.BuyerEmail == "" {
		return domain.Invalidf("buyer email is required")
	}
	if !emailRe.MatchString(r.BuyerEmail) {
		return domain.Invalidf("buyer email is not valid")
	}
	if r.BuyerPhone != "" && !phoneRe.MatchString(r.BuyerPhone) {
		return domain.Invalidf("buyer phone is not valid")
	}
	if r.ShippingCost != nil && *r.ShippingCost < 0 {
		return domain.Invalidf("shipping cost must be a non-negative number")
	}
	if r.TaxAmount != nil && *r.TaxAmount < 0 {
		return domain.Invalidf("tax amount must be a non-negative number")
	}
	if len(r.Items) == 0 {
		return domain.Invalidf("order must contain at least one item")
	}
	for i, item := range r.Items {
		if item.ProductID == 0 {
			return domain.Invalidf("item %d: productId is invalid", i+1)
		}
		if item.Quantity <= 0 {
			return domain.Invalidf("item %d: quantity is invalid", i+1)
		}
		if item.PriceAtPurchase == "" {
			return domain.Invalidf("item %d: priceAtPurchase is required", i+1)
		}
		price, err := domain.ParsePrice(item.PriceAtPurchase)
		if err != nil || price <= 0 {
			return domain.Invalidf("item %d: priceAtPurchase is not valid", i+1)
		}
	}

	switch domain.DeliveryType(r.DeliveryType) {
	case domain.DeliveryShip:
		if r.ShippingAddress == "" {
			return domain.Invalidf("shipping address is required for home delivery")
		}
		if r.ShippingCity == "" {
			return domain.Invalidf("shipping city is required for home delivery")
		}
		if r.ShippingPostalCode == "" {
			return domain.Invalidf("shipping postal code is required for home delivery")
		}
		if r.ShippingProvince == "" {
			return domain.Invalidf("shipping province is required for home delivery")
		}
	case domain.DeliveryPickup:
		if r.PickupPointID == nil || *r.PickupPointID == 0 {
			return domain.Invalidf("pickup point is required for store pickup")
		}
	}

	return nil
}

func (r *CreateOrderRequest) ToInput() services.PlaceOrderInput {
	in := services.PlaceOrderInput{
		DeliveryType:       domain.DeliveryType(r.DeliveryType),
		TotalAmount:        r.TotalAmount,
		BuyerName:          r.BuyerName,
		BuyerEmail:         r.BuyerEmail,
		BuyerPhone:         r.BuyerPhone,
		ShippingAddress:    r.ShippingAddress,
		ShippingCity:       r.ShippingCity,
		ShippingPostalCode: r.ShippingPostalCode,
		ShippingProvince:   r.ShippingProvince,
		PickupPointID:      r.PickupPointID,
		Notes:              r.Notes,
		UserID:             r.UserID,
	}
	if r.ShippingCost != nil {
		in.ShippingCost = *r.ShippingCost
	}
	if r.TaxAmount != nil {
		in.TaxAmount = *r.TaxAmount
	}
	for _, item := range r.Items {
		in.Items = append(in.Items, domain.OrderItemInput{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}
	return in
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateOrderStatusRequest) Sanitize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

func (r *UpdateOrderStatusRequest) Validate() error {
	if r.Status == "" {
		return domain.Invalidf("status is required")
	}
	if !domain.ValidOrderStatus(domain.OrderStatus(r.Status)) {
		return domain.Invalidf("invalid status, must be one of: pending, confirmed, shipped, delivered, cancelled")
	}
	return nil
}
