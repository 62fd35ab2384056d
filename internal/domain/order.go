package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every accepted status, in lifecycle order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func ValidOrderStatus(s OrderStatus) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type DeliveryType string

const (
	DeliveryShip   DeliveryType = "ship"
	DeliveryPickup DeliveryType = "pickup"
)

func ValidDeliveryType(d DeliveryType) bool {
	return d == DeliveryShip || d == DeliveryPickup
}

type Order struct {
	ID           uint64       `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber  string       `json:"orderNumber" gorm:"not null;uniqueIndex;size:64"`
	OrderDate    time.Time    `json:"orderDate" gorm:"not null"`
	Status       OrderStatus  `json:"status" gorm:"type:enum('pending','confirmed','shipped','delivered','cancelled');default:'pending'"`
	DeliveryType DeliveryType `json:"deliveryType" gorm:"type:enum('ship','pickup');not null"`

	TotalAmount  float64 `json:"totalAmount" gorm:"not null"`
	ShippingCost float64 `json:"shippingCost" gorm:"not null;default:0"`
	TaxAmount    float64 `json:"taxAmount" gorm:"not null;default:0"`

	BuyerName  string `json:"buyerName" gorm:"not null;size:100"`
	BuyerEmail string `json:"buyerEmail" gorm:"not null;size:255"`
	BuyerPhone string `json:"buyerPhone,omitempty" gorm:"size:32"`

	ShippingAddress    string `json:"shippingAddress,omitempty" gorm:"size:255"`
	ShippingCity       string `json:"shippingCity,omitempty" gorm:"size:100"`
	ShippingPostalCode string `json:"shippingPostalCode,omitempty" gorm:"size:16"`
	ShippingProvince   string `json:"shippingProvince,omitempty" gorm:"size:100"`

	PickupPointID *uint64 `json:"pickupPointId,omitempty" gorm:"index"`
	Notes         string  `json:"notes,omitempty" gorm:"type:text"`
	UserID        *uint64 `json:"userId,omitempty" gorm:"index"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type OrderItem struct {
	ID              uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         uint64  `json:"orderId" gorm:"not null;index"`
	ProductID       *uint64 `json:"productId,omitempty" gorm:"index"`
	Quantity        int     `json:"quantity" gorm:"not null"`
	PriceAtPurchase string  `json:"priceAtPurchase" gorm:"not null;size:32"`
	Subtotal        float64 `json:"subtotal" gorm:"not null"`

	// Product snapshot taken at purchase time; survives product deletion.
	ProductName  string  `json:"productName" gorm:"not null;size:255"`
	ProductImage string  `json:"productImage,omitempty" gorm:"type:text"`
	SellerID     *uint64 `json:"sellerId,omitempty"`
	SellerName   string  `json:"sellerName,omitempty" gorm:"size:100"`
}

// OrderItemInput is one {productId, quantity, priceAtPurchase} entry of an
// order-creation request, already sanitized and validated.
type OrderItemInput struct {
	ProductID       uint64
	Quantity        int
	PriceAtPurchase string
}

// NewOrderItem builds the snapshot line item for a resolved product. The
// subtotal uses the purchase-time price string, not the product's current
// price.
func NewOrderItem(product *Product, in OrderItemInput) (OrderItem, error) {
	price, err := ParsePrice(in.PriceAtPurchase)
	if err != nil {
		return OrderItem{}, err
	}
	pid := product.ID
	return OrderItem{
		ProductID:       &pid,
		Quantity:        in.Quantity,
		PriceAtPurchase: in.PriceAtPurchase,
		Subtotal:        price * float64(in.Quantity),
		ProductName:     product.Name,
		ProductImage:    product.Image,
		SellerID:        product.SellerID,
		SellerName:      product.SellerName,
	}, nil
}
