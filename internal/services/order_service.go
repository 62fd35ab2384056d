package services

import (
	"context"
	"log"
	"time"

	"paddlemarket/internal/domain"
	rabbit "paddlemarket/internal/infra/rabbitmq"
	"paddlemarket/internal/repository"

	"github.com/go-redis/redis/v8"
)

// PlaceOrderInput carries a sanitized, validated order-creation request into
// the workflow.
type PlaceOrderInput struct {
	DeliveryType domain.DeliveryType
	TotalAmount  float64
	ShippingCost float64
	TaxAmount    float64

	BuyerName  string
	BuyerEmail string
	BuyerPhone string

	ShippingAddress    string
	ShippingCity       string
	ShippingPostalCode string
	ShippingProvince   string

	PickupPointID *uint64
	Notes         string
	UserID        *uint64

	Items []domain.OrderItemInput
}

type OrderService struct {
	orders      repository.OrderRepository
	users       repository.UserRepository
	pickups     repository.PickupPointRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(
	orders repository.OrderRepository,
	users repository.UserRepository,
	pickups repository.PickupPointRepository,
	publisher rabbit.PublisherInterface,
) *OrderService {
	return &OrderService{
		orders:    orders,
		users:     users,
		pickups:   pickups,
		publisher: publisher,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// PlaceOrder runs the order-creation workflow: resolve references, persist
// the order shell, then process items in input order inside one transaction.
// Each item resolves its product, decrements stock through a conditional
// update (stock and soldCount move in lockstep) and snapshots the product
// into the line item. Any failure rolls the whole aggregate back.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	if in.UserID != nil {
		user, err := s.users.FindByID(ctx, *in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.NotFound("user", *in.UserID)
		}
	}

	if in.DeliveryType == domain.DeliveryPickup && in.PickupPointID != nil {
		point, err := s.pickups.FindByID(ctx, *in.PickupPointID)
		if err != nil {
			return nil, err
		}
		if point == nil {
			return nil, domain.NotFound("pickup point", *in.PickupPointID)
		}
	}

	order := &domain.Order{
		OrderNumber:        domain.NewOrderNumber(),
		OrderDate:          time.Now(),
		Status:             domain.StatusPending,
		DeliveryType:       in.DeliveryType,
		TotalAmount:        in.TotalAmount,
		ShippingCost:       in.ShippingCost,
		TaxAmount:          in.TaxAmount,
		BuyerName:          in.BuyerName,
		BuyerEmail:         in.BuyerEmail,
		BuyerPhone:         in.BuyerPhone,
		ShippingAddress:    in.ShippingAddress,
		ShippingCity:       in.ShippingCity,
		ShippingPostalCode: in.ShippingPostalCode,
		ShippingProvince:   in.ShippingProvince,
		PickupPointID:      in.PickupPointID,
		Notes:              in.Notes,
		UserID:             in.UserID,
	}

	err := s.orders.InTx(ctx, func(store repository.OrderStore) error {
		if err := store.SaveOrder(order); err != nil {
			return err
		}

		for _, itemIn := range in.Items {
			product, err := store.GetProduct(itemIn.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.NotFound("product", itemIn.ProductID)
			}

			ok, err := store.DecrementStock(product.ID, itemIn.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.Conflictf("insufficient stock for product '%s'", product.Name)
			}

			item, err := domain.NewOrderItem(product, itemIn)
			if err != nil {
				return err
			}
			item.OrderID = order.ID
			if err := store.SaveItem(&item); err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.publishEvent(context.Background(), domain.EventOrderCreated, domain.OrderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		CreatedAt:   order.OrderDate,
	})
	s.invalidateProducts(ctx, order.Items)

	return order, nil
}

func (s *OrderService) GetOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("order", id)
	}
	return order, nil
}

func (s *OrderService) GetOrdersByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// UpdateStatus overwrites the order's status with any value from the
// enumeration. No transition table is enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, domain.Invalidf("invalid status %q", status)
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	go s.publishEvent(context.Background(), domain.EventOrderStatusUpdated, domain.OrderStatusUpdatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		UpdatedAt:   time.Now(),
	})

	return order, nil
}

// DeleteOrder removes an order and compensates its stock effects: every item
// whose product still exists gets stock += quantity, soldCount -= quantity.
// Items whose product was deleted independently are skipped silently.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	err = s.orders.InTx(ctx, func(store repository.OrderStore) error {
		for _, item := range order.Items {
			if item.ProductID == nil {
				continue
			}
			product, err := store.GetProduct(*item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				continue
			}
			if err := store.RestoreStock(product.ID, item.Quantity); err != nil {
				return err
			}
		}
		return store.DeleteOrder(order)
	})
	if err != nil {
		return err
	}

	go s.publishEvent(context.Background(), domain.EventOrderCancelled, domain.OrderCancelledEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CancelledAt: time.Now(),
	})
	s.invalidateProducts(ctx, order.Items)

	return nil
}

func (s *OrderService) publishEvent(ctx context.Context, pattern string, event any) {
	if err := s.publisher.Publish(ctx, pattern, event); err != nil {
		log.Printf("Failed to publish %s event: %v", pattern, err)
	}
}

// invalidateProducts drops cached product entries whose stock just changed.
func (s *OrderService) invalidateProducts(ctx context.Context, items []domain.OrderItem) {
	if s.redisClient == nil {
		return
	}
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		s.redisClient.Del(ctx, productCacheKey(*item.ProductID))
	}
}
