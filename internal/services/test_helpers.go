package services

import (
	"context"
	"sync"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"
)

// memOrderRepo is an in-memory OrderRepository for exercising the order
// workflow without a database. It honors the OrderStore contract: the stock
// decrement is conditional on stock >= qty, and a failed InTx callback rolls
// every mutation back.
type memOrderRepo struct {
	mu          sync.Mutex
	nextOrderID uint64
	nextItemID  uint64
	products    map[uint64]*domain.Product
	orders      map[uint64]*domain.Order
}

func newMemOrderRepo(products ...*domain.Product) *memOrderRepo {
	r := &memOrderRepo{
		products: make(map[uint64]*domain.Product),
		orders:   make(map[uint64]*domain.Order),
	}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

// ProductState returns a snapshot of the stored product for assertions.
func (r *memOrderRepo) ProductState(id uint64) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.products[id]
}

// OrderCount reports how many orders are currently stored.
func (r *memOrderRepo) OrderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

func copyOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	return &cp
}

func (r *memOrderRepo) InTx(ctx context.Context, fn func(store repository.OrderStore) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	productSnap := make(map[uint64]*domain.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		productSnap[id] = &cp
	}
	orderSnap := make(map[uint64]*domain.Order, len(r.orders))
	for id, o := range r.orders {
		orderSnap[id] = copyOrder(o)
	}

	if err := fn(&memOrderStore{r: r}); err != nil {
		r.products = productSnap
		r.orders = orderSnap
		return err
	}
	return nil
}

func (r *memOrderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, *copyOrder(o))
	}
	return orders, nil
}

func (r *memOrderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

func (r *memOrderRepo) FindByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var orders []domain.Order
	for _, o := range r.orders {
		if o.UserID != nil && *o.UserID == userID {
			orders = append(orders, *copyOrder(o))
		}
	}
	return orders, nil
}

func (r *memOrderRepo) Update(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := copyOrder(order)
	if existing, ok := r.orders[order.ID]; ok {
		cp.Items = existing.Items
	}
	r.orders[order.ID] = cp
	return nil
}

// memOrderStore operates on the repo maps while InTx holds the lock.
type memOrderStore struct {
	r *memOrderRepo
}

func (s *memOrderStore) SaveOrder(order *domain.Order) error {
	s.r.nextOrderID++
	order.ID = s.r.nextOrderID
	s.r.orders[order.ID] = copyOrder(order)
	return nil
}

func (s *memOrderStore) SaveItem(item *domain.OrderItem) error {
	s.r.nextItemID++
	item.ID = s.r.nextItemID
	if o, ok := s.r.orders[item.OrderID]; ok {
		o.Items = append(o.Items, *item)
	}
	return nil
}

func (s *memOrderStore) GetProduct(id uint64) (*domain.Product, error) {
	p, ok := s.r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *memOrderStore) DecrementStock(productID uint64, qty int) (bool, error) {
	p, ok := s.r.products[productID]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	p.SoldCount += qty
	return true, nil
}

func (s *memOrderStore) RestoreStock(productID uint64, qty int) error {
	if p, ok := s.r.products[productID]; ok {
		p.Stock += qty
		p.SoldCount -= qty
	}
	return nil
}

func (s *memOrderStore) DeleteOrder(order *domain.Order) error {
	delete(s.r.orders, order.ID)
	return nil
}

// CreateTestProduct builds an approved product fixture with the given stock.
func CreateTestProduct(id uint64, name string, price float64, stock int) *domain.Product {
	sellerID := uint64(7)
	return &domain.Product{
		ID:         id,
		Name:       name,
		Price:      price,
		Stock:      stock,
		Approved:   true,
		Category:   domain.CategoryKayak,
		SellerID:   &sellerID,
		SellerName: "Test Seller",
	}
}

const (
	TestProductID    = uint64(1)
	TestProductName  = "Test Kayak"
	TestProductPrice = float64(49.99)
	TestProductStock = 10
)
