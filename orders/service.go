package orders

import (
	"context"
	"errors"
	"log"
	"time"

	"velour/models"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("order not found")

const maxListedOrders = 100

// CartClearer empties a user's cart after an order is placed.
type CartClearer interface {
	Clear(ctx context.Context, userID string) error
}

// Service converts a priced line-item list into a persisted order.
type Service struct {
	Orders Store
	Carts  CartClearer
}

func NewService(orders Store, carts CartClearer) *Service {
	return &Service{Orders: orders, Carts: carts}
}

// Create persists a pending order and then clears the cart. The total
// is computed from the submitted items as-is; prices are not re-read
// from the catalog. Cart clearing is fire-and-forget: its failure is
// logged and the order stands.
func (s *Service) Create(ctx context.Context, userID string, in models.OrderInput) (*models.Order, error) {
	var total float64
	for _, it := range in.Items {
		total += float64(it.Quantity) * it.Price
	}

	order := &models.Order{
		OrderID:         uuid.NewString(),
		UserID:          userID,
		Items:           in.Items,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		CreatedAt:       time.Now().UTC(),
	}
	if order.Items == nil {
		order.Items = []models.CartItem{}
	}
	if order.ShippingAddress == nil {
		order.ShippingAddress = map[string]string{}
	}

	if err := s.Orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	if err := s.Carts.Clear(ctx, userID); err != nil {
		log.Printf("order %s: cart cleanup failed: %v", order.OrderID, err)
	}

	return order, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]models.Order, error) {
	list, err := s.Orders.FindByUser(ctx, userID, maxListedOrders)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Order{}
	}
	return list, nil
}

// Get enforces ownership: an order owned by someone else is not found.
func (s *Service) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.Orders.FindByID(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}
