package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"velour/models"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
)

// ProductFinder is the slice of the catalog the cart needs: pricing an
// item at add time. Inactive products are invisible here.
type ProductFinder interface {
	FindActiveByID(ctx context.Context, productID string) (*models.Product, error)
}

// Summary is the response of a cart mutation.
type Summary struct {
	Message    string `json:"message"`
	TotalItems int    `json:"total_items,omitempty"`
}

// Service owns one cart per account. Mutations for the same account
// are serialized through a per-user lock, so two concurrent adds
// cannot lose an update to the read-modify-write cycle.
type Service struct {
	Carts    Store
	Products ProductFinder

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(carts Store, products ProductFinder) *Service {
	return &Service{
		Carts:    carts,
		Products: products,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[userID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[userID] = l
	return l
}

// Get returns the user's cart, creating an empty one on first access.
func (s *Service) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.Carts.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	now := time.Now().UTC()
	cart = &models.Cart{
		CartID:      uuid.NewString(),
		UserID:      userID,
		Items:       []models.CartItem{},
		TotalAmount: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Carts.Insert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Add merges quantity into an existing line item or appends a new one
// at the product's current price. The captured unit price of an
// existing line is never refreshed.
func (s *Service) Add(ctx context.Context, userID, productID string, quantity int) (*Summary, error) {
	product, err := s.Products.FindActiveByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items
	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	if err := s.Carts.SetItems(ctx, userID, items, totalOf(items)); err != nil {
		return nil, err
	}

	return &Summary{Message: "Item added to cart", TotalItems: len(items)}, nil
}

// Remove drops the line item for productID. A product not in the cart
// is a no-op success; a user without a cart is ErrCartNotFound.
func (s *Service) Remove(ctx context.Context, userID, productID string) (*Summary, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.Carts.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	items := make([]models.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}

	if err := s.Carts.SetItems(ctx, userID, items, totalOf(items)); err != nil {
		return nil, err
	}

	return &Summary{Message: "Item removed from cart"}, nil
}

func totalOf(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}
