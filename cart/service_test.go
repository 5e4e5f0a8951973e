package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"velour/models"
)

// fakeStore is an in-memory cart Store keyed by user id.
type fakeStore struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func newFakeStore() *fakeStore {
	return &fakeStore{carts: make(map[string]*models.Cart)}
}

func (f *fakeStore) Find(_ context.Context, userID string) (*models.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[userID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Items = append([]models.CartItem(nil), c.Items...)
	return &cp, nil
}

func (f *fakeStore) Insert(_ context.Context, cart *models.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *cart
	cp.Items = append([]models.CartItem(nil), cart.Items...)
	f.carts[cart.UserID] = &cp
	return nil
}

func (f *fakeStore) SetItems(_ context.Context, userID string, items []models.CartItem, total float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[userID]
	if !ok {
		return errors.New("no cart")
	}
	c.Items = append([]models.CartItem(nil), items...)
	c.TotalAmount = total
	return nil
}

// fakeCatalog returns active products from a fixed map; prices can be
// changed between calls to model catalog price updates.
type fakeCatalog struct {
	mu       sync.Mutex
	products map[string]*models.Product
}

func newFakeCatalog(products ...*models.Product) *fakeCatalog {
	m := make(map[string]*models.Product)
	for _, p := range products {
		m[p.ProductID] = p
	}
	return &fakeCatalog{products: m}
}

func (f *fakeCatalog) FindActiveByID(_ context.Context, productID string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[productID]
	if !ok || !p.IsActive {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeCatalog) setPrice(productID string, price float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[productID].Price = price
}

func wig(price float64) *models.Product {
	return &models.Product{ProductID: "wig-1", Name: "Lace Front Wig", Price: price, Category: "wigs", IsActive: true}
}

func TestGetLazilyCreatesCart(t *testing.T) {
	svc := NewService(newFakeStore(), newFakeCatalog())

	cart, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cart.UserID != "u1" || len(cart.Items) != 0 || cart.TotalAmount != 0 {
		t.Fatalf("expected fresh empty cart, got %+v", cart)
	}

	again, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if again.CartID != cart.CartID {
		t.Fatal("Get must be idempotent, not create a second cart")
	}
}

func TestAddMergesQuantities(t *testing.T) {
	svc := NewService(newFakeStore(), newFakeCatalog(wig(199.99)))

	if _, err := svc.Add(context.Background(), "u1", "wig-1", 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	summary, err := svc.Add(context.Background(), "u1", "wig-1", 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if summary.TotalItems != 1 {
		t.Fatalf("expected 1 line item, got %d", summary.TotalItems)
	}

	cart, _ := svc.Get(context.Background(), "u1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart.Items[0].Quantity)
	}
	if want := 5 * 199.99; cart.TotalAmount != want {
		t.Fatalf("expected total %.2f, got %.2f", want, cart.TotalAmount)
	}
}

// The unit price is captured at first add; later catalog price changes
// must not leak into an existing line item.
func TestAddKeepsCapturedPrice(t *testing.T) {
	catalog := newFakeCatalog(wig(100))
	svc := NewService(newFakeStore(), catalog)

	if _, err := svc.Add(context.Background(), "u1", "wig-1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	catalog.setPrice("wig-1", 250)

	if _, err := svc.Add(context.Background(), "u1", "wig-1", 1); err != nil {
		t.Fatalf("add after price change: %v", err)
	}

	cart, _ := svc.Get(context.Background(), "u1")
	if cart.Items[0].Price != 100 {
		t.Fatalf("captured price changed: got %.2f, want 100", cart.Items[0].Price)
	}
	if cart.TotalAmount != 200 {
		t.Fatalf("expected total 200 at the captured price, got %.2f", cart.TotalAmount)
	}
}

func TestAddUnknownOrInactiveProduct(t *testing.T) {
	inactive := wig(50)
	inactive.ProductID = "gone-1"
	inactive.IsActive = false
	svc := NewService(newFakeStore(), newFakeCatalog(inactive))

	if _, err := svc.Add(context.Background(), "u1", "missing", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product: expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.Add(context.Background(), "u1", "gone-1", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("inactive product: expected ErrProductNotFound, got %v", err)
	}
}

// Quantity is accepted as given; a non-positive quantity still merges
// arithmetically. This pins current behavior of the input contract.
func TestAddNonPositiveQuantityAcceptedAsGiven(t *testing.T) {
	svc := NewService(newFakeStore(), newFakeCatalog(wig(10)))

	if _, err := svc.Add(context.Background(), "u1", "wig-1", 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(context.Background(), "u1", "wig-1", -1); err != nil {
		t.Fatalf("negative add: %v", err)
	}

	cart, _ := svc.Get(context.Background(), "u1")
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 after -1 merge, got %d", cart.Items[0].Quantity)
	}
	if cart.TotalAmount != 20 {
		t.Fatalf("expected total 20, got %.2f", cart.TotalAmount)
	}
}

func TestRemove(t *testing.T) {
	svc := NewService(newFakeStore(), newFakeCatalog(wig(10)))

	if _, err := svc.Add(context.Background(), "u1", "wig-1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Remove(context.Background(), "u1", "wig-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	cart, _ := svc.Get(context.Background(), "u1")
	if len(cart.Items) != 0 || cart.TotalAmount != 0 {
		t.Fatalf("expected emptied cart, got %+v", cart)
	}
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	svc := NewService(newFakeStore(), newFakeCatalog(wig(10)))

	if _, err := svc.Add(context.Background(), "u1", "wig-1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Remove(context.Background(), "u1", "never-added"); err != nil {
		t.Fatalf("removing an absent product must succeed, got %v", err)
	}

	cart, _ := svc.Get(context.Background(), "u1")
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("cart changed by a no-op remove: %+v", cart)
	}
}

func TestRemoveWithoutCart(t *testing.T) {
	svc := NewService(newFakeStore(), newFakeCatalog(wig(10)))

	if _, err := svc.Remove(context.Background(), "u1", "wig-1"); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

// Regression test for the read-modify-write race: two simultaneous
// adds for the same account and different products must both land.
func TestConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	bundle := &models.Product{ProductID: "bundle-1", Name: "Hair Bundle", Price: 299.99, Category: "bundles", IsActive: true}
	svc := NewService(newFakeStore(), newFakeCatalog(wig(199.99), bundle))

	var wg sync.WaitGroup
	for _, id := range []string{"wig-1", "bundle-1"} {
		wg.Add(1)
		go func(productID string) {
			defer wg.Done()
			if _, err := svc.Add(context.Background(), "u1", productID, 1); err != nil {
				t.Errorf("concurrent add %s: %v", productID, err)
			}
		}(id)
	}
	wg.Wait()

	cart, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("lost update: expected 2 line items, got %d (%+v)", len(cart.Items), cart.Items)
	}
	if want := 199.99 + 299.99; cart.TotalAmount != want {
		t.Fatalf("expected total %.2f, got %.2f", want, cart.TotalAmount)
	}
}
