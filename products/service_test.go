package products

import (
	"context"
	"errors"
	"testing"

	"velour/models"
)

// fakeStore is an in-memory catalog Store.
type fakeStore struct {
	products []models.Product
}

func (f *fakeStore) FindActive(_ context.Context, category string, limit int) ([]models.Product, error) {
	var list []models.Product
	for _, p := range f.products {
		if !p.IsActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		list = append(list, p)
		if len(list) == limit {
			break
		}
	}
	return list, nil
}

func (f *fakeStore) FindActiveByID(_ context.Context, productID string) (*models.Product, error) {
	for _, p := range f.products {
		if p.ProductID == productID && p.IsActive {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Insert(_ context.Context, product *models.Product) error {
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func TestCreateAndGet(t *testing.T) {
	svc := NewService(&fakeStore{})

	created, err := svc.Create(context.Background(), models.ProductInput{
		Name:          "Closure 4x4",
		Description:   "Swiss lace closure",
		Price:         59.99,
		Category:      "closures",
		StockQuantity: 12,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ProductID == "" {
		t.Fatal("expected a generated product id")
	}
	if !created.IsActive {
		t.Fatal("new products must be active")
	}
	if created.Images == nil || created.Attributes == nil {
		t.Fatal("images and attributes must default to empty, not null")
	}

	got, err := svc.Get(context.Background(), created.ProductID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Closure 4x4" || got.Price != 59.99 {
		t.Fatalf("unexpected product: %+v", got)
	}
}

func TestGetMissingOrInactive(t *testing.T) {
	store := &fakeStore{products: []models.Product{
		{ProductID: "p1", Name: "Retired Wig", Category: "wigs", IsActive: false},
	}}
	svc := NewService(store)

	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "p1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive: expected ErrNotFound, got %v", err)
	}
}

func TestListFiltersAndLimits(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	inputs := []models.ProductInput{
		{Name: "Wig A", Category: "wigs", Price: 1},
		{Name: "Wig B", Category: "wigs", Price: 2},
		{Name: "Bundle A", Category: "bundles", Price: 3},
	}
	for _, in := range inputs {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	// Deactivated products are invisible.
	store.products[1].IsActive = false

	wigs, err := svc.List(context.Background(), "wigs", 50)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(wigs) != 1 || wigs[0].Name != "Wig A" {
		t.Fatalf("expected only the active wig, got %+v", wigs)
	}

	all, err := svc.List(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected the limit to cap results, got %d", len(all))
	}

	empty, err := svc.List(context.Background(), "hair_care", 50)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", empty)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	msg, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if msg == "Sample data already exists" {
		t.Fatal("first seed must insert")
	}
	if len(store.products) != len(sampleProducts) {
		t.Fatalf("expected %d seeded products, got %d", len(sampleProducts), len(store.products))
	}

	msg, err = svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if msg != "Sample data already exists" {
		t.Fatalf("second seed must be a no-op, got %q", msg)
	}
	if len(store.products) != len(sampleProducts) {
		t.Fatalf("second seed inserted more products: %d", len(store.products))
	}
}
