package models

import "time"

// Product categories: extensions, wigs, bundles, closures, hair_care,
// accessories. The set is open; category is stored as given.
type Product struct {
	ProductID     string            `json:"id" bson:"id"`
	Name          string            `json:"name" bson:"name"`
	Description   string            `json:"description" bson:"description"`
	Price         float64           `json:"price" bson:"price"`
	Category      string            `json:"category" bson:"category"`
	Subcategory   string            `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Images        []string          `json:"images" bson:"images"`
	Attributes    map[string]string `json:"attributes" bson:"attributes"` // length, color, texture, etc.
	StockQuantity int               `json:"stock_quantity" bson:"stock_quantity"`
	IsActive      bool              `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
}

type ProductInput struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	Category      string            `json:"category"`
	Subcategory   string            `json:"subcategory,omitempty"`
	Images        []string          `json:"images"`
	Attributes    map[string]string `json:"attributes"`
	StockQuantity int               `json:"stock_quantity"`
}
