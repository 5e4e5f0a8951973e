package models

import "time"

// CartItem is one line of a cart or order: the unit price is captured
// when the item is added and is never refreshed from the catalog.
type CartItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

// Cart holds at most one line item per product; one cart per user.
type Cart struct {
	CartID      string     `json:"id" bson:"id"`
	UserID      string     `json:"user_id" bson:"user_id"`
	Items       []CartItem `json:"items" bson:"items"`
	TotalAmount float64    `json:"total_amount" bson:"total_amount"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
