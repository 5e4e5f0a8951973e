package models

import "time"

// Order statuses. Orders are created as pending; no transition
// endpoints exist yet.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	OrderID         string            `json:"id" bson:"id"`
	UserID          string            `json:"user_id" bson:"user_id"`
	Items           []CartItem        `json:"items" bson:"items"`
	TotalAmount     float64           `json:"total_amount" bson:"total_amount"`
	Status          string            `json:"status" bson:"status"`
	ShippingAddress map[string]string `json:"shipping_address" bson:"shipping_address"`
	PaymentMethod   string            `json:"payment_method" bson:"payment_method"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
}

type OrderInput struct {
	Items           []CartItem        `json:"items"`
	ShippingAddress map[string]string `json:"shipping_address"`
	PaymentMethod   string            `json:"payment_method"`
}
