package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// PaymentStatus tracks the payment side of the order lifecycle
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentFailed   PaymentStatus = "Failed"
	PaymentRefunded PaymentStatus = "Refunded"
)

type Order struct {
	ID                    uint           `json:"id" gorm:"primaryKey"`
	OrderNumber           string         `json:"order_number" gorm:"uniqueIndex;not null"`
	UserID                uint           `json:"user_id" gorm:"not null;index"`
	User                  User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID          uint           `json:"restaurant_id" gorm:"not null;index"`
	Restaurant            Restaurant     `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Items                 []OrderItem    `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Subtotal              float64        `json:"subtotal" gorm:"not null"`
	Tax                   float64        `json:"tax" gorm:"default:0"`
	DeliveryFee           float64        `json:"delivery_fee" gorm:"default:0"`
	Total                 float64        `json:"total" gorm:"not null"`
	Status                OrderStatus    `json:"status" gorm:"not null;default:'Pending';index"`
	PaymentStatus         PaymentStatus  `json:"payment_status" gorm:"not null;default:'Pending';index"`
	PaymentMethodID       *uint          `json:"payment_method_id"`
	PaymentMethod         *PaymentMethod `json:"payment_method,omitempty" gorm:"foreignKey:PaymentMethodID"`
	DeliveryAddress       string         `json:"delivery_address" gorm:"not null"`
	SpecialInstructions   string         `json:"special_instructions"`
	EstimatedDeliveryTime *time.Time     `json:"estimated_delivery_time"`
	CreatedAt             time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// OrderItem snapshots the menu item's name and price at order-creation
// time; later menu edits never change an existing order.
type OrderItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"order_id" gorm:"not null;index"`
	MenuItemID uint    `json:"menu_item_id" gorm:"not null"`
	Name       string  `json:"name" gorm:"not null"`
	Price      float64 `json:"price" gorm:"not null"`
	Quantity   int     `json:"quantity" gorm:"not null"`
	Subtotal   float64 `json:"subtotal" gorm:"not null"`
}
