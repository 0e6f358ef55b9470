package entity

import (
	"gorm.io/gorm"
)

// Notification categories, one per order status event.
const (
	CategoryOrderPlaced    = "order_placed"
	CategoryOrderAccepted  = "order_accepted"
	CategoryOrderRejected  = "order_rejected"
	CategoryOrderCompleted = "order_completed"
	CategoryOrderCancelled = "order_cancelled"
)

type Notification struct {
	gorm.Model
	Message  string `gorm:"not null" json:"message"`
	Category string `gorm:"size:50;not null" json:"category"`
	IsRead   bool   `gorm:"not null;default:false" json:"isRead"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`
}
