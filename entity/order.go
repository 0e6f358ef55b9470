package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is a closed enum. pending is initial; completed, rejected and
// cancelled are terminal: nothing transitions out of them, not even an admin.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderCompleted OrderStatus = "completed"
	OrderRejected  OrderStatus = "rejected"
	OrderCancelled OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPending, OrderAccepted, OrderCompleted, OrderRejected, OrderCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderCompleted, OrderRejected, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	Status OrderStatus     `gorm:"size:20;not null;default:pending" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	// delivery fields as submitted by the customer
	CustomerName string `gorm:"size:200;not null" json:"customerName"`
	PhoneNumber  string `gorm:"size:50;not null" json:"phoneNumber"`
	Address      string `gorm:"not null" json:"address"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"` // preload only on admin listings

	Items []OrderItem `json:"items"`
}
