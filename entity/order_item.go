package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a snapshot of the menu item at order time. Name and price are
// copied, not referenced, so later menu edits never change a placed order.
type OrderItem struct {
	gorm.Model
	MenuItemID uint            `gorm:"index" json:"menuItemId"`
	Name       string          `gorm:"size:200;not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Qty        int             `gorm:"not null" json:"qty"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`
}
