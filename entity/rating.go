package entity

import (
	"gorm.io/gorm"
)

// Rating is upserted: at most one row per (user, item).
type Rating struct {
	gorm.Model
	Value int `gorm:"not null" json:"value"` // 1–5

	UserID uint `gorm:"uniqueIndex:idx_rating_user_item;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_rating_user_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
