package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"size:200;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`

	IsAvailable bool `gorm:"not null;default:true" json:"isAvailable"`
	// set when the item is flipped available→unavailable; the daily 09:00
	// restore only touches items stamped before today's boundary
	UnavailableSince *time.Time `json:"unavailableSince,omitempty"`

	RatingAvg   float64 `gorm:"not null;default:0" json:"ratingAvg"`
	RatingCount int64   `gorm:"not null;default:0" json:"ratingCount"`

	Ratings []Rating `json:"-"`
}
