package entity

import (
	"gorm.io/gorm"
)

type GalleryImage struct {
	gorm.Model
	Title string `gorm:"size:200" json:"title"`
	Path  string `gorm:"not null" json:"path"`
}
