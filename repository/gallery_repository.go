package repository

import (
	"github.com/Crafty4/web1/entity"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

func (r *GalleryRepository) Create(img *entity.GalleryImage) error {
	return r.DB.Create(img).Error
}

func (r *GalleryRepository) List() ([]entity.GalleryImage, error) {
	var items []entity.GalleryImage
	err := r.DB.Order("id DESC").Find(&items).Error
	return items, err
}

func (r *GalleryRepository) Get(id uint) (*entity.GalleryImage, error) {
	var img entity.GalleryImage
	if err := r.DB.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.GalleryImage{}, id).Error
}
