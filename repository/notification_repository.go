package repository

import (
	"github.com/Crafty4/web1/entity"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) ListForUser(userID uint) ([]entity.Notification, error) {
	var items []entity.Notification
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

func (r *NotificationRepository) Get(id uint) (*entity.Notification, error) {
	var n entity.Notification
	if err := r.DB.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkRead only ever flips false→true.
func (r *NotificationRepository) MarkRead(id uint) error {
	return r.DB.Model(&entity.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error
}
