package repository

import (
	"time"

	"github.com/Crafty4/web1/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error // items created through the association
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// ListAll is the admin view: owning user attached.
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Preload("User").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// ---------------- Status updates ----------------

func (r *OrderRepository) UpdateStatus(id uint, to entity.OrderStatus) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).
		Update("status", to).Error
}

// CancelIfActive cancels a single order only while it is still pending or
// accepted; reports whether the row actually changed.
func (r *OrderRepository) CancelIfActive(id uint) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", id, []entity.OrderStatus{entity.OrderPending, entity.OrderAccepted}).
		Update("status", entity.OrderCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ExpirePendingBefore bulk-cancels pending orders created at or before the
// cutoff. Runs ahead of every listing read.
func (r *OrderRepository) ExpirePendingBefore(cutoff time.Time) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("status = ? AND created_at <= ?", entity.OrderPending, cutoff).
		Update("status", entity.OrderCancelled)
	return res.RowsAffected, res.Error
}

// ---------------- Cross-item lookups ----------------

type ActiveOrderRef struct {
	ID     uint
	UserID uint
}

// ListActiveByMenuItem finds pending/accepted orders whose line items
// reference the given menu item.
func (r *OrderRepository) ListActiveByMenuItem(menuItemID uint) ([]ActiveOrderRef, error) {
	var refs []ActiveOrderRef
	err := r.DB.Model(&entity.Order{}).
		Distinct("orders.id", "orders.user_id").
		Joins("JOIN order_items oi ON oi.order_id = orders.id").
		Where("oi.menu_item_id = ? AND orders.status IN ?",
			menuItemID, []entity.OrderStatus{entity.OrderPending, entity.OrderAccepted}).
		Scan(&refs).Error
	return refs, err
}

// UserHasOrdered reports whether the user ever placed an order (any status)
// containing the menu item. Purchase gate for ratings.
func (r *OrderRepository) UserHasOrdered(userID, menuItemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Joins("JOIN order_items oi ON oi.order_id = orders.id").
		Where("orders.user_id = ? AND oi.menu_item_id = ?", userID, menuItemID).
		Count(&count).Error
	return count > 0, err
}

// ---------------- Delete ----------------

// HardDelete removes the order and its items for good, whatever the status.
func (r *OrderRepository) HardDelete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Order{}, id).Error
	})
}
