package repository

import (
	"time"

	"github.com/Crafty4/web1/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Updates(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// SetAvailability flips the flag; since is stamped on the way down and
// cleared on the way back up.
func (r *MenuRepository) SetAvailability(id uint, available bool, since *time.Time) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Updates(map[string]any{"is_available": available, "unavailable_since": since}).Error
}

// RestoreUnavailableBefore brings back every item that has been unavailable
// since before the given boundary. Idempotent: re-running with the same
// boundary matches nothing.
func (r *MenuRepository) RestoreUnavailableBefore(boundary time.Time) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("is_available = ? AND unavailable_since IS NOT NULL AND unavailable_since < ?", false, boundary).
		Updates(map[string]any{"is_available": true, "unavailable_since": nil})
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) UpdateRating(id uint, avg float64, count int64) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Updates(map[string]any{"rating_avg": avg, "rating_count": count}).Error
}
