package repository

import (
	"github.com/Crafty4/web1/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// Upsert keeps at most one row per (user, item).
func (r *RatingRepository) Upsert(rating *entity.Rating) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rating).Error
}

type RatingAggregate struct {
	Avg   float64
	Count int64
}

func (r *RatingRepository) Aggregate(menuItemID uint) (RatingAggregate, error) {
	var a RatingAggregate
	err := r.DB.Model(&entity.Rating{}).
		Where("menu_item_id = ?", menuItemID).
		Select("COALESCE(AVG(value), 0) AS avg, COUNT(*) AS count").
		Scan(&a).Error
	return a, err
}
