package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/apperr"
	"github.com/Crafty4/web1/repository"

	"gorm.io/gorm"
)

// RatingService gates ratings on purchase history and keeps each item's
// rolling average in step with its rating rows.
type RatingService struct {
	Repo   *repository.RatingRepository
	Menus  *repository.MenuRepository
	Orders *repository.OrderRepository
}

func NewRatingService(repo *repository.RatingRepository, menus *repository.MenuRepository, orders *repository.OrderRepository) *RatingService {
	return &RatingService{Repo: repo, Menus: menus, Orders: orders}
}

type RateResult struct {
	Rating *entity.Rating `json:"rating"`
	Avg    float64        `json:"avg"`
	Count  int64          `json:"count"`
}

// Rate upserts the caller's rating for the item, then recomputes the item's
// average and count from all rating rows. Only the store's per-row atomicity
// protects the recompute; concurrent raters may briefly interleave.
func (s *RatingService) Rate(userID, menuItemID uint, value int) (*RateResult, error) {
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperr.ErrValidation)
	}

	if _, err := s.Menus.Get(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, menuItemID)
		}
		return nil, err
	}

	ordered, err := s.Orders.UserHasOrdered(userID, menuItemID)
	if err != nil {
		return nil, err
	}
	if !ordered {
		return nil, fmt.Errorf("%w: you can only rate items you have ordered", apperr.ErrNotEligible)
	}

	rating := &entity.Rating{UserID: userID, MenuItemID: menuItemID, Value: value}
	if err := s.Repo.Upsert(rating); err != nil {
		return nil, err
	}

	agg, err := s.Repo.Aggregate(menuItemID)
	if err != nil {
		return nil, err
	}
	avg := math.Round(agg.Avg*100) / 100
	if err := s.Menus.UpdateRating(menuItemID, avg, agg.Count); err != nil {
		return nil, err
	}

	return &RateResult{Rating: rating, Avg: avg, Count: agg.Count}, nil
}
