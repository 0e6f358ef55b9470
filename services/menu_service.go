package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/apperr"
	"github.com/Crafty4/web1/repository"
	"github.com/Crafty4/web1/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// items marked unavailable come back to the menu at this local hour
const restoreHour = 9

type MenuService struct {
	Repo        *repository.MenuRepository
	Consistency *ConsistencyService
	UploadDir   string

	Now func() time.Time
}

func NewMenuService(repo *repository.MenuRepository, consistency *ConsistencyService, uploadDir string) *MenuService {
	return &MenuService{Repo: repo, Consistency: consistency, UploadDir: uploadDir, Now: time.Now}
}

// ----- Daily restore -----

// restoreDaily runs opportunistically on menu reads. Once past today's
// 09:00, anything that went unavailable before that boundary comes back.
// No effect before 09:00, and no effect the second time around.
func (s *MenuService) restoreDaily() error {
	now := s.Now()
	boundary := time.Date(now.Year(), now.Month(), now.Day(), restoreHour, 0, 0, 0, now.Location())
	if now.Before(boundary) {
		return nil
	}
	_, err := s.Repo.RestoreUnavailableBefore(boundary)
	return err
}

// ----- Reads -----

func (s *MenuService) List() ([]entity.MenuItem, error) {
	if err := s.restoreDaily(); err != nil {
		return nil, err
	}
	return s.Repo.List()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	if err := s.restoreDaily(); err != nil {
		return nil, err
	}
	m, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return m, nil
}

// ----- Admin CRUD -----

type CreateMenuItemReq struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageBase64 string          `json:"imageBase64"`
}

func (s *MenuService) Create(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
	}

	m := &entity.MenuItem{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Description: req.Description,
		IsAvailable: true,
	}
	if req.ImageBase64 != "" {
		path, err := utils.SaveBase64Image(req.ImageBase64, s.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("%w: bad image payload", apperr.ErrValidation)
		}
		m.Image = path
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

type UpdateMenuItemReq struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	ImageBase64 string           `json:"imageBase64"`
}

func (s *MenuService) Update(id uint, req *UpdateMenuItemReq) (*entity.MenuItem, error) {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", apperr.ErrValidation)
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
		}
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageBase64 != "" {
		path, err := utils.SaveBase64Image(req.ImageBase64, s.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("%w: bad image payload", apperr.ErrValidation)
		}
		updates["image"] = path
	}
	if len(updates) > 0 {
		if err := s.Repo.Updates(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.Get(id)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, id)
		}
		return err
	}
	return s.Repo.Delete(id)
}

// ----- Availability -----

// SetAvailability is the manual flip; it takes effect immediately, outside
// the 09:00 rule. Going unavailable stamps the time and pulls every
// in-flight order carrying the item.
func (s *MenuService) SetAvailability(id uint, available bool) (*entity.MenuItem, error) {
	m, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	if m.IsAvailable == available {
		return m, nil // nothing to do
	}

	var since *time.Time
	if !available {
		t := s.Now()
		since = &t
	}
	if err := s.Repo.SetAvailability(id, available, since); err != nil {
		return nil, err
	}
	m.IsAvailable = available
	m.UnavailableSince = since

	if !available {
		// cancellation is durable regardless of notification outcome
		if err := s.Consistency.CancelOrdersForItem(m.ID, m.Name); err != nil {
			return nil, err
		}
	}
	return m, nil
}
