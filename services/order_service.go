package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/apperr"
	"github.com/Crafty4/web1/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// customers may cancel their own order this long after placing it
	cancelWindow = 5 * time.Minute
	// pending orders older than this are swept to cancelled on listing reads
	pendingExpiry = 2 * time.Minute
)

type OrderService struct {
	Repo     *repository.OrderRepository
	Notifier *NotificationService

	// Now is a hook for the time-window rules; tests pin it.
	Now func() time.Time
}

func NewOrderService(repo *repository.OrderRepository, notifier *NotificationService) *OrderService {
	return &OrderService{Repo: repo, Notifier: notifier, Now: time.Now}
}

// ----- DTOs -----

// OrderItemIn is a client-submitted snapshot. Name and price are trusted as
// given and are not re-derived from the live menu; the order stays stable
// even if the menu changes later.
type OrderItemIn struct {
	MenuItemID uint            `json:"menuItemId" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Qty        int             `json:"qty" binding:"required,min=1"`
}

type CreateOrderReq struct {
	Items        []OrderItemIn `json:"items" binding:"required,min=1"`
	CustomerName string        `json:"customerName" binding:"required"`
	PhoneNumber  string        `json:"phoneNumber" binding:"required"`
	Address      string        `json:"address" binding:"required"`
}

// ----- Create -----

func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", apperr.ErrValidation)
	}
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.PhoneNumber) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("%w: name, phone and address are required", apperr.ErrValidation)
	}

	total := decimal.Zero
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Qty < 1 {
			return nil, fmt.Errorf("%w: qty must be at least 1", apperr.ErrValidation)
		}
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
		}
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("%w: item name is required", apperr.ErrValidation)
		}
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
		items = append(items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Qty:        it.Qty,
		})
	}

	order := &entity.Order{
		Status:       entity.OrderPending,
		Total:        total,
		CustomerName: strings.TrimSpace(req.CustomerName),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Address:      strings.TrimSpace(req.Address),
		UserID:       userID,
		Items:        items,
	}
	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}

	s.Notifier.Notify(userID, order.ID, entity.CategoryOrderPlaced,
		fmt.Sprintf("Your order #%d has been placed.", order.ID))
	return order, nil
}

// ----- Listing (with the lazy expiry sweep) -----

// expireStale applies the pending-order expiry before any listing read, so a
// listing never shows an order the policy already considers dead.
func (s *OrderService) expireStale() error {
	cutoff := s.Now().Add(-pendingExpiry)
	_, err := s.Repo.ExpirePendingBefore(cutoff)
	return err
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	if err := s.expireStale(); err != nil {
		return nil, err
	}
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	if err := s.expireStale(); err != nil {
		return nil, err
	}
	return s.Repo.ListAll()
}

func (s *OrderService) GetForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, fmt.Errorf("%w: not your order", apperr.ErrForbidden)
	}
	return o, nil
}

// ----- Customer cancel -----

// Cancel is the customer-initiated path. Owner only, never out of a rejected
// or already-cancelled order, and only within the window after creation. The
// window is checked here, server-side, whatever any client countdown shows.
func (s *OrderService) Cancel(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, fmt.Errorf("%w: not your order", apperr.ErrForbidden)
	}
	if o.Status == entity.OrderRejected || o.Status == entity.OrderCancelled {
		return nil, fmt.Errorf("%w: order is already %s", apperr.ErrConflict, o.Status)
	}
	if s.Now().Sub(o.CreatedAt) > cancelWindow {
		return nil, fmt.Errorf("%w: orders can only be cancelled within %s of placing them",
			apperr.ErrWindowExpired, cancelWindow)
	}

	if err := s.Repo.UpdateStatus(o.ID, entity.OrderCancelled); err != nil {
		return nil, err
	}
	o.Status = entity.OrderCancelled

	s.Notifier.Notify(o.UserID, o.ID, entity.CategoryOrderCancelled,
		fmt.Sprintf("Your order #%d has been cancelled.", o.ID))
	return o, nil
}

// ----- Admin transition -----

var transitionCategories = map[entity.OrderStatus]string{
	entity.OrderAccepted:  entity.CategoryOrderAccepted,
	entity.OrderRejected:  entity.CategoryOrderRejected,
	entity.OrderCompleted: entity.CategoryOrderCompleted,
	entity.OrderCancelled: entity.CategoryOrderCancelled,
}

// Transition is the administrative override: from any non-terminal state an
// admin may force any target status, happy-path edges or not. Terminal
// states stay terminal.
func (s *OrderService) Transition(orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	category, ok := transitionCategories[to]
	if !ok {
		return nil, fmt.Errorf("%w: cannot transition to %q", apperr.ErrValidation, to)
	}

	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, fmt.Errorf("%w: order is already %s", apperr.ErrConflict, o.Status)
	}

	if err := s.Repo.UpdateStatus(o.ID, to); err != nil {
		return nil, err
	}
	o.Status = to

	s.Notifier.Notify(o.UserID, o.ID, category,
		fmt.Sprintf("Your order #%d is now %s.", o.ID, to))
	return o, nil
}

// ----- Admin delete -----

// Delete is irreversible and ignores status.
func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.Get(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return err
	}
	return s.Repo.HardDelete(orderID)
}
