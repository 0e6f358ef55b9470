package services

import (
	"fmt"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/repository"
)

// ConsistencyService reacts to an item going off the menu: every in-flight
// order carrying that item is cancelled and its owner told why. Each order is
// cancelled independently; there is no transaction spanning the batch, since
// a cancelled status is idempotent to re-application.
type ConsistencyService struct {
	Orders   *repository.OrderRepository
	Notifier *NotificationService
}

func NewConsistencyService(orders *repository.OrderRepository, notifier *NotificationService) *ConsistencyService {
	return &ConsistencyService{Orders: orders, Notifier: notifier}
}

// CancelOrdersForItem cancels every pending/accepted order referencing the
// item and emits exactly one notification per order actually cancelled.
func (s *ConsistencyService) CancelOrdersForItem(menuItemID uint, itemName string) error {
	refs, err := s.Orders.ListActiveByMenuItem(menuItemID)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		changed, err := s.Orders.CancelIfActive(ref.ID)
		if err != nil {
			return err
		}
		if !changed {
			continue // raced into a terminal state already
		}
		s.Notifier.Notify(ref.UserID, ref.ID, entity.CategoryOrderCancelled,
			fmt.Sprintf("Your order #%d was cancelled: %q is no longer available.", ref.ID, itemName))
	}
	return nil
}
