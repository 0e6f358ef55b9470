package services

import (
	"fmt"
	"log"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/apperr"
	"github.com/Crafty4/web1/repository"
)

// NotificationService persists user-facing status messages. Emission is
// best-effort: a failed insert is logged and swallowed so it can never roll
// back the state change that triggered it.
type NotificationService struct {
	Repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

func (s *NotificationService) Notify(userID, orderID uint, category, message string) {
	n := &entity.Notification{
		UserID:   userID,
		OrderID:  orderID,
		Category: category,
		Message:  message,
	}
	if err := s.Repo.Create(n); err != nil {
		log.Printf("notification emit failed (user=%d order=%d category=%s): %v",
			userID, orderID, category, err)
	}
}

func (s *NotificationService) ListForUser(userID uint) ([]entity.Notification, error) {
	return s.Repo.ListForUser(userID)
}

// MarkRead flips the read flag, owner only.
func (s *NotificationService) MarkRead(userID, id uint) error {
	n, err := s.Repo.Get(id)
	if err != nil {
		return fmt.Errorf("%w: notification %d", apperr.ErrNotFound, id)
	}
	if n.UserID != userID {
		return fmt.Errorf("%w: not your notification", apperr.ErrForbidden)
	}
	return s.Repo.MarkRead(id)
}
