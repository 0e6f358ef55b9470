package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fixed wall clock for the time-window tests
var testBase = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one shared in-memory db per test, named after the test so parallel
	// tests never collide
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Notification{},
		&entity.Rating{},
		&entity.GalleryImage{},
	))
	return db
}

type fixture struct {
	db *gorm.DB

	Orders        *OrderService
	Menus         *MenuService
	Ratings       *RatingService
	Notifications *NotificationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	notifSvc := NewNotificationService(notifRepo)
	consistency := NewConsistencyService(orderRepo, notifSvc)

	orders := NewOrderService(orderRepo, notifSvc)
	orders.Now = func() time.Time { return testBase }
	menus := NewMenuService(menuRepo, consistency, t.TempDir())
	menus.Now = func() time.Time { return testBase }
	ratings := NewRatingService(ratingRepo, menuRepo, orderRepo)

	return &fixture{
		db:            db,
		Orders:        orders,
		Menus:         menus,
		Ratings:       ratings,
		Notifications: notifSvc,
	}
}

func (f *fixture) createUser(t *testing.T, username string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x", Role: entity.RoleCustomer}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) createMenuItem(t *testing.T, name, price string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Price: decimal.RequireFromString(price), IsAvailable: true}
	require.NoError(t, f.db.Create(m).Error)
	return m
}

// createOrderAt inserts an order directly, pinning created_at for the
// window tests.
func (f *fixture) createOrderAt(t *testing.T, userID uint, status entity.OrderStatus, createdAt time.Time, items ...entity.OrderItem) *entity.Order {
	t.Helper()
	o := &entity.Order{
		Status:       status,
		Total:        decimal.Zero,
		CustomerName: "Test Customer",
		PhoneNumber:  "0800000000",
		Address:      "1 Test St",
		UserID:       userID,
		Items:        items,
	}
	o.CreatedAt = createdAt
	require.NoError(t, f.db.Create(o).Error)
	return o
}

func (f *fixture) orderStatus(t *testing.T, id uint) entity.OrderStatus {
	t.Helper()
	var o entity.Order
	require.NoError(t, f.db.First(&o, id).Error)
	return o.Status
}

func (f *fixture) notifications(t *testing.T, userID uint, category string) []entity.Notification {
	t.Helper()
	var out []entity.Notification
	require.NoError(t, f.db.Where("user_id = ? AND category = ?", userID, category).Find(&out).Error)
	return out
}
