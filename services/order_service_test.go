package services

import (
	"testing"
	"time"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	req := &CreateOrderReq{
		Items: []OrderItemIn{
			{MenuItemID: 1, Name: "Latte", Price: decimal.RequireFromString("10.00"), Qty: 2},
			{MenuItemID: 2, Name: "Croissant", Price: decimal.RequireFromString("5.00"), Qty: 1},
		},
		CustomerName: "Alice",
		PhoneNumber:  "0812345678",
		Address:      "42 Coffee Rd",
	}
	order, err := f.Orders.Create(user.ID, req)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status)
	assert.True(t, decimal.RequireFromString("25.00").Equal(order.Total),
		"total = 10.00*2 + 5.00*1, got %s", order.Total)
	assert.Len(t, order.Items, 2)

	// order_placed notification was emitted
	assert.Len(t, f.notifications(t, user.ID, entity.CategoryOrderPlaced), 1)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	valid := func() *CreateOrderReq {
		return &CreateOrderReq{
			Items:        []OrderItemIn{{MenuItemID: 1, Name: "Latte", Price: decimal.RequireFromString("10.00"), Qty: 1}},
			CustomerName: "Alice",
			PhoneNumber:  "0812345678",
			Address:      "42 Coffee Rd",
		}
	}

	tests := []struct {
		name   string
		mutate func(*CreateOrderReq)
	}{
		{"empty cart", func(r *CreateOrderReq) { r.Items = nil }},
		{"zero qty", func(r *CreateOrderReq) { r.Items[0].Qty = 0 }},
		{"negative price", func(r *CreateOrderReq) { r.Items[0].Price = decimal.RequireFromString("-1") }},
		{"blank item name", func(r *CreateOrderReq) { r.Items[0].Name = "  " }},
		{"missing customer name", func(r *CreateOrderReq) { r.CustomerName = " " }},
		{"missing phone", func(r *CreateOrderReq) { r.PhoneNumber = "" }},
		{"missing address", func(r *CreateOrderReq) { r.Address = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)
			_, err := f.Orders.Create(user.ID, req)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

// The stored total is a snapshot: later menu price edits never touch it.
func TestOrderTotalSurvivesMenuEdits(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")
	item := f.createMenuItem(t, "Latte", "10.00")

	order, err := f.Orders.Create(user.ID, &CreateOrderReq{
		Items:        []OrderItemIn{{MenuItemID: item.ID, Name: item.Name, Price: item.Price, Qty: 2}},
		CustomerName: "Alice", PhoneNumber: "0812345678", Address: "42 Coffee Rd",
	})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("99.99")
	_, err = f.Menus.Update(item.ID, &UpdateMenuItemReq{Price: &newPrice})
	require.NoError(t, err)

	got, err := f.Orders.GetForUser(user.ID, order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("20.00").Equal(got.Total))
	assert.True(t, decimal.RequireFromString("10.00").Equal(got.Items[0].Price))
}

func TestCustomerCancelWindow(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	t.Run("inside window succeeds", func(t *testing.T) {
		o := f.createOrderAt(t, user.ID, entity.OrderPending, testBase.Add(-1*time.Minute))
		got, err := f.Orders.Cancel(user.ID, o.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, got.Status)
		assert.Equal(t, entity.OrderCancelled, f.orderStatus(t, o.ID))
	})

	t.Run("exactly at the boundary succeeds", func(t *testing.T) {
		o := f.createOrderAt(t, user.ID, entity.OrderAccepted, testBase.Add(-5*time.Minute))
		_, err := f.Orders.Cancel(user.ID, o.ID)
		require.NoError(t, err)
	})

	t.Run("past window fails and status is unchanged", func(t *testing.T) {
		o := f.createOrderAt(t, user.ID, entity.OrderPending, testBase.Add(-6*time.Minute))
		_, err := f.Orders.Cancel(user.ID, o.ID)
		assert.ErrorIs(t, err, apperr.ErrWindowExpired)
		assert.Equal(t, entity.OrderPending, f.orderStatus(t, o.ID))
	})

	t.Run("not the owner", func(t *testing.T) {
		other := f.createUser(t, "bob")
		o := f.createOrderAt(t, other.ID, entity.OrderPending, testBase)
		_, err := f.Orders.Cancel(user.ID, o.ID)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("rejected order cannot be cancelled", func(t *testing.T) {
		o := f.createOrderAt(t, user.ID, entity.OrderRejected, testBase)
		_, err := f.Orders.Cancel(user.ID, o.ID)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("already cancelled", func(t *testing.T) {
		o := f.createOrderAt(t, user.ID, entity.OrderCancelled, testBase)
		_, err := f.Orders.Cancel(user.ID, o.ID)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := f.Orders.Cancel(user.ID, 99999)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestPendingExpirySweepOnListing(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	stale := f.createOrderAt(t, user.ID, entity.OrderPending, testBase.Add(-3*time.Minute))
	atBoundary := f.createOrderAt(t, user.ID, entity.OrderPending, testBase.Add(-2*time.Minute))
	fresh := f.createOrderAt(t, user.ID, entity.OrderPending, testBase.Add(-1*time.Minute))
	accepted := f.createOrderAt(t, user.ID, entity.OrderAccepted, testBase.Add(-10*time.Minute))

	orders, err := f.Orders.ListForUser(user.ID)
	require.NoError(t, err)

	byID := map[uint]entity.OrderStatus{}
	for _, o := range orders {
		byID[o.ID] = o.Status
	}
	assert.Equal(t, entity.OrderCancelled, byID[stale.ID])
	assert.Equal(t, entity.OrderCancelled, byID[atBoundary.ID], "now >= t0+2min expires")
	assert.Equal(t, entity.OrderPending, byID[fresh.ID])
	assert.Equal(t, entity.OrderAccepted, byID[accepted.ID], "sweep only touches pending")
}

func TestListVisibility(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	f.createOrderAt(t, alice.ID, entity.OrderPending, testBase)
	f.createOrderAt(t, bob.ID, entity.OrderPending, testBase)

	mine, err := f.Orders.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, alice.ID, mine[0].UserID)

	all, err := f.Orders.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	// admin listing carries the owning user
	assert.NotEmpty(t, all[0].User.Username)
}

func TestAdminTransition(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	t.Run("pending to accepted emits notification", func(t *testing.T) {
		o := f.createOrderAt(t, user.ID, entity.OrderPending, testBase)
		got, err := f.Orders.Transition(o.ID, entity.OrderAccepted)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderAccepted, got.Status)
		assert.Len(t, f.notifications(t, user.ID, entity.CategoryOrderAccepted), 1)
	})

	t.Run("admin may skip the happy path", func(t *testing.T) {
		o := f.createOrderAt(t, user.ID, entity.OrderPending, testBase)
		got, err := f.Orders.Transition(o.ID, entity.OrderCompleted)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderCompleted, got.Status)
	})

	t.Run("terminal states accept no transition", func(t *testing.T) {
		for _, st := range []entity.OrderStatus{entity.OrderCompleted, entity.OrderRejected, entity.OrderCancelled} {
			o := f.createOrderAt(t, user.ID, st, testBase)
			_, err := f.Orders.Transition(o.ID, entity.OrderAccepted)
			assert.ErrorIs(t, err, apperr.ErrConflict, "from %s", st)
			assert.Equal(t, st, f.orderStatus(t, o.ID))
		}
	})

	t.Run("pending is not a transition target", func(t *testing.T) {
		o := f.createOrderAt(t, user.ID, entity.OrderAccepted, testBase)
		_, err := f.Orders.Transition(o.ID, entity.OrderPending)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := f.Orders.Transition(99999, entity.OrderAccepted)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestAdminDelete(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")
	o := f.createOrderAt(t, user.ID, entity.OrderCompleted, testBase,
		entity.OrderItem{MenuItemID: 1, Name: "Latte", Price: decimal.New(10, 0), Qty: 1})

	require.NoError(t, f.Orders.Delete(o.ID))

	var count int64
	require.NoError(t, f.db.Unscoped().Model(&entity.Order{}).Where("id = ?", o.ID).Count(&count).Error)
	assert.Zero(t, count, "delete is a hard delete")

	assert.ErrorIs(t, f.Orders.Delete(o.ID), apperr.ErrNotFound)
}

// Place at T, cancel at T+1min, retry at T+6min.
func TestCancelScenario(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	o, err := f.Orders.Create(user.ID, &CreateOrderReq{
		Items:        []OrderItemIn{{MenuItemID: 1, Name: "Latte", Price: decimal.RequireFromString("10.00"), Qty: 1}},
		CustomerName: "Alice", PhoneNumber: "0812345678", Address: "42 Coffee Rd",
	})
	require.NoError(t, err)

	// creation used the real clock; re-pin it for the window arithmetic
	var stored entity.Order
	require.NoError(t, f.db.First(&stored, o.ID).Error)
	t0 := stored.CreatedAt

	f.Orders.Now = func() time.Time { return t0.Add(1 * time.Minute) }
	got, err := f.Orders.Cancel(user.ID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, got.Status)

	f.Orders.Now = func() time.Time { return t0.Add(6 * time.Minute) }
	_, err = f.Orders.Cancel(user.ID, o.ID)
	assert.Error(t, err) // already cancelled wins here; status unchanged
	assert.Equal(t, entity.OrderCancelled, f.orderStatus(t, o.ID))
}
