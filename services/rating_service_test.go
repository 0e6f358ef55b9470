package services

import (
	"testing"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) orderItemFor(t *testing.T, userID uint, m *entity.MenuItem, status entity.OrderStatus) {
	t.Helper()
	f.createOrderAt(t, userID, status, testBase,
		entity.OrderItem{MenuItemID: m.ID, Name: m.Name, Price: m.Price, Qty: 1})
}

func (f *fixture) itemAggregate(t *testing.T, id uint) (float64, int64) {
	t.Helper()
	var m entity.MenuItem
	require.NoError(t, f.db.First(&m, id).Error)
	return m.RatingAvg, m.RatingCount
}

func TestRatingRequiresPurchase(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	latte := f.createMenuItem(t, "Latte", "10.00")

	_, err := f.Ratings.Rate(alice.ID, latte.ID, 5)
	assert.ErrorIs(t, err, apperr.ErrNotEligible)

	// any order status counts, even cancelled
	f.orderItemFor(t, alice.ID, latte, entity.OrderCancelled)
	_, err = f.Ratings.Rate(alice.ID, latte.ID, 5)
	require.NoError(t, err)
}

func TestRatingValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	latte := f.createMenuItem(t, "Latte", "10.00")
	f.orderItemFor(t, alice.ID, latte, entity.OrderCompleted)

	for _, v := range []int{0, -1, 6} {
		_, err := f.Ratings.Rate(alice.ID, latte.ID, v)
		assert.ErrorIs(t, err, apperr.ErrValidation, "value %d", v)
	}

	_, err := f.Ratings.Rate(alice.ID, 99999, 4)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRatingAggregation(t *testing.T) {
	f := newFixture(t)
	latte := f.createMenuItem(t, "Latte", "10.00")

	rate := func(username string, value int) *RateResult {
		u := f.createUser(t, username)
		f.orderItemFor(t, u.ID, latte, entity.OrderCompleted)
		res, err := f.Ratings.Rate(u.ID, latte.ID, value)
		require.NoError(t, err)
		return res
	}

	res := rate("u1", 1)
	assert.Equal(t, 1.0, res.Avg)
	assert.Equal(t, int64(1), res.Count)

	rate("u2", 2)
	res = rate("u3", 5)

	// mean(1,2,5) = 2.666… → 2.67
	assert.Equal(t, 2.67, res.Avg)
	assert.Equal(t, int64(3), res.Count)

	avg, count := f.itemAggregate(t, latte.ID)
	assert.Equal(t, 2.67, avg)
	assert.Equal(t, int64(3), count)
}

func TestRatingUpsert(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	latte := f.createMenuItem(t, "Latte", "10.00")
	f.orderItemFor(t, alice.ID, latte, entity.OrderCompleted)

	_, err := f.Ratings.Rate(alice.ID, latte.ID, 2)
	require.NoError(t, err)
	res, err := f.Ratings.Rate(alice.ID, latte.ID, 5)
	require.NoError(t, err)

	// re-rating replaces, never duplicates
	assert.Equal(t, int64(1), res.Count)
	assert.Equal(t, 5.0, res.Avg)

	var rows int64
	require.NoError(t, f.db.Model(&entity.Rating{}).
		Where("user_id = ? AND menu_item_id = ?", alice.ID, latte.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}
