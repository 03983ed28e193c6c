package repo

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_DecrementStock(t *testing.T) {
	r := NewMemoryRepo()
	r.PutProduct(entities.Product{ID: "p1", Available: 3})
	ctx := context.Background()

	ok, err := r.DecrementStock(ctx, "p1", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DecrementStock(ctx, "p1", 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.DecrementStock(ctx, "missing", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	p, _ := r.Product("p1")
	assert.Equal(t, 1, p.Available)
	assert.Equal(t, 2, p.Sold)
}

func TestMemoryRepo_DecrementStockConcurrent(t *testing.T) {
	r := NewMemoryRepo()
	r.PutProduct(entities.Product{ID: "p1", Available: 10})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range 25 {
		wg.Go(func() {
			ok, err := r.DecrementStock(context.Background(), "p1", 1)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	p, _ := r.Product("p1")
	assert.Equal(t, 10, successes)
	assert.Equal(t, 0, p.Available)
	assert.Equal(t, 10, p.Sold)
}

func TestMemoryRepo_AddCouponRedemption(t *testing.T) {
	r := NewMemoryRepo()
	r.PutCoupon(entities.Coupon{Code: "TEN", Kind: entities.CouponPercent, Discount: decimal.NewFromInt(10)})
	ctx := context.Background()

	inserted, err := r.AddCouponRedemption(ctx, "TEN", "a@example.com")
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = r.AddCouponRedemption(ctx, "TEN", "a@example.com")
	require.NoError(t, err)
	assert.False(t, inserted)

	_, err = r.AddCouponRedemption(ctx, "NOPE", "a@example.com")
	assert.ErrorIs(t, err, entities.ErrCouponNotFound)

	c, err := r.GetCoupon(ctx, "TEN")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com"}, c.UsedBy)
}

func TestMemoryRepo_TransactionRollback(t *testing.T) {
	r := NewMemoryRepo()
	r.PutProduct(entities.Product{ID: "p1", Available: 5})
	r.PutCoupon(entities.Coupon{Code: "TEN"})
	r.PutAccount(entities.Account{ID: "acc1", Email: "a@example.com"})

	boom := errors.New("boom")
	err := r.Do(context.Background(), func(ctx context.Context) error {
		if _, err := r.DecrementStock(ctx, "p1", 5); err != nil {
			return err
		}
		if _, err := r.AddCouponRedemption(ctx, "TEN", "a@example.com"); err != nil {
			return err
		}
		if err := r.CreateOrder(ctx, entities.Order{ID: "o1", OrderNo: "A000001", CustomerAccountID: "acc1"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	p, _ := r.Product("p1")
	assert.Equal(t, 5, p.Available)
	c, _ := r.GetCoupon(context.Background(), "TEN")
	assert.Empty(t, c.UsedBy)
	assert.Zero(t, r.OrderCount())
	assert.Empty(t, r.CustomerOrders("acc1"))
}

func TestMemoryRepo_NestedDoJoinsTransaction(t *testing.T) {
	r := NewMemoryRepo()
	r.PutProduct(entities.Product{ID: "p1", Available: 1})

	err := r.Do(context.Background(), func(ctx context.Context) error {
		return r.Do(ctx, func(ctx context.Context) error {
			_, err := r.DecrementStock(ctx, "p1", 1)
			return err
		})
	})
	require.NoError(t, err)

	p, _ := r.Product("p1")
	assert.Zero(t, p.Available)
}

func TestMemoryRepo_OrderLifecycle(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	orders := []entities.Order{
		{ID: "o1", OrderNo: "A000001", Customer: entities.Customer{FirstName: "Jane", LastName: "Doe"}, CustomerAccountID: "acc1", CreatedAt: base,
			Items: []entities.LineItem{{ProductID: "p1", ShopID: "s1"}}},
		{ID: "o2", OrderNo: "A000002", Customer: entities.Customer{FirstName: "John", LastName: "Janeway"}, CreatedAt: base.Add(time.Hour),
			Items: []entities.LineItem{{ProductID: "p2", ShopID: "s2"}}},
		{ID: "o3", OrderNo: "A000003", Customer: entities.Customer{FirstName: "Ann", LastName: "Lee"}, CreatedAt: base.Add(2 * time.Hour),
			Items: []entities.LineItem{{ProductID: "p1", ShopID: "s1"}}},
	}
	for _, o := range orders {
		require.NoError(t, r.CreateOrder(ctx, o))
	}

	err := r.CreateOrder(ctx, entities.Order{ID: "o4", OrderNo: "A000001"})
	assert.ErrorIs(t, err, entities.ErrOrderNoTaken)

	exists, err := r.OrderNoExists(ctx, "A000002")
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("search is case-insensitive over first or last name", func(t *testing.T) {
		got, err := r.ListOrders(ctx, entities.OrderFilter{Search: "^jan"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "o2", got[0].ID)
		assert.Equal(t, "o1", got[1].ID)
	})

	t.Run("shop filter and paging", func(t *testing.T) {
		got, err := r.ListOrders(ctx, entities.OrderFilter{ShopID: "s1", Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "o1", got[0].ID)

		total, err := r.CountOrders(ctx, entities.OrderFilter{ShopID: "s1"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := r.CountOrders(ctx, entities.OrderFilter{Search: "("})
		assert.ErrorIs(t, err, entities.ErrInvalidSearch)
	})

	t.Run("patch keeps omitted fields", func(t *testing.T) {
		status := entities.StatusDelivered
		city := "Porto"
		require.NoError(t, r.UpdateOrder(ctx, "o1", entities.OrderPatch{Status: &status, City: &city}))

		o, err := r.GetOrderByID(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDelivered, o.Status)
		assert.Equal(t, "Porto", o.Customer.City)
		assert.Equal(t, "Jane", o.Customer.FirstName)

		assert.ErrorIs(t, r.UpdateOrder(ctx, "nope", entities.OrderPatch{Status: &status}), entities.ErrOrderNotFound)
	})

	t.Run("delete cascade", func(t *testing.T) {
		require.NoError(t, r.CreateNotification(ctx, entities.Notification{ID: "n1", OrderID: "o1"}))
		require.NoError(t, r.MarkNotificationOpened(ctx, "o1"))
		n, ok := r.Notification("o1")
		require.True(t, ok)
		assert.True(t, n.Opened)

		require.NoError(t, r.DeleteNotifications(ctx, "o1"))
		require.NoError(t, r.DetachCustomerOrder(ctx, "o1"))
		require.NoError(t, r.DeleteOrder(ctx, "o1"))

		_, ok = r.Notification("o1")
		assert.False(t, ok)
		assert.Empty(t, r.CustomerOrders("acc1"))
		_, err := r.GetOrderByID(ctx, "o1")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		assert.ErrorIs(t, r.DeleteOrder(ctx, "o1"), entities.ErrOrderNotFound)
	})
}

func TestMemoryRepo_LoadSeed(t *testing.T) {
	r := NewMemoryRepo()
	seed := `{
		"accounts": [{"id": "acc1", "email": "jane@example.com"}],
		"shops": [{"id": "s1", "vendorId": "v1", "slug": "mugs", "name": "Mugs"}],
		"products": [{"id": "p1", "shopId": "s1", "name": "Mug", "priceSale": "12.50", "available": 4, "images": ["http://img/1"]}],
		"coupons": [{"code": "TEN", "kind": "percent", "discount": 10, "expiresAt": "2030-01-01T00:00:00Z"}]
	}`
	require.NoError(t, r.LoadSeed(strings.NewReader(seed)))
	ctx := context.Background()

	products, err := r.GetProductsByIDs(ctx, []string{"p1", "p1", "missing"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].PriceSale.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "http://img/1", products[0].Cover())

	shop, err := r.GetShopByVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "mugs", shop.Slug)
	_, err = r.GetShopBySlug(ctx, "nope")
	assert.ErrorIs(t, err, entities.ErrShopNotFound)

	acc, err := r.GetAccountByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "acc1", acc.ID)

	c, err := r.GetCoupon(ctx, "TEN")
	require.NoError(t, err)
	assert.Equal(t, entities.CouponPercent, c.Kind)

	assert.Error(t, r.LoadSeed(strings.NewReader("{")))
}
