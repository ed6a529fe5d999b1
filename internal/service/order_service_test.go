package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-mall-api/internal/domain"
)

func TestOrderService_Create_ExactTotal(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "buyer", false)
	p1 := mustProduct(t, db, "widget", "9.99")
	p2 := mustProduct(t, db, "gadget", "5.00")

	o, err := svcs.Orders.Create(ctx, u.ID, CreateOrderInput{
		ShippingAddress: "1 Main St",
		Items: []OrderItemInput{
			{ProductID: p1.ID, Quantity: 2, Price: decimal.RequireFromString("9.99")},
			{ProductID: p2.ID, Quantity: 1, Price: decimal.RequireFromString("5.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "24.98", o.TotalAmount.StringFixed(2))
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	require.Len(t, o.Items, 2)

	// 重新读出，明细应随单预加载，总额精确不变
	got, err := svcs.Orders.Get(ctx, u, o.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("24.98")))
	require.Len(t, got.Items, 2)
	for _, it := range got.Items {
		assert.Equal(t, o.ID, it.OrderID)
	}
}

func TestOrderService_Create_RejectsBadInput(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "buyer2", false)
	p := mustProduct(t, db, "thing", "1.00")

	tests := []struct {
		name string
		in   CreateOrderInput
	}{
		{name: "no items", in: CreateOrderInput{}},
		{name: "zero product id", in: CreateOrderInput{Items: []OrderItemInput{
			{ProductID: 0, Quantity: 1, Price: decimal.NewFromInt(1)},
		}}},
		{name: "zero quantity", in: CreateOrderInput{Items: []OrderItemInput{
			{ProductID: p.ID, Quantity: 0, Price: decimal.NewFromInt(1)},
		}}},
		{name: "negative quantity", in: CreateOrderInput{Items: []OrderItemInput{
			{ProductID: p.ID, Quantity: -2, Price: decimal.NewFromInt(1)},
		}}},
		{name: "negative price", in: CreateOrderInput{Items: []OrderItemInput{
			{ProductID: p.ID, Quantity: 1, Price: decimal.RequireFromString("-0.01")},
		}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svcs.Orders.Create(ctx, u.ID, tc.in)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	var n int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestOrderService_Create_UnknownProductLeavesNothing(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "buyer3", false)
	p := mustProduct(t, db, "real", "2.50")

	_, err := svcs.Orders.Create(ctx, u.ID, CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: p.ID, Quantity: 1, Price: decimal.RequireFromString("2.50")},
			{ProductID: 9999, Quantity: 1, Price: decimal.NewFromInt(1)},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	var orders, items int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&domain.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestOrderService_Create_AtomicOnItemFailure(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "buyer4", false)
	p := mustProduct(t, db, "doomed", "3.00")

	// 砍掉明细表让子表写入失败，订单头必须一并回滚
	require.NoError(t, db.Migrator().DropTable(&domain.OrderItem{}))

	_, err := svcs.Orders.Create(ctx, u.ID, CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: p.ID, Quantity: 1, Price: decimal.RequireFromString("3.00")},
		},
	})
	require.Error(t, err)

	var orders int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestOrderService_Create_Concurrent(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "buyer5", false)
	p := mustProduct(t, db, "popular", "1.25")

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	created := make([]*domain.Order, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created[i], errs[i] = svcs.Orders.Create(ctx, u.ID, CreateOrderInput{
				Items: []OrderItemInput{
					{ProductID: p.ID, Quantity: i + 1, Price: decimal.RequireFromString("1.25")},
				},
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}
	var orders, items int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&domain.OrderItem{}).Count(&items).Error)
	assert.EqualValues(t, workers, orders)
	assert.EqualValues(t, workers, items)

	// 每单重新读出：明细必须是自己那一条，数量和总额都对得上，没有串单
	for i, o := range created {
		got, err := svcs.Orders.Get(ctx, u, o.ID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1, "order %d", got.ID)
		assert.Equal(t, got.ID, got.Items[0].OrderID)
		assert.Equal(t, i+1, got.Items[0].Quantity)
		want := decimal.RequireFromString("1.25").Mul(decimal.NewFromInt(int64(i + 1)))
		assert.True(t, got.TotalAmount.Equal(want), "order %d total %s", got.ID, got.TotalAmount)
	}
}

func TestOrderService_Ownership(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	alice := mustUser(t, db, "alice", false)
	mallory := mustUser(t, db, "mallory", false)
	admin := mustUser(t, db, "root", true)
	p := mustProduct(t, db, "book", "10.00")

	o, err := svcs.Orders.Create(ctx, alice.ID, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: p.ID, Quantity: 1, Price: decimal.RequireFromString("10.00")}},
	})
	require.NoError(t, err)

	// 他人读取：Forbidden，与 NotFound 可区分
	_, err = svcs.Orders.Get(ctx, mallory, o.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svcs.Orders.Get(ctx, alice, o.ID)
	require.NoError(t, err)
	_, err = svcs.Orders.Get(ctx, admin, o.ID)
	require.NoError(t, err)

	// 列表作用域：普通用户只见自己的单
	mine, total, err := svcs.Orders.List(ctx, mallory, "", 0, 50)
	require.NoError(t, err)
	assert.Empty(t, mine)
	assert.Zero(t, total)

	all, total, err := svcs.Orders.List(ctx, admin, "", 0, 50)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.EqualValues(t, 1, total)

	// 删除仅限 admin
	require.ErrorIs(t, svcs.Orders.Delete(ctx, alice, o.ID), domain.ErrForbidden)
	require.NoError(t, svcs.Orders.Delete(ctx, admin, o.ID))

	var items int64
	require.NoError(t, db.Model(&domain.OrderItem{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestOrderService_Update_StatusAndAddressOnly(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "buyer6", false)
	p := mustProduct(t, db, "lamp", "19.99")

	o, err := svcs.Orders.Create(ctx, u.ID, CreateOrderInput{
		ShippingAddress: "old addr",
		Items:           []OrderItemInput{{ProductID: p.ID, Quantity: 1, Price: decimal.RequireFromString("19.99")}},
	})
	require.NoError(t, err)

	bad := domain.OrderStatus("teleported")
	_, err = svcs.Orders.Update(ctx, u, o.ID, UpdateOrderInput{Status: &bad})
	require.ErrorIs(t, err, domain.ErrValidation)

	paid := domain.OrderStatusPaid
	addr := "new addr"
	got, err := svcs.Orders.Update(ctx, u, o.ID, UpdateOrderInput{Status: &paid, ShippingAddress: &addr})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, got.Status)
	assert.Equal(t, "new addr", got.ShippingAddress)

	reloaded, err := svcs.Orders.Get(ctx, u, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, reloaded.Status)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("19.99")))
}

func TestOrderService_List_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	u := mustUser(t, db, "buyer7", false)

	_, _, err := svcs.Orders.List(context.Background(), u, domain.OrderStatus("nope"), 0, 10)
	require.ErrorIs(t, err, domain.ErrValidation)
}
