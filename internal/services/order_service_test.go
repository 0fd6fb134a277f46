package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"moving_ops/internal/draft"
	"moving_ops/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrderService(t *testing.T) (*orderService, *fakeOrderRepo) {
	t.Helper()
	rc, _ := newTestRedis(t)
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, rc, time.Minute).(*orderService)
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestSaveOrderAssignsIdentity(t *testing.T) {
	svc, repo := newTestOrderService(t)
	ctx := context.Background()

	d := draft.New().SetClient("Helena", "").SetPayment(models.PaymentStatus{Deposit: true})
	d, err := d.SetRoleQty(models.ServiceHelper, 2)
	require.NoError(t, err)

	order, err := svc.SaveOrder(ctx, d)
	require.NoError(t, err)

	assert.Regexp(t, `^OS-2026-`, order.ID)
	assert.Equal(t, svc.now(), order.CreatedAt)
	assert.Equal(t, models.ProgressDeposit, order.Progress)
	assert.Len(t, order.Financials.Extras, 1)
	assert.Equal(t, order, repo.lastSave)
}

func TestSaveOrderRequiresClientName(t *testing.T) {
	svc, repo := newTestOrderService(t)

	_, err := svc.SaveOrder(context.Background(), draft.New().SetClient("   ", ""))
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, repo.orders)
}

func TestSaveOrderSurfacesStoreFailure(t *testing.T) {
	svc, repo := newTestOrderService(t)
	repo.saveErr = errors.New("connection refused")

	_, err := svc.SaveOrder(context.Background(), draft.New().SetClient("Igor", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestResaveKeepsIDAndCreatedAt(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	first, err := svc.SaveOrder(ctx, draft.New().SetClient("Julia", ""))
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC) }
	second, err := svc.SaveOrder(ctx, draft.FromOrder(first).SetRoute("A", "B"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, "B", second.Destination)
}

func TestListOrdersUsesCacheUntilInvalidated(t *testing.T) {
	svc, repo := newTestOrderService(t)
	ctx := context.Background()

	saved, err := svc.SaveOrder(ctx, draft.New().SetClient("Karina", ""))
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	_, err = svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getAlls, "second list is served from cache")

	require.NoError(t, svc.DeleteOrder(ctx, saved.ID))
	orders, err = svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, 2, repo.getAlls)
}

func TestListOrdersDoesNotCacheListRacingASave(t *testing.T) {
	svc, repo := newTestOrderService(t)
	ctx := context.Background()

	repo.onGetAll = func() {
		_, err := svc.SaveOrder(ctx, draft.New().SetClient("Otto", ""))
		require.NoError(t, err)
	}

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders, "snapshot taken before the save")

	orders, err = svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestDeleteMissingOrder(t *testing.T) {
	svc, _ := newTestOrderService(t)
	err := svc.DeleteOrder(context.Background(), "OS-404")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSummary(t *testing.T) {
	svc, repo := newTestOrderService(t)
	repo.orders["a"] = models.Order{
		ID:            "a",
		PaymentStatus: models.PaymentStatus{Deposit: true},
		Progress:      models.ProgressDeposit,
		Financials: models.Financials{
			TotalValue: 1000,
			DriverCost: 300,
			Extras:     []models.Extra{{ID: "auto-helper", Type: models.ServiceHelper, Qty: 2, Cost: 50}},
		},
	}
	repo.orders["b"] = models.Order{
		ID:            "b",
		PaymentStatus: models.PaymentStatus{Deposit: true, Pickup: true, Delivery: true},
		Progress:      models.ProgressDelivered,
		Financials:    models.Financials{TotalValue: 2000, DriverCost: 900},
	}

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Orders)
	assert.Equal(t, 3000.0, sum.Revenue)
	assert.Equal(t, 1300.0, sum.Costs)
	assert.Equal(t, 1700.0, sum.Profit)
	assert.Equal(t, 2200.0, sum.Received)
	assert.Equal(t, 800.0, sum.Outstanding)
	assert.Equal(t, map[models.Progress]int{0: 0, 20: 1, 60: 0, 100: 1}, sum.ByProgress)
}
