package draft

import (
	"testing"
	"time"

	"moving_ops/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedID(id string) IDFunc {
	return func(time.Time) string { return id }
}

func TestFinalizeAssignsIdentity(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	d := New().SetClient("Carla", "")

	o := Finalize(d, now, fixedID("OS-2026-abc"))
	assert.Equal(t, "OS-2026-abc", o.ID)
	assert.Equal(t, now, o.CreatedAt)
	assert.Empty(t, d.Order.ID, "draft is not modified")
}

func TestFinalizeIsIdempotent(t *testing.T) {
	created := time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC)
	d := FromOrder(models.Order{ID: "OS-2025-1", CreatedAt: created, ClientName: "Davi"})

	first := Finalize(d, time.Now(), fixedID("other"))
	second := Finalize(FromOrder(first), time.Now().Add(time.Hour), fixedID("another"))

	assert.Equal(t, "OS-2025-1", first.ID)
	assert.Equal(t, created, first.CreatedAt)
	assert.Equal(t, first, second)
}

func TestFinalizeMergesExtrasBuffer(t *testing.T) {
	d := FromOrder(models.Order{
		ID: "OS-1",
		Financials: models.Financials{
			TotalValue: 900,
			Extras:     []models.Extra{{ID: "old", Type: models.ServiceOther, Qty: 1, Cost: 5}},
		},
	})
	d = d.RemoveExtra("old")
	d, err := d.SetRoleQty(models.ServicePacker, 2)
	require.NoError(t, err)

	// Form financials still hold the stale list until the merge.
	require.Len(t, d.Order.Financials.Extras, 1)

	o := Finalize(d, time.Now(), fixedID("unused"))
	require.Len(t, o.Financials.Extras, 1)
	assert.Equal(t, "auto-packer", o.Financials.Extras[0].ID)
	assert.Equal(t, 900.0, o.Financials.TotalValue)

	o.Financials.Extras[0].Qty = 7
	assert.Equal(t, 2, d.Extras[0].Qty, "finalized order does not share the buffer")
}

func TestFinalizeDerivesProgress(t *testing.T) {
	d := New()
	d.Order.PaymentStatus = models.PaymentStatus{Deposit: true}
	d.Order.Progress = models.ProgressDelivered

	o := Finalize(d, time.Now(), fixedID("x"))
	assert.Equal(t, models.ProgressDeposit, o.Progress)
}
