package services

import (
	"context"
	"testing"
	"time"

	"moving_ops/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRecordAndBalance(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := NewLedgerService(repo).(*ledgerService)
	svc.now = func() time.Time { return time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	income, err := svc.Record(ctx, models.Transaction{Description: "Mudança Souza", Amount: 3500, Type: models.TransactionIncome})
	require.NoError(t, err)
	assert.NotEmpty(t, income.ID)
	assert.Equal(t, "2026-08-09", income.Date)

	_, err = svc.Record(ctx, models.Transaction{Description: "Diesel", Amount: 820.5, Type: models.TransactionExpense, Date: "2026-08-01"})
	require.NoError(t, err)

	clamped, err := svc.Record(ctx, models.Transaction{Description: "Estorno", Amount: -50, Type: models.TransactionExpense})
	require.NoError(t, err)
	assert.Equal(t, 0.0, clamped.Amount)

	bal, err := svc.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Balance{Income: 3500, Expense: 820.5, Net: 2679.5}, bal)

	txs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 3)

	require.NoError(t, svc.Delete(ctx, income.ID))
	assert.ErrorIs(t, svc.Delete(ctx, income.ID), models.ErrNotFound)
}

func TestLedgerValidation(t *testing.T) {
	svc := NewLedgerService(&fakeTxRepo{})
	ctx := context.Background()

	_, err := svc.Record(ctx, models.Transaction{Description: "", Type: models.TransactionIncome})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Record(ctx, models.Transaction{Description: "x", Type: "transfer"})
	assert.ErrorIs(t, err, models.ErrValidation)
}
