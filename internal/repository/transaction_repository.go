package repository

import (
	"context"
	"fmt"

	"moving_ops/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx models.Transaction) error
	GetAll(ctx context.Context) ([]models.Transaction, error)
	Delete(ctx context.Context, id string) error
	SumByType(ctx context.Context) (map[models.TransactionType]float64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx models.Transaction) error {
	rec, err := TransactionToRecord(tx)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *transactionRepository) GetAll(ctx context.Context) ([]models.Transaction, error) {
	var recs []TransactionRecord
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	txs := make([]models.Transaction, 0, len(recs))
	for _, rec := range recs {
		txs = append(txs, TransactionFromRecord(rec))
	}
	return txs, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&TransactionRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *transactionRepository) SumByType(ctx context.Context) (map[models.TransactionType]float64, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&TransactionRecord{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[models.TransactionType]float64, len(rows))
	for _, row := range rows {
		sums[models.TransactionType(row.Type)] = row.Total.InexactFloat64()
	}
	return sums, nil
}
