package repository

import (
	"context"
	"errors"
	"fmt"

	"moving_ops/internal/models"

	"gorm.io/gorm"
)

// OrderRepository stores whole orders. Every write replaces the full row.
type OrderRepository interface {
	Save(ctx context.Context, order models.Order) error
	GetByID(ctx context.Context, id string) (models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Save upserts by id.
func (r *orderRepository) Save(ctx context.Context, order models.Order) error {
	rec, err := OrderToRecord(order)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(&rec).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	var rec OrderRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, fmt.Errorf("order %s: %w", id, models.ErrNotFound)
		}
		return models.Order{}, err
	}
	return OrderFromRecord(rec), nil
}

func (r *orderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var recs []OrderRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(recs))
	for _, rec := range recs {
		orders = append(orders, OrderFromRecord(rec))
	}
	return orders, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&OrderRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	return nil
}
