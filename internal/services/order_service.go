package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"moving_ops/internal/draft"
	"moving_ops/internal/models"
	"moving_ops/internal/money"
	"moving_ops/internal/redis"
	"moving_ops/internal/repository"
)

const (
	ordersCacheKey = "orders:all"
	ordersGenKey   = "orders:gen"
)

type OrderService interface {
	SaveOrder(ctx context.Context, d draft.Draft) (models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	Summary(ctx context.Context) (*Summary, error)
}

// Summary aggregates the financial picture across all orders.
type Summary struct {
	Orders      int                     `json:"orders"`
	Revenue     float64                 `json:"revenue"`
	Costs       float64                 `json:"costs"`
	Profit      float64                 `json:"profit"`
	Received    float64                 `json:"received"`
	Outstanding float64                 `json:"outstanding"`
	ByProgress  map[models.Progress]int `json:"byProgress"`
}

type orderService struct {
	orderRepo repository.OrderRepository
	redis     *redis.Client
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository, redis *redis.Client, cacheTTL time.Duration) OrderService {
	return &orderService{orderRepo: orderRepo, redis: redis, cacheTTL: cacheTTL, now: time.Now}
}

// SaveOrder finalizes d and replaces the stored record. On failure nothing
// is rolled back and the caller may resubmit the same draft.
func (s *orderService) SaveOrder(ctx context.Context, d draft.Draft) (models.Order, error) {
	if strings.TrimSpace(d.Order.ClientName) == "" {
		return models.Order{}, fmt.Errorf("%w: client name is required", models.ErrValidation)
	}

	order := draft.Finalize(d, s.now(), models.NewOrderID)
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("failed to save order %s: %w", order.ID, err)
	}
	s.invalidate(ctx)

	log.Printf("[ORDERS] Saved order %s (progress %d%%)", order.ID, order.Progress)
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ListOrders is read-through cached. Entries are keyed by the list
// generation read before querying, so a list fetched while a save or delete
// was in flight is written under a generation nobody reads anymore.
func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	gen, err := s.redis.Generation(ctx, ordersGenKey)
	if err != nil {
		log.Printf("[CACHE] Failed to read %s: %v", ordersGenKey, err)
		return s.listFromStore(ctx)
	}
	cacheKey := fmt.Sprintf("%s:%d", ordersCacheKey, gen)

	var orders []models.Order
	err = s.redis.GetCache(ctx, cacheKey, &orders)
	if err == nil {
		return orders, nil
	}
	if !errors.Is(err, redis.ErrCacheMiss) {
		log.Printf("[CACHE] Failed to read %s: %v", cacheKey, err)
	}

	orders, err = s.listFromStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.redis.SetCache(ctx, cacheKey, orders, s.cacheTTL); err != nil {
		log.Printf("[CACHE] Failed to set %s: %v", cacheKey, err)
	}
	return orders, nil
}

func (s *orderService) listFromStore(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	log.Printf("[ORDERS] Deleted order %s", id)
	return nil
}

func (s *orderService) Summary(ctx context.Context) (*Summary, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	sum := &Summary{ByProgress: make(map[models.Progress]int, len(models.ProgressStages))}
	for _, stage := range models.ProgressStages {
		sum.ByProgress[stage] = 0
	}

	var revenue, costs, received []float64
	for _, o := range orders {
		revenue = append(revenue, o.Financials.TotalValue)
		costs = append(costs, o.Financials.Costs())
		received = append(received, o.PaymentStatus.Received(o.Financials))
		sum.ByProgress[o.Progress]++
	}
	sum.Orders = len(orders)
	sum.Revenue = money.Sum(revenue...)
	sum.Costs = money.Sum(costs...)
	sum.Profit = money.Sub(sum.Revenue, sum.Costs)
	sum.Received = money.Sum(received...)
	sum.Outstanding = money.Sub(sum.Revenue, sum.Received)
	return sum, nil
}

func (s *orderService) invalidate(ctx context.Context) {
	if _, err := s.redis.BumpGeneration(ctx, ordersGenKey); err != nil {
		log.Printf("[CACHE] Failed to invalidate %s: %v", ordersCacheKey, err)
	}
}
