package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moving_ops/internal/models"
	"moving_ops/internal/money"
	"moving_ops/internal/repository"

	"github.com/google/uuid"
)

// LedgerService records company cash flow that is not tied to an order.
type LedgerService interface {
	Record(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	Delete(ctx context.Context, id string) error
	Balance(ctx context.Context) (*models.Balance, error)
}

type ledgerService struct {
	txRepo repository.TransactionRepository
	now    func() time.Time
}

func NewLedgerService(txRepo repository.TransactionRepository) LedgerService {
	return &ledgerService{txRepo: txRepo, now: time.Now}
}

func (s *ledgerService) Record(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if strings.TrimSpace(tx.Description) == "" {
		return models.Transaction{}, fmt.Errorf("%w: description is required", models.ErrValidation)
	}
	if tx.Type != models.TransactionIncome && tx.Type != models.TransactionExpense {
		return models.Transaction{}, fmt.Errorf("%w: unknown transaction type %q", models.ErrValidation, tx.Type)
	}

	tx.Amount = max(0, tx.Amount)
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Date == "" {
		tx.Date = s.now().Format(models.DateLayout)
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return models.Transaction{}, fmt.Errorf("failed to record transaction: %w", err)
	}
	return tx, nil
}

func (s *ledgerService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.txRepo.GetAll(ctx)
}

func (s *ledgerService) Delete(ctx context.Context, id string) error {
	return s.txRepo.Delete(ctx, id)
}

func (s *ledgerService) Balance(ctx context.Context) (*models.Balance, error) {
	sums, err := s.txRepo.SumByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}
	income := sums[models.TransactionIncome]
	expense := sums[models.TransactionExpense]
	return &models.Balance{
		Income:  income,
		Expense: expense,
		Net:     money.Sub(income, expense),
	}, nil
}
