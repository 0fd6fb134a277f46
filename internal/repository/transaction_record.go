package repository

import (
	"moving_ops/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TransactionRecord is a cash-flow ledger row.
type TransactionRecord struct {
	ID          string          `json:"id" gorm:"column:id;primaryKey"`
	Description string          `json:"description" gorm:"column:description;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(14,2);not null"`
	Type        string          `json:"type" gorm:"column:type;not null;index"` // income, expense
	Date        *datatypes.Date `json:"date" gorm:"column:date;index"`
	Category    string          `json:"category" gorm:"column:category"`
}

func (TransactionRecord) TableName() string {
	return "transactions"
}

func TransactionFromRecord(rec TransactionRecord) models.Transaction {
	return models.Transaction{
		ID:          rec.ID,
		Description: rec.Description,
		Amount:      rec.Amount.InexactFloat64(),
		Type:        models.TransactionType(rec.Type),
		Date:        formatDate(rec.Date),
		Category:    rec.Category,
	}
}

func TransactionToRecord(tx models.Transaction) (TransactionRecord, error) {
	date, err := parseDate(tx.Date)
	if err != nil {
		return TransactionRecord{}, err
	}
	return TransactionRecord{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      decimal.NewFromFloat(tx.Amount),
		Type:        string(tx.Type),
		Date:        date,
		Category:    tx.Category,
	}, nil
}
