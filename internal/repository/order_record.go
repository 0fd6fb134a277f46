package repository

import (
	"time"

	"gorm.io/datatypes"
)

// OrderRecord is the storage shape of an order: snake_case columns with the
// status flags, payment milestones, financials and notes nested as JSON.
// Every nested column may be absent on legacy rows.
type OrderRecord struct {
	ID               string               `json:"id" gorm:"column:id;primaryKey"`
	ClientName       string               `json:"client_name" gorm:"column:client_name;not null"`
	WhatsApp         string               `json:"whatsapp" gorm:"column:whatsapp"`
	Origin           string               `json:"origin" gorm:"column:origin"`
	Destination      string               `json:"destination" gorm:"column:destination"`
	PickupDate       *datatypes.Date      `json:"pickup_date" gorm:"column:pickup_date"`
	DeliveryForecast *datatypes.Date      `json:"delivery_forecast" gorm:"column:delivery_forecast"`
	StatusFlags      *StatusFlagsRecord   `json:"status_flags" gorm:"column:status_flags;type:jsonb;serializer:json"`
	PaymentStatus    *PaymentStatusRecord `json:"payment_status" gorm:"column:payment_status;type:jsonb;serializer:json"`
	Progress         int                  `json:"progress" gorm:"column:progress;default:0;index"`
	Financials       *FinancialsRecord    `json:"financials" gorm:"column:financials;type:jsonb;serializer:json"`
	Notes            []NoteRecord         `json:"notes" gorm:"column:notes;type:jsonb;serializer:json"`
	CreatedAt        time.Time            `json:"created_at" gorm:"column:created_at;index"`
}

func (OrderRecord) TableName() string {
	return "service_orders"
}

type StatusFlagsRecord struct {
	IsContractSigned  bool `json:"isContractSigned"`
	IsPostedFretebras bool `json:"isPostedFretebras"`
	IsCostsPaid       bool `json:"isCostsPaid"`
}

type PaymentStatusRecord struct {
	Deposit  bool `json:"deposit"`
	Pickup   bool `json:"pickup"`
	Delivery bool `json:"delivery"`
}

type FinancialsRecord struct {
	TotalValue float64       `json:"totalValue"`
	DriverCost float64       `json:"driverCost"`
	Extras     []ExtraRecord `json:"extras"`
}

type ExtraRecord struct {
	ID   string  `json:"id"`
	Type string  `json:"type"`
	Name string  `json:"name"`
	Qty  int     `json:"qty"`
	Cost float64 `json:"cost"`
}

type NoteRecord struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}
