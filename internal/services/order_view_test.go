package services

import (
	"testing"
	"time"

	"moving_ops/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderView(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	o := models.Order{
		ID:               "OS-2026-x",
		ClientName:       "Sara",
		WhatsApp:         "(11) 91234-5678",
		DeliveryForecast: "2026-03-14",
		PaymentStatus:    models.PaymentStatus{Deposit: true},
		Progress:         models.ProgressDeposit,
		Financials: models.Financials{
			TotalValue: 1234.56,
			DriverCost: 200,
			Extras:     []models.Extra{{ID: "auto-packer", Type: models.ServicePacker, Qty: 2, Cost: 17.28}},
		},
	}

	v := NewOrderView(o, now)

	assert.Equal(t, "https://wa.me/5511912345678", v.WhatsAppLink)
	assert.Equal(t, "https://wa.me/5511912345678?text=Ol%C3%A1%2C+Sara%21+Sobre+a+sua+mudan%C3%A7a+%28OS-2026-x%29%3A", v.WhatsAppMessageLink)
	assert.Equal(t, "R$ 1.234,56", v.Display.TotalValue)
	assert.Equal(t, "R$ 234,56", v.Display.Costs)
	assert.Equal(t, "R$ 1.000,00", v.Display.Profit)
	require.NotNil(t, v.Countdown)
	assert.Equal(t, 4, v.Countdown.DaysLeft)
	assert.Equal(t, models.DeadlineCritical, v.Countdown.Status)
}

func TestNewOrderViewDeliveredHasNoCountdown(t *testing.T) {
	o := models.Order{
		DeliveryForecast: "2020-01-01",
		PaymentStatus:    models.PaymentStatus{Deposit: true, Pickup: true, Delivery: true},
		Progress:         models.ProgressDelivered,
	}

	v := NewOrderView(o, time.Now())

	assert.Nil(t, v.Countdown)
	assert.Empty(t, v.WhatsAppLink)
	assert.Empty(t, v.WhatsAppMessageLink)
	assert.Equal(t, 0.0, v.Outstanding)
}
