package services

import (
	"fmt"
	"strings"
	"time"

	"moving_ops/internal/models"
	"moving_ops/internal/money"
	"moving_ops/pkg/whatsapp"
)

// OrderView is an order plus everything the dashboard card derives from it.
// None of the derived fields are stored.
type OrderView struct {
	models.Order
	Totals       models.Totals       `json:"totals"`
	Installments models.Installments `json:"installments"`
	Received     float64             `json:"received"`
	Outstanding  float64             `json:"outstanding"`
	Display      DisplayAmounts      `json:"display"`
	Countdown    *models.Countdown   `json:"countdown,omitempty"`
	WhatsAppLink string              `json:"whatsappLink,omitempty"`
	// Same chat with a greeting naming the order prefilled.
	WhatsAppMessageLink string `json:"whatsappMessageLink,omitempty"`
}

type DisplayAmounts struct {
	TotalValue string `json:"totalValue"`
	Costs      string `json:"costs"`
	Profit     string `json:"profit"`
}

func NewOrderView(o models.Order, now time.Time) OrderView {
	totals := o.Financials.Totals()
	v := OrderView{
		Order:        o,
		Totals:       totals,
		Installments: o.Financials.Installments(),
		Received:     o.PaymentStatus.Received(o.Financials),
		Outstanding:  o.PaymentStatus.Outstanding(o.Financials),
		Display: DisplayAmounts{
			TotalValue: money.Format(o.Financials.TotalValue),
			Costs:      money.Format(totals.Costs),
			Profit:     money.Format(totals.Profit),
		},
		WhatsAppLink:        whatsapp.DeepLink(o.WhatsApp),
		WhatsAppMessageLink: whatsapp.DeepLinkWithText(o.WhatsApp, greeting(o)),
	}
	// Delivered orders have no deadline left to watch.
	if o.DeliveryForecast != "" && o.Progress != models.ProgressDelivered {
		if c, err := models.CountdownTo(o.DeliveryForecast, now); err == nil {
			v.Countdown = &c
		}
	}
	return v
}

func greeting(o models.Order) string {
	name := strings.TrimSpace(o.ClientName)
	if name == "" {
		return fmt.Sprintf("Olá! Sobre a sua mudança (%s):", o.ID)
	}
	return fmt.Sprintf("Olá, %s! Sobre a sua mudança (%s):", name, o.ID)
}

func NewOrderViews(orders []models.Order, now time.Time) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o, now))
	}
	return views
}
