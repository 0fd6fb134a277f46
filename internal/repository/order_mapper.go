package repository

import (
	"fmt"
	"time"

	"moving_ops/internal/models"

	"gorm.io/datatypes"
)

// OrderFromRecord builds the in-memory order from a stored row. It never
// fails: absent nested columns fall back to zero values and empty slices,
// unknown extra types become "other", and progress is derived from the
// payment milestones rather than read back.
func OrderFromRecord(rec OrderRecord) models.Order {
	o := models.Order{
		ID:               rec.ID,
		ClientName:       rec.ClientName,
		WhatsApp:         rec.WhatsApp,
		Origin:           rec.Origin,
		Destination:      rec.Destination,
		PickupDate:       formatDate(rec.PickupDate),
		DeliveryForecast: formatDate(rec.DeliveryForecast),
		Notes:            []models.Note{},
		Financials:       models.Financials{Extras: []models.Extra{}},
		CreatedAt:        rec.CreatedAt,
	}

	if rec.StatusFlags != nil {
		o.IsContractSigned = rec.StatusFlags.IsContractSigned
		o.IsPostedFretebras = rec.StatusFlags.IsPostedFretebras
		o.IsCostsPaid = rec.StatusFlags.IsCostsPaid
	}

	var ps models.PaymentStatus
	if rec.PaymentStatus != nil {
		ps = models.PaymentStatus{
			Deposit:  rec.PaymentStatus.Deposit,
			Pickup:   rec.PaymentStatus.Pickup,
			Delivery: rec.PaymentStatus.Delivery,
		}
	}
	o = o.WithPaymentStatus(ps)

	if rec.Financials != nil {
		o.Financials.TotalValue = rec.Financials.TotalValue
		o.Financials.DriverCost = rec.Financials.DriverCost
		for _, e := range rec.Financials.Extras {
			o.Financials.Extras = append(o.Financials.Extras, models.Extra{
				ID:   e.ID,
				Type: models.ParseServiceType(e.Type),
				Name: e.Name,
				Qty:  e.Qty,
				Cost: e.Cost,
			})
		}
	}

	for _, n := range rec.Notes {
		o.Notes = append(o.Notes, models.Note{
			ID:        n.ID,
			Content:   n.Content,
			Color:     n.Color,
			CreatedAt: n.CreatedAt,
		})
	}

	return o
}

// OrderToRecord is the inverse renaming. The order is expected to be
// complete; nothing is defaulted. Dates must be empty or YYYY-MM-DD.
func OrderToRecord(o models.Order) (OrderRecord, error) {
	pickup, err := parseDate(o.PickupDate)
	if err != nil {
		return OrderRecord{}, err
	}
	forecast, err := parseDate(o.DeliveryForecast)
	if err != nil {
		return OrderRecord{}, err
	}

	extras := make([]ExtraRecord, 0, len(o.Financials.Extras))
	for _, e := range o.Financials.Extras {
		extras = append(extras, ExtraRecord{
			ID:   e.ID,
			Type: string(e.Type),
			Name: e.Name,
			Qty:  e.Qty,
			Cost: e.Cost,
		})
	}

	notes := make([]NoteRecord, 0, len(o.Notes))
	for _, n := range o.Notes {
		notes = append(notes, NoteRecord{
			ID:        n.ID,
			Content:   n.Content,
			Color:     n.Color,
			CreatedAt: n.CreatedAt,
		})
	}

	return OrderRecord{
		ID:               o.ID,
		ClientName:       o.ClientName,
		WhatsApp:         o.WhatsApp,
		Origin:           o.Origin,
		Destination:      o.Destination,
		PickupDate:       pickup,
		DeliveryForecast: forecast,
		StatusFlags: &StatusFlagsRecord{
			IsContractSigned:  o.IsContractSigned,
			IsPostedFretebras: o.IsPostedFretebras,
			IsCostsPaid:       o.IsCostsPaid,
		},
		PaymentStatus: &PaymentStatusRecord{
			Deposit:  o.PaymentStatus.Deposit,
			Pickup:   o.PaymentStatus.Pickup,
			Delivery: o.PaymentStatus.Delivery,
		},
		Progress: int(o.Progress),
		Financials: &FinancialsRecord{
			TotalValue: o.Financials.TotalValue,
			DriverCost: o.Financials.DriverCost,
			Extras:     extras,
		},
		Notes:     notes,
		CreatedAt: o.CreatedAt,
	}, nil
}

func formatDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(models.DateLayout)
}

func parseDate(s string) (*datatypes.Date, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", models.ErrValidation, s)
	}
	d := datatypes.Date(t)
	return &d, nil
}
