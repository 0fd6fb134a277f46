// Package draft holds the editing state of an order between opening the
// form and submitting it.
//
// A Draft is a value. Every transition returns a new Draft and leaves the
// receiver untouched, so totals and progress can be recomputed after any
// step. The extras buffer is kept apart from Order.Financials.Extras until
// Finalize merges the two.
package draft

import (
	"fmt"
	"strings"
	"time"

	"moving_ops/internal/models"
)

type Draft struct {
	Order  models.Order   `json:"order"`
	Extras []models.Extra `json:"extras"`
}

// New returns the empty order template.
func New() Draft {
	return Draft{
		Order: models.Order{
			Notes:      []models.Note{},
			Financials: models.Financials{Extras: []models.Extra{}},
		},
		Extras: []models.Extra{},
	}
}

// FromOrder opens an existing order for editing.
func FromOrder(o models.Order) Draft {
	o = o.Clone()
	if o.Notes == nil {
		o.Notes = []models.Note{}
	}
	o = o.WithPaymentStatus(o.PaymentStatus)

	extras := make([]models.Extra, len(o.Financials.Extras))
	copy(extras, o.Financials.Extras)
	return Draft{Order: o, Extras: extras}
}

func (d Draft) clone() Draft {
	d.Order = d.Order.Clone()
	d.Extras = append([]models.Extra{}, d.Extras...)
	return d
}

func (d Draft) SetClient(name, whatsapp string) Draft {
	d = d.clone()
	d.Order.ClientName = name
	d.Order.WhatsApp = whatsapp
	return d
}

func (d Draft) SetRoute(origin, destination string) Draft {
	d = d.clone()
	d.Order.Origin = origin
	d.Order.Destination = destination
	return d
}

// SetSchedule accepts empty strings or YYYY-MM-DD dates.
func (d Draft) SetSchedule(pickup, forecast string) (Draft, error) {
	for _, date := range []string{pickup, forecast} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return d, fmt.Errorf("%w: invalid date %q", models.ErrValidation, date)
		}
	}
	d = d.clone()
	d.Order.PickupDate = pickup
	d.Order.DeliveryForecast = forecast
	return d, nil
}

func (d Draft) SetStatusFlags(flags models.StatusFlags) Draft {
	d = d.clone()
	d.Order = d.Order.WithStatusFlags(flags)
	return d
}

// SetPayment replaces the milestones and recomputes progress.
func (d Draft) SetPayment(ps models.PaymentStatus) Draft {
	d = d.clone()
	d.Order = d.Order.WithPaymentStatus(ps)
	return d
}

// SetPricing updates total value and driver cost, clamped to zero.
func (d Draft) SetPricing(totalValue, driverCost float64) Draft {
	d = d.clone()
	d.Order.Financials.TotalValue = max(0, totalValue)
	d.Order.Financials.DriverCost = max(0, driverCost)
	return d
}

func (d Draft) SetRoleQty(role models.ServiceType, qty int) (Draft, error) {
	extras, err := SetRoleQty(d.Extras, role, qty)
	if err != nil {
		return d, err
	}
	d = d.clone()
	d.Extras = extras
	return d, nil
}

func (d Draft) SetRoleCost(role models.ServiceType, cost float64) (Draft, error) {
	extras, err := SetRoleCost(d.Extras, role, cost)
	if err != nil {
		return d, err
	}
	d = d.clone()
	d.Extras = extras
	return d, nil
}

func (d Draft) AddExtra(id, name string) Draft {
	d = d.clone()
	d.Extras = AddExtra(d.Extras, id, name)
	return d
}

func (d Draft) UpdateExtra(id string, patch ExtraPatch) (Draft, error) {
	extras, err := UpdateExtra(d.Extras, id, patch)
	if err != nil {
		return d, err
	}
	d = d.clone()
	d.Extras = extras
	return d, nil
}

func (d Draft) RemoveExtra(id string) Draft {
	d = d.clone()
	d.Extras = RemoveExtra(d.Extras, id)
	return d
}

// AddNote appends a note. Blank content is ignored.
func (d Draft) AddNote(id, content, color string, now time.Time) Draft {
	if strings.TrimSpace(content) == "" {
		return d
	}
	d = d.clone()
	d.Order.Notes = append(d.Order.Notes, models.Note{
		ID:        id,
		Content:   content,
		Color:     models.ResolveNoteColor(color),
		CreatedAt: now,
	})
	return d
}

func (d Draft) DeleteNote(id string) Draft {
	d = d.clone()
	notes := make([]models.Note, 0, len(d.Order.Notes))
	for _, n := range d.Order.Notes {
		if n.ID != id {
			notes = append(notes, n)
		}
	}
	d.Order.Notes = notes
	return d
}

// Financials is the order's pricing combined with the live extras buffer.
func (d Draft) Financials() models.Financials {
	f := d.Order.Financials
	f.Extras = d.Extras
	return f
}

// Totals recomputes cost and profit from the current buffers.
func (d Draft) Totals() models.Totals {
	return d.Financials().Totals()
}

// RoleLine is the counter view of one labor role.
type RoleLine struct {
	Type  models.ServiceType `json:"type"`
	Label string             `json:"label"`
	Qty   int                `json:"qty"`
	Cost  float64            `json:"cost"`
}

func (d Draft) Roles() []RoleLine {
	lines := make([]RoleLine, 0, len(models.LaborRoles))
	for _, role := range models.LaborRoles {
		qty, cost := RoleTotals(d.Extras, role)
		lines = append(lines, RoleLine{Type: role, Label: role.Label(), Qty: qty, Cost: cost})
	}
	return lines
}
