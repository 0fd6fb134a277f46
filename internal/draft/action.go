package draft

import (
	"fmt"
	"time"

	"moving_ops/internal/models"
)

type ActionKind string

const (
	ActionClient      ActionKind = "client"
	ActionRoute       ActionKind = "route"
	ActionSchedule    ActionKind = "schedule"
	ActionStatusFlags ActionKind = "status_flags"
	ActionPayment     ActionKind = "payment"
	ActionPricing     ActionKind = "pricing"
	ActionRoleQty     ActionKind = "role_qty"
	ActionRoleCost    ActionKind = "role_cost"
	ActionAddExtra    ActionKind = "add_extra"
	ActionUpdateExtra ActionKind = "update_extra"
	ActionRemoveExtra ActionKind = "remove_extra"
	ActionAddNote     ActionKind = "add_note"
	ActionDeleteNote  ActionKind = "delete_note"
)

// Action is one user edit on a draft, as received from the dashboard.
// Only the fields relevant to Kind are read.
type Action struct {
	Kind ActionKind `json:"kind" binding:"required"`

	// Omitted fields keep their current value; "" clears one.
	ClientName       *string `json:"clientName,omitempty"`
	WhatsApp         *string `json:"whatsapp,omitempty"`
	Origin           *string `json:"origin,omitempty"`
	Destination      *string `json:"destination,omitempty"`
	PickupDate       *string `json:"pickupDate,omitempty"`
	DeliveryForecast *string `json:"deliveryForecast,omitempty"`

	StatusFlags   *models.StatusFlags   `json:"statusFlags,omitempty"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus,omitempty"`

	TotalValue *float64 `json:"totalValue,omitempty"`
	DriverCost *float64 `json:"driverCost,omitempty"`

	Role models.ServiceType `json:"role,omitempty"`
	Qty  *int               `json:"qty,omitempty"`
	Cost *float64           `json:"cost,omitempty"`

	ExtraID string  `json:"extraId,omitempty"`
	Name    *string `json:"name,omitempty"`

	NoteID  string `json:"noteId,omitempty"`
	Content string `json:"content,omitempty"`
	Color   string `json:"color,omitempty"`
}

// Apply runs a single transition. newID supplies ids for new extras and
// notes.
func Apply(d Draft, a Action, now time.Time, newID func() string) (Draft, error) {
	switch a.Kind {
	case ActionClient:
		return d.SetClient(valueOr(a.ClientName, d.Order.ClientName), valueOr(a.WhatsApp, d.Order.WhatsApp)), nil
	case ActionRoute:
		return d.SetRoute(valueOr(a.Origin, d.Order.Origin), valueOr(a.Destination, d.Order.Destination)), nil
	case ActionSchedule:
		return d.SetSchedule(valueOr(a.PickupDate, d.Order.PickupDate), valueOr(a.DeliveryForecast, d.Order.DeliveryForecast))
	case ActionStatusFlags:
		if a.StatusFlags == nil {
			return d, missing(a.Kind, "statusFlags")
		}
		return d.SetStatusFlags(*a.StatusFlags), nil
	case ActionPayment:
		if a.PaymentStatus == nil {
			return d, missing(a.Kind, "paymentStatus")
		}
		return d.SetPayment(*a.PaymentStatus), nil
	case ActionPricing:
		total, driver := d.Order.Financials.TotalValue, d.Order.Financials.DriverCost
		if a.TotalValue != nil {
			total = *a.TotalValue
		}
		if a.DriverCost != nil {
			driver = *a.DriverCost
		}
		return d.SetPricing(total, driver), nil
	case ActionRoleQty:
		if a.Qty == nil {
			return d, missing(a.Kind, "qty")
		}
		return d.SetRoleQty(a.Role, *a.Qty)
	case ActionRoleCost:
		if a.Cost == nil {
			return d, missing(a.Kind, "cost")
		}
		return d.SetRoleCost(a.Role, *a.Cost)
	case ActionAddExtra:
		name := ""
		if a.Name != nil {
			name = *a.Name
		}
		return d.AddExtra(newID(), name), nil
	case ActionUpdateExtra:
		return d.UpdateExtra(a.ExtraID, ExtraPatch{Name: a.Name, Qty: a.Qty, Cost: a.Cost})
	case ActionRemoveExtra:
		return d.RemoveExtra(a.ExtraID), nil
	case ActionAddNote:
		return d.AddNote("note-"+newID(), a.Content, a.Color, now), nil
	case ActionDeleteNote:
		return d.DeleteNote(a.NoteID), nil
	}
	return d, fmt.Errorf("%w: unknown action %q", models.ErrValidation, a.Kind)
}

func valueOr(v *string, current string) string {
	if v == nil {
		return current
	}
	return *v
}

func missing(kind ActionKind, field string) error {
	return fmt.Errorf("%w: %s requires %s", models.ErrValidation, kind, field)
}
