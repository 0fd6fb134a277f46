package draft

import (
	"errors"
	"fmt"

	"moving_ops/internal/models"
)

var (
	ErrNotRole       = errors.New("service type is not a labor role")
	ErrExtraNotFound = errors.New("extra not found")
)

// RoleExtraID is the stable id of the consolidated line item of a role.
func RoleExtraID(role models.ServiceType) string {
	return "auto-" + string(role)
}

// RoleTotals reads the per-role view out of a flat extras list: the summed
// quantity of every item tagged role and the unit cost of the first one.
func RoleTotals(extras []models.Extra, role models.ServiceType) (qty int, unitCost float64) {
	found := false
	for _, e := range extras {
		if e.Type != role {
			continue
		}
		qty += e.Qty
		if !found {
			unitCost = e.Cost
			found = true
		}
	}
	return qty, unitCost
}

// SetRoleQty replaces every item of role with at most one item carrying qty.
// The unit cost of the previous item is kept.
func SetRoleQty(extras []models.Extra, role models.ServiceType, qty int) ([]models.Extra, error) {
	if !role.IsRole() {
		return nil, fmt.Errorf("%w: %q", ErrNotRole, role)
	}
	_, cost := RoleTotals(extras, role)
	return consolidate(extras, role, max(0, qty), cost), nil
}

// SetRoleCost is SetRoleQty for the unit cost. With no quantity on record
// the role stays absent and the cost is dropped.
func SetRoleCost(extras []models.Extra, role models.ServiceType, cost float64) ([]models.Extra, error) {
	if !role.IsRole() {
		return nil, fmt.Errorf("%w: %q", ErrNotRole, role)
	}
	qty, _ := RoleTotals(extras, role)
	return consolidate(extras, role, qty, max(0, cost)), nil
}

func consolidate(extras []models.Extra, role models.ServiceType, qty int, cost float64) []models.Extra {
	out := make([]models.Extra, 0, len(extras)+1)
	for _, e := range extras {
		if e.Type != role {
			out = append(out, e)
		}
	}
	if qty > 0 {
		out = append(out, models.Extra{
			ID:   RoleExtraID(role),
			Type: role,
			Name: role.Label(),
			Qty:  qty,
			Cost: cost,
		})
	}
	return out
}

// AddExtra appends a free-form line item.
func AddExtra(extras []models.Extra, id, name string) []models.Extra {
	out := make([]models.Extra, 0, len(extras)+1)
	out = append(out, extras...)
	return append(out, models.Extra{
		ID:   id,
		Type: models.ServiceOther,
		Name: name,
		Qty:  1,
		Cost: 0,
	})
}

// ExtraPatch carries the fields to change; nil fields are left alone.
type ExtraPatch struct {
	Name *string  `json:"name,omitempty"`
	Qty  *int     `json:"qty,omitempty"`
	Cost *float64 `json:"cost,omitempty"`
}

// UpdateExtra applies patch to the item with the given id. Numbers are
// clamped to zero.
func UpdateExtra(extras []models.Extra, id string, patch ExtraPatch) ([]models.Extra, error) {
	out := make([]models.Extra, len(extras))
	copy(out, extras)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.Name != nil {
			out[i].Name = *patch.Name
		}
		if patch.Qty != nil {
			out[i].Qty = max(0, *patch.Qty)
		}
		if patch.Cost != nil {
			out[i].Cost = max(0, *patch.Cost)
		}
		// Role items stay consolidated: one item per role, none at qty 0.
		if role := out[i].Type; role.IsRole() {
			qty, _ := RoleTotals(out, role)
			return consolidate(out, role, qty, out[i].Cost), nil
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrExtraNotFound, id)
}

// RemoveExtra drops the item with the given id, if any.
func RemoveExtra(extras []models.Extra, id string) []models.Extra {
	out := make([]models.Extra, 0, len(extras))
	for _, e := range extras {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
