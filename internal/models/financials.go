package models

import (
	"moving_ops/internal/money"
)

// ServiceType tags an extra cost line item.
type ServiceType string

const (
	ServiceHelper    ServiceType = "helper"
	ServiceAssembler ServiceType = "assembler"
	ServicePacker    ServiceType = "packer"
	ServiceOther     ServiceType = "other"
)

// LaborRoles are the service types that are consolidated into a single line
// item each.
var LaborRoles = []ServiceType{ServiceHelper, ServiceAssembler, ServicePacker}

var roleLabels = map[ServiceType]string{
	ServiceHelper:    "Ajudantes",
	ServiceAssembler: "Montadores",
	ServicePacker:    "Embaladores",
}

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceHelper, ServiceAssembler, ServicePacker, ServiceOther:
		return true
	}
	return false
}

// IsRole reports whether t is a labor role (anything but "other").
func (t ServiceType) IsRole() bool {
	_, ok := roleLabels[t]
	return ok
}

// Label is the display name of a labor role, or the raw tag otherwise.
func (t ServiceType) Label() string {
	if label, ok := roleLabels[t]; ok {
		return label
	}
	return string(t)
}

// ParseServiceType normalises an external tag. Unknown tags become "other".
func ParseServiceType(s string) ServiceType {
	if t := ServiceType(s); t.Valid() {
		return t
	}
	return ServiceOther
}

// Extra is one operational cost line item beyond the driver.
type Extra struct {
	ID   string      `json:"id"`
	Type ServiceType `json:"type"`
	Name string      `json:"name"`
	Qty  int         `json:"qty"`
	Cost float64     `json:"cost"`
}

// Total is qty * unit cost.
func (e Extra) Total() float64 {
	return money.Mul(e.Qty, e.Cost)
}

// Financials is owned by exactly one Order.
type Financials struct {
	TotalValue float64 `json:"totalValue"`
	DriverCost float64 `json:"driverCost"`
	Extras     []Extra `json:"extras"`
}

// Costs is the total operational cost: driver plus every extra line.
func (f Financials) Costs() float64 {
	amounts := make([]float64, 0, len(f.Extras)+1)
	amounts = append(amounts, f.DriverCost)
	for _, e := range f.Extras {
		amounts = append(amounts, e.Total())
	}
	return money.Sum(amounts...)
}

// Profit is the total value minus Costs.
func (f Financials) Profit() float64 {
	return money.Sub(f.TotalValue, f.Costs())
}

func (f Financials) Clone() Financials {
	if f.Extras != nil {
		f.Extras = append(make([]Extra, 0, len(f.Extras)), f.Extras...)
	}
	return f
}

// Installments is the expected amount collected at each milestone.
type Installments struct {
	Deposit  float64 `json:"deposit"`
	Pickup   float64 `json:"pickup"`
	Delivery float64 `json:"delivery"`
}

const (
	depositPct = 20
	pickupPct  = 40
)

// Installments splits TotalValue 20/40/40 across deposit, pickup and
// delivery. Delivery takes the remainder so the parts always add up.
func (f Financials) Installments() Installments {
	deposit := money.Percent(f.TotalValue, depositPct)
	pickup := money.Percent(f.TotalValue, pickupPct)
	return Installments{
		Deposit:  deposit,
		Pickup:   pickup,
		Delivery: money.Sub(f.TotalValue, money.Sum(deposit, pickup)),
	}
}

// Totals is the derived cost/profit view of a Financials record.
type Totals struct {
	Costs  float64 `json:"costs"`
	Profit float64 `json:"profit"`
}

func (f Financials) Totals() Totals {
	return Totals{Costs: f.Costs(), Profit: f.Profit()}
}
