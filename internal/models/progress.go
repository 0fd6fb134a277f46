package models

import "moving_ops/internal/money"

// Progress is the ordinal stage of an order, always derived from its
// payment milestones.
type Progress int

const (
	ProgressLead      Progress = 0
	ProgressDeposit   Progress = 20
	ProgressPickup    Progress = 60
	ProgressDelivered Progress = 100
)

// ProgressStages lists every stage in order.
var ProgressStages = []Progress{ProgressLead, ProgressDeposit, ProgressPickup, ProgressDelivered}

// PaymentStatus holds the three payment milestones. Later milestones are
// not required to imply earlier ones.
type PaymentStatus struct {
	Deposit  bool `json:"deposit"`
	Pickup   bool `json:"pickup"`
	Delivery bool `json:"delivery"`
}

// DeriveProgress maps the highest paid milestone to its stage.
func DeriveProgress(ps PaymentStatus) Progress {
	switch {
	case ps.Delivery:
		return ProgressDelivered
	case ps.Pickup:
		return ProgressPickup
	case ps.Deposit:
		return ProgressDeposit
	default:
		return ProgressLead
	}
}

// Received sums the installments of the milestones marked paid.
func (ps PaymentStatus) Received(f Financials) float64 {
	inst := f.Installments()
	var amounts []float64
	if ps.Deposit {
		amounts = append(amounts, inst.Deposit)
	}
	if ps.Pickup {
		amounts = append(amounts, inst.Pickup)
	}
	if ps.Delivery {
		amounts = append(amounts, inst.Delivery)
	}
	return money.Sum(amounts...)
}

// Outstanding is what the client still owes.
func (ps PaymentStatus) Outstanding(f Financials) float64 {
	return money.Sub(f.TotalValue, ps.Received(f))
}
