package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveProgress(t *testing.T) {
	// Every combination of the three milestones.
	for _, deposit := range []bool{false, true} {
		for _, pickup := range []bool{false, true} {
			for _, delivery := range []bool{false, true} {
				ps := PaymentStatus{Deposit: deposit, Pickup: pickup, Delivery: delivery}

				want := ProgressLead
				switch {
				case delivery:
					want = ProgressDelivered
				case pickup:
					want = ProgressPickup
				case deposit:
					want = ProgressDeposit
				}
				assert.Equal(t, want, DeriveProgress(ps), "%+v", ps)
			}
		}
	}
}

func TestDeriveProgressExamples(t *testing.T) {
	assert.Equal(t, Progress(20), DeriveProgress(PaymentStatus{Deposit: true}))
	assert.Equal(t, Progress(100), DeriveProgress(PaymentStatus{Pickup: true, Delivery: true}))
	assert.Equal(t, Progress(0), DeriveProgress(PaymentStatus{}))
	assert.Equal(t, Progress(60), DeriveProgress(PaymentStatus{Pickup: true}), "out of order milestones are not validated")
}

func TestWithPaymentStatusSequence(t *testing.T) {
	o := Order{Financials: Financials{TotalValue: 1000}}
	o.Progress = ProgressDelivered // stale value is overwritten on the next change

	var seen []Progress
	ps := PaymentStatus{}
	o = o.WithPaymentStatus(ps)
	seen = append(seen, o.Progress)

	ps.Deposit = true
	o = o.WithPaymentStatus(ps)
	seen = append(seen, o.Progress)

	ps.Pickup = true
	o = o.WithPaymentStatus(ps)
	seen = append(seen, o.Progress)

	ps.Delivery = true
	o = o.WithPaymentStatus(ps)
	seen = append(seen, o.Progress)

	assert.Equal(t, []Progress{0, 20, 60, 100}, seen)
}

func TestReceivedAndOutstanding(t *testing.T) {
	f := Financials{TotalValue: 1000}

	assert.Equal(t, 0.0, PaymentStatus{}.Received(f))
	assert.Equal(t, 200.0, PaymentStatus{Deposit: true}.Received(f))
	assert.Equal(t, 600.0, PaymentStatus{Deposit: true, Pickup: true}.Received(f))
	assert.Equal(t, 1000.0, PaymentStatus{Deposit: true, Pickup: true, Delivery: true}.Received(f))
	assert.Equal(t, 400.0, PaymentStatus{Deposit: true, Pickup: true}.Outstanding(f))
	assert.Equal(t, 600.0, PaymentStatus{Delivery: true}.Outstanding(f))
}
