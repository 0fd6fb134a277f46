package draft

import (
	"time"

	"moving_ops/internal/models"
)

// IDFunc generates a new order identifier.
type IDFunc func(now time.Time) string

// Finalize produces the persistable order from d. An existing id and
// creation time are kept; otherwise they are assigned from newID and now.
// The extras buffer replaces the financials' extras wholesale. d is not
// modified.
func Finalize(d Draft, now time.Time, newID IDFunc) models.Order {
	o := d.Order.Clone()
	if o.ID == "" {
		o.ID = newID(now)
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.Financials.Extras = append([]models.Extra{}, d.Extras...)
	if o.Notes == nil {
		o.Notes = []models.Note{}
	}
	return o.WithPaymentStatus(o.PaymentStatus)
}
