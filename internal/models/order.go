package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order is one tracked moving engagement.
type Order struct {
	ID                string        `json:"id"`
	ClientName        string        `json:"clientName"`
	WhatsApp          string        `json:"whatsapp"`
	Origin            string        `json:"origin"`
	Destination       string        `json:"destination"`
	PickupDate        string        `json:"pickupDate"`       // YYYY-MM-DD
	DeliveryForecast  string        `json:"deliveryForecast"` // YYYY-MM-DD
	IsContractSigned  bool          `json:"isContractSigned"`
	IsPostedFretebras bool          `json:"isPostedFretebras"`
	IsCostsPaid       bool          `json:"isCostsPaid"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	Progress          Progress      `json:"progress"`
	Financials        Financials    `json:"financials"`
	Notes             []Note        `json:"notes"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// StatusFlags groups the informational checkboxes of an order. They never
// influence progress.
type StatusFlags struct {
	IsContractSigned  bool `json:"isContractSigned"`
	IsPostedFretebras bool `json:"isPostedFretebras"`
	IsCostsPaid       bool `json:"isCostsPaid"`
}

type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultNoteColor is the slate preset.
const DefaultNoteColor = "#334155"

// NoteColors are the named presets offered for notes. Any other color value
// is accepted as a custom color.
var NoteColors = map[string]string{
	"slate": "#334155",
	"red":   "#ef4444",
	"amber": "#f59e0b",
	"green": "#10b981",
	"blue":  "#3b82f6",
}

// ResolveNoteColor maps a preset name to its hex value. Empty input gives
// the default, anything else is kept as is.
func ResolveNoteColor(color string) string {
	if color == "" {
		return DefaultNoteColor
	}
	if hex, ok := NoteColors[color]; ok {
		return hex
	}
	return color
}

func (o Order) StatusFlags() StatusFlags {
	return StatusFlags{
		IsContractSigned:  o.IsContractSigned,
		IsPostedFretebras: o.IsPostedFretebras,
		IsCostsPaid:       o.IsCostsPaid,
	}
}

// WithStatusFlags returns a copy of o carrying flags.
func (o Order) WithStatusFlags(flags StatusFlags) Order {
	o.IsContractSigned = flags.IsContractSigned
	o.IsPostedFretebras = flags.IsPostedFretebras
	o.IsCostsPaid = flags.IsCostsPaid
	return o
}

// WithPaymentStatus returns a copy of o with ps applied and progress
// recomputed in the same step.
func (o Order) WithPaymentStatus(ps PaymentStatus) Order {
	o.PaymentStatus = ps
	o.Progress = DeriveProgress(ps)
	return o
}

// Clone returns a deep copy: slices are not shared with o.
func (o Order) Clone() Order {
	o.Financials = o.Financials.Clone()
	if o.Notes != nil {
		o.Notes = append(make([]Note, 0, len(o.Notes)), o.Notes...)
	}
	return o
}

// NewOrderID returns an identifier of the form OS-<year>-<uuid>.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("OS-%d-%s", now.Year(), uuid.NewString())
}
