package claim

import (
	"github.com/shopspring/decimal"
)

// Service is one service line within a claim (loop 2400). Line order is
// preserved from input; mileage lines must immediately follow the
// transport line they extend.
type Service struct {
	HCPCS          string          `json:"hcpcs" validate:"required,max=5"`
	Modifiers      []string        `json:"modifiers,omitempty" validate:"max=4,dive,len=2"`
	Charge         decimal.Decimal `json:"charge"`
	Units          decimal.Decimal `json:"units,omitempty"`
	DOS            string          `json:"dos,omitempty" validate:"omitempty,isodate"`
	PlaceOfService string          `json:"pos,omitempty"`
	Emergency      bool            `json:"emergency,omitempty"`
	Pickup         *Location       `json:"pickup,omitempty"`
	Dropoff        *Location       `json:"dropoff,omitempty"`
	TripNumber     int64           `json:"trip_number,omitempty"`
	PaymentStatus  string          `json:"payment_status,omitempty" validate:"omitempty,oneof=P D"`
	Adjudication   *Adjudication   `json:"adjudication,omitempty"`
}

// Adjudication carries prior-payer line adjudication for loop 2430.
type Adjudication struct {
	PayerID   string          `json:"payer_id" validate:"required"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	PaidUnits  decimal.Decimal `json:"paid_units,omitempty"`
	LineCAS    []CAS           `json:"line_cas,omitempty"`
	LineDates  LineDates       `json:"line_dates,omitempty"`
}

// LineDates carries the adjudication-related dates for a service line.
type LineDates struct {
	Adjudicated string `json:"adjudicated,omitempty" validate:"omitempty,isodate"`
	Paid        string `json:"paid,omitempty" validate:"omitempty,isodate"`
}

// Denied reports whether the line-level payment status is denied.
func (s *Service) Denied() bool {
	return s.PaymentStatus == PaymentDenied
}
