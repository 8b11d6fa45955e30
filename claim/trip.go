package claim

import (
	"github.com/shopspring/decimal"
)

// Trip is the flattened representation of a single service event: one
// vehicle run for one member on one date. The batch processor groups
// trips into claims by billing NPI, rendering NPI, date of service, and
// member id.
type Trip struct {
	TripNumber        int64     `json:"trip_number,omitempty"`
	BillingProvider   Provider  `json:"billing_provider" validate:"required"`
	RenderingProvider *Provider `json:"rendering_provider,omitempty"`
	Subscriber        Subscriber `json:"subscriber" validate:"required"`
	MemberGroup       MemberGroup `json:"member_group"`

	DOS               string `json:"dos" validate:"required,isodate"`
	PaymentStatus     string `json:"payment_status" validate:"required,oneof=P D"`
	SubmissionChannel string `json:"submission_channel" validate:"required,oneof=ELECTRONIC PAPER"`
	NetworkIndicator  string `json:"rendering_network_indicator" validate:"required,oneof=I O"`

	HCPCS          string          `json:"hcpcs" validate:"required,max=5"`
	Modifiers      []string        `json:"modifiers,omitempty" validate:"max=4,dive,len=2"`
	Charge         decimal.Decimal `json:"charge"`
	Units          decimal.Decimal `json:"units,omitempty"`
	PlaceOfService string          `json:"pos,omitempty"`
	Emergency      bool            `json:"emergency,omitempty"`

	TransportCode   string          `json:"transport_code,omitempty" validate:"omitempty,oneof=A B C D E"`
	TransportReason string          `json:"transport_reason,omitempty" validate:"omitempty,oneof=A B C D DH E"`
	WeightUnit      string          `json:"weight_unit,omitempty" validate:"omitempty,oneof=LB KG"`
	PatientWeight   decimal.Decimal `json:"patient_weight,omitempty"`
	SpecialNeeds    string          `json:"special_needs,omitempty" validate:"omitempty,oneof=Y N"`

	Pickup  *Location `json:"pickup,omitempty"`
	Dropoff *Location `json:"dropoff,omitempty"`

	// Mileage, when set, adds a per-mile line immediately after the
	// transport line for this trip.
	Mileage *TripMileage `json:"mileage,omitempty"`

	FrequencyCode       string `json:"frequency_code,omitempty" validate:"omitempty,oneof=1 6 7 8"`
	OriginalClaimNumber string `json:"original_claim_number,omitempty" validate:"max=30"`

	SupervisingProvider *Person `json:"supervising_provider,omitempty"`
	Adjudication        *Adjudication `json:"adjudication,omitempty"`
}

// TripMileage is the per-mile companion line for a trip.
type TripMileage struct {
	HCPCS  string          `json:"hcpcs" validate:"required,max=5"`
	Charge decimal.Decimal `json:"charge"`
	Miles  decimal.Decimal `json:"miles"`
}

// GroupKey identifies the claim a trip belongs to: billing NPI, rendering
// NPI, date of service, member id. Trips with equal keys combine into a
// single claim with their services in input order.
type GroupKey struct {
	BillingNPI   string
	RenderingNPI string
	DOS          string
	MemberID     string
}

// Key returns the trip's grouping key. A missing rendering provider
// groups under the billing NPI, matching the enricher's rendering
// fallback.
func (t *Trip) Key() GroupKey {
	rendering := t.BillingProvider.NPI
	if t.RenderingProvider != nil && t.RenderingProvider.NPI != "" {
		rendering = t.RenderingProvider.NPI
	}
	return GroupKey{
		BillingNPI:   t.BillingProvider.NPI,
		RenderingNPI: rendering,
		DOS:          t.DOS,
		MemberID:     t.Subscriber.MemberID,
	}
}
