package claim

import (
	"github.com/shopspring/decimal"
)

// Payment status codes.
const (
	PaymentPaid   = "P"
	PaymentDenied = "D"
)

// Submission channels.
const (
	ChannelElectronic = "ELECTRONIC"
	ChannelPaper      = "PAPER"
)

// Network indicators.
const (
	NetworkIn  = "I"
	NetworkOut = "O"
)

// ChargeTolerance is the allowed difference between a claim's total
// charge and the sum of its service charges.
var ChargeTolerance = decimal.NewFromFloat(0.01)

// Claim is the root record for a single 837P professional claim.
type Claim struct {
	Submitter           Submitter  `json:"submitter" validate:"required"`
	Receiver            Receiver   `json:"receiver" validate:"required"`
	BillingProvider     Provider   `json:"billing_provider" validate:"required"`
	Subscriber          Subscriber `json:"subscriber" validate:"required"`
	RenderingProvider   *Provider  `json:"rendering_provider,omitempty"`
	PayToPlan           *PayToPlan `json:"pay_to_plan,omitempty"`
	SupervisingProvider *Person    `json:"supervising_provider,omitempty"`
	ReferringProvider   *Person    `json:"referring_provider,omitempty"`
	ServiceFacility     *Facility  `json:"service_facility,omitempty"`
	Info                Info       `json:"claim" validate:"required"`
	Services            []*Service `json:"services" validate:"required,min=1,dive,required"`
	OtherPayers         []*OtherPayer `json:"other_payers,omitempty"`
}

// Info carries the claim-level fields of the CLM loop.
type Info struct {
	Number              string          `json:"clm_number" validate:"required,max=30"`
	TotalCharge         decimal.Decimal `json:"total_charge"`
	From                string          `json:"from" validate:"required,isodate"`
	To                  string          `json:"to,omitempty" validate:"omitempty,isodate"`
	PlaceOfService      string          `json:"pos,omitempty"`
	FrequencyCode       string          `json:"frequency_code,omitempty" validate:"omitempty,oneof=1 6 7 8"`
	AdjustmentType      string          `json:"adjustment_type,omitempty" validate:"omitempty,oneof=replacement void"`
	OriginalClaimNumber string          `json:"original_claim_number,omitempty" validate:"max=30"`
	PaymentStatus       string          `json:"payment_status" validate:"required,oneof=P D"`
	SubmissionChannel   string          `json:"submission_channel" validate:"required,oneof=ELECTRONIC PAPER"`
	NetworkIndicator    string          `json:"rendering_network_indicator" validate:"required,oneof=I O"`
	MemberGroup         MemberGroup     `json:"member_group"`
	Ambulance           *Ambulance      `json:"ambulance,omitempty"`
	Adjustments         []CAS           `json:"adjustments,omitempty"`
	TrackingNumber      string          `json:"tracking_number,omitempty"`
	PatientAccount      string          `json:"patient_account,omitempty"`
	DateReceived        string          `json:"date_received,omitempty" validate:"omitempty,isodate"`
	DateAdjudicated     string          `json:"date_adjudicated,omitempty" validate:"omitempty,isodate"`
	DatePaid            string          `json:"date_paid,omitempty" validate:"omitempty,isodate"`
}

// MemberGroup identifies the member's plan hierarchy. Every claim must
// carry all five fields.
type MemberGroup struct {
	GroupID    string `json:"group_id" validate:"required"`
	SubGroupID string `json:"sub_group_id" validate:"required"`
	ClassID    string `json:"class_id" validate:"required"`
	PlanID     string `json:"plan_id" validate:"required"`
	ProductID  string `json:"product_id" validate:"required"`
}

// Ambulance carries the CR1 transport block and the claim-level trip
// descriptors that cascade onto service lines.
type Ambulance struct {
	WeightUnit      string    `json:"weight_unit,omitempty" validate:"omitempty,oneof=LB KG"`
	PatientWeight   decimal.Decimal `json:"patient_weight,omitempty"`
	TransportCode   string    `json:"transport_code,omitempty" validate:"omitempty,oneof=A B C D E"`
	TransportReason string    `json:"transport_reason,omitempty" validate:"omitempty,oneof=A B C D DH E"`
	TripNumber      int64     `json:"trip_number,omitempty"`
	SpecialNeeds    string    `json:"special_needs,omitempty" validate:"omitempty,oneof=Y N"`
	Pickup          *Location `json:"pickup,omitempty"`
	Dropoff         *Location `json:"dropoff,omitempty"`
}

// PayToPlan is the optional pay-to plan (loop 2010AC), present only when
// payment routes to a plan other than the billing provider.
type PayToPlan struct {
	Name    string  `json:"name" validate:"required,max=60"`
	ID      string  `json:"id" validate:"required"`
	Address Address `json:"address"`
}

// OtherPayer is one coordination-of-benefits payer for loops 2320/2330.
type OtherPayer struct {
	PayerID               string          `json:"payer_id" validate:"required"`
	PayerName             string          `json:"payer_name" validate:"required"`
	SequenceCode          string          `json:"sequence_code,omitempty" validate:"omitempty,oneof=P S T"`
	PaidAmount            decimal.Decimal `json:"paid_amount"`
	RemainingLiability    decimal.Decimal `json:"remaining_liability"`
	AllowedAmount         decimal.Decimal `json:"allowed_amount"`
	PatientResponsibility decimal.Decimal `json:"patient_responsibility"`
	Adjustments           []CAS           `json:"adjustments,omitempty"`
}

// CAS is one reason-coded monetary adjustment.
type CAS struct {
	Group    string          `json:"group" validate:"required"`
	Reason   string          `json:"reason" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Quantity decimal.Decimal `json:"quantity,omitempty"`
}

// ServiceChargeSum returns the sum of the claim's service line charges.
func (c *Claim) ServiceChargeSum() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range c.Services {
		sum = sum.Add(s.Charge)
	}
	return sum
}

// Void reports whether the claim is a void (frequency code 8). Void
// claims may carry zero charges.
func (c *Claim) Void() bool {
	return c.Info.FrequencyCode == "8"
}

// Denied reports whether the claim-level payment status is denied.
func (c *Claim) Denied() bool {
	return c.Info.PaymentStatus == PaymentDenied
}

// DuplicateKey is the triple downstream duplicate detection keys on:
// claim number, frequency code, original claim number.
type DuplicateKey struct {
	Number        string
	FrequencyCode string
	Original      string
}

// DupKey returns the claim's duplicate-detection triple.
func (c *Claim) DupKey() DuplicateKey {
	return DuplicateKey{
		Number:        c.Info.Number,
		FrequencyCode: c.Info.FrequencyCode,
		Original:      c.Info.OriginalClaimNumber,
	}
}
