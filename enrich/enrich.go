// Package enrich fills cascading defaults and derived fields on claim
// records before validation. Enrichment is a deterministic, idempotent
// transformation: applying it twice yields the same record as once.
//
// Enrichment never invents member group, payment status, or submission
// channel values; their absence remains an input defect for the
// validator to report.
package enrich

import (
	"github.com/shopspring/decimal"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/codes"
)

var one = decimal.NewFromInt(1)

// Claim applies the enrichment rules to a claim in place, in order:
//
//  1. claim.to defaults to claim.from
//  2. claim.pos defaults to 41 (ground ambulance)
//  3. claim.frequency_code defaults to 1; the legacy adjustment_type
//     field translates replacement→7 and void→8, with an explicit
//     frequency code winning
//  4. each service inherits dos, pos, trip number, pickup, dropoff, and
//     payment status from the claim level, and units default to 1
//  5. a rendering provider missing both NPI and name is populated from
//     the billing provider so every claim carries an identified renderer
func Claim(c *claim.Claim) {
	if c == nil {
		return
	}

	if c.Info.To == "" {
		c.Info.To = c.Info.From
	}

	if c.Info.PlaceOfService == "" {
		c.Info.PlaceOfService = codes.DefaultPlaceOfService
	}

	if c.Info.FrequencyCode == "" {
		switch c.Info.AdjustmentType {
		case "replacement":
			c.Info.FrequencyCode = "7"
		case "void":
			c.Info.FrequencyCode = "8"
		default:
			c.Info.FrequencyCode = "1"
		}
	}

	for _, s := range c.Services {
		enrichService(c, s)
	}

	if missingRenderer(c.RenderingProvider) {
		billing := c.BillingProvider
		c.RenderingProvider = &billing
	}
}

func enrichService(c *claim.Claim, s *claim.Service) {
	if s.DOS == "" {
		s.DOS = c.Info.From
	}
	if s.PlaceOfService == "" {
		s.PlaceOfService = c.Info.PlaceOfService
	}
	if s.Units.IsZero() {
		s.Units = one
	}
	if s.PaymentStatus == "" {
		s.PaymentStatus = c.Info.PaymentStatus
	}

	if amb := c.Info.Ambulance; amb != nil {
		if s.TripNumber == 0 {
			s.TripNumber = amb.TripNumber
		}
		if s.Pickup.Empty() && !amb.Pickup.Empty() {
			s.Pickup = amb.Pickup
		}
		if s.Dropoff.Empty() && !amb.Dropoff.Empty() {
			s.Dropoff = amb.Dropoff
		}
	}
}

// missingRenderer reports whether the rendering provider lacks both an
// NPI and a name.
func missingRenderer(p *claim.Provider) bool {
	return p == nil || (p.NPI == "" && p.Name == "")
}
