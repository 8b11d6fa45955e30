package validate

import (
	"fmt"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/codes"
	"github.com/dshills/go837/report"
	"github.com/dshills/go837/x12"
)

// claimRule is one business rule applied to an enriched claim.
type claimRule func(c *claim.Claim, rep *report.Report)

// claimRules are applied in order after the format checks.
var claimRules = []claimRule{
	ruleRegistryCodes,
	ruleOriginalClaimNumber,
	ruleCharges,
	ruleMileageAdjacency,
	ruleHCPCSRegistry,
	ruleSupervisingProvider,
	ruleLocationAmbiguity,
}

// ruleRegistryCodes checks closed-table values the struct tags cannot:
// place of service and the ambulance transport block.
func ruleRegistryCodes(c *claim.Claim, rep *report.Report) {
	if c.Info.PlaceOfService != "" && !codes.Valid(codes.KindPlaceOfService, c.Info.PlaceOfService) {
		rep.Addf(x12.SeverityError, CodeUnknownCode, "claim.pos",
			"unknown place of service %q", c.Info.PlaceOfService)
	}

	for i, s := range c.Services {
		if s.PlaceOfService != "" && !codes.Valid(codes.KindPlaceOfService, s.PlaceOfService) {
			rep.Addf(x12.SeverityError, CodeUnknownCode, servicePath(i, "pos"),
				"unknown place of service %q", s.PlaceOfService)
		}
	}

	if amb := c.Info.Ambulance; amb != nil {
		if amb.TransportCode != "" && !codes.Valid(codes.KindTransportCode, amb.TransportCode) {
			rep.Addf(x12.SeverityError, CodeUnknownCode, "claim.ambulance.transport_code",
				"unknown transport code %q", amb.TransportCode)
		}
		if amb.TransportReason != "" && !codes.Valid(codes.KindTransportReason, amb.TransportReason) {
			rep.Addf(x12.SeverityError, CodeUnknownCode, "claim.ambulance.transport_reason",
				"unknown transport reason %q", amb.TransportReason)
		}
	}

	if c.Info.FrequencyCode != "" && !codes.Valid(codes.KindFrequency, c.Info.FrequencyCode) {
		rep.Addf(x12.SeverityError, CodeUnknownCode, "claim.frequency_code",
			"unknown frequency code %q", c.Info.FrequencyCode)
	}
}

// ruleOriginalClaimNumber requires an original claim number on corrected,
// replacement, and void claims.
func ruleOriginalClaimNumber(c *claim.Claim, rep *report.Report) {
	if codes.ReplacementFrequency(c.Info.FrequencyCode) && c.Info.OriginalClaimNumber == "" {
		rep.Addf(x12.SeverityError, CodeMissingOriginal, "claim.original_claim_number",
			"original claim number is required for frequency code %s", c.Info.FrequencyCode)
	}
}

// ruleCharges balances the claim total against the service line sum.
// Void claims may carry zero charges; all other frequencies require a
// positive total that matches the line sum within one cent.
func ruleCharges(c *claim.Claim, rep *report.Report) {
	if len(c.Services) == 0 {
		// Presence is reported by the format checks; nothing to balance.
		return
	}

	sum := c.ServiceChargeSum()

	if c.Void() {
		return
	}

	if !c.Info.TotalCharge.IsPositive() {
		rep.Error(CodeZeroCharge, "claim.total_charge",
			"total charge must be greater than zero for non-void claims")
		return
	}

	if c.Info.TotalCharge.Sub(sum).Abs().GreaterThan(claim.ChargeTolerance) {
		rep.Addf(x12.SeverityError, CodeChargeSum, "claim.total_charge",
			"total charge %s does not equal service charge sum %s",
			c.Info.TotalCharge.StringFixed(2), sum.StringFixed(2))
	}
}

// ruleMileageAdjacency scans services in order: every mileage line must
// immediately follow a non-mileage transport line, so a mileage line
// first or two mileage lines in a row are errors.
func ruleMileageAdjacency(c *claim.Claim, rep *report.Report) {
	for i, s := range c.Services {
		if !codes.Mileage(s.HCPCS) {
			continue
		}
		switch {
		case i == 0:
			rep.Addf(x12.SeverityError, CodeMileageFirst, servicePath(i, "hcpcs"),
				"mileage code %s cannot be the first service line", s.HCPCS)
		case codes.Mileage(c.Services[i-1].HCPCS):
			rep.Addf(x12.SeverityError, CodeMileageRun, servicePath(i, "hcpcs"),
				"mileage code %s cannot follow mileage code %s", s.HCPCS, c.Services[i-1].HCPCS)
		}
	}
}

// ruleHCPCSRegistry downgrades registry misses to warnings: unknown
// procedure codes and modifiers flow through for experimental use.
func ruleHCPCSRegistry(c *claim.Claim, rep *report.Report) {
	for i, s := range c.Services {
		if s.HCPCS != "" && !codes.Valid(codes.KindHCPCS, s.HCPCS) {
			rep.Addf(x12.SeverityWarning, CodeUnknownHCPCS, servicePath(i, "hcpcs"),
				"HCPCS %s is not in the registry", s.HCPCS)
		}
		for j, m := range s.Modifiers {
			if len(m) == 2 && !codes.Valid(codes.KindModifier, m) {
				rep.Addf(x12.SeverityWarning, CodeUnknownModifier,
					servicePath(i, fmt.Sprintf("modifiers[%d]", j)),
					"modifier %s is not in the registry", m)
			}
		}
	}
}

// ruleSupervisingProvider warns when a special-transport service has no
// supervising provider on the claim.
func ruleSupervisingProvider(c *claim.Claim, rep *report.Report) {
	if c.SupervisingProvider != nil && c.SupervisingProvider.Name != "" {
		return
	}
	for i, s := range c.Services {
		if codes.SpecialTransport(s.HCPCS) {
			rep.Addf(x12.SeverityWarning, CodeNoSupervising, servicePath(i, "hcpcs"),
				"HCPCS %s expects a supervising provider on the claim", s.HCPCS)
			return
		}
	}
}

// ruleLocationAmbiguity warns when both the claim-level ambulance block
// and a service line carry pickup/dropoff data; downstream parsers may
// disagree about precedence.
func ruleLocationAmbiguity(c *claim.Claim, rep *report.Report) {
	amb := c.Info.Ambulance
	if amb == nil || (amb.Pickup.Empty() && amb.Dropoff.Empty()) {
		return
	}
	for i, s := range c.Services {
		ownPickup := !s.Pickup.Empty() && s.Pickup != amb.Pickup
		ownDropoff := !s.Dropoff.Empty() && s.Dropoff != amb.Dropoff
		if ownPickup || ownDropoff {
			rep.Addf(x12.SeverityWarning, CodeAmbiguousLocation, servicePath(i, ""),
				"claim-level and service-level pickup/dropoff are both present")
			return
		}
	}
}

func servicePath(i int, field string) string {
	if field == "" {
		return fmt.Sprintf("services[%d]", i)
	}
	return fmt.Sprintf("services[%d].%s", i, field)
}
