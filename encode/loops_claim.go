package encode

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/codes"
	"github.com/dshills/go837/internal/edifmt"
)

// claimLoop emits loop 2300 for one claim, in the strict segment order
// the companion guide requires.
func (b *builder) claimLoop(c *claim.Claim) {
	freq := c.Info.FrequencyCode
	if freq == "" {
		freq = "1"
	}

	clm05 := b.composite(c.Info.PlaceOfService, "B", freq)
	b.emit("CLM", c.Info.Number, edifmt.Amount(c.Info.TotalCharge), "", "", clm05, "Y", "A", "Y", "Y")

	qual, value := edifmt.DateRange(c.Info.From, c.Info.To)
	b.emit("DTP", "472", qual, value)

	b.cr1(c)

	if c.Info.TrackingNumber != "" {
		b.emit("REF", "D9", c.Info.TrackingNumber)
	}
	if codes.ReplacementFrequency(freq) && c.Info.OriginalClaimNumber != "" {
		b.emit("REF", "F8", c.Info.OriginalClaimNumber)
	}
	if c.Info.PatientAccount != "" {
		b.emit("REF", "EA", c.Info.PatientAccount)
	}

	b.claimK3(c)
	b.claimNTE(c)
	b.claimAdjudication(c)
	b.cobAmounts(c)
	b.claimDates(c)

	if c.ReferringProvider != nil && c.ReferringProvider.Name != "" {
		b.referringLoop(c.ReferringProvider)
	}
	if c.RenderingProvider != nil && c.RenderingProvider.NPI != "" {
		b.renderingLoop(c.RenderingProvider)
	}
	if c.ServiceFacility != nil && c.ServiceFacility.Name != "" {
		b.facilityLoop(c.ServiceFacility)
	}
	if c.SupervisingProvider != nil && c.SupervisingProvider.Name != "" {
		trip := int64(0)
		if c.Info.Ambulance != nil {
			trip = c.Info.Ambulance.TripNumber
		}
		b.supervisingLoop(c.SupervisingProvider, trip)
	}

	// Claim-level pickup/dropoff loops travel only in legacy mode; the
	// CR109/CR110 descriptors replace them.
	if !b.cfg.cr1Locations && c.Info.Ambulance != nil {
		b.locationLoop(entityPickup, c.Info.Ambulance.Pickup)
		b.locationLoop(entityDropoff, c.Info.Ambulance.Dropoff)
	}

	for _, op := range c.OtherPayers {
		b.otherPayerLoop(c, op)
	}
}

// cr1 emits the ambulance transport segment. In CR109/CR110 mode the
// ninth and tenth elements carry the encoded pickup and dropoff
// descriptors; in legacy mode the segment stops at element eight.
func (b *builder) cr1(c *claim.Claim) {
	amb := c.Info.Ambulance
	if amb == nil {
		return
	}

	weightUnit := amb.WeightUnit
	if weightUnit == "" && !amb.PatientWeight.IsZero() {
		weightUnit = "LB"
	}
	weight := ""
	if !amb.PatientWeight.IsZero() {
		weight = edifmt.Quantity(amb.PatientWeight)
	}

	milesQual, miles := "", ""
	if total := totalMileage(c); !total.IsZero() {
		milesQual, miles = "DH", edifmt.Quantity(total)
	}

	if b.cfg.cr1Locations {
		b.emit("CR1", weightUnit, weight, amb.TransportCode, amb.TransportReason,
			milesQual, miles, "", "",
			locationDescriptor(amb.Pickup), locationDescriptor(amb.Dropoff))
		return
	}
	b.emit("CR1", weightUnit, weight, amb.TransportCode, amb.TransportReason,
		milesQual, miles)
}

// totalMileage sums the units of the claim's mileage lines for CR106.
func totalMileage(c *claim.Claim) decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.Services {
		if codes.Mileage(s.HCPCS) {
			total = total.Add(s.Units)
		}
	}
	return total
}

// locationDescriptor encodes a pickup or dropoff location into the
// semicolon-separated descriptor carried in CR109/CR110:
// line1;city;state;zip with optional location code and ARR/DEP times.
func locationDescriptor(loc *claim.Location) string {
	if loc.Empty() {
		return ""
	}
	parts := []string{loc.Line1, loc.City, loc.State, loc.Zip}
	if loc.LocationCode != "" {
		parts = append(parts, loc.LocationCode)
	}
	if loc.ArrivalTime != "" {
		parts = append(parts, "ARR-"+loc.ArrivalTime)
	}
	if loc.DepartureTime != "" {
		parts = append(parts, "DEP-"+loc.DepartureTime)
	}
	return strings.Join(parts, ";")
}

// claimK3 emits the claim-level K3 segments in their fixed order:
// payment status, submission metadata, network indicator, transport
// channel, adjudication dates, and the rendering provider address block.
func (b *builder) claimK3(c *claim.Claim) {
	b.emit("K3", "PYMS-"+c.Info.PaymentStatus)

	if b.cfg.submissionID != "" || b.cfg.submitterIP != "" || b.cfg.submitterUser != "" {
		b.emit("K3", joinTagged(";",
			tagged("SUB-", b.cfg.submissionID),
			tagged("IPAD-", b.cfg.submitterIP),
			tagged("USER-", b.cfg.submitterUser)))
	}

	b.emit("K3", "SNWK-"+c.Info.NetworkIndicator)
	b.emit("K3", "TRPN-ASPUFE"+c.Info.SubmissionChannel)

	if c.Info.DateReceived != "" || c.Info.DateAdjudicated != "" || c.Info.DatePaid != "" {
		b.emit("K3", joinTagged(";",
			taggedDate("DREC-", c.Info.DateReceived),
			taggedDate("DADJ-", c.Info.DateAdjudicated),
			taggedDate("PAIDDT-", c.Info.DatePaid)))
	}

	if r := c.RenderingProvider; r != nil && r.Address.Line1 != "" {
		b.emit("K3", joinTagged(";",
			tagged("AL1-", r.Address.Line1),
			tagged("AL2-", r.Address.Line2)))
		b.emit("K3", joinTagged(";",
			tagged("CY-", r.Address.City),
			tagged("ST-", r.Address.State),
			tagged("ZIP-", r.Address.Zip)))
	}
}

// claimNTE emits the member group note, always present, and the legacy
// trip descriptor note when CR109/CR110 mode is off.
func (b *builder) claimNTE(c *claim.Claim) {
	mg := c.Info.MemberGroup
	b.emit("NTE", "ADD", joinTagged(";",
		"GRP-"+mg.GroupID,
		"SGR-"+mg.SubGroupID,
		"CLS-"+mg.ClassID,
		"PLN-"+mg.PlanID,
		"PRD-"+mg.ProductID))

	if b.cfg.cr1Locations {
		return
	}
	amb := c.Info.Ambulance
	if amb == nil {
		return
	}
	parts := []string{}
	if amb.TripNumber > 0 {
		parts = append(parts, "TRIPNUM-"+edifmt.TripNumber(amb.TripNumber))
	}
	if amb.SpecialNeeds != "" {
		parts = append(parts, "SPECNEED-"+amb.SpecialNeeds)
	}
	if amb.TransportCode != "" {
		parts = append(parts, "TRANSCD-"+amb.TransportCode)
	}
	if amb.TransportReason != "" {
		parts = append(parts, "TRANSRSN-"+amb.TransportReason)
	}
	if len(parts) > 0 {
		b.emit("NTE", "ADD", strings.Join(parts, ";"))
	}
}

// claimAdjudication emits the denial adjustments: the caller's explicit
// CAS segments when supplied, otherwise the full-charge CO-45 fallback,
// followed by the MA130 remark.
func (b *builder) claimAdjudication(c *claim.Claim) {
	if !c.Denied() {
		return
	}
	if len(c.Info.Adjustments) == 0 {
		b.emit("CAS", "CO", "45", edifmt.Amount(c.Info.TotalCharge))
	} else {
		for _, adj := range c.Info.Adjustments {
			b.cas(adj)
		}
	}
	b.emit("MOA", "", "MA130")
}

// cas emits one claim adjustment segment.
func (b *builder) cas(adj claim.CAS) {
	if adj.Quantity.IsZero() {
		b.emit("CAS", adj.Group, adj.Reason, edifmt.Amount(adj.Amount))
		return
	}
	b.emit("CAS", adj.Group, adj.Reason, edifmt.Amount(adj.Amount), edifmt.Quantity(adj.Quantity))
}

// cobAmounts emits the coordination-of-benefits amount segments when
// other payers are present, summed across payers.
func (b *builder) cobAmounts(c *claim.Claim) {
	if len(c.OtherPayers) == 0 {
		return
	}
	var remaining, allowed, paid, patient decimal.Decimal
	for _, op := range c.OtherPayers {
		remaining = remaining.Add(op.RemainingLiability)
		allowed = allowed.Add(op.AllowedAmount)
		paid = paid.Add(op.PaidAmount)
		patient = patient.Add(op.PatientResponsibility)
	}
	b.emit("AMT", "EAF", edifmt.Amount(remaining))
	b.emit("AMT", "B6", edifmt.Amount(allowed))
	b.emit("AMT", "AU", edifmt.Amount(paid))
	b.emit("AMT", "F2", edifmt.Amount(patient))
}

// claimDates emits the receipt, adjudication, and payment date segments.
func (b *builder) claimDates(c *claim.Claim) {
	if c.Info.DateReceived != "" {
		b.emit("DTP", "050", "D8", edifmt.Date(c.Info.DateReceived))
	}
	if c.Info.DateAdjudicated != "" {
		b.emit("DTP", "036", "D8", edifmt.Date(c.Info.DateAdjudicated))
	}
	if c.Info.DatePaid != "" {
		b.emit("DTP", "573", "D8", edifmt.Date(c.Info.DatePaid))
	}
}

// otherPayerLoop emits loops 2320 and 2330 for one other payer.
func (b *builder) otherPayerLoop(c *claim.Claim, op *claim.OtherPayer) {
	seq := op.SequenceCode
	if seq == "" {
		seq = "S"
	}
	b.emit("SBR", seq, "18", "", "", "", "", "", "", "CI")
	for _, adj := range op.Adjustments {
		b.cas(adj)
	}
	b.emit("AMT", "D", edifmt.Amount(op.PaidAmount))
	b.emit("OI", "", "", "Y", "", "", "Y")
	b.emit("NM1", entitySubscriber, "1", c.Subscriber.Name.Last, c.Subscriber.Name.First,
		"", "", "", "MI", c.Subscriber.MemberID)
	b.emit("NM1", entityPayer, "2", op.PayerName, "", "", "", "", "PI", op.PayerID)
}

// tagged prefixes a value, returning empty for empty values so
// joinTagged drops it.
func tagged(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}

// taggedDate prefixes a D8-formatted date.
func taggedDate(prefix, iso string) string {
	if iso == "" {
		return ""
	}
	return prefix + edifmt.Date(iso)
}

// joinTagged joins the non-empty parts with the separator.
func joinTagged(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
