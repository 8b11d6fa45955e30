package encode

import (
	"strconv"
	"strings"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/internal/edifmt"
)

// serviceLoop emits loop 2400 for one service line, in strict order:
// LX, SV1, the service date, the line K3 (always before any 2420 loop),
// legacy notes, the supervising loop, legacy location loops, and line
// adjudication.
func (b *builder) serviceLoop(c *claim.Claim, s *claim.Service, n int) {
	b.emit("LX", strconv.Itoa(n))
	b.sv1(s)

	b.emit("DTP", "472", "D8", edifmt.Date(s.DOS))

	// The payer requires the line payment status ahead of any 2420
	// provider loop.
	b.emit("K3", "PYMS-"+s.PaymentStatus)

	if !b.cfg.cr1Locations {
		b.serviceNTE(s)
	}

	if c.SupervisingProvider != nil && c.SupervisingProvider.Name != "" {
		b.supervisingLoop(c.SupervisingProvider, s.TripNumber)
	}

	// Only line-distinct locations get 2420G/H loops; locations cascaded
	// down from the claim level already travel in loops 2310E/F.
	if !b.cfg.cr1Locations {
		amb := c.Info.Ambulance
		if amb == nil || s.Pickup != amb.Pickup {
			b.locationLoop(entityPickup, s.Pickup)
		}
		if amb == nil || s.Dropoff != amb.Dropoff {
			b.locationLoop(entityDropoff, s.Dropoff)
		}
	}

	b.lineAdjudication(s)
}

// sv1 emits the professional service segment. The procedure composite is
// HC qualified with up to four modifiers; the emergency indicator rides
// in the eleventh element, never the tenth.
func (b *builder) sv1(s *claim.Service) {
	parts := append([]string{"HC", s.HCPCS}, s.Modifiers...)
	procedure := b.composite(parts...)

	elements := []string{
		procedure,
		edifmt.Amount(s.Charge),
		"UN",
		edifmt.Quantity(s.Units),
		"", "",
		s.PlaceOfService,
	}
	if s.Emergency {
		elements = append(elements, "", "", "", "Y")
	}
	b.emit("SV1", elements...)
}

// serviceNTE emits the legacy trip detail note: trip number plus pickup
// and dropoff arrival/departure times.
func (b *builder) serviceNTE(s *claim.Service) {
	parts := []string{}
	if s.TripNumber > 0 {
		parts = append(parts, "TRIPNUM-"+edifmt.TripNumber(s.TripNumber))
	}
	if s.Pickup != nil {
		if s.Pickup.ArrivalTime != "" {
			parts = append(parts, "PUARR-"+s.Pickup.ArrivalTime)
		}
		if s.Pickup.DepartureTime != "" {
			parts = append(parts, "PUDEP-"+s.Pickup.DepartureTime)
		}
	}
	if s.Dropoff != nil {
		if s.Dropoff.ArrivalTime != "" {
			parts = append(parts, "DOARR-"+s.Dropoff.ArrivalTime)
		}
		if s.Dropoff.DepartureTime != "" {
			parts = append(parts, "DODEP-"+s.Dropoff.DepartureTime)
		}
	}
	if len(parts) > 0 {
		b.emit("NTE", "ADD", strings.Join(parts, ";"))
	}
}

// lineAdjudication emits loop 2430 when prior-payer adjudication is
// present, and guarantees a CAS on every denied line: the caller's
// explicit line adjustments win, otherwise the full line charge is
// written off as CO-45.
func (b *builder) lineAdjudication(s *claim.Service) {
	adj := s.Adjudication
	if adj == nil {
		if s.Denied() {
			b.emit("CAS", "CO", "45", edifmt.Amount(s.Charge))
		}
		return
	}

	parts := append([]string{"HC", s.HCPCS}, s.Modifiers...)
	procedure := b.composite(parts...)

	paidUnits := adj.PaidUnits
	if paidUnits.IsZero() {
		paidUnits = s.Units
	}
	b.emit("SVD", adj.PayerID, edifmt.Amount(adj.PaidAmount), procedure, "", edifmt.Quantity(paidUnits))

	if len(adj.LineCAS) == 0 {
		if s.Denied() {
			b.emit("CAS", "CO", "45", edifmt.Amount(s.Charge))
		}
	} else {
		for _, lc := range adj.LineCAS {
			b.cas(lc)
		}
	}

	if adj.LineDates.Paid != "" {
		b.emit("DTP", "573", "D8", edifmt.Date(adj.LineDates.Paid))
	}
}
