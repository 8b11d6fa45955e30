package encode

import (
	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/internal/edifmt"
)

// NM1 entity identifier codes used by the 837P subset.
const (
	entitySubmitter   = "41"
	entityReceiver    = "40"
	entityBilling     = "85"
	entityPayToPlan   = "PE"
	entitySubscriber  = "IL"
	entityPayer       = "PR"
	entityRendering   = "82"
	entityReferring   = "DN"
	entityFacility    = "77"
	entitySupervising = "DQ"
	entityPickup      = "PW"
	entityDropoff     = "45"
)

// submitterLoops emits loops 1000A and 1000B.
func (b *builder) submitterLoops(c *claim.Claim, payerName, payerID string) {
	b.emit("NM1", entitySubmitter, "2", c.Submitter.Name, "", "", "", "", "46", c.Submitter.ID)
	if c.Submitter.Contact != "" || c.Submitter.Phone != "" {
		contact := c.Submitter.Contact
		if contact == "" {
			contact = c.Submitter.Name
		}
		if c.Submitter.Phone != "" {
			b.emit("PER", "IC", contact, "TE", c.Submitter.Phone)
		} else {
			b.emit("PER", "IC", contact)
		}
	}
	b.emit("NM1", entityReceiver, "2", payerName, "", "", "", "", "46", payerID)
}

// billingHierarchy emits loop 2000A with 2010AA: the billing provider
// hierarchical level and its identification.
func (b *builder) billingHierarchy(c *claim.Claim) {
	b.emit("HL", "1", "", "20", "1")
	if c.BillingProvider.Taxonomy != "" {
		b.emit("PRV", "BI", "PXC", c.BillingProvider.Taxonomy)
	}
	b.emit("NM1", entityBilling, "2", c.BillingProvider.Name, "", "", "", "", "XX", c.BillingProvider.NPI)
	b.address(c.BillingProvider.Address)
	if c.BillingProvider.TaxID != "" {
		b.emit("REF", "EI", c.BillingProvider.TaxID)
	}
	if p := c.PayToPlan; p != nil && p.Name != "" {
		b.emit("NM1", entityPayToPlan, "2", p.Name, "", "", "", "", "PI", p.ID)
		b.address(p.Address)
	}
}

// subscriberHierarchy emits loop 2000B with 2010BA and 2010BB: the
// subscriber hierarchical level, the member identification, and the
// payer identification.
func (b *builder) subscriberHierarchy(c *claim.Claim, payerName, payerID string) {
	b.emit("HL", "2", "1", "22", "0")
	b.emit("SBR", b.subscriberSequence(c), "18", c.Info.MemberGroup.GroupID, "", "", "", "", "", "CI")

	b.emit("NM1", entitySubscriber, "1", c.Subscriber.Name.Last, c.Subscriber.Name.First,
		c.Subscriber.Name.Middle, "", "", "MI", c.Subscriber.MemberID)
	if c.Subscriber.Address != nil {
		b.address(*c.Subscriber.Address)
	}
	if c.Subscriber.DOB != "" {
		b.emit("DMG", "D8", edifmt.Date(c.Subscriber.DOB), c.Subscriber.Sex)
	}

	b.emit("NM1", entityPayer, "2", payerName, "", "", "", "", "PI", payerID)
	b.emit("REF", "2U", payerID)
}

// subscriberSequence returns SBR01: P unless another payer claims the
// primary position, in which case this payer is secondary.
func (b *builder) subscriberSequence(c *claim.Claim) string {
	for _, op := range c.OtherPayers {
		if op.SequenceCode == "P" {
			return "S"
		}
	}
	return "P"
}

// referringLoop emits loop 2310A.
func (b *builder) referringLoop(p *claim.Person) {
	role := p.Role
	if role == "" {
		role = entityReferring
	}
	if p.NPI != "" {
		b.emit("NM1", role, "1", p.Name, "", "", "", "", "XX", p.NPI)
	} else {
		b.emit("NM1", role, "1", p.Name)
	}
}

// renderingLoop emits loop 2310B: the rendering provider with taxonomy
// and a secondary identification.
func (b *builder) renderingLoop(p *claim.Provider) {
	b.emit("NM1", entityRendering, "2", p.Name, "", "", "", "", "XX", p.NPI)
	if p.Taxonomy != "" {
		b.emit("PRV", "PE", "PXC", p.Taxonomy)
	}
	if p.TaxID != "" {
		b.emit("REF", "G2", p.TaxID)
	} else {
		b.emit("REF", "0B", p.NPI)
	}
}

// facilityLoop emits loop 2310C.
func (b *builder) facilityLoop(f *claim.Facility) {
	if f.NPI != "" {
		b.emit("NM1", entityFacility, "2", f.Name, "", "", "", "", "XX", f.NPI)
	} else {
		b.emit("NM1", entityFacility, "2", f.Name)
	}
	b.address(f.Address)
}

// supervisingLoop emits loop 2310D (or 2420D at service level): the
// supervising provider and the trip number reference.
func (b *builder) supervisingLoop(p *claim.Person, tripNumber int64) {
	if p.NPI != "" {
		b.emit("NM1", entitySupervising, "1", p.Name, "", "", "", "", "XX", p.NPI)
	} else {
		b.emit("NM1", entitySupervising, "1", p.Name)
	}
	if tripNumber > 0 {
		b.emit("REF", "LU", edifmt.TripNumber(tripNumber))
	}
}

// locationLoop emits a pickup (2310E/2420G) or dropoff (2310F/2420H)
// loop in legacy mode: an NM1 with the ambulance location entity code
// followed by the address.
func (b *builder) locationLoop(entity string, loc *claim.Location) {
	if loc.Empty() {
		return
	}
	b.emit("NM1", entity, "2")
	if loc.Line2 != "" {
		b.emit("N3", loc.Line1, loc.Line2)
	} else {
		b.emit("N3", loc.Line1)
	}
	b.emit("N4", loc.City, loc.State, loc.Zip)
}

// address emits the N3/N4 pair for a postal address.
func (b *builder) address(a claim.Address) {
	if a.Line2 != "" {
		b.emit("N3", a.Line1, a.Line2)
	} else {
		b.emit("N3", a.Line1)
	}
	b.emit("N4", a.City, a.State, a.Zip)
}
