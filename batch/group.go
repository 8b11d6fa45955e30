package batch

import (
	"fmt"
	"strings"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/report"
)

// Issue codes produced by grouping and aggregation.
const (
	CodeDuplicate    = "BATCH_010"
	CodeExcluded     = "BATCH_020"
	CodeDisagreement = "BATCH_030"
	CodeWriterFailed = "BATCH_040"
	CodeEmptyBatch   = "BATCH_050"
)

// StageBatch names the batch report.
const StageBatch = "batch"

// claimNumberPrefix seeds generated claim numbers:
// KZN-<ccyymmdd>-<seq>.
const claimNumberPrefix = "KZN"

// Grouped is one claim produced by grouping, with the trips that formed
// it.
type Grouped struct {
	Claim *claim.Claim
	Trips []*claim.Trip
	// Excluded is set when aggregation found a disagreement; the claim
	// is reported but not emitted.
	Excluded bool
}

// Group combines trips into claims by grouping key, stable by arrival
// order. Aggregation disagreements are reported against the generated
// claim number and mark the group excluded.
func Group(trips []*claim.Trip, submitter claim.Submitter, receiver claim.Receiver, rep *report.Report) []*Grouped {
	order := make([]claim.GroupKey, 0, len(trips))
	byKey := make(map[claim.GroupKey][]*claim.Trip, len(trips))

	for _, t := range trips {
		key := t.Key()
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], t)
	}

	grouped := make([]*Grouped, 0, len(order))
	for i, key := range order {
		g := buildClaim(byKey[key], submitter, receiver, i+1, rep)
		grouped = append(grouped, g)
	}
	return grouped
}

// buildClaim combines one group of trips into a claim record.
func buildClaim(trips []*claim.Trip, submitter claim.Submitter, receiver claim.Receiver, seq int, rep *report.Report) *Grouped {
	first := trips[0]
	number := claimNumber(first.DOS, seq)

	c := &claim.Claim{
		Submitter:       submitter,
		Receiver:        receiver,
		BillingProvider: first.BillingProvider,
		Subscriber:      first.Subscriber,
	}
	if first.RenderingProvider != nil {
		rendering := *first.RenderingProvider
		c.RenderingProvider = &rendering
	}
	if first.SupervisingProvider != nil {
		supervising := *first.SupervisingProvider
		c.SupervisingProvider = &supervising
	}

	c.Info = claim.Info{
		Number:              number,
		From:                first.DOS,
		To:                  first.DOS,
		PaymentStatus:       first.PaymentStatus,
		SubmissionChannel:   aggregateChannel(trips),
		NetworkIndicator:    first.NetworkIndicator,
		MemberGroup:         first.MemberGroup,
		FrequencyCode:       first.FrequencyCode,
		OriginalClaimNumber: first.OriginalClaimNumber,
	}

	if first.TransportCode != "" || first.TransportReason != "" || first.TripNumber > 0 {
		c.Info.Ambulance = &claim.Ambulance{
			WeightUnit:      first.WeightUnit,
			PatientWeight:   first.PatientWeight,
			TransportCode:   first.TransportCode,
			TransportReason: first.TransportReason,
			TripNumber:      first.TripNumber,
			SpecialNeeds:    first.SpecialNeeds,
		}
	}

	excluded := false
	for _, t := range trips {
		if t.MemberGroup != first.MemberGroup {
			rep.Error(CodeDisagreement, number, "member group differs across trips in group")
			excluded = true
		}
		if t.PaymentStatus != first.PaymentStatus {
			rep.Error(CodeDisagreement, number, "payment status differs across trips in group")
			excluded = true
		}
		if t.NetworkIndicator != first.NetworkIndicator {
			rep.Error(CodeDisagreement, number, "network indicator differs across trips in group")
			excluded = true
		}

		c.Services = append(c.Services, tripServices(t)...)
	}

	c.Info.TotalCharge = c.ServiceChargeSum()

	return &Grouped{Claim: c, Trips: trips, Excluded: excluded}
}

// tripServices expands one trip into its transport line and, when
// present, the mileage line that must immediately follow it.
func tripServices(t *claim.Trip) []*claim.Service {
	transport := &claim.Service{
		HCPCS:          t.HCPCS,
		Modifiers:      t.Modifiers,
		Charge:         t.Charge,
		Units:          t.Units,
		DOS:            t.DOS,
		PlaceOfService: t.PlaceOfService,
		Emergency:      t.Emergency,
		Pickup:         t.Pickup,
		Dropoff:        t.Dropoff,
		TripNumber:     t.TripNumber,
		PaymentStatus:  t.PaymentStatus,
		Adjudication:   t.Adjudication,
	}
	services := []*claim.Service{transport}

	if m := t.Mileage; m != nil {
		services = append(services, &claim.Service{
			HCPCS:         m.HCPCS,
			Charge:        m.Charge,
			Units:         m.Miles,
			DOS:           t.DOS,
			TripNumber:    t.TripNumber,
			PaymentStatus: t.PaymentStatus,
		})
	}
	return services
}

// aggregateChannel returns ELECTRONIC if any trip in the group reports
// ELECTRONIC, otherwise PAPER.
func aggregateChannel(trips []*claim.Trip) string {
	for _, t := range trips {
		if t.SubmissionChannel == claim.ChannelElectronic {
			return claim.ChannelElectronic
		}
	}
	return claim.ChannelPaper
}

// claimNumber generates the canonical claim number for a grouped claim:
// KZN-<ccyymmdd>-<seq>.
func claimNumber(dos string, seq int) string {
	return fmt.Sprintf("%s-%s-%03d", claimNumberPrefix, strings.ReplaceAll(dos, "-", ""), seq)
}
