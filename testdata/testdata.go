// Package testdata provides canonical claim, trip, and configuration
// fixtures shared by tests across the module. Fixtures return fresh
// values on every call so tests can mutate them freely.
package testdata

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dshills/go837/claim"
)

// FixedTime is the deterministic clock used for byte-stable envelope
// output in tests.
var FixedTime = time.Date(2026, 2, 15, 8, 30, 0, 0, time.UTC)

// Clock returns FixedTime.
func Clock() time.Time {
	return FixedTime
}

// Submitter returns the standard test submitter.
func Submitter() claim.Submitter {
	return claim.Submitter{
		Name:    "KAIZEN TRANSPORT BILLING",
		ID:      "KZN001",
		Contact: "EDI SUPPORT",
		Phone:   "8005551234",
	}
}

// Receiver returns the standard test payer.
func Receiver() claim.Receiver {
	return claim.Receiver{
		PayerName: "UNITEDHEALTHCARE COMMUNITY PLAN",
		PayerID:   "87726",
	}
}

// MemberGroup returns a complete member group block.
func MemberGroup() claim.MemberGroup {
	return claim.MemberGroup{
		GroupID:    "GRP100",
		SubGroupID: "SG01",
		ClassID:    "CL1",
		PlanID:     "PLN7",
		ProductID:  "PRD2",
	}
}

// Provider returns a billing-grade provider with the given NPI and name.
func Provider(npi, name string) claim.Provider {
	return claim.Provider{
		NPI:      npi,
		Name:     name,
		TaxID:    "123456789",
		Taxonomy: "343900000X",
		Address: claim.Address{
			Line1: "100 FLEET WAY",
			City:  "COLUMBUS",
			State: "OH",
			Zip:   "43215",
		},
	}
}

// Subscriber returns the standard test member.
func Subscriber() claim.Subscriber {
	return claim.Subscriber{
		MemberID: "JOHN123456",
		Name:     claim.Name{First: "JOHN", Last: "DOE"},
		DOB:      "1961-04-09",
		Sex:      "M",
		Address: &claim.Address{
			Line1: "12 ELM ST",
			City:  "COLUMBUS",
			State: "OH",
			Zip:   "43210",
		},
	}
}

// Pickup returns a pickup location.
func Pickup() *claim.Location {
	return &claim.Location{
		Line1:         "12 ELM ST",
		City:          "COLUMBUS",
		State:         "OH",
		Zip:           "43210",
		LocationCode:  "RH",
		ArrivalTime:   "0815",
		DepartureTime: "0825",
	}
}

// Dropoff returns a dropoff location.
func Dropoff() *claim.Location {
	return &claim.Location{
		Line1:        "900 DIALYSIS DR",
		City:         "COLUMBUS",
		State:        "OH",
		Zip:          "43220",
		LocationCode: "RJ",
		ArrivalTime:  "0850",
	}
}

// SingleTripClaim returns the seed scenario claim: one wheelchair van
// leg with its mileage line, one billing/rendering provider.
func SingleTripClaim() *claim.Claim {
	return &claim.Claim{
		Submitter:       Submitter(),
		Receiver:        Receiver(),
		BillingProvider: Provider("1111111111", "CITYWIDE MEDICAL TRANSPORT"),
		Subscriber:      Subscriber(),
		Info: claim.Info{
			Number:            "KZN-20260101-001",
			TotalCharge:       decimal.RequireFromString("62.50"),
			From:              "2026-01-01",
			PaymentStatus:     claim.PaymentPaid,
			SubmissionChannel: claim.ChannelElectronic,
			NetworkIndicator:  claim.NetworkIn,
			MemberGroup:       MemberGroup(),
			Ambulance: &claim.Ambulance{
				TransportCode:   "A",
				TransportReason: "A",
				TripNumber:      4211,
				SpecialNeeds:    "N",
				Pickup:          Pickup(),
				Dropoff:         Dropoff(),
			},
		},
		Services: []*claim.Service{
			{
				HCPCS:     "A0130",
				Modifiers: []string{"RJ"},
				Charge:    decimal.RequireFromString("60.00"),
				Units:     decimal.NewFromInt(1),
			},
			{
				HCPCS:  "A0425",
				Charge: decimal.RequireFromString("2.50"),
				Units:  decimal.NewFromInt(8),
			},
		},
	}
}

// ReplacementClaim returns the seed replacement scenario: frequency 7
// referencing the original claim number.
func ReplacementClaim() *claim.Claim {
	c := SingleTripClaim()
	c.Info.Number = "ABC-42"
	c.Info.FrequencyCode = "7"
	c.Info.OriginalClaimNumber = "ABC-42"
	c.Info.TotalCharge = decimal.RequireFromString("150.00")
	c.Services = []*claim.Service{
		{
			HCPCS:  "A0130",
			Charge: decimal.RequireFromString("150.00"),
			Units:  decimal.NewFromInt(1),
		},
	}
	return c
}

// VoidClaim returns the seed void scenario: frequency 8 with zero
// charges throughout.
func VoidClaim() *claim.Claim {
	c := ReplacementClaim()
	c.Info.FrequencyCode = "8"
	c.Info.TotalCharge = decimal.Zero
	c.Services[0].Charge = decimal.Zero
	return c
}

// DeniedClaim returns the seed denial scenario: claim and line payment
// status D with no explicit adjustments.
func DeniedClaim() *claim.Claim {
	c := SingleTripClaim()
	c.Info.PaymentStatus = claim.PaymentDenied
	return c
}

// MileageFirstClaim returns the invalid seed scenario: the service list
// begins with a mileage line.
func MileageFirstClaim() *claim.Claim {
	c := SingleTripClaim()
	c.Services = []*claim.Service{c.Services[1], c.Services[0]}
	return c
}

// Trip returns one electronic wheelchair van trip for the given
// provider.
func Trip(npi, providerName string, charge string) *claim.Trip {
	return &claim.Trip{
		TripNumber:        9001,
		BillingProvider:   Provider(npi, providerName),
		Subscriber:        Subscriber(),
		MemberGroup:       MemberGroup(),
		DOS:               "2026-01-01",
		PaymentStatus:     claim.PaymentPaid,
		SubmissionChannel: claim.ChannelElectronic,
		NetworkIndicator:  claim.NetworkIn,
		HCPCS:             "A0130",
		Charge:            decimal.RequireFromString(charge),
		Units:             decimal.NewFromInt(1),
		TransportCode:     "A",
		TransportReason:   "A",
		Pickup:            Pickup(),
		Dropoff:           Dropoff(),
	}
}

// ThreeProviderTrips returns the seed batch scenario: three trips for
// the same member and date via three distinct providers.
func ThreeProviderTrips() []*claim.Trip {
	return []*claim.Trip{
		Trip("2222222222", "CAB TRANSIT LLC", "180.00"),
		Trip("4444444444", "ABC MEDICAL RIDES", "225.00"),
		Trip("6666666666", "DEF MOBILITY INC", "220.00"),
	}
}
