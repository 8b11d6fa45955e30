package claim

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceChargeSum(t *testing.T) {
	c := &Claim{Services: []*Service{
		{Charge: decimal.RequireFromString("60.00")},
		{Charge: decimal.RequireFromString("2.50")},
	}}
	assert.True(t, c.ServiceChargeSum().Equal(decimal.RequireFromString("62.50")))
}

func TestDupKey(t *testing.T) {
	a := &Claim{Info: Info{Number: "ABC-42", FrequencyCode: "7", OriginalClaimNumber: "ABC-42"}}
	b := &Claim{Info: Info{Number: "ABC-42", FrequencyCode: "7", OriginalClaimNumber: "ABC-42"}}
	c := &Claim{Info: Info{Number: "ABC-42", FrequencyCode: "8", OriginalClaimNumber: "ABC-42"}}

	assert.Equal(t, a.DupKey(), b.DupKey())
	assert.NotEqual(t, a.DupKey(), c.DupKey(), "frequency code is part of the triple")
}

func TestVoidAndDenied(t *testing.T) {
	assert.True(t, (&Claim{Info: Info{FrequencyCode: "8"}}).Void())
	assert.False(t, (&Claim{Info: Info{FrequencyCode: "7"}}).Void())
	assert.True(t, (&Claim{Info: Info{PaymentStatus: PaymentDenied}}).Denied())
	assert.True(t, (&Service{PaymentStatus: PaymentDenied}).Denied())
}

func TestLocationEmpty(t *testing.T) {
	var nilLoc *Location
	assert.True(t, nilLoc.Empty())
	assert.True(t, (&Location{ArrivalTime: "0815"}).Empty(), "times alone are not address data")
	assert.False(t, (&Location{Line1: "12 ELM ST"}).Empty())
}

func TestTripKey(t *testing.T) {
	trip := &Trip{
		BillingProvider: Provider{NPI: "1111111111"},
		Subscriber:      Subscriber{MemberID: "JOHN123456"},
		DOS:             "2026-01-01",
	}
	key := trip.Key()
	assert.Equal(t, "1111111111", key.RenderingNPI, "rendering falls back to billing NPI")

	trip.RenderingProvider = &Provider{NPI: "2222222222"}
	assert.Equal(t, "2222222222", trip.Key().RenderingNPI)
}

func TestDecodeClaim(t *testing.T) {
	doc := `{
		"submitter": {"name": "ACME BILLING", "id": "ACME1"},
		"receiver": {"payer_name": "UHC", "payer_id": "87726"},
		"billing_provider": {"npi": "1111111111", "name": "ACME TRANSPORT"},
		"subscriber": {"member_id": "JOHN123456", "name": {"first": "JOHN", "last": "DOE"}},
		"claim": {
			"clm_number": "KZN-20260101-001",
			"total_charge": "62.50",
			"from": "2026-01-01",
			"payment_status": "P",
			"submission_channel": "ELECTRONIC",
			"rendering_network_indicator": "I",
			"unknown_future_field": true
		},
		"services": [
			{"hcpcs": "A0130", "charge": "60.00"},
			{"hcpcs": "A0425", "charge": "2.50", "units": "8"}
		]
	}`

	c, err := DecodeClaim(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "KZN-20260101-001", c.Info.Number)
	assert.True(t, c.Info.TotalCharge.Equal(decimal.RequireFromString("62.50")))
	assert.Len(t, c.Services, 2)
	assert.True(t, c.Services[1].Units.Equal(decimal.NewFromInt(8)))
}

func TestDecodeClaimErrors(t *testing.T) {
	_, err := DecodeClaim(strings.NewReader(""))
	require.Error(t, err)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = DecodeClaim(strings.NewReader(`{"claim": [`))
	require.Error(t, err)
}

func TestDecodeTrips(t *testing.T) {
	doc := `[
		{"billing_provider": {"npi": "2222222222", "name": "CAB"},
		 "subscriber": {"member_id": "JOHN123456", "name": {"first": "JOHN", "last": "DOE"}},
		 "dos": "2026-01-01", "payment_status": "P",
		 "submission_channel": "ELECTRONIC", "rendering_network_indicator": "I",
		 "hcpcs": "A0130", "charge": "180.00"}
	]`
	trips, err := DecodeTrips(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "A0130", trips[0].HCPCS)

	_, err = DecodeTrips(strings.NewReader("[]"))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
