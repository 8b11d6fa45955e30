package enrich

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/testdata"
)

func TestClaimDefaults(t *testing.T) {
	c := testdata.SingleTripClaim()
	c.Info.To = ""
	c.Info.PlaceOfService = ""
	c.Info.FrequencyCode = ""

	Claim(c)

	assert.Equal(t, c.Info.From, c.Info.To)
	assert.Equal(t, "41", c.Info.PlaceOfService)
	assert.Equal(t, "1", c.Info.FrequencyCode)
}

func TestAdjustmentTypeTranslation(t *testing.T) {
	tests := []struct {
		name           string
		frequencyCode  string
		adjustmentType string
		want           string
	}{
		{"no legacy field defaults to original", "", "", "1"},
		{"legacy replacement", "", "replacement", "7"},
		{"legacy void", "", "void", "8"},
		{"explicit frequency wins over legacy", "6", "void", "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testdata.SingleTripClaim()
			c.Info.FrequencyCode = tt.frequencyCode
			c.Info.AdjustmentType = tt.adjustmentType
			Claim(c)
			assert.Equal(t, tt.want, c.Info.FrequencyCode)
		})
	}
}

func TestServiceCascade(t *testing.T) {
	c := testdata.SingleTripClaim()
	c.Services[0].DOS = ""
	c.Services[0].PlaceOfService = ""
	c.Services[0].Units = decimal.Zero
	c.Services[0].PaymentStatus = ""
	c.Services[0].TripNumber = 0
	c.Services[0].Pickup = nil
	c.Services[0].Dropoff = nil

	Claim(c)

	s := c.Services[0]
	assert.Equal(t, c.Info.From, s.DOS)
	assert.Equal(t, c.Info.PlaceOfService, s.PlaceOfService)
	assert.True(t, s.Units.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, c.Info.PaymentStatus, s.PaymentStatus)
	assert.Equal(t, c.Info.Ambulance.TripNumber, s.TripNumber)
	assert.Same(t, c.Info.Ambulance.Pickup, s.Pickup)
	assert.Same(t, c.Info.Ambulance.Dropoff, s.Dropoff)
}

func TestServiceLevelValuesWin(t *testing.T) {
	c := testdata.SingleTripClaim()
	own := &claim.Location{Line1: "77 OAK AVE", City: "DAYTON", State: "OH", Zip: "45402"}
	c.Services[0].Pickup = own
	c.Services[0].DOS = "2026-01-02"

	Claim(c)

	assert.Same(t, own, c.Services[0].Pickup)
	assert.Equal(t, "2026-01-02", c.Services[0].DOS)
}

func TestRenderingFallback(t *testing.T) {
	c := testdata.SingleTripClaim()
	require.Nil(t, c.RenderingProvider)

	Claim(c)

	require.NotNil(t, c.RenderingProvider)
	assert.Equal(t, c.BillingProvider.NPI, c.RenderingProvider.NPI)
	assert.Equal(t, c.BillingProvider.Name, c.RenderingProvider.Name)

	// An identified renderer is left alone.
	c2 := testdata.SingleTripClaim()
	c2.RenderingProvider = &claim.Provider{NPI: "9999999999", Name: "OTHER"}
	Claim(c2)
	assert.Equal(t, "9999999999", c2.RenderingProvider.NPI)
}

func TestIdempotence(t *testing.T) {
	once := testdata.SingleTripClaim()
	once.Info.To = ""
	once.Info.PlaceOfService = ""
	Claim(once)

	twice := testdata.SingleTripClaim()
	twice.Info.To = ""
	twice.Info.PlaceOfService = ""
	Claim(twice)
	Claim(twice)

	decimals := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(once, twice, decimals); diff != "" {
		t.Errorf("enrichment is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestNeverInvents(t *testing.T) {
	c := testdata.SingleTripClaim()
	c.Info.MemberGroup = claim.MemberGroup{}
	c.Info.PaymentStatus = ""
	c.Info.SubmissionChannel = ""

	Claim(c)

	assert.Empty(t, c.Info.MemberGroup.GroupID)
	assert.Empty(t, c.Info.PaymentStatus)
	assert.Empty(t, c.Info.SubmissionChannel)
	for _, s := range c.Services {
		assert.Empty(t, s.PaymentStatus, "line status must not be invented when the claim has none")
	}
}

func TestNilClaim(t *testing.T) {
	assert.NotPanics(t, func() { Claim(nil) })
}
