package pipeline

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/parse"
	"github.com/dshills/go837/testdata"
	"github.com/dshills/go837/validate"
)

func testConfig() Config {
	return Config{
		InterchangeSenderID:   "KZN001",
		InterchangeReceiverID: "87726",
		Submitter:             testdata.Submitter(),
		Receiver:              testdata.Receiver(),
		Clock:                 testdata.Clock,
	}
}

func TestBuildSingleClaim(t *testing.T) {
	res, err := Build(testdata.SingleTripClaim(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, res.EDI)

	assert.True(t, res.Valid())
	assert.True(t, res.Pre.Valid())
	assert.True(t, res.Compliance.Valid(), "issues: %v", res.Compliance.Issues())
	assert.True(t, res.Payer.Valid(), "issues: %v", res.Payer.Issues())

	merged := res.Reports()
	assert.True(t, merged.Valid())
}

func TestBuildBlockedByValidation(t *testing.T) {
	c := testdata.MileageFirstClaim()
	res, err := Build(c, testConfig())
	require.NoError(t, err)

	assert.Nil(t, res.EDI, "no bytes when pre-submission validation blocks the claim")
	assert.Nil(t, res.Compliance)
	assert.Nil(t, res.Payer)
	assert.False(t, res.Valid())

	var found bool
	for _, i := range res.Pre.Issues() {
		if i.Code == validate.CodeMileageFirst {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildReplacementAndVoid(t *testing.T) {
	for name, freq := range map[string]string{"replacement": "7", "void": "8"} {
		t.Run(name, func(t *testing.T) {
			c := testdata.ReplacementClaim()
			if freq == "8" {
				c = testdata.VoidClaim()
			}
			res, err := Build(c, testConfig())
			require.NoError(t, err)
			require.NotNil(t, res.EDI)
			assert.True(t, res.Valid(), "reports: %s", res.Reports().Table())
			assert.Contains(t, string(res.EDI), "REF*F8*ABC-42")
		})
	}
}

func TestBuildDeniedClaim(t *testing.T) {
	res, err := Build(testdata.DeniedClaim(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, res.EDI)
	assert.True(t, res.Valid(), "reports: %s", res.Reports().Table())
	assert.Contains(t, string(res.EDI), "CAS*CO*45*62.50")
	assert.Contains(t, string(res.EDI), "MOA**MA130")
}

func TestBuildBatchScenario(t *testing.T) {
	res, err := BuildBatch(testdata.ThreeProviderTrips(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, res.EDI)

	ic, err := parse.Parse(res.EDI)
	require.NoError(t, err)
	assert.Len(t, ic.Groups, 1)
	assert.Len(t, ic.Groups[0].Transactions, 3)
}

func TestBuildSingleTripScenario(t *testing.T) {
	// A one-trip batch: canonical claim number, two service lines, one
	// ST/SE pair, compliant output.
	trip := testdata.Trip("1111111111", "CITYWIDE MEDICAL TRANSPORT", "60.00")
	trip.HCPCS = "A0130"
	trip.Mileage = &claim.TripMileage{
		HCPCS:  "A0425",
		Charge: decimal.RequireFromString("2.50"),
		Miles:  decimal.NewFromInt(8),
	}

	res, err := BuildBatch([]*claim.Trip{trip}, testConfig())
	require.NoError(t, err)
	require.NotNil(t, res.EDI)
	assert.True(t, res.Compliance.Valid(), "issues: %v", res.Compliance.Issues())

	ic, err := parse.Parse(res.EDI)
	require.NoError(t, err)
	require.Len(t, ic.Groups[0].Transactions, 1)

	ts := ic.Groups[0].Transactions[0]
	var clm string
	lx := 0
	for _, s := range ts.Segments {
		switch s.Tag {
		case "CLM":
			clm = s.Element(1)
		case "LX":
			lx++
		}
	}
	assert.Equal(t, "KZN-20260101-001", clm)
	assert.Equal(t, 2, lx)
}

func TestConfigErrors(t *testing.T) {
	t.Run("unknown preset", func(t *testing.T) {
		cfg := testConfig()
		cfg.PayerPreset = "NOPE"
		_, err := Build(testdata.SingleTripClaim(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "payer_preset")
	})

	t.Run("bad usage indicator", func(t *testing.T) {
		cfg := testConfig()
		cfg.UsageIndicator = "X"
		_, err := Build(testdata.SingleTripClaim(), cfg)
		require.Error(t, err)
	})

	t.Run("multi-character delimiter", func(t *testing.T) {
		cfg := testConfig()
		cfg.ElementSeparator = "**"
		_, err := Build(testdata.SingleTripClaim(), cfg)
		require.Error(t, err)
	})
}

func TestPayerPresetConfig(t *testing.T) {
	cfg := testConfig()
	cfg.PayerPreset = "UHC_CS"
	res, err := Build(testdata.SingleTripClaim(), cfg)
	require.NoError(t, err)
	assert.Contains(t, string(res.EDI), "UNITEDHEALTHCARE COMMUNITY PLAN")
}

func TestDelimiterOverrides(t *testing.T) {
	cfg := testConfig()
	cfg.ElementSeparator = "|"
	res, err := Build(testdata.SingleTripClaim(), cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(res.EDI), "ISA|"))
}
