package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		code   string
		wantOK bool
	}{
		{"ground ambulance POS", KindPlaceOfService, "41", true},
		{"air ambulance POS", KindPlaceOfService, "42", true},
		{"unknown POS", KindPlaceOfService, "40", false},
		{"transport code initial trip", KindTransportCode, "A", true},
		{"transport code unknown", KindTransportCode, "F", false},
		{"transport reason hospital transfer", KindTransportReason, "DH", true},
		{"transport reason unknown", KindTransportReason, "Z", false},
		{"hcpcs mileage", KindHCPCS, "A0425", true},
		{"hcpcs taxi", KindHCPCS, "A0100", true},
		{"hcpcs stretcher van", KindHCPCS, "T2005", true},
		{"hcpcs unknown", KindHCPCS, "99213", false},
		{"location modifier", KindModifier, "RH", true},
		{"functional modifier", KindModifier, "QM", true},
		{"unknown modifier", KindModifier, "ZZ", false},
		{"frequency original", KindFrequency, "1", true},
		{"frequency void", KindFrequency, "8", true},
		{"frequency unknown", KindFrequency, "2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, ok := Lookup(tt.kind, tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.NotEmpty(t, desc)
			}
		})
	}
}

func TestModifierTableSize(t *testing.T) {
	// 10 origin letters (X is destination-only) paired with 11
	// destinations plus the 8 functional modifiers.
	count := 0
	for origin := range locationLetters {
		if origin == 'X' {
			continue
		}
		for dest := range locationLetters {
			code := string([]byte{origin, dest})
			assert.True(t, Valid(KindModifier, code), "missing modifier %s", code)
			count++
		}
	}
	assert.Equal(t, 110, count)

	for code := range functionalModifiers {
		assert.True(t, Valid(KindModifier, code))
		assert.False(t, LocationModifier(code))
	}

	assert.True(t, LocationModifier("RH"))
	assert.False(t, LocationModifier("XX"), "X is not a valid origin")
	assert.False(t, Valid(KindModifier, "XD"))
}

func TestMileageAndSpecialTransport(t *testing.T) {
	for _, code := range []string{"A0425", "A0435", "A0436", "A0380", "A0382", "A0390", "T2049"} {
		assert.True(t, Mileage(code), code)
	}
	assert.False(t, Mileage("A0130"))
	assert.False(t, Mileage("A0428"))

	for _, code := range []string{"A0090", "A0100", "A0110", "T2001"} {
		assert.True(t, SpecialTransport(code), code)
	}
	assert.False(t, SpecialTransport("A0425"))
}

func TestReplacementFrequency(t *testing.T) {
	assert.False(t, ReplacementFrequency("1"))
	assert.True(t, ReplacementFrequency("6"))
	assert.True(t, ReplacementFrequency("7"))
	assert.True(t, ReplacementFrequency("8"))
	assert.False(t, ReplacementFrequency(""))
}

func TestPresets(t *testing.T) {
	p, ok := Preset("UHC_CS")
	assert.True(t, ok)
	assert.Equal(t, "87726", p.PayerID)
	assert.NotEmpty(t, p.InterchangeReceiver)
	assert.NotEmpty(t, p.InterchangeQualifier)

	_, ok = Preset("NOPE")
	assert.False(t, ok)
	assert.NotEmpty(t, PresetKeys())
}
