package codes

// PayerPreset carries the interchange addressing for a known payer, keyed
// by a symbolic code. When a preset is selected it overrides the claim's
// receiver payer id and name.
type PayerPreset struct {
	PayerID              string
	PayerName            string
	InterchangeReceiver  string
	InterchangeQualifier string
}

var payerPresets = map[string]PayerPreset{
	"UHC_CS": {
		PayerID:              "87726",
		PayerName:            "UNITEDHEALTHCARE COMMUNITY PLAN",
		InterchangeReceiver:  "87726",
		InterchangeQualifier: "ZZ",
	},
	"UHC": {
		PayerID:              "87726",
		PayerName:            "UNITEDHEALTHCARE",
		InterchangeReceiver:  "87726",
		InterchangeQualifier: "ZZ",
	},
	"OPTUM_VA": {
		PayerID:              "VACCN",
		PayerName:            "VA COMMUNITY CARE NETWORK",
		InterchangeReceiver:  "VACCN",
		InterchangeQualifier: "ZZ",
	},
}

// Preset returns the payer preset for a symbolic key.
func Preset(key string) (PayerPreset, bool) {
	p, ok := payerPresets[key]
	return p, ok
}

// PresetKeys returns the known preset keys, for configuration validation
// messages. Order is unspecified.
func PresetKeys() []string {
	keys := make([]string, 0, len(payerPresets))
	for k := range payerPresets {
		keys = append(keys, k)
	}
	return keys
}
