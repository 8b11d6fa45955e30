package codes

// Kind identifies one of the closed code tables.
type Kind int

const (
	// KindPlaceOfService is the CMS place-of-service table subset.
	KindPlaceOfService Kind = iota
	// KindTransportCode is the CR103 ambulance transport code table.
	KindTransportCode
	// KindTransportReason is the CR104 transport reason code table.
	KindTransportReason
	// KindHCPCS is the NEMT procedure code subset.
	KindHCPCS
	// KindModifier is the HCPCS modifier table.
	KindModifier
	// KindFrequency is the CLM05-3 claim frequency table.
	KindFrequency
)

// String returns the table name.
func (k Kind) String() string {
	switch k {
	case KindPlaceOfService:
		return "place-of-service"
	case KindTransportCode:
		return "transport-code"
	case KindTransportReason:
		return "transport-reason"
	case KindHCPCS:
		return "hcpcs"
	case KindModifier:
		return "modifier"
	case KindFrequency:
		return "frequency"
	default:
		return "unknown"
	}
}

// Places of service accepted for NEMT claims. 41 and 42 are the ambulance
// codes; the rest are the clinical settings trips commonly terminate at.
var placesOfService = map[string]string{
	"41": "Ambulance - Land",
	"42": "Ambulance - Air or Water",
	"11": "Office",
	"12": "Home",
	"21": "Inpatient Hospital",
	"22": "On Campus - Outpatient Hospital",
	"23": "Emergency Room - Hospital",
	"24": "Ambulatory Surgical Center",
	"31": "Skilled Nursing Facility",
	"32": "Nursing Facility",
	"33": "Custodial Care Facility",
	"34": "Hospice",
	"49": "Independent Clinic",
	"50": "Federally Qualified Health Center",
	"54": "Intermediate Care Facility",
	"62": "Comprehensive Outpatient Rehabilitation Facility",
	"65": "End-Stage Renal Disease Treatment Facility",
	"71": "Public Health Clinic",
	"72": "Rural Health Clinic",
	"99": "Other Place of Service",
}

// CR103 transport codes.
var transportCodes = map[string]string{
	"A": "Initial Trip",
	"B": "Return Trip",
	"C": "Transport for X-Ray or EKG",
	"D": "Transfer Trip",
	"E": "Round Trip",
}

// CR104 transport reason codes.
var transportReasons = map[string]string{
	"A":  "Patient was transported to nearest facility for care of symptoms, complaints, or both",
	"B":  "Patient was transported for the benefit of a preferred physician",
	"C":  "Patient was transported for the nearness of family members",
	"D":  "Patient was transported for the care of a specialist or for availability of specialized equipment",
	"DH": "Hospital to hospital transfer",
	"E":  "Patient transferred to rehabilitation facility",
}

// CLM05-3 claim frequency codes.
var frequencyCodes = map[string]string{
	"1": "Original",
	"6": "Corrected",
	"7": "Replacement",
	"8": "Void",
}

// DefaultPlaceOfService is the place of service assumed when a claim
// carries none: ground ambulance.
const DefaultPlaceOfService = "41"

// Lookup returns the description for a code within a table.
func Lookup(kind Kind, code string) (string, bool) {
	var desc string
	var ok bool
	switch kind {
	case KindPlaceOfService:
		desc, ok = placesOfService[code]
	case KindTransportCode:
		desc, ok = transportCodes[code]
	case KindTransportReason:
		desc, ok = transportReasons[code]
	case KindHCPCS:
		desc, ok = hcpcsCodes[code]
	case KindModifier:
		desc, ok = modifierDescriptions()[code]
	case KindFrequency:
		desc, ok = frequencyCodes[code]
	}
	return desc, ok
}

// Valid reports whether a code exists in a table.
func Valid(kind Kind, code string) bool {
	_, ok := Lookup(kind, code)
	return ok
}

// ReplacementFrequency reports whether the frequency code requires an
// original claim number (corrected, replacement, or void).
func ReplacementFrequency(code string) bool {
	switch code {
	case "6", "7", "8":
		return true
	}
	return false
}
