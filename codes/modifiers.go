package codes

import "sync"

// Origin and destination letters for ambulance modifiers. A modifier is
// an origin letter paired with a destination letter; X is valid only as
// a destination, giving the 110 two-character location modifiers.
var locationLetters = map[byte]string{
	'D': "Diagnostic or therapeutic site",
	'E': "Residential, domiciliary, custodial facility",
	'G': "Hospital-based dialysis facility",
	'H': "Hospital",
	'I': "Site of transfer between modes of ambulance transport",
	'J': "Non-hospital-based dialysis facility",
	'N': "Skilled nursing facility",
	'P': "Physician's office",
	'R': "Residence",
	'S': "Scene of accident or acute event",
	'X': "Intermediate stop at physician's office on way to hospital",
}

// Functional modifiers that qualify how a service was rendered rather
// than where.
var functionalModifiers = map[string]string{
	"GA": "Waiver of liability statement issued as required by payer policy",
	"GY": "Item or service statutorily excluded",
	"GZ": "Item or service expected to be denied as not reasonable and necessary",
	"QM": "Ambulance service provided under arrangement by a provider of services",
	"QN": "Ambulance service furnished directly by a provider of services",
	"GM": "Multiple patients on one ambulance trip",
	"QL": "Patient pronounced dead after ambulance called",
	"TQ": "Basic life support transport by a volunteer ambulance provider",
}

var (
	modifierTableOnce sync.Once
	modifierTable     map[string]string
)

// modifierDescriptions builds the full modifier table on first use:
// every origin/destination letter pairing plus the functional set.
func modifierDescriptions() map[string]string {
	modifierTableOnce.Do(func() {
		modifierTable = make(map[string]string, len(locationLetters)*len(locationLetters)+len(functionalModifiers))
		for origin, originDesc := range locationLetters {
			if origin == 'X' {
				continue
			}
			for dest, destDesc := range locationLetters {
				pair := string([]byte{origin, dest})
				modifierTable[pair] = originDesc + " to " + destDesc
			}
		}
		for code, desc := range functionalModifiers {
			modifierTable[code] = desc
		}
	})
	return modifierTable
}

// LocationModifier reports whether the modifier is an origin/destination
// pairing (as opposed to a functional modifier).
func LocationModifier(code string) bool {
	if len(code) != 2 {
		return false
	}
	if _, ok := functionalModifiers[code]; ok {
		return false
	}
	_, ok := modifierDescriptions()[code]
	return ok
}
