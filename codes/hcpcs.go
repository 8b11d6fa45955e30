package codes

// NEMT procedure codes: the A0021-A0436 ambulance series plus the T2xxx
// non-emergency transportation series.
var hcpcsCodes = map[string]string{
	"A0021": "Ambulance service, outside state per mile, transport",
	"A0080": "Nonemergency transportation, per mile - volunteer",
	"A0090": "Nonemergency transportation, per mile - individual",
	"A0100": "Nonemergency transportation; taxi",
	"A0110": "Nonemergency transportation and bus, intra or inter state carrier",
	"A0120": "Nonemergency transportation: mini-bus, mountain area transports",
	"A0130": "Nonemergency transportation: wheelchair van",
	"A0140": "Nonemergency transportation and air travel",
	"A0160": "Nonemergency transportation: per mile - caseworker or social worker",
	"A0170": "Transportation ancillary: parking fees, tolls, other",
	"A0180": "Nonemergency transportation: ancillary: lodging-recipient",
	"A0190": "Nonemergency transportation: ancillary: meals-recipient",
	"A0200": "Nonemergency transportation: ancillary: lodging escort",
	"A0210": "Nonemergency transportation: ancillary: meals escort",
	"A0225": "Ambulance service, neonatal transport, base rate, emergency transport, one way",
	"A0380": "BLS mileage (per mile)",
	"A0382": "BLS routine disposable supplies",
	"A0390": "ALS mileage (per mile)",
	"A0422": "Ambulance (ALS or BLS) oxygen and oxygen supplies, life sustaining situation",
	"A0425": "Ground mileage, per statute mile",
	"A0426": "Ambulance service, advanced life support, nonemergency transport, level 1",
	"A0427": "Ambulance service, advanced life support, emergency transport, level 1",
	"A0428": "Ambulance service, basic life support, nonemergency transport",
	"A0429": "Ambulance service, basic life support, emergency transport",
	"A0430": "Ambulance service, conventional air services, transport, one way, fixed wing",
	"A0431": "Ambulance service, conventional air services, transport, one way, rotary wing",
	"A0433": "Advanced life support, level 2",
	"A0434": "Specialty care transport",
	"A0435": "Fixed wing air mileage, per statute mile",
	"A0436": "Rotary wing air mileage, per statute mile",
	"T2001": "Nonemergency transportation; patient attendant/escort",
	"T2002": "Nonemergency transportation; per diem",
	"T2003": "Nonemergency transportation; encounter/trip",
	"T2004": "Nonemergency transport; commercial carrier, multi-pass",
	"T2005": "Nonemergency transportation; stretcher van",
	"T2007": "Transportation waiting time, air ambulance and nonemergency vehicle, one-half hour increments",
	"T2049": "Nonemergency transportation; stretcher van, mileage; per mile",
}

// mileageHCPCS are the per-mile procedure codes. A mileage line must
// immediately follow a transport service line within the same claim.
var mileageHCPCS = map[string]struct{}{
	"A0425": {},
	"A0435": {},
	"A0436": {},
	"A0380": {},
	"A0382": {},
	"A0390": {},
	"T2049": {},
}

// specialTransportHCPCS are the codes for which the payer expects a
// supervising provider on the claim.
var specialTransportHCPCS = map[string]struct{}{
	"A0090": {},
	"A0100": {},
	"A0110": {},
	"A0120": {},
	"A0140": {},
	"A0160": {},
	"A0170": {},
	"A0180": {},
	"A0190": {},
	"A0200": {},
	"A0210": {},
	"T2001": {},
}

// Mileage reports whether the HCPCS code is a per-mile line.
func Mileage(hcpcs string) bool {
	_, ok := mileageHCPCS[hcpcs]
	return ok
}

// SpecialTransport reports whether the HCPCS code requires a supervising
// provider under payer rules.
func SpecialTransport(hcpcs string) bool {
	_, ok := specialTransportHCPCS[hcpcs]
	return ok
}
