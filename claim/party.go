package claim

// Submitter is the party responsible for the submission (loop 1000A).
// Submitter and Receiver also load from YAML pipeline configuration for
// batch flows, where grouped claims carry no submitter of their own.
type Submitter struct {
	Name    string `json:"name" yaml:"name" validate:"required,max=60"`
	ID      string `json:"id" yaml:"id" validate:"required"`
	Contact string `json:"contact,omitempty" yaml:"contact"`
	Phone   string `json:"phone,omitempty" yaml:"phone"`
}

// Receiver is the destination payer (loop 1000B).
type Receiver struct {
	PayerName string `json:"payer_name" yaml:"payer_name" validate:"required,max=60"`
	PayerID   string `json:"payer_id" yaml:"payer_id" validate:"required"`
}

// Provider is a billing or rendering provider with a full address.
type Provider struct {
	NPI      string  `json:"npi" validate:"required,npi"`
	Name     string  `json:"name" validate:"required,max=60"`
	TaxID    string  `json:"tax_id,omitempty" validate:"omitempty,taxid9"`
	Taxonomy string  `json:"taxonomy,omitempty"`
	Address  Address `json:"address"`
}

// Person is a lightly identified provider: supervising or referring.
type Person struct {
	Name     string `json:"name" validate:"required,max=60"`
	NPI      string `json:"npi,omitempty" validate:"omitempty,npi"`
	Taxonomy string `json:"taxonomy,omitempty"`
	// Role applies to referring providers: DN (referring) or P3
	// (primary care).
	Role string `json:"role,omitempty" validate:"omitempty,oneof=DN P3"`
}

// Facility is a service facility location (loop 2310C).
type Facility struct {
	Name    string  `json:"name" validate:"required,max=60"`
	NPI     string  `json:"npi,omitempty" validate:"omitempty,npi"`
	Address Address `json:"address"`
}

// Subscriber is the member the claim is for (loop 2010BA).
type Subscriber struct {
	MemberID string   `json:"member_id" validate:"required,max=80"`
	Name     Name     `json:"name" validate:"required"`
	DOB      string   `json:"dob,omitempty" validate:"omitempty,isodate"`
	Sex      string   `json:"sex,omitempty" validate:"omitempty,oneof=F M U"`
	Address  *Address `json:"address,omitempty"`
}

// Name is a person name.
type Name struct {
	First  string `json:"first" validate:"required,max=35"`
	Last   string `json:"last" validate:"required,max=60"`
	Middle string `json:"middle,omitempty" validate:"max=25"`
}

// Address is a postal address.
type Address struct {
	Line1 string `json:"line1" validate:"required,max=55"`
	Line2 string `json:"line2,omitempty" validate:"max=55"`
	City  string `json:"city" validate:"required,max=30"`
	State string `json:"state" validate:"required,usstate"`
	Zip   string `json:"zip" validate:"required,zip5or9"`
}

// Location is a pickup or dropoff point on a trip. The location code is
// the two-letter facility category the payer expects with the address.
type Location struct {
	Line1         string `json:"line1" validate:"required,max=55"`
	Line2         string `json:"line2,omitempty" validate:"max=55"`
	City          string `json:"city" validate:"required,max=30"`
	State         string `json:"state" validate:"required,usstate"`
	Zip           string `json:"zip" validate:"required,zip5or9"`
	LocationCode  string `json:"location_code,omitempty" validate:"omitempty,len=2"`
	ArrivalTime   string `json:"arrival_time,omitempty" validate:"omitempty,hhmm"`
	DepartureTime string `json:"departure_time,omitempty" validate:"omitempty,hhmm"`
}

// Empty reports whether the location carries no address data.
func (l *Location) Empty() bool {
	return l == nil || (l.Line1 == "" && l.City == "" && l.State == "" && l.Zip == "")
}
