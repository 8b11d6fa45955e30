package validate

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	npiPattern   = regexp.MustCompile(`^\d{10}$`)
	taxIDPattern = regexp.MustCompile(`^\d{9}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	hhmmPattern  = regexp.MustCompile(`^([01]\d|2[0-3])[0-5]\d$`)
)

// usStates are the recognized US postal state and territory codes.
var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {}, "PR": {}, "VI": {}, "GU": {}, "AS": {}, "MP": {},
}

// newFormatValidator builds the go-playground validator instance with the
// custom format validations registered. Field names in error namespaces
// come from json tags so issue paths match the input document.
func newFormatValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "npi", func(fl validator.FieldLevel) bool {
		return npiPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "taxid9", func(fl validator.FieldLevel) bool {
		return taxIDPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "zip5or9", func(fl validator.FieldLevel) bool {
		return zipPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "usstate", func(fl validator.FieldLevel) bool {
		_, ok := usStates[fl.Field().String()]
		return ok
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// fieldPath converts a validator namespace ("Claim.claim.clm_number")
// into the document path ("claim.clm_number").
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// formatMessage renders a human-readable message for a failed struct tag.
func formatMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing"
	case "npi":
		return "NPI must be exactly 10 digits"
	case "taxid9":
		return "tax id must be exactly 9 digits"
	case "isodate":
		return "date must be yyyy-mm-dd"
	case "hhmm":
		return "time must be HHMM"
	case "zip5or9":
		return "zip must be 5 digits or 5+4"
	case "usstate":
		return "state must be a recognized US postal code"
	case "max":
		return "value exceeds maximum length " + fe.Param()
	case "min":
		return "value is below minimum " + fe.Param()
	case "len":
		return "value must have length " + fe.Param()
	case "oneof":
		return "value must be one of: " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
