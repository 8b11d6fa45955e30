package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// OutputFileName returns the canonical clearinghouse file name for a
// batch:
//
//	INB_<StateCode>PROFKZN_MMDDYYYY_<seq>.dat
//
// with a TEST_ prefix for non-production submissions. The state code is
// upper-cased.
func OutputFileName(stateCode string, date time.Time, seq int, production bool) string {
	name := fmt.Sprintf("INB_%sPROFKZN_%s_%d.dat",
		strings.ToUpper(stateCode), date.Format("01022006"), seq)
	if !production {
		return "TEST_" + name
	}
	return name
}
