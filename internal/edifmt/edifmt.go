// Package edifmt formats Go values as X12 element text: fixed-point
// amounts, quantities without trailing zeros, and the D8/TM date and time
// forms the 837P uses.
package edifmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ISO is the date layout accepted on claim records.
const ISO = "2006-01-02"

// D8 is the CCYYMMDD layout used in DTP and DMG segments.
const D8 = "20060102"

// isaDate is the YYMMDD layout used in ISA09.
const isaDate = "060102"

// Amount formats a monetary amount as fixed-point with two decimals, the
// form required for CLM02, SV102, and CAS adjustment amounts.
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Quantity formats a unit count or mileage value without a trailing
// ".0"; whole numbers render as integers, fractional mileage keeps its
// significant digits.
func Quantity(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// Date converts an ISO yyyy-mm-dd value to CCYYMMDD. The input must have
// been validated; malformed input is returned unchanged rather than
// silently dropped.
func Date(iso string) string {
	t, err := time.Parse(ISO, iso)
	if err != nil {
		return iso
	}
	return t.Format(D8)
}

// DateRange renders a DTP03 value: a single D8 date when from and to are
// equal, or the RD8 "from-to" form when they differ.
func DateRange(from, to string) (qualifier, value string) {
	if to == "" || to == from {
		return "D8", Date(from)
	}
	return "RD8", Date(from) + "-" + Date(to)
}

// ISADate renders the YYMMDD interchange date for ISA09.
func ISADate(t time.Time) string {
	return t.Format(isaDate)
}

// ISATime renders the HHMM interchange time for ISA10 and GS05.
func ISATime(t time.Time) string {
	return t.Format("1504")
}

// GSDate renders the CCYYMMDD group date for GS04.
func GSDate(t time.Time) string {
	return t.Format(D8)
}

// TripNumber pads a numeric trip number to the nine digits the payer
// requires in REF*LU and the legacy TRIPNUM notes.
func TripNumber(n int64) string {
	return fmt.Sprintf("%09d", n)
}

// Fixed left-justifies a value into a fixed-width field, space padded and
// truncated to width. ISA sender and receiver IDs are fixed width.
func Fixed(value string, width int) string {
	if len(value) > width {
		return value[:width]
	}
	return value + strings.Repeat(" ", width-len(value))
}
