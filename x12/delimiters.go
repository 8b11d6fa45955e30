package x12

import (
	"errors"
	"fmt"
)

// Standard X12 delimiter defaults.
const (
	DefaultElementSeparator    = '*'
	DefaultComponentSeparator  = ':'
	DefaultRepetitionSeparator = '^'
	DefaultSegmentTerminator   = '~'
)

// ISA segment fixed-width layout constants.
const (
	// isaFixedLength is the byte length of a well-formed ISA segment from
	// the "ISA" tag through ISA16, exclusive of the segment terminator.
	// ISA is the only fixed-width segment in X12.
	isaFixedLength = 105

	// isaElementSeparatorPos is the offset of the element separator, the
	// byte immediately after the "ISA" tag.
	isaElementSeparatorPos = 3
)

// Errors returned by delimiter parsing.
var (
	ErrEmptyInput    = errors.New("empty input")
	ErrNotISASegment = errors.New("segment does not start with ISA")
	ErrISATooShort   = errors.New("ISA segment too short to contain delimiters")
)

// Delimiters holds the separator characters for one X12 interchange.
// The element separator and segment terminator are positional in the ISA
// segment; the component separator is ISA16 and the repetition separator
// is ISA11.
type Delimiters struct {
	Element    rune // byte after "ISA" (default: *)
	Component  rune // ISA16 (default: :)
	Repetition rune // ISA11 (default: ^)
	Segment    rune // byte after ISA16 (default: ~)
}

// DefaultDelimiters returns a Delimiters instance with the conventional
// separators used by most clearinghouses: * for elements, : for
// components, ^ for repetitions, ~ as the segment terminator.
func DefaultDelimiters() *Delimiters {
	return &Delimiters{
		Element:    DefaultElementSeparator,
		Component:  DefaultComponentSeparator,
		Repetition: DefaultRepetitionSeparator,
		Segment:    DefaultSegmentTerminator,
	}
}

// ParseDelimiters extracts the separators from the leading ISA segment of
// an emitted interchange. The input must contain at least the full
// fixed-width ISA segment plus its terminator.
func ParseDelimiters(data []byte) (*Delimiters, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if len(data) < 3 || string(data[:3]) != "ISA" {
		return nil, ErrNotISASegment
	}

	if len(data) < isaFixedLength+1 {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrISATooShort, isaFixedLength+1, len(data))
	}

	d := &Delimiters{
		Element:   rune(data[isaElementSeparatorPos]),
		Component: rune(data[isaFixedLength-1]),
		Segment:   rune(data[isaFixedLength]),
		// ISA11 (repetition separator) is the 11th element; with the
		// fixed-width layout that is offset 82.
		Repetition: rune(data[82]),
	}

	// 00501 interchanges from legacy senders sometimes carry "U" in ISA11
	// instead of a repetition separator. Fall back to the default.
	if d.Repetition == 'U' {
		d.Repetition = DefaultRepetitionSeparator
	}

	return d, nil
}

// Reserved reports whether r is one of the delimiter characters and
// therefore may not appear inside an element value.
func (d *Delimiters) Reserved(r rune) bool {
	return r == d.Element || r == d.Component || r == d.Repetition || r == d.Segment
}

// Equal returns true if two Delimiters instances have the same values.
func (d *Delimiters) Equal(other *Delimiters) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Element == other.Element &&
		d.Component == other.Component &&
		d.Repetition == other.Repetition &&
		d.Segment == other.Segment
}

// String returns the separators in ISA order (element, repetition,
// component, terminator), useful in diagnostics.
func (d *Delimiters) String() string {
	return fmt.Sprintf("%c%c%c%c", d.Element, d.Repetition, d.Component, d.Segment)
}
