package x12

import (
	"strings"
)

// Segment represents a single X12 segment: a tag followed by ordered
// elements. Elements are stored raw; composite elements keep their
// component separators inline.
type Segment struct {
	// Tag is the 2-3 letter segment identifier (e.g. "CLM", "SV1").
	Tag string
	// Elements are the element values in wire order. Elements[0] is the
	// first element after the tag (CLM01 and so on).
	Elements []string
}

// ParseSegment parses a single segment from its wire form, exclusive of
// the segment terminator.
func ParseSegment(data string, delims *Delimiters) (*Segment, error) {
	if delims == nil {
		delims = DefaultDelimiters()
	}

	data = strings.TrimSpace(data)
	if data == "" {
		return nil, &ParseError{Message: "empty segment data"}
	}

	parts := strings.Split(data, string(delims.Element))
	tag := strings.TrimSpace(parts[0])
	if tag == "" {
		return nil, &ParseError{Message: "segment has empty tag"}
	}

	return &Segment{
		Tag:      strings.ToUpper(tag),
		Elements: parts[1:],
	}, nil
}

// Element returns the element at the 1-based position. Positions beyond
// the trimmed end of the segment return the empty string; X12 omits
// trailing empty elements on the wire.
func (s *Segment) Element(pos int) string {
	if pos < 1 || pos > len(s.Elements) {
		return ""
	}
	return s.Elements[pos-1]
}

// Component returns the 1-based component of a composite element.
// Component(5, 3) on a CLM segment returns CLM05-3.
func (s *Segment) Component(pos, comp int, delims *Delimiters) string {
	if delims == nil {
		delims = DefaultDelimiters()
	}
	el := s.Element(pos)
	if el == "" {
		return ""
	}
	comps := strings.Split(el, string(delims.Component))
	if comp < 1 || comp > len(comps) {
		return ""
	}
	return comps[comp-1]
}

// ElementCount returns the number of elements present on the wire.
func (s *Segment) ElementCount() int {
	return len(s.Elements)
}

// Bytes encodes the segment to its wire form using the provided
// delimiters, trimming trailing empty elements and appending the segment
// terminator.
func (s *Segment) Bytes(delims *Delimiters) []byte {
	if delims == nil {
		delims = DefaultDelimiters()
	}

	elements := trimTrailingEmpty(s.Elements)

	var sb strings.Builder
	sb.Grow(len(s.Tag) + len(elements)*8 + 2)
	sb.WriteString(s.Tag)
	for _, el := range elements {
		sb.WriteRune(delims.Element)
		sb.WriteString(el)
	}
	sb.WriteRune(delims.Segment)
	return []byte(sb.String())
}

// String returns the segment in wire form with default delimiters.
func (s *Segment) String() string {
	return string(s.Bytes(nil))
}

// trimTrailingEmpty returns the slice without trailing empty values.
func trimTrailingEmpty(elements []string) []string {
	end := len(elements)
	for end > 0 && elements[end-1] == "" {
		end--
	}
	return elements[:end]
}
