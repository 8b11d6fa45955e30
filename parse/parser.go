// Package parse re-parses emitted X12 interchanges into an envelope tree
// for compliance checking. It is deliberately lenient: structural
// problems such as unbalanced envelopes are preserved in the tree (nil
// trailers, stray segments) so the compliance checker can report them as
// issues instead of failing the parse.
package parse

import (
	"strings"

	"github.com/dshills/go837/x12"
)

// Interchange is a parsed ISA...IEA envelope.
type Interchange struct {
	// Header is the ISA segment.
	Header *x12.Segment
	// Trailer is the IEA segment, nil when missing.
	Trailer *x12.Segment
	// Delimiters are the separators recovered from the ISA segment.
	Delimiters *x12.Delimiters
	// Groups are the functional groups in order.
	Groups []*FunctionalGroup
	// Segments are all segments of the interchange in wire order,
	// including the envelope segments.
	Segments []*x12.Segment
}

// FunctionalGroup is a parsed GS...GE group.
type FunctionalGroup struct {
	Header       *x12.Segment
	Trailer      *x12.Segment
	Transactions []*TransactionSet
}

// TransactionSet is a parsed ST...SE transaction set. Segments holds the
// segments between the header and trailer, exclusive.
type TransactionSet struct {
	Header   *x12.Segment
	Trailer  *x12.Segment
	Segments []*x12.Segment
}

// Parse splits an emitted interchange into its envelope tree. The input
// must begin with a well-formed ISA segment; everything after that is
// parsed best-effort.
func Parse(data []byte) (*Interchange, error) {
	delims, err := x12.ParseDelimiters(data)
	if err != nil {
		return nil, &x12.ParseError{Segment: "ISA", Message: "cannot recover delimiters", Cause: err}
	}

	raw := strings.Split(string(data), string(delims.Segment))
	ic := &Interchange{Delimiters: delims}

	var group *FunctionalGroup
	var txn *TransactionSet

	for i, chunk := range raw {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		seg, err := x12.ParseSegment(chunk, delims)
		if err != nil {
			return nil, &x12.ParseError{Position: i + 1, Message: "cannot parse segment", Cause: err}
		}
		ic.Segments = append(ic.Segments, seg)

		switch seg.Tag {
		case "ISA":
			ic.Header = seg
		case "IEA":
			ic.Trailer = seg
		case "GS":
			group = &FunctionalGroup{Header: seg}
			ic.Groups = append(ic.Groups, group)
		case "GE":
			if group != nil {
				group.Trailer = seg
				group = nil
			}
		case "ST":
			txn = &TransactionSet{Header: seg}
			if group != nil {
				group.Transactions = append(group.Transactions, txn)
			}
		case "SE":
			if txn != nil {
				txn.Trailer = seg
				txn = nil
			}
		default:
			if txn != nil {
				txn.Segments = append(txn.Segments, seg)
			}
		}
	}

	if ic.Header == nil {
		return nil, &x12.ParseError{Segment: "ISA", Message: "interchange has no ISA header"}
	}

	return ic, nil
}

// SegmentCount returns the number of segments between ST and SE,
// inclusive of both, which is the value SE01 must carry.
func (t *TransactionSet) SegmentCount() int {
	n := len(t.Segments)
	if t.Header != nil {
		n++
	}
	if t.Trailer != nil {
		n++
	}
	return n
}

// Claims splits the transaction set's segments into per-claim slices,
// one per CLM segment, with the pre-claim header segments returned
// separately.
func (t *TransactionSet) Claims() (header []*x12.Segment, claims [][]*x12.Segment) {
	current := -1
	for _, seg := range t.Segments {
		if seg.Tag == "CLM" {
			claims = append(claims, []*x12.Segment{seg})
			current = len(claims) - 1
			continue
		}
		if current < 0 {
			header = append(header, seg)
			continue
		}
		claims[current] = append(claims[current], seg)
	}
	return header, claims
}
