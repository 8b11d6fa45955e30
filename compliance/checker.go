// Package compliance re-parses emitted interchanges and verifies their
// structural integrity: envelope balance, control number agreement,
// required segments, and loop ordering. The checks are pure functions of
// the emitted bytes and run after assembly.
package compliance

import (
	"fmt"
	"strconv"

	"github.com/dshills/go837/parse"
	"github.com/dshills/go837/report"
	"github.com/dshills/go837/x12"
)

// Issue codes produced by the compliance checker.
const (
	CodeEnvelope      = "CMP_001"
	CodeControl       = "CMP_002"
	CodeMissing       = "CMP_003"
	CodeOrder         = "CMP_004"
	CodeK3Placement   = "CMP_005"
	CodeEmergencySpot = "CMP_006"
	CodeMultipleCR1   = "CMP_007"
	CodeParse         = "CMP_008"
	CodeBothLocations = "CMP_101"
)

// StageCompliance names the report produced here.
const StageCompliance = "compliance"

// Check re-parses the interchange bytes and returns the compliance
// report. The emitted bytes are always inspectable by the caller; a
// failed check only clears the report's validity flag.
func Check(data []byte) *report.Report {
	rep := report.New(StageCompliance)

	ic, err := parse.Parse(data)
	if err != nil {
		rep.Error(CodeParse, "ISA", err.Error())
		return rep
	}

	checkEnvelope(ic, rep)
	for gi, g := range ic.Groups {
		for ti, t := range g.Transactions {
			path := fmt.Sprintf("GS[%d].ST[%d]", gi, ti)
			checkTransaction(t, path, rep)
		}
	}

	return rep
}

// checkEnvelope verifies ISA/IEA, GS/GE, and ST/SE pairing, their counts,
// and control number agreement between headers and trailers.
func checkEnvelope(ic *parse.Interchange, rep *report.Report) {
	if ic.Trailer == nil {
		rep.Error(CodeEnvelope, "IEA", "interchange has no IEA trailer")
		return
	}

	if got := ic.Trailer.Element(1); got != strconv.Itoa(len(ic.Groups)) {
		rep.Addf(x12.SeverityError, CodeEnvelope, "IEA01",
			"IEA01 is %s but the interchange contains %d functional groups", got, len(ic.Groups))
	}
	if isa13, iea02 := ic.Header.Element(13), ic.Trailer.Element(2); isa13 != iea02 {
		rep.Addf(x12.SeverityError, CodeControl, "IEA02",
			"interchange control numbers differ: ISA13=%s IEA02=%s", isa13, iea02)
	}

	for gi, g := range ic.Groups {
		path := fmt.Sprintf("GS[%d]", gi)
		if g.Trailer == nil {
			rep.Error(CodeEnvelope, path, "functional group has no GE trailer")
			continue
		}
		if got := g.Trailer.Element(1); got != strconv.Itoa(len(g.Transactions)) {
			rep.Addf(x12.SeverityError, CodeEnvelope, path+".GE01",
				"GE01 is %s but the group contains %d transaction sets", got, len(g.Transactions))
		}
		if gs06, ge02 := g.Header.Element(6), g.Trailer.Element(2); gs06 != ge02 {
			rep.Addf(x12.SeverityError, CodeControl, path+".GE02",
				"group control numbers differ: GS06=%s GE02=%s", gs06, ge02)
		}

		for ti, t := range g.Transactions {
			tpath := fmt.Sprintf("%s.ST[%d]", path, ti)
			if t.Trailer == nil {
				rep.Error(CodeEnvelope, tpath, "transaction set has no SE trailer")
				continue
			}
			if got := t.Trailer.Element(1); got != strconv.Itoa(t.SegmentCount()) {
				rep.Addf(x12.SeverityError, CodeEnvelope, tpath+".SE01",
					"SE01 is %s but the transaction set contains %d segments", got, t.SegmentCount())
			}
			if st02, se02 := t.Header.Element(2), t.Trailer.Element(2); st02 != se02 {
				rep.Addf(x12.SeverityError, CodeControl, tpath+".SE02",
					"transaction set control numbers differ: ST02=%s SE02=%s", st02, se02)
			}
		}
	}
}

// checkTransaction verifies the required segments and loop structure of
// one transaction set.
func checkTransaction(t *parse.TransactionSet, path string, rep *report.Report) {
	header, claims := t.Claims()

	requireTag(header, "BHT", path, rep)
	requireNM1(header, "85", path+".2010AA", rep)
	requireNM1(header, "IL", path+".2010BA", rep)

	if len(claims) == 0 {
		rep.Error(CodeMissing, path, "transaction set contains no CLM segment")
		return
	}

	for ci, segs := range claims {
		cpath := fmt.Sprintf("%s.CLM[%d]", path, ci)
		checkClaim(segs, cpath, rep)
	}
}

func requireTag(segs []*x12.Segment, tag, path string, rep *report.Report) {
	for _, s := range segs {
		if s.Tag == tag {
			return
		}
	}
	rep.Addf(x12.SeverityError, CodeMissing, path, "required segment %s is missing", tag)
}

func requireNM1(segs []*x12.Segment, entity, path string, rep *report.Report) {
	for _, s := range segs {
		if s.Tag == "NM1" && s.Element(1) == entity {
			return
		}
	}
	rep.Addf(x12.SeverityError, CodeMissing, path, "required NM1*%s is missing", entity)
}

// checkClaim verifies one claim's 2300 ordering, its service loops, and
// the CR1 cardinality.
func checkClaim(segs []*x12.Segment, path string, rep *report.Report) {
	// Split the claim into the 2300 region and LX service blocks.
	var claimRegion []*x12.Segment
	var services [][]*x12.Segment
	for _, s := range segs {
		if s.Tag == "LX" {
			services = append(services, []*x12.Segment{s})
			continue
		}
		if len(services) == 0 {
			claimRegion = append(claimRegion, s)
		} else {
			services[len(services)-1] = append(services[len(services)-1], s)
		}
	}

	if len(services) == 0 {
		rep.Error(CodeMissing, path, "claim contains no service line")
	}

	cr1Count := 0
	for _, s := range claimRegion {
		if s.Tag == "CR1" {
			cr1Count++
		}
	}
	if cr1Count > 1 {
		rep.Addf(x12.SeverityError, CodeMultipleCR1, path, "claim carries %d CR1 segments", cr1Count)
	}

	checkClaimOrder(claimRegion, path, rep)

	claimLocs := claimLevelLocations(claimRegion)
	serviceLocs := false

	for si, block := range services {
		spath := fmt.Sprintf("%s.LX[%d]", path, si)
		checkServiceBlock(block, spath, rep)
		if hasLocationLoop(block) {
			serviceLocs = true
		}
	}

	if claimLocs && serviceLocs {
		rep.Warning(CodeBothLocations, path,
			"claim-level and service-level pickup/dropoff are both present; downstream parsers may disagree")
	}
}

// claimOrderRank assigns ranks to the 2300 pre-loop region. The region
// ends at the first provider or other-payer loop segment.
func claimOrderRank(s *x12.Segment) (rank int, inRegion bool) {
	switch s.Tag {
	case "CLM":
		return 0, true
	case "DTP":
		switch s.Element(1) {
		case "472":
			return 1, true
		default:
			return 9, true
		}
	case "CR1":
		return 2, true
	case "REF":
		return 3, true
	case "K3":
		return 4, true
	case "NTE":
		return 5, true
	case "CAS":
		return 6, true
	case "MOA":
		return 7, true
	case "AMT":
		return 8, true
	default:
		return 0, false
	}
}

// checkClaimOrder verifies that the 2300 pre-loop segments appear in
// non-decreasing companion-guide order.
func checkClaimOrder(segs []*x12.Segment, path string, rep *report.Report) {
	last := -1
	lastTag := ""
	for _, s := range segs {
		rank, in := claimOrderRank(s)
		if !in {
			// Provider and other-payer loops end the strictly ordered
			// region.
			return
		}
		if rank < last {
			rep.Addf(x12.SeverityError, CodeOrder, path,
				"segment %s appears after %s, out of claim loop order", s.Tag, lastTag)
			return
		}
		last, lastTag = rank, s.Tag
	}
}

// checkServiceBlock verifies one LX block: SV1 presence, the emergency
// indicator position, the line K3 ahead of any 2420 NM1, and loop order.
func checkServiceBlock(block []*x12.Segment, path string, rep *report.Report) {
	var sv1 *x12.Segment
	k3Index, nm1Index := -1, -1
	for i, s := range block {
		switch s.Tag {
		case "SV1":
			if sv1 == nil {
				sv1 = s
			}
		case "K3":
			if k3Index < 0 {
				k3Index = i
			}
		case "NM1":
			if nm1Index < 0 {
				nm1Index = i
			}
		}
	}

	if sv1 == nil {
		rep.Error(CodeMissing, path, "service line has no SV1 segment")
		return
	}

	// The emergency indicator belongs in SV111; a value in SV110 is the
	// classic off-by-one defect.
	if sv1.Element(10) != "" {
		rep.Addf(x12.SeverityError, CodeEmergencySpot, path+".SV110",
			"SV110 carries %q; the emergency indicator belongs in SV111", sv1.Element(10))
	}

	if k3Index >= 0 && nm1Index >= 0 && nm1Index < k3Index {
		rep.Error(CodeK3Placement, path,
			"service K3 appears after a 2420 provider loop")
	}

	checkServiceOrder(block, path, rep)
}

// serviceOrderRank assigns ranks within an LX block.
func serviceOrderRank(s *x12.Segment) (rank int, known bool) {
	switch s.Tag {
	case "LX":
		return 0, true
	case "SV1":
		return 1, true
	case "DTP":
		if s.Element(1) == "472" {
			return 2, true
		}
		return 6, true
	case "K3":
		return 3, true
	case "NTE":
		return 4, true
	case "NM1", "N3", "N4", "REF", "PRV":
		return 5, true
	case "SVD", "CAS":
		return 6, true
	default:
		return 0, false
	}
}

// checkServiceOrder verifies the LX block segments appear in
// non-decreasing order.
func checkServiceOrder(block []*x12.Segment, path string, rep *report.Report) {
	last := -1
	lastTag := ""
	for _, s := range block {
		rank, known := serviceOrderRank(s)
		if !known {
			continue
		}
		if rank < last {
			rep.Addf(x12.SeverityError, CodeOrder, path,
				"segment %s appears after %s, out of service loop order", s.Tag, lastTag)
			return
		}
		last, lastTag = rank, s.Tag
	}
}

// claimLevelLocations reports whether the 2300 region carries pickup or
// dropoff data, either as legacy 2310E/F loops or as CR109/CR110
// descriptors.
func claimLevelLocations(segs []*x12.Segment) bool {
	for _, s := range segs {
		switch s.Tag {
		case "NM1":
			if e := s.Element(1); e == "PW" || e == "45" {
				return true
			}
		case "CR1":
			if s.Element(9) != "" || s.Element(10) != "" {
				return true
			}
		}
	}
	return false
}

// hasLocationLoop reports whether an LX block carries a 2420G/H pickup
// or dropoff loop.
func hasLocationLoop(block []*x12.Segment) bool {
	for _, s := range block {
		if s.Tag == "NM1" {
			if e := s.Element(1); e == "PW" || e == "45" {
				return true
			}
		}
	}
	return false
}
