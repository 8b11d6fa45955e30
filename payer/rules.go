// Package payer enforces payer-specific content rules on emitted
// interchanges. A RuleSet is parameterized per payer; the UHC rule set
// covers the K3 grammar, the member group note, supervising provider
// requirements, denial adjustments, and the NEMIS duplicate criterion.
package payer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/go837/codes"
	"github.com/dshills/go837/parse"
	"github.com/dshills/go837/report"
	"github.com/dshills/go837/x12"
)

// Issue codes produced by the payer rule validator.
const (
	CodeK3Grammar       = "PAY_001"
	CodeMissingGroupNTE = "PAY_002"
	CodeNoSupervising   = "PAY_003"
	CodeMissingCAS      = "PAY_004"
	CodeDuplicate       = "PAY_010"
	CodeParse           = "PAY_008"
)

// StagePayer names the report produced here.
const StagePayer = "payer"

// RuleSet is one payer's content rules.
type RuleSet struct {
	// Name identifies the payer (e.g. "UHC").
	Name string
	// k3 maps each recognized K3 value prefix to its required grammar.
	k3 map[string]*regexp.Regexp
	// requireSupervising enforces NM1*DQ for special-transport HCPCS.
	requireSupervising bool
	// requireGroupNTE enforces the member group note on every claim.
	requireGroupNTE bool
}

// UHC returns the UnitedHealthcare community plan rule set.
func UHC() *RuleSet {
	return &RuleSet{
		Name: "UHC",
		k3: map[string]*regexp.Regexp{
			"PYMS-":   regexp.MustCompile(`^PYMS-[PD]$`),
			"SUB-":    regexp.MustCompile(`^SUB-[^;]+(;IPAD-[^;]+)?(;USER-[^;]+)?$`),
			"IPAD-":   regexp.MustCompile(`^IPAD-[^;]+(;USER-[^;]+)?$`),
			"USER-":   regexp.MustCompile(`^USER-[^;]+$`),
			"SNWK-":   regexp.MustCompile(`^SNWK-[IO]$`),
			"TRPN-":   regexp.MustCompile(`^TRPN-ASPUFE(ELECTRONIC|PAPER)$`),
			"DREC-":   regexp.MustCompile(`^DREC-\d{8}(;DADJ-\d{8})?(;PAIDDT-\d{8})?$`),
			"DADJ-":   regexp.MustCompile(`^DADJ-\d{8}(;PAIDDT-\d{8})?$`),
			"PAIDDT-": regexp.MustCompile(`^PAIDDT-\d{8}$`),
			"AL1-":    regexp.MustCompile(`^AL1-[^;]+(;AL2-[^;]+)?$`),
			"CY-":     regexp.MustCompile(`^CY-[^;]+;ST-[A-Z]{2};ZIP-\d{5}(-\d{4})?$`),
		},
		requireSupervising: true,
		requireGroupNTE:    true,
	}
}

// Check applies the rule set to an emitted interchange and returns the
// payer report.
func (rs *RuleSet) Check(data []byte) *report.Report {
	rep := report.New(StagePayer)

	ic, err := parse.Parse(data)
	if err != nil {
		rep.Error(CodeParse, "ISA", err.Error())
		return rep
	}

	seen := map[[3]string]string{}

	for gi, g := range ic.Groups {
		for ti, t := range g.Transactions {
			path := fmt.Sprintf("GS[%d].ST[%d]", gi, ti)
			_, claims := t.Claims()
			for ci, segs := range claims {
				cpath := fmt.Sprintf("%s.CLM[%d]", path, ci)
				rs.checkClaim(segs, cpath, ic.Delimiters, rep)
				rs.checkDuplicate(segs, cpath, ic.Delimiters, seen, rep)
			}
		}
	}

	return rep
}

// checkClaim applies the per-claim content rules.
func (rs *RuleSet) checkClaim(segs []*x12.Segment, path string, delims *x12.Delimiters, rep *report.Report) {
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

	rs.checkK3Grammar(claimRegion, path, rep)
	for si, block := range services {
		rs.checkK3Grammar(block, fmt.Sprintf("%s.LX[%d]", path, si), rep)
	}

	if rs.requireGroupNTE && !hasGroupNTE(claimRegion) {
		rep.Error(CodeMissingGroupNTE, path, "claim is missing the NTE*ADD*GRP- member group note")
	}

	if rs.requireSupervising && needsSupervising(services, delims) && !hasSupervising(segs) {
		rep.Error(CodeNoSupervising, path,
			"special-transport HCPCS requires a supervising provider loop")
	}

	if deniedK3(claimRegion) && !hasCAS(claimRegion) {
		rep.Error(CodeMissingCAS, path, "denied claim carries no claim-level CAS adjustment")
	}
	for si, block := range services {
		if deniedK3(block) && !hasCAS(block) {
			rep.Addf(x12.SeverityError, CodeMissingCAS, fmt.Sprintf("%s.LX[%d]", path, si),
				"denied service line carries no CAS adjustment")
		}
	}
}

// checkK3Grammar validates every K3 value against the payer grammar.
func (rs *RuleSet) checkK3Grammar(segs []*x12.Segment, path string, rep *report.Report) {
	for _, s := range segs {
		if s.Tag != "K3" {
			continue
		}
		value := s.Element(1)
		matched := false
		for prefix, pattern := range rs.k3 {
			if strings.HasPrefix(value, prefix) {
				matched = true
				if !pattern.MatchString(value) {
					rep.Addf(x12.SeverityError, CodeK3Grammar, path,
						"K3 value %q does not match the %s%s grammar", value, rs.Name, prefix)
				}
				break
			}
		}
		if !matched {
			rep.Addf(x12.SeverityError, CodeK3Grammar, path,
				"K3 value %q has no recognized prefix", value)
		}
	}
}

// checkDuplicate enforces the NEMIS duplicate criterion: the triple
// (CLM01, CLM05-3, REF*F8) must be unique within the interchange.
func (rs *RuleSet) checkDuplicate(segs []*x12.Segment, path string, delims *x12.Delimiters, seen map[[3]string]string, rep *report.Report) {
	var clm *x12.Segment
	original := ""
	// REF*F8 lives in the 2300 region only; stop scanning at the first
	// service line.
scan:
	for _, s := range segs {
		switch {
		case s.Tag == "CLM" && clm == nil:
			clm = s
		case s.Tag == "REF" && s.Element(1) == "F8":
			original = s.Element(2)
		case s.Tag == "LX":
			break scan
		}
	}
	if clm == nil {
		return
	}

	key := [3]string{clm.Element(1), clm.Component(5, 3, delims), original}
	if prior, ok := seen[key]; ok {
		rep.Addf(x12.SeverityError, CodeDuplicate, path,
			"duplicate claim triple (%s, %s, %s) already emitted at %s",
			key[0], key[1], key[2], prior)
		return
	}
	seen[key] = path
}

func hasGroupNTE(segs []*x12.Segment) bool {
	for _, s := range segs {
		if s.Tag == "NTE" && s.Element(1) == "ADD" && strings.HasPrefix(s.Element(2), "GRP-") {
			return true
		}
	}
	return false
}

// needsSupervising reports whether any service line bills a
// special-transport HCPCS code.
func needsSupervising(services [][]*x12.Segment, delims *x12.Delimiters) bool {
	for _, block := range services {
		for _, s := range block {
			if s.Tag == "SV1" && codes.SpecialTransport(s.Component(1, 2, delims)) {
				return true
			}
		}
	}
	return false
}

func hasSupervising(segs []*x12.Segment) bool {
	for _, s := range segs {
		if s.Tag == "NM1" && s.Element(1) == "DQ" {
			return true
		}
	}
	return false
}

// deniedK3 reports whether a region carries the denied payment status
// marker.
func deniedK3(segs []*x12.Segment) bool {
	for _, s := range segs {
		if s.Tag == "K3" && s.Element(1) == "PYMS-D" {
			return true
		}
	}
	return false
}

func hasCAS(segs []*x12.Segment) bool {
	for _, s := range segs {
		if s.Tag == "CAS" {
			return true
		}
	}
	return false
}
