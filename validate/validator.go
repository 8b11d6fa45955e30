package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/report"
)

// Issue codes produced by the pre-submission validator. The BATCH_02x
// codes are shared with the batch processor, which runs the same
// adjacency rule over combined service lists.
const (
	CodeFormat            = "VAL_001"
	CodeUnknownCode       = "VAL_002"
	CodeChargeSum         = "VAL_003"
	CodeMissingOriginal   = "VAL_004"
	CodeZeroCharge        = "VAL_005"
	CodeModifierShape     = "VAL_006"
	CodeNoServices        = "VAL_007"
	CodeUnknownHCPCS      = "VAL_101"
	CodeUnknownModifier   = "VAL_102"
	CodeNoSupervising     = "VAL_103"
	CodeAmbiguousLocation = "VAL_104"
	CodeMileageFirst      = "BATCH_021"
	CodeMileageRun        = "BATCH_022"
)

// StagePreSubmission names the report produced here.
const StagePreSubmission = "pre-submission"

// Validator checks enriched claim records against the data model and the
// NEMT business rules. The zero value is not usable; construct with New.
// A Validator is safe for concurrent use.
type Validator struct {
	formats *validator.Validate
}

// New creates a pre-submission validator.
func New() *Validator {
	return &Validator{formats: newFormatValidator()}
}

// Validate checks the claim and returns the ordered report. The claim
// must already be enriched; defaults are not applied here.
func (v *Validator) Validate(c *claim.Claim) *report.Report {
	rep := report.New(StagePreSubmission)

	if c == nil {
		rep.Error(CodeFormat, "", "claim is nil")
		return rep
	}

	v.checkFormats(c, rep)

	for _, rule := range claimRules {
		rule(c, rep)
	}

	return rep
}

// checkFormats runs the struct-tag format and presence checks and
// converts each failure into an ERROR issue.
func (v *Validator) checkFormats(c *claim.Claim, rep *report.Report) {
	err := v.formats.Struct(c)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// An InvalidValidationError means the record itself was not a
		// struct; that is a programmer error, reported as a single issue.
		rep.Error(CodeFormat, "", err.Error())
		return
	}

	for _, fe := range verrs {
		rep.Error(CodeFormat, fieldPath(fe.Namespace()), formatMessage(fe))
	}
}
