// Package pipeline is the public entry point: it wires the enricher,
// the pre-submission validator, the EDI writer, the compliance checker,
// and the payer rule validator into the two supported flows, a single
// claim and a batch of trips.
package pipeline

import (
	"github.com/dshills/go837/batch"
	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/compliance"
	"github.com/dshills/go837/encode"
	"github.com/dshills/go837/enrich"
	"github.com/dshills/go837/payer"
	"github.com/dshills/go837/report"
	"github.com/dshills/go837/validate"
)

// Result is the outcome of building a single claim.
type Result struct {
	// EDI is the emitted interchange, nil when pre-submission
	// validation blocked the claim.
	EDI []byte
	// Pre is the pre-submission validation report.
	Pre *report.Report
	// Compliance is the structural report over the emitted bytes, nil
	// when nothing was emitted.
	Compliance *report.Report
	// Payer is the payer rule report over the emitted bytes, nil when
	// nothing was emitted.
	Payer *report.Report
}

// Valid reports whether every produced report is free of errors.
func (r *Result) Valid() bool {
	for _, rep := range []*report.Report{r.Pre, r.Compliance, r.Payer} {
		if rep != nil && !rep.Valid() {
			return false
		}
	}
	return r.EDI != nil
}

// Reports merges the stage reports into one, in pipeline order.
func (r *Result) Reports() *report.Report {
	merged := report.New("pipeline")
	merged.Merge(r.Pre)
	merged.Merge(r.Compliance)
	merged.Merge(r.Payer)
	return merged
}

// Build enriches, validates, and emits a single claim. Validation
// failures return a report with no bytes and a nil error; only malformed
// configuration fails loudly.
func Build(c *claim.Claim, cfg Config) (*Result, error) {
	opts, err := cfg.encoderOptions()
	if err != nil {
		return nil, err
	}

	enrich.Claim(c)

	res := &Result{Pre: validate.New().Validate(c)}
	if !res.Pre.Valid() {
		return res, nil
	}

	edi, err := encode.New(opts...).Encode([]*claim.Claim{c})
	if err != nil {
		return nil, err
	}

	res.EDI = edi
	res.Compliance = compliance.Check(edi)
	res.Payer = payer.UHC().Check(edi)
	return res, nil
}

// BuildBatch groups the trips into claims and emits one interchange for
// the batch. Invalid claims are excluded but reported; the call fails
// only on malformed configuration.
func BuildBatch(trips []*claim.Trip, cfg Config) (*batch.Result, error) {
	opts, err := cfg.encoderOptions()
	if err != nil {
		return nil, err
	}

	popts := []batch.ProcessorOption{
		batch.WithSubmitter(cfg.Submitter),
		batch.WithReceiver(cfg.Receiver),
		batch.WithEncoder(encode.New(opts...)),
		batch.WithPayerRules(payer.UHC()),
		batch.WithParallelism(cfg.Parallelism),
	}
	if cfg.Logger != nil {
		popts = append(popts, batch.WithLogger(*cfg.Logger))
	}
	return batch.NewProcessor(popts...).Process(trips)
}
