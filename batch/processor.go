package batch

import (
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/compliance"
	"github.com/dshills/go837/encode"
	"github.com/dshills/go837/enrich"
	"github.com/dshills/go837/payer"
	"github.com/dshills/go837/report"
	"github.com/dshills/go837/validate"
	"github.com/dshills/go837/x12"
)

// Processor drives grouped claims through the pipeline into one shared
// interchange. A Processor is safe for concurrent use; each Process call
// owns its own control number state.
type Processor struct {
	submitter   claim.Submitter
	receiver    claim.Receiver
	encoder     *encode.Encoder
	validator   *validate.Validator
	rules       *payer.RuleSet
	logger      zerolog.Logger
	parallelism int
}

// ProcessorOption is a functional option for configuring a Processor.
type ProcessorOption func(*Processor)

// WithSubmitter sets the submitter applied to every grouped claim.
func WithSubmitter(s claim.Submitter) ProcessorOption {
	return func(p *Processor) { p.submitter = s }
}

// WithReceiver sets the destination payer applied to every grouped
// claim. An encoder payer preset still overrides it on the wire.
func WithReceiver(r claim.Receiver) ProcessorOption {
	return func(p *Processor) { p.receiver = r }
}

// WithEncoder sets the interchange encoder.
func WithEncoder(e *encode.Encoder) ProcessorOption {
	return func(p *Processor) { p.encoder = e }
}

// WithPayerRules sets the payer rule set applied after assembly.
func WithPayerRules(rs *payer.RuleSet) ProcessorOption {
	return func(p *Processor) { p.rules = rs }
}

// WithLogger sets the diagnostic logger. The default discards all
// events; diagnostic output stays the caller's choice.
func WithLogger(l zerolog.Logger) ProcessorOption {
	return func(p *Processor) { p.logger = l }
}

// WithParallelism bounds the worker pool that assembles per-claim
// transaction bodies. Values below 1 select the CPU count.
func WithParallelism(n int) ProcessorOption {
	return func(p *Processor) { p.parallelism = n }
}

// NewProcessor creates a batch processor with the given options.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{
		encoder:   encode.New(),
		validator: validate.New(),
		rules:     payer.UHC(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.parallelism < 1 {
		p.parallelism = runtime.NumCPU()
	}
	return p
}

// ClaimResult is the outcome for one grouped claim.
type ClaimResult struct {
	// Number is the claim number.
	Number string
	// Claim is the enriched claim record.
	Claim *claim.Claim
	// Pre is the pre-submission validation report.
	Pre *report.Report
	// Emitted is true when the claim made it into the interchange.
	Emitted bool
}

// Result is the outcome of processing one batch.
type Result struct {
	// BatchID uniquely identifies this processing run.
	BatchID string
	// EDI is the emitted interchange, nil when every claim failed.
	EDI []byte
	// Batch is the grouping, deduplication, and writer-failure report.
	Batch *report.Report
	// Compliance is the structural report over the emitted bytes, nil
	// when nothing was emitted.
	Compliance *report.Report
	// Payer is the payer rule report over the emitted bytes, nil when
	// nothing was emitted.
	Payer *report.Report
	// Claims are the per-claim outcomes in emission order, including
	// excluded claims.
	Claims []*ClaimResult
}

// Process groups the trips into claims and emits one interchange
// containing every claim that survives validation. Invalid claims are
// excluded and reported; writer failures are caught per claim and
// converted to batch errors; the batch continues with the remaining
// claims.
func (p *Processor) Process(trips []*claim.Trip) (*Result, error) {
	res := &Result{
		BatchID: uuid.NewString(),
		Batch:   report.New(StageBatch),
	}

	if len(trips) == 0 {
		res.Batch.Error(CodeEmptyBatch, "", "batch contains no trips")
		return res, nil
	}

	grouped := Group(trips, p.submitter, p.receiver, res.Batch)
	p.logger.Debug().Int("trips", len(trips)).Int("claims", len(grouped)).
		Str("batch_id", res.BatchID).Msg("grouped batch")

	emit := p.validateClaims(grouped, res)
	emit = p.dedupe(emit, res.Batch)

	if len(emit) == 0 {
		res.Batch.Info(CodeExcluded, "", "no valid claims to emit")
		return res, nil
	}

	bodies := p.assembleBodies(emit, res)
	if len(bodies) == 0 {
		return res, nil
	}

	edi, err := p.encoder.Assemble(bodies, x12.NewControlNumbers(1, 1, 1))
	if err != nil {
		// Assembly failures are not claim-specific; the batch has no
		// output.
		res.Batch.Error(CodeWriterFailed, "", err.Error())
		return res, nil
	}

	res.EDI = edi
	res.Compliance = compliance.Check(edi)
	res.Payer = p.rules.Check(edi)
	return res, nil
}

// validateClaims enriches and validates each grouped claim, recording a
// per-claim result and returning the claims eligible for emission.
func (p *Processor) validateClaims(grouped []*Grouped, res *Result) []*ClaimResult {
	var emit []*ClaimResult
	for _, g := range grouped {
		enrich.Claim(g.Claim)
		cr := &ClaimResult{
			Number: g.Claim.Info.Number,
			Claim:  g.Claim,
			Pre:    p.validator.Validate(g.Claim),
		}
		res.Claims = append(res.Claims, cr)

		switch {
		case g.Excluded:
			res.Batch.Addf(x12.SeverityInfo, CodeExcluded, cr.Number,
				"claim excluded: aggregation disagreement")
		case !cr.Pre.Valid():
			res.Batch.Addf(x12.SeverityError, CodeExcluded, cr.Number,
				"claim excluded: %d pre-submission errors", len(cr.Pre.Errors()))
		default:
			emit = append(emit, cr)
		}
	}
	return emit
}

// dedupe drops claims whose duplicate triple collides with an earlier
// claim in the batch.
func (p *Processor) dedupe(emit []*ClaimResult, rep *report.Report) []*ClaimResult {
	seen := make(map[claim.DuplicateKey]string, len(emit))
	kept := emit[:0]
	for _, cr := range emit {
		key := cr.Claim.DupKey()
		if prior, ok := seen[key]; ok {
			rep.Addf(x12.SeverityError, CodeDuplicate, cr.Number,
				"duplicate of claim %s: same claim number, frequency code, and original claim number", prior)
			continue
		}
		seen[key] = cr.Number
		kept = append(kept, cr)
	}
	return kept
}

// assembleBodies builds per-claim transaction bodies on a bounded worker
// pool. Body construction is a pure function of the claim; order is
// restored afterwards so emission remains stable. Writer failures skip
// the claim and continue the batch.
func (p *Processor) assembleBodies(emit []*ClaimResult, res *Result) []*x12.Writer {
	type slot struct {
		body *x12.Writer
		err  error
	}
	slots := make([]slot, len(emit))

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.parallelism)
	for i, cr := range emit {
		wg.Add(1)
		go func(i int, cr *ClaimResult) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			body, err := p.encoder.TransactionBody(cr.Claim)
			slots[i] = slot{body: body, err: err}
		}(i, cr)
	}
	wg.Wait()

	bodies := make([]*x12.Writer, 0, len(emit))
	for i, s := range slots {
		if s.err != nil {
			res.Batch.Addf(x12.SeverityError, CodeWriterFailed, emit[i].Number,
				"writer failed: %v", s.err)
			p.logger.Warn().Str("claim", emit[i].Number).Err(s.err).Msg("claim skipped")
			continue
		}
		emit[i].Emitted = true
		bodies = append(bodies, s.body)
	}
	return bodies
}
