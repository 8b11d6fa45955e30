package encode

import (
	"strconv"
	"time"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/internal/edifmt"
	"github.com/dshills/go837/x12"
)

// Encoder assembles 837P interchanges. An Encoder is immutable after
// construction and safe for concurrent use; per-claim transaction bodies
// are built on independent scratch writers.
type Encoder struct {
	cfg encoderConfig
}

// New creates an Encoder with the given options.
func New(opts ...Option) *Encoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Encoder{cfg: cfg}
}

// Encode builds a complete interchange containing one transaction set per
// claim, with control numbers seeded at 1.
func (e *Encoder) Encode(claims []*claim.Claim) ([]byte, error) {
	return e.EncodeWithControl(claims, x12.NewControlNumbers(1, 1, 1))
}

// EncodeWithControl builds a complete interchange using caller-seeded
// control numbers. The control number state is owned by this call for its
// duration and is advanced past the emitted interchange on success.
func (e *Encoder) EncodeWithControl(claims []*claim.Claim, ctl *x12.ControlNumbers) ([]byte, error) {
	bodies := make([]*x12.Writer, 0, len(claims))
	for _, c := range claims {
		body, err := e.TransactionBody(c)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	return e.Assemble(bodies, ctl)
}

// TransactionBody builds the segments of one transaction set, exclusive
// of the ST and SE envelope: BHT, the submitter/receiver loops, the
// billing and subscriber hierarchy, the claim loop, and its service
// loops. Bodies are pure functions of the claim and configuration and
// may be built concurrently.
func (e *Encoder) TransactionBody(c *claim.Claim) (*x12.Writer, error) {
	if err := e.checkMandatory(c); err != nil {
		return nil, err
	}

	b := &builder{
		w:   x12.NewWriter(x12.WithDelimiters(e.cfg.delims), x12.WithPretty(e.cfg.pretty)),
		cfg: &e.cfg,
	}

	now := e.cfg.now()
	b.emit("BHT", "0019", "00", c.Info.Number, edifmt.GSDate(now), edifmt.ISATime(now), "CH")

	payerName, payerID := e.receiver(c)
	b.submitterLoops(c, payerName, payerID)
	b.billingHierarchy(c)
	b.subscriberHierarchy(c, payerName, payerID)
	b.claimLoop(c)
	for i, s := range c.Services {
		b.serviceLoop(c, s, i+1)
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.w, nil
}

// Assemble wraps transaction bodies in the shared envelope. Control
// number assignment and segment concatenation are serialized here; this
// is the only place interchange state is mutated.
func (e *Encoder) Assemble(bodies []*x12.Writer, ctl *x12.ControlNumbers) ([]byte, error) {
	if len(bodies) == 0 {
		return nil, &x12.WriterError{Message: "no transaction bodies to assemble"}
	}
	if ctl == nil {
		ctl = x12.NewControlNumbers(1, 1, 1)
	}

	w := x12.NewWriter(x12.WithDelimiters(e.cfg.delims), x12.WithPretty(e.cfg.pretty))
	now := e.cfg.now()

	if err := e.emitISA(w, now, ctl); err != nil {
		return nil, err
	}
	if err := e.emitGS(w, now, ctl); err != nil {
		return nil, err
	}

	for _, body := range bodies {
		st := ctl.NextTransaction()
		w.MarkST()
		if err := w.Emit("ST", "837", st, ImplementationConvention); err != nil {
			return nil, err
		}
		if err := w.Append(body); err != nil {
			return nil, err
		}
		if err := w.EndTransaction(st); err != nil {
			return nil, err
		}
	}

	if err := w.Emit("GE", strconv.Itoa(len(bodies)), ctl.GS06()); err != nil {
		return nil, err
	}
	if err := w.Emit("IEA", "1", ctl.ISA13()); err != nil {
		return nil, err
	}

	ctl.AdvanceInterchange()
	return w.Bytes(), nil
}

// emitISA writes the fixed-width interchange header. ISA is emitted raw:
// its sixteenth element is the component separator character itself.
func (e *Encoder) emitISA(w *x12.Writer, now time.Time, ctl *x12.ControlNumbers) error {
	d := e.cfg.delims
	return w.EmitRaw("ISA",
		"00", edifmt.Fixed("", 10),
		"00", edifmt.Fixed("", 10),
		e.cfg.senderQual, edifmt.Fixed(e.cfg.senderID, 15),
		e.cfg.receiverQual, edifmt.Fixed(e.cfg.receiverID, 15),
		edifmt.ISADate(now), edifmt.ISATime(now),
		string(d.Repetition), interchangeVersion, ctl.ISA13(),
		"0", e.cfg.usage, string(d.Component),
	)
}

// emitGS writes the functional group header.
func (e *Encoder) emitGS(w *x12.Writer, now time.Time, ctl *x12.ControlNumbers) error {
	sender := e.cfg.gsSenderCode
	if sender == "" {
		sender = e.cfg.senderID
	}
	receiver := e.cfg.gsReceiverCode
	if receiver == "" {
		receiver = e.cfg.receiverID
	}
	return w.Emit("GS", "HC", sender, receiver,
		edifmt.GSDate(now), edifmt.ISATime(now),
		ctl.GS06(), "X", ImplementationConvention,
	)
}

// receiver resolves the destination payer, letting a configured preset
// override the claim's receiver block.
func (e *Encoder) receiver(c *claim.Claim) (name, id string) {
	if p := e.cfg.preset; p != nil {
		return p.PayerName, p.PayerID
	}
	return c.Receiver.PayerName, c.Receiver.PayerID
}

// checkMandatory is the writer's last-line defense: the validator should
// have rejected claims missing these fields, so absence here is an
// upstream inconsistency.
func (e *Encoder) checkMandatory(c *claim.Claim) error {
	switch {
	case c == nil:
		return &x12.WriterError{Message: "claim is nil"}
	case c.Info.Number == "":
		return &x12.WriterError{Segment: "CLM", Element: 1, Cause: x12.ErrMissingElement, Message: "claim number"}
	case c.Info.From == "":
		return &x12.WriterError{Segment: "DTP", Cause: x12.ErrMissingElement, Message: "claim from date"}
	case c.Submitter.Name == "" || c.Submitter.ID == "":
		return &x12.WriterError{Segment: "NM1", Cause: x12.ErrMissingElement, Message: "submitter"}
	case c.BillingProvider.NPI == "" || c.BillingProvider.Name == "":
		return &x12.WriterError{Segment: "NM1", Cause: x12.ErrMissingElement, Message: "billing provider"}
	case c.Subscriber.MemberID == "":
		return &x12.WriterError{Segment: "NM1", Cause: x12.ErrMissingElement, Message: "subscriber member id"}
	case len(c.Services) == 0:
		return &x12.WriterError{Segment: "LX", Cause: x12.ErrMissingElement, Message: "claim has no service lines"}
	}
	if e.cfg.preset == nil && (c.Receiver.PayerID == "" || c.Receiver.PayerName == "") {
		return &x12.WriterError{Segment: "NM1", Cause: x12.ErrMissingElement, Message: "receiver payer"}
	}
	return nil
}

// builder accumulates segments for one transaction body with a sticky
// error, so loop emitters read as straight-line code.
type builder struct {
	w   *x12.Writer
	cfg *encoderConfig
	err error
}

func (b *builder) emit(tag string, elements ...string) {
	if b.err != nil {
		return
	}
	b.err = b.w.Emit(tag, elements...)
}

// composite joins parts with the component separator, trimming trailing
// empties.
func (b *builder) composite(parts ...string) string {
	if b.err != nil {
		return ""
	}
	s, err := b.w.Composite(parts...)
	if err != nil {
		b.err = err
		return ""
	}
	return s
}
