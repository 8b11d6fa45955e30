package encode

import (
	"time"

	"github.com/dshills/go837/codes"
	"github.com/dshills/go837/x12"
)

// Transaction set constants for the 837 professional implementation.
const (
	// ImplementationConvention is the 837P implementation convention
	// reference carried in ST03 and GS08.
	ImplementationConvention = "005010X222A1"
	// interchangeVersion is the ISA12 interchange control version.
	interchangeVersion = "00501"
)

// Usage indicators for ISA15.
const (
	UsageTest       = "T"
	UsageProduction = "P"
)

// encoderConfig holds the configuration for interchange assembly.
type encoderConfig struct {
	senderQual    string
	senderID      string
	receiverQual  string
	receiverID    string
	gsSenderCode  string
	gsReceiverCode string
	usage         string
	preset        *codes.PayerPreset
	cr1Locations  bool
	delims        *x12.Delimiters
	pretty        bool
	now           func() time.Time

	// submission metadata for the SUB/IPAD/USER K3 block
	submissionID  string
	submitterIP   string
	submitterUser string
}

// defaultConfig returns an encoderConfig with default settings: ZZ
// qualifiers, production usage, CR109/CR110 location mode, standard
// delimiters.
func defaultConfig() encoderConfig {
	return encoderConfig{
		senderQual:   "ZZ",
		receiverQual: "ZZ",
		usage:        UsageProduction,
		cr1Locations: true,
		delims:       x12.DefaultDelimiters(),
		now:          time.Now,
	}
}

// Option is a functional option for configuring an Encoder.
type Option func(*encoderConfig)

// WithSender sets the interchange sender qualifier and id (ISA05/ISA06).
func WithSender(qualifier, id string) Option {
	return func(c *encoderConfig) {
		if qualifier != "" {
			c.senderQual = qualifier
		}
		c.senderID = id
	}
}

// WithReceiver sets the interchange receiver qualifier and id
// (ISA07/ISA08).
func WithReceiver(qualifier, id string) Option {
	return func(c *encoderConfig) {
		if qualifier != "" {
			c.receiverQual = qualifier
		}
		c.receiverID = id
	}
}

// WithGSCodes sets the functional group application sender and receiver
// codes (GS02/GS03). They default to the interchange sender and receiver
// ids.
func WithGSCodes(sender, receiver string) Option {
	return func(c *encoderConfig) {
		c.gsSenderCode = sender
		c.gsReceiverCode = receiver
	}
}

// WithUsageIndicator sets ISA15: T for test, P for production.
func WithUsageIndicator(usage string) Option {
	return func(c *encoderConfig) {
		if usage == UsageTest || usage == UsageProduction {
			c.usage = usage
		}
	}
}

// WithPayerPreset applies a payer preset: the preset's payer id and name
// override the claim receiver, and its interchange addressing overrides
// the receiver qualifier and id.
func WithPayerPreset(p codes.PayerPreset) Option {
	return func(c *encoderConfig) {
		preset := p
		c.preset = &preset
		c.receiverQual = p.InterchangeQualifier
		c.receiverID = p.InterchangeReceiver
	}
}

// WithCR1Locations selects the pickup/dropoff emission mode. When true
// (the default) CR109/CR110 carry encoded location descriptors and loops
// 2310E/F and 2420G/H are suppressed; when false the legacy NTE segments
// and location loops are emitted and CR1 stops at element eight.
func WithCR1Locations(enable bool) Option {
	return func(c *encoderConfig) {
		c.cr1Locations = enable
	}
}

// WithDelimiters overrides the wire delimiters, for debugging against
// systems with nonstandard separators.
func WithDelimiters(d *x12.Delimiters) Option {
	return func(c *encoderConfig) {
		if d != nil {
			c.delims = d
		}
	}
}

// WithPretty enables diagnostic pretty mode: a newline after every
// segment terminator. Pretty output has no semantic meaning to the payer.
func WithPretty(pretty bool) Option {
	return func(c *encoderConfig) {
		c.pretty = pretty
	}
}

// WithClock overrides the time source used for ISA09/ISA10 and GS04/GS05.
// Tests use a fixed clock for byte-stable output.
func WithClock(now func() time.Time) Option {
	return func(c *encoderConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSubmissionMeta sets the submission id, submitter IP, and submitter
// user carried in the claim-level SUB/IPAD/USER K3 block.
func WithSubmissionMeta(id, ip, user string) Option {
	return func(c *encoderConfig) {
		c.submissionID = id
		c.submitterIP = ip
		c.submitterUser = user
	}
}
