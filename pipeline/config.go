package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dshills/go837/claim"
	"github.com/dshills/go837/codes"
	"github.com/dshills/go837/encode"
	"github.com/dshills/go837/x12"
)

// Config carries the recognized pipeline configuration keys. The zero
// value is usable: ZZ qualifiers, production usage, CR109/CR110 location
// mode, standard delimiters, and a no-op logger.
type Config struct {
	InterchangeSenderQual   string `yaml:"interchange_sender_qual"`
	InterchangeSenderID     string `yaml:"interchange_sender_id"`
	InterchangeReceiverQual string `yaml:"interchange_receiver_qual"`
	InterchangeReceiverID   string `yaml:"interchange_receiver_id"`
	GSSenderCode            string `yaml:"gs_sender_code"`
	GSReceiverCode          string `yaml:"gs_receiver_code"`

	// UsageIndicator is ISA15: T for test, P for production.
	UsageIndicator string `yaml:"usage_indicator"`

	// PayerPreset selects a known payer by symbolic key (e.g. "UHC_CS").
	// When set it overrides the claim receiver and the interchange
	// receiver addressing. An unknown key is a configuration error.
	PayerPreset string `yaml:"payer_preset"`

	// UseCR1Locations selects the pickup/dropoff emission mode; nil
	// means the default (true).
	UseCR1Locations *bool `yaml:"use_cr1_locations"`

	// SegmentTerminator and ElementSeparator override the wire
	// delimiters for debugging; each must be a single character.
	SegmentTerminator string `yaml:"segment_terminator"`
	ElementSeparator  string `yaml:"element_separator"`

	// Pretty breaks lines after every segment terminator, for
	// diagnostics only.
	Pretty bool `yaml:"pretty"`

	// Submission metadata carried in the claim-level K3 block.
	SubmissionID  string `yaml:"submission_id"`
	SubmitterIP   string `yaml:"submitter_ip"`
	SubmitterUser string `yaml:"submitter_user"`

	// Submitter and Receiver apply to batch-grouped claims, which have
	// no claim-level submitter of their own.
	Submitter claim.Submitter `yaml:"submitter"`
	Receiver  claim.Receiver  `yaml:"receiver"`

	// Parallelism bounds the batch worker pool; below 1 selects the CPU
	// count.
	Parallelism int `yaml:"parallelism"`

	// Logger receives diagnostic events; nil discards them.
	Logger *zerolog.Logger `yaml:"-"`

	// Clock overrides the time source for envelope dates, for
	// byte-stable test output.
	Clock func() time.Time `yaml:"-"`
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// encoderOptions translates the configuration into encoder options.
// Malformed configuration fails loudly here: an unknown payer preset or
// a multi-character delimiter is a programmer error, not a claim defect.
func (c Config) encoderOptions() ([]encode.Option, error) {
	opts := []encode.Option{
		encode.WithSender(c.InterchangeSenderQual, c.InterchangeSenderID),
		encode.WithReceiver(c.InterchangeReceiverQual, c.InterchangeReceiverID),
		encode.WithGSCodes(c.GSSenderCode, c.GSReceiverCode),
	}

	if c.UsageIndicator != "" {
		if c.UsageIndicator != encode.UsageTest && c.UsageIndicator != encode.UsageProduction {
			return nil, fmt.Errorf("usage_indicator must be T or P, got %q", c.UsageIndicator)
		}
		opts = append(opts, encode.WithUsageIndicator(c.UsageIndicator))
	}

	if c.PayerPreset != "" {
		preset, ok := codes.Preset(c.PayerPreset)
		if !ok {
			return nil, fmt.Errorf("unknown payer_preset %q (known: %v)", c.PayerPreset, codes.PresetKeys())
		}
		opts = append(opts, encode.WithPayerPreset(preset))
	}

	if c.UseCR1Locations != nil {
		opts = append(opts, encode.WithCR1Locations(*c.UseCR1Locations))
	}

	delims, err := c.delimiters()
	if err != nil {
		return nil, err
	}
	if delims != nil {
		opts = append(opts, encode.WithDelimiters(delims))
	}

	if c.Pretty {
		opts = append(opts, encode.WithPretty(true))
	}
	if c.Clock != nil {
		opts = append(opts, encode.WithClock(c.Clock))
	}
	if c.SubmissionID != "" || c.SubmitterIP != "" || c.SubmitterUser != "" {
		opts = append(opts, encode.WithSubmissionMeta(c.SubmissionID, c.SubmitterIP, c.SubmitterUser))
	}

	return opts, nil
}

// delimiters builds the override delimiter set, or nil when the defaults
// apply.
func (c Config) delimiters() (*x12.Delimiters, error) {
	if c.SegmentTerminator == "" && c.ElementSeparator == "" {
		return nil, nil
	}
	d := x12.DefaultDelimiters()
	if c.SegmentTerminator != "" {
		if len([]rune(c.SegmentTerminator)) != 1 {
			return nil, fmt.Errorf("segment_terminator must be one character, got %q", c.SegmentTerminator)
		}
		d.Segment = []rune(c.SegmentTerminator)[0]
	}
	if c.ElementSeparator != "" {
		if len([]rune(c.ElementSeparator)) != 1 {
			return nil, fmt.Errorf("element_separator must be one character, got %q", c.ElementSeparator)
		}
		d.Element = []rune(c.ElementSeparator)[0]
	}
	return d, nil
}
