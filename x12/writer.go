package x12

import (
	"bytes"
	"strconv"
	"strings"
)

// Writer accumulates X12 segments into a byte stream. It owns delimiter
// policy, trailing-empty-element trimming, and the live segment counter
// used to compute SE totals.
//
// A Writer is not safe for concurrent use; per-claim scratch writers are
// cheap to create and are merged serially by the interchange emitter.
type Writer struct {
	buf     bytes.Buffer
	delims  *Delimiters
	pretty  bool
	count   int
	stStart int
	inST    bool
}

// WriterOption is a functional option for configuring a Writer.
type WriterOption func(*Writer)

// WithDelimiters sets the delimiters used for emission.
// The default is DefaultDelimiters.
func WithDelimiters(d *Delimiters) WriterOption {
	return func(w *Writer) {
		if d != nil {
			w.delims = d
		}
	}
}

// WithPretty enables diagnostic pretty mode: a newline is written after
// every segment terminator. Pretty output has no semantic meaning to the
// payer.
func WithPretty(pretty bool) WriterOption {
	return func(w *Writer) {
		w.pretty = pretty
	}
}

// NewWriter creates a new segment Writer with the given options.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		delims: DefaultDelimiters(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Delimiters returns the delimiters the writer emits with.
func (w *Writer) Delimiters() *Delimiters {
	return w.delims
}

// Emit writes one segment: the tag, the elements joined by the element
// separator with trailing empty elements trimmed, and the segment
// terminator. A segment that would consist of a bare tag is rejected.
// Elements containing reserved separator characters are rejected with a
// *WriterError; composite values must be built with Composite so their
// parts are checked individually.
func (w *Writer) Emit(tag string, elements ...string) error {
	return w.emit(tag, elements, true)
}

// EmitRaw writes one segment without the reserved-character check. It
// exists for the ISA segment, whose sixteenth element is the component
// separator character itself.
func (w *Writer) EmitRaw(tag string, elements ...string) error {
	return w.emit(tag, elements, false)
}

func (w *Writer) emit(tag string, elements []string, checked bool) error {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return &WriterError{Message: "cannot emit segment", Cause: ErrEmptyTag}
	}

	trimmed := trimTrailingEmpty(elements)
	if len(trimmed) == 0 {
		return &WriterError{Segment: tag, Message: "cannot emit segment", Cause: ErrBareSegment}
	}

	if checked {
		for i, el := range trimmed {
			if r, ok := w.reservedIn(el, false); ok {
				return &WriterError{
					Segment: tag,
					Element: i + 1,
					Message: "value " + strconv.Quote(el) + " contains " + strconv.QuoteRune(r),
					Cause:   ErrReservedCharacter,
				}
			}
		}
	}

	w.buf.WriteString(tag)
	for _, el := range trimmed {
		w.buf.WriteRune(w.delims.Element)
		w.buf.WriteString(el)
	}
	w.buf.WriteRune(w.delims.Segment)
	if w.pretty {
		w.buf.WriteByte('\n')
	}

	w.count++
	return nil
}

// Composite joins component values with the component separator, checking
// each part for reserved characters. Trailing empty components are
// trimmed so optional composite positions truncate cleanly.
func (w *Writer) Composite(parts ...string) (string, error) {
	trimmed := trimTrailingEmpty(parts)
	for i, p := range trimmed {
		if r, ok := w.reservedIn(p, true); ok {
			return "", &WriterError{
				Element: i + 1,
				Message: "composite part " + strconv.Quote(p) + " contains " + strconv.QuoteRune(r),
				Cause:   ErrReservedCharacter,
			}
		}
	}
	return strings.Join(trimmed, string(w.delims.Component)), nil
}

// reservedIn reports the first reserved rune found in value. When
// component is true the component separator is also disallowed; element
// values built by Composite legitimately contain it.
func (w *Writer) reservedIn(value string, component bool) (rune, bool) {
	for _, r := range value {
		if r == w.delims.Element || r == w.delims.Repetition || r == w.delims.Segment {
			return r, true
		}
		if component && r == w.delims.Component {
			return r, true
		}
	}
	return 0, false
}

// MarkST records the start of a transaction set. Call it immediately
// before emitting the ST segment; the counter then covers ST through the
// most recently emitted segment.
func (w *Writer) MarkST() {
	w.stStart = w.count
	w.inST = true
}

// CountSinceST returns the number of segments emitted since MarkST,
// including the ST segment itself.
func (w *Writer) CountSinceST() int {
	return w.count - w.stStart
}

// EndTransaction emits the SE trailer for the open transaction set. SE01
// is the segment count from ST through SE inclusive; SE02 is the supplied
// transaction set control number, which must equal ST02.
func (w *Writer) EndTransaction(controlNumber string) error {
	if !w.inST {
		return &WriterError{Segment: "SE", Message: "cannot close transaction", Cause: ErrNoTransactionOpen}
	}
	w.inST = false
	return w.Emit("SE", strconv.Itoa(w.CountSinceST()+1), controlNumber)
}

// SegmentCount returns the total number of segments emitted.
func (w *Writer) SegmentCount() int {
	return w.count
}

// Bytes returns the accumulated wire bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of accumulated bytes.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Append copies another writer's output onto this one, folding its
// segment count into the running total. Both writers must share the same
// delimiters. Used to merge per-claim scratch buffers into the
// interchange stream.
func (w *Writer) Append(other *Writer) error {
	if !w.delims.Equal(other.delims) {
		return &WriterError{Message: "cannot append writer with different delimiters"}
	}
	w.buf.Write(other.buf.Bytes())
	w.count += other.count
	return nil
}

// Reset discards all accumulated output and counters.
func (w *Writer) Reset() {
	w.buf.Reset()
	w.count = 0
	w.stStart = 0
	w.inST = false
}
