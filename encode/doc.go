// Package encode assembles complete 837P interchanges from enriched,
// validated claim records.
//
// The [Encoder] owns the envelope: ISA/IEA, GS/GE, and one ST/SE
// transaction set per claim record. Within each transaction set it emits
// the submitter and receiver loops, the billing provider and subscriber
// hierarchy, the claim loop (2300) and its service loops (2400) in the
// segment order the payer companion guide requires.
//
// Two emission modes cover pickup/dropoff portability: in the default
// CR109/CR110 mode the CR1 segment carries encoded location descriptors
// in its ninth and tenth elements and the claim- and service-level
// location loops are suppressed; in legacy mode CR1 stops at element
// eight and locations travel as NTE segments plus loops 2310E/F and
// 2420G/H. The mode is selected with [WithCR1Locations].
//
// Per-claim transaction bodies are pure functions of the claim and may be
// built concurrently ([Encoder.TransactionBody]); envelope assembly and
// control-number assignment are serialized in [Encoder.Assemble] so
// numbering stays monotonic and SE totals deterministic.
//
// The encoder performs a last-line defense on mandatory fields and fails
// with a [*x12.WriterError] when handed a claim the validator should have
// rejected.
package encode
