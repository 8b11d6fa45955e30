// Package claim defines the structured records that flow through the
// pipeline: the claim tree submitted for a single professional claim, the
// service lines it carries, and the flattened trip records the batch
// processor groups into claims.
//
// Records are plain data. They are created by the caller (or by the batch
// processor's grouping step), filled in by the enrich package, checked by
// the validate package, and consumed by the encode package. Conversion
// from free-form JSON input happens once at the boundary via
// [DecodeClaim] and [DecodeTrips]; unknown fields are ignored and missing
// optional fields take their documented defaults during enrichment.
//
// Monetary amounts are decimal values, never floats; charge totals are
// compared with a one-cent tolerance.
package claim
