// Package codes holds the closed code tables used across the pipeline:
// places of service, ambulance transport and reason codes, the NEMT
// HCPCS procedure subset, origin/destination and functional modifiers,
// claim frequency codes, and payer presets.
//
// Tables are immutable after process startup and safe for concurrent
// reads. Lookups never mutate data:
//
//	desc, ok := codes.Lookup(codes.KindHCPCS, "A0425")
//
// Unknown codes are reported, not rejected; the pre-submission validator
// downgrades registry misses on HCPCS and modifiers to warnings so
// experimental codes can flow through.
package codes
