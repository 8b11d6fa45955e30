// Package batch turns ordered trip records into claims and drives them
// through the pipeline into a single shared interchange.
//
// Trips group by (billing NPI, rendering NPI, date of service, member
// id), stable by arrival order; trips with equal keys combine into one
// claim with their services in input order. Submission channel
// aggregates to ELECTRONIC when any trip in the group is electronic;
// member group, payment status, and network indicator must agree across
// a group.
//
// The processor enriches and validates each claim, excludes invalid
// claims while continuing with the rest, detects duplicate claim
// triples, assembles per-claim transaction bodies on a bounded worker
// pool, and serializes envelope assembly so control numbers stay
// monotonic. When every claim fails, no interchange is emitted and only
// the reports are returned.
package batch
