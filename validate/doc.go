// Package validate implements the pre-submission validator: structural
// and semantic checks on an enriched claim record, producing an ordered
// report of issues.
//
// Format and presence checks run through a configured
// go-playground/validator instance with custom validations for NPIs, tax
// ids, ISO dates, HHMM times, ZIP codes, and US state codes. Business
// rules — charge balancing, mileage adjacency, replacement claim
// references, registry membership — are free-standing rule functions
// applied in a fixed order.
//
// Validation never rejects by throwing: every finding is an Issue in the
// returned report, and the claim is submittable iff the report carries no
// ERROR issues. Registry misses on HCPCS codes and modifiers are
// downgraded to warnings so experimental codes can flow through.
package validate
