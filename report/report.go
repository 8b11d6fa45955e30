// Package report defines the issue and report types shared by every
// checking stage of the pipeline. Issues are values, never thrown;
// each stage accumulates them into an ordered report and the pipeline
// merges the stage reports into the final result.
package report

import (
	"fmt"
	"strings"

	"github.com/dshills/go837/x12"
)

// Issue is one finding from a validation, compliance, or payer check.
type Issue struct {
	// Severity is ERROR, WARNING, or INFO.
	Severity x12.Severity
	// Code is the stable machine-readable issue code (e.g. "VAL_003",
	// "BATCH_021").
	Code string
	// Field is the path of the offending field or segment (e.g.
	// "claim.total_charge", "2400.SV1").
	Field string
	// Message describes the finding.
	Message string
}

// String renders the issue on one line.
func (i Issue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(i.Severity.String())
	sb.WriteString("] ")
	sb.WriteString(i.Code)
	if i.Field != "" {
		sb.WriteString(" ")
		sb.WriteString(i.Field)
	}
	if i.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(i.Message)
	}
	return sb.String()
}

// Report is an ordered list of issues from one pipeline stage.
type Report struct {
	// Stage names the stage that produced the report ("pre-submission",
	// "compliance", "payer", "batch").
	Stage  string
	issues []Issue
}

// New creates an empty report for a stage.
func New(stage string) *Report {
	return &Report{Stage: stage}
}

// Add appends an issue to the report.
func (r *Report) Add(severity x12.Severity, code, field, message string) {
	r.issues = append(r.issues, Issue{
		Severity: severity,
		Code:     code,
		Field:    field,
		Message:  message,
	})
}

// Addf appends an issue with a formatted message.
func (r *Report) Addf(severity x12.Severity, code, field, format string, args ...any) {
	r.Add(severity, code, field, fmt.Sprintf(format, args...))
}

// Error appends an ERROR issue.
func (r *Report) Error(code, field, message string) {
	r.Add(x12.SeverityError, code, field, message)
}

// Warning appends a WARNING issue.
func (r *Report) Warning(code, field, message string) {
	r.Add(x12.SeverityWarning, code, field, message)
}

// Info appends an INFO issue.
func (r *Report) Info(code, field, message string) {
	r.Add(x12.SeverityInfo, code, field, message)
}

// Valid returns true iff the report contains no ERROR issues.
func (r *Report) Valid() bool {
	for _, i := range r.issues {
		if i.Severity == x12.SeverityError {
			return false
		}
	}
	return true
}

// Issues returns a copy of the ordered issue list.
func (r *Report) Issues() []Issue {
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Errors returns only the ERROR issues, in order.
func (r *Report) Errors() []Issue {
	var out []Issue
	for _, i := range r.issues {
		if i.Severity == x12.SeverityError {
			out = append(out, i)
		}
	}
	return out
}

// Len returns the number of issues.
func (r *Report) Len() int {
	return len(r.issues)
}

// Merge appends all issues from another report, preserving order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.issues = append(r.issues, other.issues...)
}

// KV serializes the report as one key/value row per issue, suitable for
// structured output.
func (r *Report) KV() []map[string]string {
	rows := make([]map[string]string, 0, len(r.issues))
	for _, i := range r.issues {
		rows = append(rows, map[string]string{
			"stage":    r.Stage,
			"severity": i.Severity.String(),
			"code":     i.Code,
			"field":    i.Field,
			"message":  i.Message,
		})
	}
	return rows
}

// Table renders the report as fixed-width text, one issue per line, with
// a trailing validity line.
func (r *Report) Table() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-8s %-10s %-36s %s\n", "SEVERITY", "CODE", "FIELD", "MESSAGE")
	for _, i := range r.issues {
		fmt.Fprintf(&sb, "%-8s %-10s %-36s %s\n", i.Severity.String(), i.Code, i.Field, i.Message)
	}
	fmt.Fprintf(&sb, "valid: %t\n", r.Valid())
	return sb.String()
}
