package model

import "fmt"

// Severity tags a diagnostic.
type Severity string

const (
	// SeverityError marks a diagnostic that reports an error.
	SeverityError Severity = "error"
	// SeverityWarning marks a diagnostic that reports a warning.
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single compiler message with its source location.
type Diagnostic struct {
	Severity Severity
	Message  string
	File     Path
	Line     int
	Column   int
}

// Location formats the source location as file:line:column, dropping the
// parts that are unknown.
func (d Diagnostic) Location() string {
	switch {
	case d.File == "":
		return ""
	case d.Line <= 0:
		return string(d.File)
	case d.Column <= 0:
		return fmt.Sprintf("%s:%d", d.File, d.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
	}
}

// Diagnostics is the ordered diagnostic output of one compilation attempt.
type Diagnostics []Diagnostic

// Tally counts diagnostics by severity.
type Tally struct {
	Errors   int
	Warnings int
}

// Status summarises a tally for the error counter.
type Status string

// Available Status values.
const (
	StatusOK       Status = "ok"
	StatusWarnings Status = "warnings"
	StatusErrors   Status = "errors"
)

// Tally partitions the diagnostics on their tag. Anything that is not a
// warning counts as an error.
func (d Diagnostics) Tally() Tally {
	var t Tally

	for _, diag := range d {
		if diag.Severity == SeverityWarning {
			t.Warnings++
			continue
		}

		t.Errors++
	}

	return t
}

// Status reports the colour bucket for the tally.
func (t Tally) Status() Status {
	switch {
	case t.Errors > 0:
		return StatusErrors
	case t.Warnings > 0:
		return StatusWarnings
	default:
		return StatusOK
	}
}
