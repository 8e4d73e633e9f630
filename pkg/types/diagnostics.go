package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Parse Diagnostics
// -----------------------------------------------------------------------------
//
// Non-fatal findings are collected here instead of being printed:
//   - duplicate [key] declarations (SevWarning)
//   - values skipped in lenient mode (SevError, Err holds the *Error)
//
// Entries keep input order so identical input yields identical reports.

// Severity classifies how serious a diagnostic is.
type Severity int

const (
	SevInfo    Severity = iota // Informational (unusual but valid)
	SevWarning                 // Input accepted, but probably not what the author meant
	SevError                   // A value was dropped
)

// String implements the Stringer interface for Severity.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalJSON renders the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Diagnostic is a single non-fatal finding.
type Diagnostic struct {
	Severity  Severity `json:"severity"`
	File      string   `json:"file,omitempty"`
	Line      int      `json:"line,omitempty"`
	KeyPath   string   `json:"key_path,omitempty"`
	ValueName string   `json:"value_name,omitempty"`
	Issue     string   `json:"issue"`
	Err       *Error   `json:"-"`
}

// Diagnostics collects findings in the order they were produced.
type Diagnostics struct {
	Entries []Diagnostic `json:"diagnostics"`
	Summary DiagSummary  `json:"summary"`
}

// DiagSummary provides quick counts.
type DiagSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Add appends a diagnostic and updates the summary.
func (d *Diagnostics) Add(diag Diagnostic) {
	d.Entries = append(d.Entries, diag)
	switch diag.Severity {
	case SevError:
		d.Summary.Errors++
	case SevWarning:
		d.Summary.Warnings++
	case SevInfo:
		d.Summary.Info++
	}
}

// Merge appends every entry of other, tagging entries that have no file
// with file.
func (d *Diagnostics) Merge(other Diagnostics, file string) {
	for _, e := range other.Entries {
		if e.File == "" {
			e.File = file
		}
		d.Add(e)
	}
}

// AddError records a skipped value.
func (d *Diagnostics) AddError(err *Error) {
	d.Add(Diagnostic{
		Severity:  SevError,
		Line:      err.Line,
		KeyPath:   err.KeyPath,
		ValueName: err.ValueName,
		Issue:     err.Error(),
		Err:       err,
	})
}

// Warnings returns the SevWarning entries.
func (d *Diagnostics) Warnings() []Diagnostic {
	return d.bySeverity(SevWarning)
}

// Errors returns the errors behind SevError entries.
func (d *Diagnostics) Errors() []*Error {
	result := make([]*Error, 0, d.Summary.Errors)
	for _, e := range d.Entries {
		if e.Severity == SevError && e.Err != nil {
			result = append(result, e.Err)
		}
	}
	return result
}

// HasErrors returns true if any value was dropped.
func (d *Diagnostics) HasErrors() bool {
	return d.Summary.Errors > 0
}

// HasAnyIssues returns true if anything at all was recorded.
func (d *Diagnostics) HasAnyIssues() bool {
	return len(d.Entries) > 0
}

func (d *Diagnostics) bySeverity(sev Severity) []Diagnostic {
	var result []Diagnostic
	for _, e := range d.Entries {
		if e.Severity == sev {
			result = append(result, e)
		}
	}
	return result
}

// -----------------------------------------------------------------------------
// Output Formatters
// -----------------------------------------------------------------------------

// FormatJSON returns the diagnostics as formatted JSON (2-space indentation)
func (d *Diagnostics) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a compact one-line-per-issue text format
func (d *Diagnostics) FormatText() string {
	var b strings.Builder

	for _, e := range d.Entries {
		b.WriteString(fmt.Sprintf("%-7s", e.Severity))
		if e.File != "" {
			b.WriteString(" " + e.File + ":")
		}
		b.WriteString(fmt.Sprintf(" line %d", e.Line))
		if e.KeyPath != "" {
			b.WriteString(fmt.Sprintf(" [%s]", e.KeyPath))
		}
		b.WriteString(": ")
		b.WriteString(e.Issue)
		b.WriteString("\n")
	}

	if len(d.Entries) == 0 {
		b.WriteString("No issues found.\n")
	}

	return b.String()
}
