package regfile

import (
	"github.com/joshuapare/regkit/internal/regmerge"
	"github.com/joshuapare/regkit/internal/regtext"
	"github.com/joshuapare/regkit/pkg/types"
)

// Options controls a parse.
// This is an alias to types.ParseOptions for convenience.
type Options = types.ParseOptions

// Result holds the parsed tree and any non-fatal diagnostics.
type Result = regtext.Result

// Stats summarizes a parse result.
type Stats = regtext.Stats

// Limits bounds the resources a single parse may consume.
type Limits = types.Limits

// ParseMode selects strict or lenient per-value error handling.
type ParseMode = types.ParseMode

// Parse modes (re-exported for convenience).
const (
	ModeStrict  = types.ModeStrict
	ModeLenient = types.ModeLenient
)

// Error is the typed error returned for malformed input.
type Error = types.Error

// Diagnostics collects non-fatal findings.
type Diagnostics = types.Diagnostics

// Error categories (re-exported for convenience).
var (
	ErrFormat             = types.ErrFormat
	ErrValueBeforeKey     = types.ErrValueBeforeKey
	ErrUnterminatedString = types.ErrUnterminatedString
	ErrInvalidInteger     = types.ErrInvalidInteger
	ErrInvalidHexByte     = types.ErrInvalidHexByte
	ErrUnknownValueType   = types.ErrUnknownValueType
	ErrLimit              = types.ErrLimit
	ErrUnsupported        = types.ErrUnsupported
	ErrIO                 = types.ErrIO
)

// MergeOptions controls how several files are layered.
type MergeOptions = regmerge.Options

// MergeStats describes what layering did.
type MergeStats = regmerge.Stats

// DefaultMergeOptions expands short root names and applies deletions.
func DefaultMergeOptions() MergeOptions {
	return regmerge.DefaultOptions()
}

// DefaultLimits returns limits that accept anything regedit exports.
//
// Limits:
//   - MaxLineLength: 1 MB
//   - MaxContinuationLines: 65,536
//   - MaxValueSize: 1 MB
//   - MaxKeyPathLen: 16,384 characters
//   - MaxValueNameLen: 16,383 characters
//   - MaxKeys: 4,194,304
func DefaultLimits() Limits {
	return types.DefaultLimits()
}

// RelaxedLimits returns more permissive limits for very large exports.
func RelaxedLimits() Limits {
	return types.RelaxedLimits()
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return types.StrictLimits()
}
