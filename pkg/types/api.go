package types

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat             ErrKind = iota // first line is not the .reg 5.00 header
	ErrKindValueBeforeKey                    // value line before any [key] line
	ErrKindUnterminatedString                // quoted string or hex continuation never closes
	ErrKindInvalidInteger                    // bad dword/qword literal or byte count
	ErrKindInvalidHexByte                    // hex-stream token is not a two-digit byte
	ErrKindUnknownValueType                  // value has no recognized prefix
	ErrKindLimit                             // a configured parse limit was exceeded
	ErrKindUnsupported                       // recognized but unsupported option (e.g., encoding)
	ErrKindIO                                // the underlying stream failed
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "FormatError"
	case ErrKindValueBeforeKey:
		return "ValueBeforeKey"
	case ErrKindUnterminatedString:
		return "UnterminatedString"
	case ErrKindInvalidInteger:
		return "InvalidIntegerLiteral"
	case ErrKindInvalidHexByte:
		return "InvalidHexByte"
	case ErrKindUnknownValueType:
		return "UnknownValueType"
	case ErrKindLimit:
		return "LimitExceeded"
	case ErrKindUnsupported:
		return "Unsupported"
	case ErrKindIO:
		return "IOError"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Structural reports whether errors of this kind abort the whole parse
// regardless of ParseMode.
func (k ErrKind) Structural() bool {
	switch k {
	case ErrKindInvalidInteger, ErrKindInvalidHexByte, ErrKindUnknownValueType:
		return false
	default:
		return true
	}
}

// Error is a typed error with location context and an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause

	Line      int    // 1-based physical line where the logical line started (0 = unknown)
	KeyPath   string // key in effect when the error occurred
	ValueName string // value being decoded ("" for the default value)
	Raw       string // offending text, for diagnostics
	Position  int    // 0-based hex token index for ErrKindInvalidHexByte, else -1
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("regtext: ")
	if e.Line > 0 {
		b.WriteString("line ")
		b.WriteString(strconv.Itoa(e.Line))
		b.WriteString(": ")
	}
	b.WriteString(e.Msg)
	if e.Raw != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.Raw))
	}
	if e.Kind == ErrKindInvalidHexByte && e.Position >= 0 {
		b.WriteString(" at token ")
		b.WriteString(strconv.Itoa(e.Position))
	}
	if e.KeyPath != "" {
		b.WriteString(" in [")
		b.WriteString(e.KeyPath)
		b.WriteString("]")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is regardless of the location fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is comparisons.
var (
	// ErrFormat indicates the stream lacks the exact .reg 5.00 header line.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "not a .reg file (bad header)", Position: -1}
	// ErrValueBeforeKey indicates a value line appeared before any [key] line.
	ErrValueBeforeKey = &Error{Kind: ErrKindValueBeforeKey, Msg: "value before key", Position: -1}
	// ErrUnterminatedString indicates a string or hex continuation ran off the end of input.
	ErrUnterminatedString = &Error{Kind: ErrKindUnterminatedString, Msg: "unterminated string", Position: -1}
	// ErrInvalidInteger indicates a malformed dword/qword payload.
	ErrInvalidInteger = &Error{Kind: ErrKindInvalidInteger, Msg: "invalid integer literal", Position: -1}
	// ErrInvalidHexByte indicates a malformed token in a hex stream.
	ErrInvalidHexByte = &Error{Kind: ErrKindInvalidHexByte, Msg: "invalid hex byte", Position: -1}
	// ErrUnknownValueType indicates a value payload with no recognized prefix.
	ErrUnknownValueType = &Error{Kind: ErrKindUnknownValueType, Msg: "unknown value type", Position: -1}
	// ErrLimit indicates a configured limit was exceeded.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "parse limit exceeded", Position: -1}
	// ErrUnsupported indicates an unsupported option value.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported", Position: -1}
	// ErrIO indicates the input stream failed.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "read failed", Position: -1}
)

// -----------------------------------------------------------------------------
// Value kinds
// -----------------------------------------------------------------------------

// RegType enumerates Windows registry value types.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE      RegType = 0
	REG_SZ        RegType = 1
	REG_EXPAND_SZ RegType = 2
	REG_BINARY    RegType = 3
	REG_DWORD     RegType = 4
	REG_MULTI_SZ  RegType = 7
	REG_QWORD     RegType = 11
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
	}
}

// ValueKind is the closed set of value shapes a .reg file can produce.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindMultiString
	KindExpandableString
	KindDword
	KindQword
	KindBinary
)

// String implements the Stringer interface for ValueKind.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindMultiString:
		return "MultiString"
	case KindExpandableString:
		return "ExpandableString"
	case KindDword:
		return "Dword"
	case KindQword:
		return "Qword"
	case KindBinary:
		return "Binary"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// RegType maps a kind onto the Windows registry type it represents.
func (k ValueKind) RegType() RegType {
	switch k {
	case KindString:
		return REG_SZ
	case KindMultiString:
		return REG_MULTI_SZ
	case KindExpandableString:
		return REG_EXPAND_SZ
	case KindDword:
		return REG_DWORD
	case KindQword:
		return REG_QWORD
	case KindBinary:
		return REG_BINARY
	default:
		return REG_NONE
	}
}

// -----------------------------------------------------------------------------
// Parse options
// -----------------------------------------------------------------------------

// ParseMode selects how per-value decode errors are handled.
type ParseMode int

const (
	// ModeStrict aborts the parse on the first error of any kind.
	ModeStrict ParseMode = iota
	// ModeLenient skips a malformed value, records the error, and continues.
	// Structural errors still abort.
	ModeLenient
)

// String implements the Stringer interface for ParseMode.
func (m ParseMode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLenient:
		return "lenient"
	default:
		return fmt.Sprintf("ParseMode(%d)", int(m))
	}
}

// Input encoding names accepted by ParseOptions.InputEncoding.
const (
	EncodingUTF8        = "UTF-8"
	EncodingWindows1252 = "Windows-1252"
	EncodingLatin1      = "ISO-8859-1"
	EncodingUTF16LE     = "UTF-16LE"
)

// ParseOptions controls a single parse.
type ParseOptions struct {
	// Mode selects strict (default) or lenient per-value error handling.
	Mode ParseMode

	// InputEncoding declares the .reg text encoding. Empty means UTF-8,
	// i.e. the stream is already decoded text.
	InputEncoding string

	// Limits bounds line length, continuation depth and sizes.
	// If nil, DefaultLimits() is used.
	Limits *Limits

	// Logger receives non-fatal warnings in addition to the returned
	// diagnostics. If nil, nothing is logged.
	Logger *slog.Logger

	// ApplyDeletions enables the regedit removal forms: a [-Key] header
	// deletes the key and its subkeys, and "name"=- deletes a value.
	// When false these lines are rejected like any other malformed input.
	ApplyDeletions bool
}

// EffectiveLimits returns the configured limits or the defaults.
func (o ParseOptions) EffectiveLimits() Limits {
	if o.Limits != nil {
		return *o.Limits
	}
	return DefaultLimits()
}
