package types

// ============================================================================
// .reg Parse Limits Constants
// ============================================================================
// Windows itself imposes the key/value name limits; the line and
// continuation ceilings guard the parser against pathological input.

const (
	// WindowsMaxKeyNameLen is the hard limit for a single registry key name
	// component in Windows (measured in characters, not bytes).
	WindowsMaxKeyNameLen = 255

	// WindowsMaxKeyPathLen bounds a full key path. Windows does not document
	// one; 64 components of maximum length is far beyond anything regedit exports.
	WindowsMaxKeyPathLen = 64 * (WindowsMaxKeyNameLen + 1)

	// WindowsMaxValueNameLen is the hard limit for registry value names
	// in Windows (measured in characters, not bytes).
	WindowsMaxValueNameLen = 16383

	// WindowsMaxValueNameLenSmall is a much smaller limit for strict
	// validation scenarios.
	WindowsMaxValueNameLenSmall = 255

	// WindowsMaxValueSize1MB is the standard maximum size for a single
	// registry value's data (1 MB).
	WindowsMaxValueSize1MB = 1 << 20 // 1,048,576 bytes

	// WindowsMaxValueSize10MB is a relaxed maximum for large binary data.
	WindowsMaxValueSize10MB = 10 << 20 // 10,485,760 bytes

	// WindowsMaxValueSize64KB is a conservative maximum for constrained environments.
	WindowsMaxValueSize64KB = 64 << 10 // 65,536 bytes

	// ScannerInitialBufferSize is the initial buffer size for the line source.
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the default maximum physical line size.
	ScannerMaxLineSize = 1024 * 1024 // 1MB

	// ScannerMaxLineSizeRelaxed allows very long single-line hex dumps.
	ScannerMaxLineSizeRelaxed = 16 * 1024 * 1024 // 16MB

	// DefaultMaxContinuationLines bounds the physical lines one value may span.
	// A 1MB binary value exported by regedit is roughly 13,000 lines.
	DefaultMaxContinuationLines = 1 << 16

	// DefaultMaxKeys bounds the number of distinct keys in one file.
	DefaultMaxKeys = 1 << 22

	// StrictDivisor scales the default ceilings down for StrictLimits.
	StrictDivisor = 16
)

// Limits bounds the resources a single parse may consume.
// A zero field disables that check.
type Limits struct {
	// MaxLineLength is the maximum length of one physical line in bytes.
	MaxLineLength int

	// MaxContinuationLines is the maximum number of physical lines a single
	// value may span (quoted-string or hex continuation).
	MaxContinuationLines int

	// MaxValueSize is the maximum decoded size of a single value in bytes.
	MaxValueSize int

	// MaxKeyPathLen is the maximum length of a [key] path in characters.
	MaxKeyPathLen int

	// MaxValueNameLen is the maximum length of a value name in characters.
	MaxValueNameLen int

	// MaxKeys is the maximum number of distinct keys in one file.
	MaxKeys int
}

// DefaultLimits returns limits that accept anything regedit exports.
func DefaultLimits() Limits {
	return Limits{
		MaxLineLength:        ScannerMaxLineSize,
		MaxContinuationLines: DefaultMaxContinuationLines,
		MaxValueSize:         WindowsMaxValueSize1MB,
		MaxKeyPathLen:        WindowsMaxKeyPathLen,
		MaxValueNameLen:      WindowsMaxValueNameLen,
		MaxKeys:              DefaultMaxKeys,
	}
}

// RelaxedLimits returns more permissive limits for hand-built or merged files.
// Use with caution - these allow values Windows itself would reject.
func RelaxedLimits() Limits {
	return Limits{
		MaxLineLength:        ScannerMaxLineSizeRelaxed,
		MaxContinuationLines: DefaultMaxContinuationLines * StrictDivisor,
		MaxValueSize:         WindowsMaxValueSize10MB,
		MaxKeyPathLen:        WindowsMaxKeyPathLen * 2,
		MaxValueNameLen:      WindowsMaxValueNameLen,
		MaxKeys:              DefaultMaxKeys * 4,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxLineLength:        ScannerMaxLineSize / StrictDivisor,
		MaxContinuationLines: DefaultMaxContinuationLines / StrictDivisor,
		MaxValueSize:         WindowsMaxValueSize64KB,
		MaxKeyPathLen:        WindowsMaxKeyPathLen / StrictDivisor,
		MaxValueNameLen:      WindowsMaxValueNameLenSmall,
		MaxKeys:              DefaultMaxKeys / StrictDivisor,
	}
}

// exceeds reports whether n is over a limit, treating zero as unlimited.
func exceeds(n, limit int) bool {
	return limit > 0 && n > limit
}

// CheckLine reports whether a physical line of n bytes is allowed.
func (l Limits) CheckLine(n int) bool { return !exceeds(n, l.MaxLineLength) }

// CheckContinuation reports whether a value spanning n physical lines is allowed.
func (l Limits) CheckContinuation(n int) bool { return !exceeds(n, l.MaxContinuationLines) }

// CheckValueSize reports whether a decoded value of n bytes is allowed.
func (l Limits) CheckValueSize(n int) bool { return !exceeds(n, l.MaxValueSize) }

// CheckKeyPath reports whether a key path of n characters is allowed.
func (l Limits) CheckKeyPath(n int) bool { return !exceeds(n, l.MaxKeyPathLen) }

// CheckValueName reports whether a value name of n characters is allowed.
func (l Limits) CheckValueName(n int) bool { return !exceeds(n, l.MaxValueNameLen) }

// CheckKeys reports whether a tree holding n keys is allowed.
func (l Limits) CheckKeys(n int) bool { return !exceeds(n, l.MaxKeys) }
