package regtext

const (
	// ============================================================================
	// .reg File Format Tokens
	// ============================================================================

	// RegFileHeader is the required first line for .reg files version 5.00
	RegFileHeader = "Windows Registry Editor Version 5.00"

	// ============================================================================
	// Delimiters and Structural Tokens
	// ============================================================================

	// KeyOpenBracket marks the start of a registry key path
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of a registry key path
	KeyCloseBracket = "]"

	// DeleteKeyPrefix marks a key for deletion (e.g., [-HKEY_LOCAL_MACHINE\...])
	DeleteKeyPrefix = "-"

	// ValueAssignment separates value names from their data
	ValueAssignment = '='

	// DefaultValueName is the bare name that denotes the default (unnamed) value
	DefaultValueName = "@"

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// DeleteValueToken marks a value for deletion ("name"=-)
	DeleteValueToken = "-"

	// ============================================================================
	// Quote and Escape Characters
	// ============================================================================

	// Quote is the double-quote character for value names and string data
	Quote = '"'

	// Backslash escapes the following character inside names and strings,
	// and marks a continued line at the end of a hex stream
	Backslash = '\\'

	// ============================================================================
	// Value Type Prefixes (matched case-insensitively)
	// ============================================================================

	// DWORDPrefix identifies a REG_DWORD literal
	DWORDPrefix = "dword:"

	// QWORDPrefix identifies a REG_QWORD literal
	QWORDPrefix = "qword:"

	// HexFamilyPrefix starts every hex-stream value
	HexFamilyPrefix = "hex"

	// HexPrefix identifies binary data
	HexPrefix = "hex:"

	// HexNonePrefix identifies binary data declared with type 0
	HexNonePrefix = "hex(0):"

	// HexMultiSZPrefix identifies a multi-string hex stream
	HexMultiSZPrefix = "hex(2):"

	// HexExpandSZPrefix identifies an expandable-string hex stream
	HexExpandSZPrefix = "hex(7):"

	// HexQWORDPrefix identifies a little-endian REG_QWORD hex stream
	HexQWORDPrefix = "hex(b):"

	// ============================================================================
	// Hex Data Formatting
	// ============================================================================

	// HexByteSeparator separates bytes in hex data
	HexByteSeparator = ","

	// HexByteLength is the number of digits in one hex-stream token
	HexByteLength = 2

	// DWORDHexLength is the expected length of a dword: literal
	DWORDHexLength = 8

	// QWORDHexLength is the expected length of a qword: literal
	QWORDHexLength = 16

	// ============================================================================
	// Line Endings
	// ============================================================================

	// CRLF is the Windows line ending (carriage return + line feed)
	CRLF = "\r\n"

	// CR is the carriage return character
	CR = "\r"

	// LF is the line feed character
	LF = "\n"
)
