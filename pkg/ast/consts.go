package ast

const (
	// RegistryPathSeparator is the backslash character used to separate
	// components in Windows Registry paths.
	RegistryPathSeparator = "\\"

	// DefaultValueName is the name under which the unnamed (@) value is stored.
	DefaultValueName = ""

	// DefaultValueDisplayName is how regedit shows the unnamed value.
	DefaultValueDisplayName = "(Default)"

	// DWORDSize is the encoded size of a REG_DWORD payload.
	DWORDSize = 4

	// QWORDSize is the encoded size of a REG_QWORD payload.
	QWORDSize = 8

	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes.
	UTF16CodeUnitSize = 2
)
