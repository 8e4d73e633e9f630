package ast

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/regkit/pkg/types"
)

// Value is a typed registry datum. The set of implementations is closed:
// String, MultiString, ExpandableString, Dword, Qword and Binary. Consumers
// switch on the concrete type (or on Kind()) and can rely on that list being
// complete.
type Value interface {
	// Kind reports which of the six shapes this value is.
	Kind() types.ValueKind
	// Type reports the Windows registry type the value represents.
	Type() types.RegType
	// Bytes returns the canonical serialization of the value: UTF-16LE with
	// a NUL terminator for String, the decoded hex bytes for the hex-derived
	// text kinds and Binary, little-endian for Dword and Qword.
	Bytes() []byte

	isValue()
}

// String is a quoted "..." value, already unescaped.
type String string

// MultiString is a hex(2): value. The raw bytes are kept exactly as decoded;
// splitting on embedded NULs is left to consumers (see Strings).
type MultiString struct {
	Raw []byte
}

// ExpandableString is a hex(7): value.
type ExpandableString struct {
	Raw []byte
}

// Dword is a dword: value.
type Dword uint32

// Qword is a qword: or hex(b): value.
type Qword uint64

// Binary is a hex: or hex(0): value.
type Binary []byte

func (String) isValue()           {}
func (MultiString) isValue()      {}
func (ExpandableString) isValue() {}
func (Dword) isValue()            {}
func (Qword) isValue()            {}
func (Binary) isValue()           {}

func (String) Kind() types.ValueKind           { return types.KindString }
func (MultiString) Kind() types.ValueKind      { return types.KindMultiString }
func (ExpandableString) Kind() types.ValueKind { return types.KindExpandableString }
func (Dword) Kind() types.ValueKind            { return types.KindDword }
func (Qword) Kind() types.ValueKind            { return types.KindQword }
func (Binary) Kind() types.ValueKind           { return types.KindBinary }

func (s String) Type() types.RegType           { return s.Kind().RegType() }
func (m MultiString) Type() types.RegType      { return m.Kind().RegType() }
func (e ExpandableString) Type() types.RegType { return e.Kind().RegType() }
func (d Dword) Type() types.RegType            { return d.Kind().RegType() }
func (q Qword) Type() types.RegType            { return q.Kind().RegType() }
func (b Binary) Type() types.RegType           { return b.Kind().RegType() }

// Bytes encodes the string as UTF-16LE followed by a NUL code unit.
func (s String) Bytes() []byte {
	return EncodeUTF16LEZeroTerminated(string(s))
}

// Bytes returns a copy of the raw bytes.
func (m MultiString) Bytes() []byte { return cloneBytes(m.Raw) }

// Bytes returns a copy of the raw bytes.
func (e ExpandableString) Bytes() []byte { return cloneBytes(e.Raw) }

// Bytes returns the 4-byte little-endian encoding.
func (d Dword) Bytes() []byte {
	buf := make([]byte, DWORDSize)
	binary.LittleEndian.PutUint32(buf, uint32(d))
	return buf
}

// Bytes returns the 8-byte little-endian encoding.
func (q Qword) Bytes() []byte {
	buf := make([]byte, QWORDSize)
	binary.LittleEndian.PutUint64(buf, uint64(q))
	return buf
}

// Bytes returns a copy of the data.
func (b Binary) Bytes() []byte { return cloneBytes(b) }

// Text decodes the raw bytes as UTF-16LE without splitting on NULs.
func (m MultiString) Text() string { return DecodeUTF16LE(m.Raw) }

// Strings splits the decoded text on NUL separators and drops the empty
// terminator entries. The parser never calls this.
func (m MultiString) Strings() []string {
	parts := strings.Split(m.Text(), "\x00")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Text decodes the raw bytes as UTF-16LE and strips the NUL terminator(s).
func (e ExpandableString) Text() string {
	return strings.TrimRight(DecodeUTF16LE(e.Raw), "\x00")
}

// utf16le has no BOM handling: .reg hex payloads never carry one.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16LE converts UTF-16LE bytes to a UTF-8 string. A trailing odd
// byte cannot form a code unit and is ignored.
func DecodeUTF16LE(data []byte) string {
	if len(data)%UTF16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return ""
	}
	decoded, err := utf16le.NewDecoder().Bytes(data)
	if err != nil {
		// The decoder substitutes U+FFFD for invalid sequences and does not
		// fail on complete input; keep the raw bytes visible if it ever does.
		return string(data)
	}
	return string(decoded)
}

// EncodeUTF16LEZeroTerminated encodes a string to UTF-16LE with a NUL terminator.
func EncodeUTF16LEZeroTerminated(s string) []byte {
	encoded, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Invalid UTF-8 is replaced, so this only happens on internal failure.
		encoded = nil
	}
	buf := make([]byte, len(encoded)+UTF16CodeUnitSize)
	copy(buf, encoded)
	return buf
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Equal reports whether two values have the same kind and payload.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case String:
		return av == b.(String)
	case Dword:
		return av == b.(Dword)
	case Qword:
		return av == b.(Qword)
	case MultiString, ExpandableString, Binary:
		return string(a.Bytes()) == string(b.Bytes())
	default:
		return false
	}
}
