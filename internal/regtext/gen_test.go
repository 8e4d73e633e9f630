package regtext

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/joshuapare/regkit/pkg/ast"
)

// Profile defines characteristics for generated .reg documents.
type Profile struct {
	// Keys is the number of [key] blocks to emit.
	Keys int

	// KeyDepth is the maximum number of path segments below the root.
	KeyDepth int

	// ValuesPerKey bounds how many values each key gets.
	MinValuesPerKey int
	MaxValuesPerKey int

	// ValueSize bounds string lengths and binary byte counts.
	MinValueSize int
	MaxValueSize int

	EscapeFrequency float64 // 0.0-1.0: chance a name or string needs escaping
	ContinuedPct    float64 // 0.0-1.0: chance a string spans two lines
	MultilineHex    bool    // wrap hex streams near column 76

	Seed uint64
}

// genValue is one value the generator wrote, in parsed form.
type genValue struct {
	Name  string
	Value ast.Value
}

// genKey is one key the generator wrote, in parsed form.
type genKey struct {
	Path   string
	Values []genValue
}

// GenerateRegFile creates a CRLF .reg document for profile and returns it
// together with the keys and values a parse must produce.
func GenerateRegFile(profile Profile) ([]byte, []genKey) {
	if profile.KeyDepth == 0 {
		profile.KeyDepth = 3
	}
	if profile.MaxValuesPerKey == 0 {
		profile.MinValuesPerKey, profile.MaxValuesPerKey = 1, 8
	}
	if profile.MaxValueSize == 0 {
		profile.MinValueSize, profile.MaxValueSize = 4, 64
	}

	rng := rand.New(rand.NewPCG(profile.Seed, profile.Seed^0x9e3779b97f4a7c15))
	var buf bytes.Buffer
	buf.WriteString(RegFileHeader + CRLF + CRLF)

	keys := make([]genKey, 0, profile.Keys)
	for k := range profile.Keys {
		key := genKey{Path: generateKeyPath(k, profile.KeyDepth, rng)}
		buf.WriteString(KeyOpenBracket + key.Path + KeyCloseBracket + CRLF)

		n := profile.MinValuesPerKey + rng.IntN(profile.MaxValuesPerKey-profile.MinValuesPerKey+1)
		for i := range n {
			line, v := generateValue(i, profile, rng)
			buf.WriteString(line)
			buf.WriteString(CRLF)
			key.Values = append(key.Values, v)
		}
		buf.WriteString(CRLF)
		keys = append(keys, key)
	}
	return buf.Bytes(), keys
}

// generateKeyPath creates a unique key path; the key index is the last segment.
func generateKeyPath(id, maxDepth int, rng *rand.Rand) string {
	parts := []string{"HKEY_LOCAL_MACHINE", "SOFTWARE"}
	for d := range rng.IntN(maxDepth) {
		parts = append(parts, fmt.Sprintf("Level%d", d))
	}
	parts = append(parts, fmt.Sprintf("Key%d", id))
	return strings.Join(parts, ast.RegistryPathSeparator)
}

// generateValue creates a single value line and the value it parses to.
func generateValue(index int, profile Profile, rng *rand.Rand) (string, genValue) {
	name := generateValueName(index, profile, rng)
	lhs := `"` + escapeRegString(name) + `"=`
	if index == 0 && rng.IntN(4) == 0 {
		lhs, name = DefaultValueName+"=", ast.DefaultValueName
	}

	var (
		text string
		val  ast.Value
	)
	switch rng.IntN(7) {
	case 0:
		text, val = generateStringValue(profile, rng)
	case 1:
		d := rng.Uint32()
		text, val = fmt.Sprintf("dword:%08x", d), ast.Dword(d)
	case 2:
		q := rng.Uint64()
		text, val = fmt.Sprintf("qword:%016X", q), ast.Qword(q)
	case 3:
		data := randomBytes(profile, rng)
		text, val = HexPrefix+hexStream(len(HexPrefix)+len(lhs), data, profile.MultilineHex), ast.Binary(data)
	case 4:
		data := ast.EncodeUTF16LEZeroTerminated(randomText(profile, rng))
		text, val = HexExpandSZPrefix+hexStream(len(HexExpandSZPrefix)+len(lhs), data, profile.MultilineHex), ast.ExpandableString{Raw: data}
	case 5:
		var data []byte
		for range 1 + rng.IntN(4) {
			data = append(data, ast.EncodeUTF16LEZeroTerminated(randomText(profile, rng))...)
		}
		data = append(data, 0, 0)
		text, val = HexMultiSZPrefix+hexStream(len(HexMultiSZPrefix)+len(lhs), data, profile.MultilineHex), ast.MultiString{Raw: data}
	default:
		var le [8]byte
		q := rng.Uint64()
		binary.LittleEndian.PutUint64(le[:], q)
		text, val = HexQWORDPrefix+hexStream(0, le[:], false), ast.Qword(q)
	}
	return lhs + text, genValue{Name: name, Value: val}
}

// generateValueName creates a value name, sometimes with characters that
// need escaping. The index keeps names unique within a key.
func generateValueName(index int, profile Profile, rng *rand.Rand) string {
	name := fmt.Sprintf("Value%d", index)
	if rng.Float64() < profile.EscapeFrequency {
		switch rng.IntN(3) {
		case 0:
			name = `Path\` + name
		case 1:
			name += `"quoted"`
		case 2:
			name += "=eq"
		}
	}
	return name
}

// escapeRegString escapes a name or string for .reg format.
func escapeRegString(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(escaped, `"`, `\"`)
}

// generateStringValue creates a quoted value, possibly spanning lines.
func generateStringValue(profile Profile, rng *rand.Rand) (string, ast.Value) {
	s := randomText(profile, rng)
	if rng.Float64() < profile.EscapeFrequency {
		s += []string{`\`, `"`}[rng.IntN(2)]
	}
	if len(s) > 1 && rng.Float64() < profile.ContinuedPct {
		cut := 1 + rng.IntN(len(s)-1)
		s = s[:cut] + CRLF + s[cut:]
	}
	return `"` + escapeRegString(s) + `"`, ast.String(s)
}

// randomText creates printable ASCII without characters that need escaping.
func randomText(profile Profile, rng *rand.Rand) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-.%; "
	n := profile.MinValueSize + rng.IntN(profile.MaxValueSize-profile.MinValueSize+1)
	var b strings.Builder
	for range n {
		b.WriteByte(charset[rng.IntN(len(charset))])
	}
	return b.String()
}

func randomBytes(profile Profile, rng *rand.Rand) []byte {
	n := rng.IntN(profile.MaxValueSize + 1)
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.IntN(256))
	}
	return out
}

// hexStream writes data as comma-separated bytes. When wrap is set it breaks
// lines the way regedit does: a trailing ",\" and a two-space indent.
func hexStream(offset int, data []byte, wrap bool) string {
	var b strings.Builder
	col := offset
	for i, c := range data {
		fmt.Fprintf(&b, "%02x", c)
		col += 2
		if i == len(data)-1 {
			break
		}
		b.WriteByte(',')
		col++
		if wrap && col >= 76 {
			b.WriteString(`\` + CRLF + "  ")
			col = 2
		}
	}
	return b.String()
}

// Predefined profiles for common test scenarios

// ProfileSmall creates a small document with short values.
func ProfileSmall(seed uint64) Profile {
	return Profile{
		Keys:            50,
		KeyDepth:        2,
		MinValuesPerKey: 1,
		MaxValuesPerKey: 5,
		MinValueSize:    1,
		MaxValueSize:    24,
		Seed:            seed,
	}
}

// ProfileLarge creates a document with many keys and wrapped hex streams.
func ProfileLarge(seed uint64) Profile {
	return Profile{
		Keys:            5_000,
		KeyDepth:        6,
		MinValuesPerKey: 3,
		MaxValuesPerKey: 12,
		MinValueSize:    16,
		MaxValueSize:    256,
		MultilineHex:    true,
		Seed:            seed,
	}
}

// ProfileWithEscaping creates a document heavy on escapes and multi-line strings.
func ProfileWithEscaping(seed uint64) Profile {
	p := ProfileSmall(seed)
	p.EscapeFrequency = 0.4
	p.ContinuedPct = 0.3
	p.MultilineHex = true
	return p
}
