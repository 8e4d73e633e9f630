package regtext

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

// hexKind is the typed wrapper a hex(...) prefix selects.
type hexKind struct {
	prefix string
	kind   types.ValueKind
}

// hexKinds lists the recognized hex-family prefixes, most specific first.
var hexKinds = []hexKind{
	{HexNonePrefix, types.KindBinary},
	{HexMultiSZPrefix, types.KindMultiString},
	{HexExpandSZPrefix, types.KindExpandableString},
	{HexQWORDPrefix, types.KindQword},
	{HexPrefix, types.KindBinary},
}

// matchHexPrefix finds the hex-family prefix at the start of payload.
func matchHexPrefix(payload string) (hexKind, bool) {
	for _, hk := range hexKinds {
		if hasPrefixFold(payload, hk.prefix) {
			return hk, true
		}
	}
	return hexKind{}, false
}

// hexTypePrefix returns the "hex(...):" text at the start of payload for
// diagnostics, or payload itself if it has no colon.
func hexTypePrefix(payload string) string {
	if i := strings.IndexByte(payload, ':'); i >= 0 {
		return payload[:i+1]
	}
	return truncate(payload, maxRawLen)
}

// assembleHex joins a hex stream that may continue over several physical
// lines: while the trimmed text ends with a backslash, the backslash is
// dropped and the next physical line's trimmed text is appended.
func (d *valueDecoder) assembleHex(first string, start physLine) (string, *types.Error) {
	seg := strings.TrimSpace(first)
	if !endsWithContinuation(seg) {
		return seg, nil
	}

	var b strings.Builder
	lines := 1
	for endsWithContinuation(seg) {
		b.WriteString(seg[:len(seg)-1])
		next, ok := d.src.next()
		if !ok {
			if err := d.src.Err(); err != nil {
				return "", asTypedError(err)
			}
			return "", &types.Error{
				Kind:     types.ErrKindUnterminatedString,
				Msg:      "hex continuation runs past end of input",
				Line:     start.no,
				Raw:      truncate(strings.TrimSpace(start.text), maxRawLen),
				Position: -1,
			}
		}
		lines++
		if !d.limits.CheckContinuation(lines) {
			return "", continuationLimitError(start, lines, d.limits)
		}
		seg = strings.TrimSpace(next.text)
	}
	b.WriteString(seg)
	return b.String(), nil
}

// parseHexStream splits an assembled stream on commas and decodes each token
// as exactly one two-digit byte. An empty stream is a zero-length value.
func parseHexStream(stream string) ([]byte, *types.Error) {
	if stream == "" {
		return []byte{}, nil
	}
	tokens := strings.Split(stream, HexByteSeparator)
	out := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if len(tok) != HexByteLength || !isHexDigits(tok) {
			return nil, &types.Error{
				Kind:     types.ErrKindInvalidHexByte,
				Msg:      "invalid hex byte",
				Raw:      tok,
				Position: i,
			}
		}
		out = append(out, hexCharToNibble(tok[0])<<4|hexCharToNibble(tok[1]))
	}
	return out, nil
}

// wrapHex installs decoded bytes into the value type selected by the prefix.
func wrapHex(kind types.ValueKind, data []byte) (ast.Value, *types.Error) {
	switch kind {
	case types.KindMultiString:
		return ast.MultiString{Raw: data}, nil
	case types.KindExpandableString:
		return ast.ExpandableString{Raw: data}, nil
	case types.KindQword:
		if len(data) != ast.QWORDSize {
			return nil, &types.Error{
				Kind:     types.ErrKindInvalidInteger,
				Msg:      "hex(b) qword needs exactly 8 bytes",
				Raw:      formatByteCount(len(data)),
				Position: -1,
			}
		}
		return ast.Qword(binary.LittleEndian.Uint64(data)), nil
	case types.KindBinary:
		return ast.Binary(data), nil
	default:
		return nil, &types.Error{
			Kind:     types.ErrKindUnknownValueType,
			Msg:      "no hex wrapper for kind " + kind.String(),
			Position: -1,
		}
	}
}

func formatByteCount(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return strconv.Itoa(n) + " bytes"
}
