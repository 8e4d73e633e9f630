package regtext

import (
	"errors"
	"strconv"
	"strings"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

// valueDecoder turns one "name=value" line into a typed value, pulling
// continuation lines from the source when the value spans several lines.
type valueDecoder struct {
	src            *lineSource
	limits         types.Limits
	applyDeletions bool
}

// decodedValue is the outcome of decoding one value line.
type decodedValue struct {
	name  string
	value ast.Value // nil when del is set
	del   bool      // "name"=- with deletions enabled
}

// decodeLine decodes the value line that starts at line. Returned errors
// carry Line, ValueName and Raw; the caller adds the key path.
func (d *valueDecoder) decodeLine(line physLine) (decodedValue, *types.Error) {
	text := strings.TrimLeft(line.text, " \t")

	token, end, ok := ScanEscaped(text, ValueAssignment)
	rest := strings.TrimLeft(text[end:], " \t")
	if !ok || rest == "" || rest[0] != ValueAssignment {
		return decodedValue{}, withLine(&types.Error{
			Kind:     types.ErrKindUnknownValueType,
			Msg:      "malformed value line",
			Raw:      truncate(strings.TrimSpace(text), maxRawLen),
			Position: -1,
		}, line)
	}

	name := valueName(text, token)
	payload := strings.TrimLeft(rest[1:], " \t")

	dv, err := d.decodePayload(payload, line)
	dv.name = name
	if err != nil {
		err.ValueName = name
		return dv, withLine(err, line)
	}
	return dv, nil
}

// valueName maps the scanned name token to the stored name: @ is the default
// value, quoted names are unescaped, bare names are trimmed.
func valueName(text, token string) string {
	if text[0] == Quote {
		return UnescapeRegString(token)
	}
	bare := strings.TrimSpace(token)
	if bare == DefaultValueName {
		return ast.DefaultValueName
	}
	return bare
}

// decodePayload dispatches on the value prefix, most specific first.
func (d *valueDecoder) decodePayload(payload string, line physLine) (decodedValue, *types.Error) {
	switch {
	case payload != "" && payload[0] == Quote:
		s, err := d.decodeQuoted(payload, line)
		if err != nil {
			return decodedValue{}, err
		}
		return decodedValue{value: ast.String(s)}, nil

	case hasPrefixFold(payload, DWORDPrefix):
		n, err := parseHexInteger(payload[len(DWORDPrefix):], DWORDHexLength, 32)
		if err != nil {
			return decodedValue{}, err
		}
		return decodedValue{value: ast.Dword(uint32(n))}, nil

	case hasPrefixFold(payload, QWORDPrefix):
		n, err := parseHexInteger(payload[len(QWORDPrefix):], QWORDHexLength, 64)
		if err != nil {
			return decodedValue{}, err
		}
		return decodedValue{value: ast.Qword(n)}, nil

	case hasPrefixFold(payload, HexFamilyPrefix):
		return d.decodeHex(payload, line)

	case d.applyDeletions && strings.TrimSpace(payload) == DeleteValueToken:
		return decodedValue{del: true}, nil

	default:
		// Drain a trailing-backslash continuation so its lines are not
		// mistaken for value lines if the caller skips this value.
		if _, err := d.assembleHex(payload, line); err != nil {
			return decodedValue{}, err
		}
		return decodedValue{}, &types.Error{
			Kind:     types.ErrKindUnknownValueType,
			Msg:      "unknown value type",
			Raw:      hexTypePrefix(strings.TrimSpace(payload)),
			Position: -1,
		}
	}
}

// decodeQuoted reads a "..." payload. If the closing quote is not on this
// line, following physical lines are appended verbatim, line breaks
// included, until an unescaped quote closes the string.
func (d *valueDecoder) decodeQuoted(payload string, start physLine) (string, *types.Error) {
	buf := payload
	idx, resume := findUnescaped(buf, 1, Quote)
	lines := 1
	if idx < 0 {
		var b strings.Builder
		b.WriteString(payload)
		term := start.term
		for idx < 0 {
			next, ok := d.src.next()
			if !ok {
				if err := d.src.Err(); err != nil {
					return "", asTypedError(err)
				}
				return "", &types.Error{
					Kind:     types.ErrKindUnterminatedString,
					Msg:      "unterminated string",
					Raw:      truncate(payload, maxRawLen),
					Position: -1,
				}
			}
			lines++
			if !d.limits.CheckContinuation(lines) {
				return "", continuationLimitError(start, lines, d.limits)
			}
			b.WriteString(term)
			b.WriteString(next.text)
			term = next.term
			buf = b.String()
			idx, resume = findUnescaped(buf, resume, Quote)
		}
	}
	return UnescapeRegString(buf[1:idx]), nil
}

// decodeHex decodes any hex-family payload: hex:, hex(0):, hex(2):, hex(7):
// and hex(b):. Other hex(N): types are consumed and reported as unknown.
func (d *valueDecoder) decodeHex(payload string, line physLine) (decodedValue, *types.Error) {
	hk, known := matchHexPrefix(payload)
	body := payload
	if known {
		body = payload[len(hk.prefix):]
	} else if i := strings.IndexByte(payload, ':'); i >= 0 {
		body = payload[i+1:]
	}

	stream, err := d.assembleHex(body, line)
	if err != nil {
		return decodedValue{}, err
	}
	if !known {
		return decodedValue{}, &types.Error{
			Kind:     types.ErrKindUnknownValueType,
			Msg:      "unknown value type",
			Raw:      hexTypePrefix(payload),
			Position: -1,
		}
	}

	data, err := parseHexStream(stream)
	if err != nil {
		return decodedValue{}, err
	}
	val, err := wrapHex(hk.kind, data)
	if err != nil {
		return decodedValue{}, err
	}
	return decodedValue{value: val}, nil
}

// parseHexInteger parses exactly digits hex digits (case-insensitive) as an
// unsigned integer of the given bit size.
func parseHexInteger(text string, digits, bitSize int) (uint64, *types.Error) {
	text = strings.TrimSpace(text)
	if len(text) != digits || !isHexDigits(text) {
		return 0, &types.Error{
			Kind:     types.ErrKindInvalidInteger,
			Msg:      "expected " + strconv.Itoa(digits) + " hex digits",
			Raw:      truncate(text, maxRawLen),
			Position: -1,
		}
	}
	n, err := strconv.ParseUint(text, 16, bitSize)
	if err != nil {
		return 0, &types.Error{
			Kind:     types.ErrKindInvalidInteger,
			Msg:      "invalid integer literal",
			Raw:      text,
			Err:      err,
			Position: -1,
		}
	}
	return n, nil
}

func continuationLimitError(start physLine, lines int, limits types.Limits) *types.Error {
	return &types.Error{
		Kind: types.ErrKindLimit,
		Msg: "value spans more than " + strconv.Itoa(limits.MaxContinuationLines) +
			" lines",
		Line:     start.no,
		Raw:      strconv.Itoa(lines) + " lines",
		Position: -1,
	}
}

// withLine stamps the starting line onto err unless it already has one.
func withLine(err *types.Error, line physLine) *types.Error {
	if err.Line == 0 {
		err.Line = line.no
	}
	return err
}

// asTypedError converts a line source failure into a *types.Error.
func asTypedError(err error) *types.Error {
	var te *types.Error
	if errors.As(err, &te) {
		return te
	}
	return &types.Error{Kind: types.ErrKindIO, Msg: "read failed", Err: err, Position: -1}
}
