package regtext

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// physLine is one physical line of input.
type physLine struct {
	text string // line content without its terminator
	term string // "\r\n", "\n", or for the final line "\r" or ""
	no   int    // 1-based line number
}

// lineSource hands out physical lines on demand. The tree builder pulls
// logical lines (blank and comment lines skipped); the value decoder pulls
// raw continuation lines.
type lineSource struct {
	sc     *bufio.Scanner
	limits types.Limits
	lineNo int
	err    error
}

func newLineSource(r io.Reader, limits types.Limits) *lineSource {
	sc := bufio.NewScanner(r)
	// The scanner token includes the terminator; MaxLineLength does not.
	maxToken := math.MaxInt
	if limits.MaxLineLength > 0 && limits.MaxLineLength < math.MaxInt-len(CRLF) {
		maxToken = limits.MaxLineLength + len(CRLF)
	}
	initial := types.ScannerInitialBufferSize
	if initial > maxToken {
		initial = maxToken
	}
	sc.Buffer(make([]byte, 0, initial), maxToken)
	sc.Split(scanRawLines)
	return &lineSource{sc: sc, limits: limits}
}

// scanRawLines is bufio.ScanLines without dropping the terminator, so quoted
// continuations can be reassembled byte-for-byte. Lines split on '\n' only;
// a bare '\r' separates nothing and is stripped only at the end of input.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// next returns the next physical line. ok is false at end of input or on a
// read error (see Err).
func (s *lineSource) next() (physLine, bool) {
	if s.err != nil || !s.sc.Scan() {
		return physLine{}, false
	}
	s.lineNo++
	raw := s.sc.Text()
	line := physLine{text: raw, no: s.lineNo}
	switch {
	case strings.HasSuffix(raw, CRLF):
		line.text, line.term = raw[:len(raw)-len(CRLF)], CRLF
	case strings.HasSuffix(raw, LF):
		line.text, line.term = raw[:len(raw)-len(LF)], LF
	case strings.HasSuffix(raw, CR):
		line.text, line.term = raw[:len(raw)-len(CR)], CR
	}
	if !s.limits.CheckLine(len(line.text)) {
		s.err = lineTooLong(line.no, nil)
		return physLine{}, false
	}
	return line, true
}

// nextLogical returns the next line the tree builder should see, skipping
// blank lines and ';' comments.
func (s *lineSource) nextLogical() (physLine, bool) {
	for {
		line, ok := s.next()
		if !ok {
			return physLine{}, false
		}
		trimmed := strings.TrimSpace(line.text)
		if trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix) {
			continue
		}
		return line, true
	}
}

// readHeader consumes the first physical line and checks it is exactly the
// version 5.00 header (line terminator aside).
func (s *lineSource) readHeader() error {
	line, ok := s.next()
	if err := s.Err(); err != nil {
		return err
	}
	if !ok {
		return &types.Error{
			Kind:     types.ErrKindFormat,
			Msg:      "not a .reg file: empty input",
			Position: -1,
		}
	}
	if line.text != RegFileHeader {
		return &types.Error{
			Kind:     types.ErrKindFormat,
			Msg:      "not a .reg file: bad header",
			Line:     line.no,
			Raw:      truncate(line.text, maxRawLen),
			Position: -1,
		}
	}
	return nil
}

// Err reports a read failure, translated into the typed error taxonomy.
func (s *lineSource) Err() error {
	if s.err != nil {
		return s.err
	}
	err := s.sc.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, bufio.ErrTooLong) {
		s.err = lineTooLong(s.lineNo+1, err)
	} else {
		s.err = &types.Error{
			Kind:     types.ErrKindIO,
			Msg:      "read failed",
			Line:     s.lineNo + 1,
			Err:      err,
			Position: -1,
		}
	}
	return s.err
}

func lineTooLong(lineNo int, cause error) *types.Error {
	return &types.Error{
		Kind:     types.ErrKindLimit,
		Msg:      "line exceeds MaxLineLength",
		Line:     lineNo,
		Err:      cause,
		Position: -1,
	}
}

// maxRawLen bounds how much offending text is copied into an error.
const maxRawLen = 80

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
