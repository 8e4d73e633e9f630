package regtext

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/regkit/pkg/types"
)

// decodeInput wraps r so that the line source always sees UTF-8 text.
// The default (empty or UTF-8) passes the stream through untouched.
func decodeInput(r io.Reader, enc string) (io.Reader, error) {
	switch strings.ToUpper(enc) {
	case "", strings.ToUpper(types.EncodingUTF8), "UTF8":
		return r, nil
	case strings.ToUpper(types.EncodingWindows1252), "CP1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	case strings.ToUpper(types.EncodingLatin1), "LATIN1", "LATIN-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case strings.ToUpper(types.EncodingUTF16LE):
		// regedit writes UTF-16LE with a BOM; UseBOM consumes it when present.
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(r, dec), nil
	default:
		return nil, &types.Error{
			Kind:     types.ErrKindUnsupported,
			Msg:      "unsupported input encoding",
			Raw:      enc,
			Position: -1,
		}
	}
}
