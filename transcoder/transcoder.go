package transcoder

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/dyntext/dyntext/errors"
)

// Lookup resolves a console encoding name. The empty name and the
// UTF-8 aliases resolve to nil, meaning no transcoding is needed.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "cp1252", "windows-1252":
		return charmap.Windows1252, nil
	default:
		e := errors.InvalidArgument(errors.PhaseRender,
			fmt.Sprintf("unknown console encoding %q", name))
		errors.SetLast(e)
		return nil, e
	}
}

// NewWriter wraps w so UTF-8 text written through it arrives in enc.
// Runes the target encoding cannot represent are replaced rather than
// failing the write. A nil encoding returns w unchanged.
func NewWriter(w io.Writer, enc encoding.Encoding) io.Writer {
	if enc == nil {
		return w
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
}
