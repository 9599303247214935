package printer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/dyntext/dyntext/errors"
	"github.com/dyntext/dyntext/template"
	"github.com/dyntext/dyntext/value"
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stdout
)

// SetOutput redirects console-sink output (default os.Stdout) and
// returns the previous writer. The CLI installs a transcoding writer
// here when a non-UTF-8 console encoding is configured.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

// Fprint renders tmpl with vals into w, appending a trailing newline
// after a complete render. On failure it writes a diagnostic line
// built from the last-error record in place of the aborted output and
// returns the error. vals are consumed either way.
func Fprint(w io.Writer, tmpl string, vals ...value.Value) error {
	text, err := template.RenderString(tmpl, vals)
	if err != nil {
		rec := errors.Last()
		fmt.Fprintf(w, "Error: %d - %s\n", rec.Code, rec.Message)
		return err
	}
	if _, werr := io.WriteString(w, text+"\n"); werr != nil {
		e := errors.IO(errors.PhaseRender, "write console output", werr)
		errors.SetLast(e)
		Logger().Warn("console write failed", zap.Error(werr))
		return e
	}
	return nil
}

// Print renders to the configured console writer.
func Print(tmpl string, vals ...value.Value) error {
	outMu.Lock()
	w := out
	outMu.Unlock()
	return Fprint(w, tmpl, vals...)
}

// Format renders tmpl with vals and returns the owned result with no
// trailing newline. On failure the partial buffer never escapes: the
// result is empty and the last-error record identifies the cause,
// which lets callers tell a failed render from a legitimately empty
// one. vals are consumed either way.
func Format(tmpl string, vals ...value.Value) (string, error) {
	return template.RenderString(tmpl, vals)
}
