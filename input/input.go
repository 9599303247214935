package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dyntext/dyntext/errors"
	"github.com/dyntext/dyntext/value"
)

// Reader reads console lines and hands them off as classified Values.
type Reader struct {
	r          *bufio.Reader
	w          io.Writer
	echoPrompt bool
}

// New creates a Reader over an arbitrary source and prompt sink.
// Prompts are always echoed; use Stdin for TTY-aware behavior.
func New(r io.Reader, w io.Writer) *Reader {
	return &Reader{r: bufio.NewReader(r), w: w, echoPrompt: true}
}

// Stdin returns a Reader over standard input. Prompts are echoed only
// when stdin is a terminal, so piped input stays clean.
func Stdin() *Reader {
	return &Reader{
		r:          bufio.NewReader(os.Stdin),
		w:          os.Stdout,
		echoPrompt: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// Prompt writes prompt, reads one line and classifies it at
// construction time: an integer literal becomes an Int, a float
// literal a Float, anything else (including empty input) a Str. A
// read failure records io_failure on the channel and returns an
// error-flagged empty Str.
func (rd *Reader) Prompt(prompt string) (value.Value, error) {
	if rd.echoPrompt && rd.w != nil && prompt != "" {
		io.WriteString(rd.w, prompt)
	}

	line, err := rd.r.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		e := errors.IO(errors.PhaseInput, "read line", err)
		errors.SetLast(e)
		return value.Str("").WithError(), e
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return value.Str(""), nil
	}
	if v, ok := value.FromLiteral(line); ok {
		return v, nil
	}
	return value.Str(line), nil
}
