package template

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dyntext/dyntext/errors"
	"github.com/dyntext/dyntext/value"
)

// RenderString scans tmpl left to right and substitutes vals into its
// placeholder tokens:
//
//	{}   consumes the next value in auto-increment order
//	{N}  substitutes the value at position N of vals, bounds-checked
//
// A brace not followed by '}' or a digit copies through literally.
// Ownership of every element of vals transfers into the call: all of
// them are released before return, whether rendering completes or
// aborts. On abort the partial output is discarded and the returned
// error (also recorded on the last-error channel) describes the cause.
func RenderString(tmpl string, vals []value.Value) (string, error) {
	defer releaseAll(vals)

	var b strings.Builder
	b.Grow(len(tmpl))
	cursor := 0

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}

		if i+1 < len(tmpl) && tmpl[i+1] == '}' {
			idx := cursor
			cursor++
			if err := substitute(&b, vals, idx); err != nil {
				return "", err
			}
			i += 2
			continue
		}

		if i+1 < len(tmpl) && isDigit(tmpl[i+1]) {
			j := i + 1
			for j < len(tmpl) && isDigit(tmpl[j]) {
				j++
			}
			if j == len(tmpl) || tmpl[j] != '}' {
				e := errors.MalformedPlaceholder(i)
				errors.SetLast(e)
				Logger().Debug("render aborted", zap.Int("offset", i), zap.Error(e))
				return "", e
			}
			idx, convErr := strconv.Atoi(tmpl[i+1 : j])
			if convErr != nil { // digit run too long for an int
				e := errors.MalformedPlaceholder(i)
				errors.SetLast(e)
				return "", e
			}
			if err := substitute(&b, vals, idx); err != nil {
				return "", err
			}
			i = j + 1
			continue
		}

		// Literal brace.
		b.WriteByte(c)
		i++
	}

	return b.String(), nil
}

// substitute renders vals[idx] into b. Indexed lookups past the end of
// the supplied values are an error, never a read past the sequence.
func substitute(b *strings.Builder, vals []value.Value, idx int) error {
	if idx < 0 || idx >= len(vals) {
		e := errors.OutOfBounds(errors.PhaseRender, idx, len(vals))
		errors.SetLast(e)
		return e
	}

	v := vals[idx]
	if v.Err() {
		// Abort on the first error-flagged input. The channel usually
		// already holds the producing failure; overwrite only when empty.
		e := errors.InvalidArgument(errors.PhaseRender,
			fmt.Sprintf("value at position %d carries an error", idx))
		if errors.Last().Code == 0 {
			errors.SetLast(e)
		}
		Logger().Debug("render aborted", zap.Int("position", idx), zap.Error(e))
		return e
	}

	v.AppendText(b)
	return nil
}

func releaseAll(vals []value.Value) {
	for i := range vals {
		vals[i].Release()
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
