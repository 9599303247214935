package value

import (
	"strconv"
	"strings"
)

// floatPrecision is the fixed fractional digit count for float
// rendering, matching conventional fixed-point text output.
const floatPrecision = 6

// AppendText appends the value's text rendering to b. Int renders as
// plain decimal, Float with six fixed fractional digits, String
// verbatim, Null as the literal NULL. Arrays render recursively as
// Array[elem, elem, ...].
func (v Value) AppendText(b *strings.Builder) {
	switch v.kind {
	case KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.f, 'f', floatPrecision, 64))
	case KindString:
		b.WriteString(v.str)
	case KindArray:
		b.WriteString("Array[")
		if v.arr != nil {
			for i := range v.arr.data {
				if i > 0 {
					b.WriteString(", ")
				}
				v.arr.data[i].AppendText(b)
			}
		}
		b.WriteByte(']')
	case KindNull:
		b.WriteString("NULL")
	}
}

// Text returns the value's text rendering.
func (v Value) Text() string {
	var b strings.Builder
	v.AppendText(&b)
	return b.String()
}
