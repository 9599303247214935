package printer

import (
	"fmt"
	"math"
	"strings"
)

// HexBin renders n in hexadecimal and nibble-grouped binary, e.g.
// "Hex: 0xff | Binary: 0b... 1111 1111". Values that fit a 32-bit
// integer render as 32 bits; wider values render as 64.
func HexBin(n int64) string {
	width := 32
	u := uint64(uint32(n))
	if n > math.MaxInt32 || n < math.MinInt32 {
		width = 64
		u = uint64(n)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hex: 0x%x | Binary: 0b", u)
	for i := width - 1; i >= 0; i-- {
		b.WriteByte('0' + byte((u>>uint(i))&1))
		if i%4 == 0 && i != 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// PrintHexBin writes HexBin(n) plus a newline to the console writer.
func PrintHexBin(n int64) error {
	outMu.Lock()
	w := out
	outMu.Unlock()
	_, err := fmt.Fprintln(w, HexBin(n))
	return err
}
