package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dyntext/dyntext/errors"
	"github.com/dyntext/dyntext/value"
)

func TestFprint(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		vals []value.Value
		want string
	}{
		{
			"trailing newline",
			"Name: {} Age: {}",
			[]value.Value{value.Str("Ada"), value.Int(36)},
			"Name: Ada Age: 36\n",
		},
		{"empty template", "", nil, "\n"},
		{
			"float rendering",
			"{}",
			[]value.Value{value.Float(3.5)},
			"3.500000\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Fprint(&buf, tt.tmpl, tt.vals...); err != nil {
				t.Fatalf("Fprint: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFprint_DiagnosticOnAbort(t *testing.T) {
	errors.ClearLast()

	var buf bytes.Buffer
	err := Fprint(&buf, "ok {} broken {}", value.Str("a"), value.Int(0).WithError())
	if err == nil {
		t.Fatal("expected render error")
	}

	got := buf.String()
	if !strings.HasPrefix(got, "Error: ") {
		t.Errorf("output = %q, want a diagnostic line", got)
	}
	if strings.Contains(got, "ok a") {
		t.Error("aborted output must not leak rendered text")
	}
	if rec := errors.Last(); rec.Code == 0 {
		t.Error("last-error record should be populated")
	}
}

func TestPrint_UsesConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	if err := Print("hello {}", value.Str("console")); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "hello console\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	got, err := Format("{} + {} = {}", value.Int(1), value.Int(2), value.Int(3))
	if err != nil {
		t.Fatal(err)
	}
	if want := "1 + 2 = 3"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("string sink must not append a newline")
	}
}

func TestFormat_FailureVersusEmpty(t *testing.T) {
	errors.ClearLast()

	// Legitimately empty result: no error, channel untouched.
	got, err := Format("")
	if err != nil || got != "" {
		t.Fatalf("empty render: got %q, err %v", got, err)
	}
	if rec := errors.Last(); rec.Code != 0 {
		t.Errorf("channel should stay clear on success, got code %d", rec.Code)
	}

	// Failed result: empty string, error returned, channel populated.
	got, err = Format("{5}", value.Int(1))
	if err == nil {
		t.Fatal("expected error")
	}
	if got != "" {
		t.Errorf("failed render should return empty string, got %q", got)
	}
	if rec := errors.Last(); rec.Code == 0 {
		t.Error("channel should record the failure")
	}
}

func TestHexBin(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{255, "Hex: 0xff | Binary: 0b0000 0000 0000 0000 0000 0000 1111 1111"},
		{0, "Hex: 0x0 | Binary: 0b0000 0000 0000 0000 0000 0000 0000 0000"},
		{-1, "Hex: 0xffffffff | Binary: 0b1111 1111 1111 1111 1111 1111 1111 1111"},
	}
	for _, tt := range tests {
		if got := HexBin(tt.n); got != tt.want {
			t.Errorf("HexBin(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}

	// Values beyond 32 bits widen to 64.
	if got := HexBin(1 << 40); !strings.HasPrefix(got, "Hex: 0x10000000000 | Binary: 0b") {
		t.Errorf("HexBin(1<<40) = %q", got)
	}
}
