package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyntext/dyntext/errors"
)

func TestWriteRead(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"plain", "plain.txt"},
		{"gzip", "compressed.txt.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			content := "line one\nline two\n"

			if err := WriteFile(path, content); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if got != content {
				t.Errorf("ReadFile = %q, want %q", got, content)
			}
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	errors.ClearLast()

	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error")
	}
	if rec := errors.Last(); rec.Code != errors.CodeIO {
		t.Errorf("last-error code = %d, want %d", rec.Code, errors.CodeIO)
	}
}

func TestReadFile_CorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.gz")
	if err := os.WriteFile(path, []byte("not gzip at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Error("expected decompress error for non-gzip content")
	}
}
