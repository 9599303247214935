package fileio

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/dyntext/dyntext/errors"
)

// ReadFile reads the whole file at path as text. Paths ending in .gz
// are decompressed transparently. Failures record io_failure on the
// last-error channel.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		e := errors.IO(errors.PhaseFile, "open "+path, err)
		errors.SetLast(e)
		return "", e
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			e := errors.IO(errors.PhaseFile, "decompress "+path, err)
			errors.SetLast(e)
			return "", e
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		e := errors.IO(errors.PhaseFile, "read "+path, err)
		errors.SetLast(e)
		return "", e
	}
	return string(data), nil
}

// WriteFile writes content to path, creating or truncating it. Paths
// ending in .gz are compressed transparently. Failures record
// io_failure on the last-error channel.
func WriteFile(path, content string) error {
	if !strings.HasSuffix(path, ".gz") {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			e := errors.IO(errors.PhaseFile, "write "+path, err)
			errors.SetLast(e)
			return e
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		e := errors.IO(errors.PhaseFile, "create "+path, err)
		errors.SetLast(e)
		return e
	}
	zw := gzip.NewWriter(f)
	if _, err := io.WriteString(zw, content); err == nil {
		err = zw.Close()
	} else {
		zw.Close()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		e := errors.IO(errors.PhaseFile, "write "+path, err)
		errors.SetLast(e)
		return e
	}
	return nil
}
