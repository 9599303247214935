// Package fileio provides the byte-stream file helpers: whole-file read
// and write with transparent gzip for .gz paths. Failures are recorded
// on the last-error channel as io_failure.
package fileio
