// Package errors provides structured error types for the dyntext library.
//
// Errors are categorized by Phase (which component failed) and Kind (error
// category). Every fallible operation in the library returns an explicit
// error; the package additionally keeps a process-wide last-error record as
// a diagnostic channel the formatters consult when rendering aborts.
//
// Construct errors with the convenience constructors:
//
//	err := errors.OutOfBounds(errors.PhaseArray, 10, 5)
//	err := errors.AllocationFailed(errors.PhaseArray, 4096)
//	err := errors.IO(errors.PhaseFile, "open", cause)
//
// and record them on the channel at the failure site:
//
//	errors.SetLast(err)
//	rec := errors.Last() // Record{Code: 22, Message: "..."}
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
