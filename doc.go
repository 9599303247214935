// Package dyntext provides a small runtime for dynamically typed values
// and template-style text formatting without format specifiers.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	dyntext/             Root package (documentation only)
//	├── value/           Tagged-union Value model and the growable Array
//	├── template/        Placeholder scanner and substitution engine
//	├── printer/         Console-sink and string-sink rendering facades
//	├── errors/          Structured error types and the last-error channel
//	├── input/           Console line reading with automatic classification
//	├── fileio/          Whole-file read/write helpers
//	├── clock/           Wall-clock and monotonic time readers
//	├── trace/           Optional value lifecycle tracing
//	└── transcoder/      Console output transcoding at the print boundary
//
// # Quick Start
//
// Build values and print them through a template:
//
//	printer.Print("Name: {} Age: {}", value.Str("Ada"), value.Int(36))
//	// Output: Name: Ada Age: 36
//
// Values are owned: the render call consumes and releases them. Indexed
// placeholders address the argument sequence directly:
//
//	s, err := printer.Format("{1} {0}", value.Int(10), value.Int(20))
//	// s == "20 10"
//
// See the value package for the ownership and release rules, and the
// template package for the full placeholder grammar.
package dyntext
