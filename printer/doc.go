// Package printer provides the two thin entry points over the template
// engine: Print/Fprint for the console sink and Format for the string
// sink.
//
// Both consume their values (see the template package for the ownership
// rules). The console sink terminates complete output with a newline and
// prints an "Error: <code> - <message>" diagnostic line when a render
// aborts; the string sink returns an owned string with no implicit
// newline.
package printer
