// Package transcoder converts rendered UTF-8 text to a console byte
// encoding at the print boundary. It is not part of the value or
// template contracts: the printer writes UTF-8, and a transcoding
// writer installed via printer.SetOutput handles consoles that expect
// legacy single-byte encodings.
package transcoder
