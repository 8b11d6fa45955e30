// Package x12 provides the core wire-level types for X12 EDI processing:
// delimiters, segments, the segment writer, and interchange control numbers.
//
// The package is deliberately small. It knows how to put elements on the
// wire and how to read them back; it knows nothing about claims, loops, or
// payer rules. Higher layers (encode, parse, compliance) are built on it.
//
// # Delimiters
//
// X12 separators are configurable per interchange. The element separator is
// the fourth byte of the ISA segment, the component separator is carried in
// ISA16, and the segment terminator is the byte that follows ISA16:
//
//	ISA*00*...*:~
//	   ^       ^^
//	   |       |+-- segment terminator
//	   |       +--- ISA16: component separator
//	   +----------- element separator
//
// [DefaultDelimiters] returns the conventional set (* : ^ ~), and
// [ParseDelimiters] recovers the set actually used by an emitted
// interchange.
//
// # Writing segments
//
// The [Writer] owns delimiter policy, trailing-empty-element trimming, and
// the live segment counter used for SE totals:
//
//	w := x12.NewWriter()
//	w.MarkST()
//	if err := w.Emit("ST", "837", "0001", "005010X222A1"); err != nil { ... }
//	...
//	w.Emit("SE", strconv.Itoa(w.CountSinceST()+1), "0001")
//
// Elements containing reserved separator characters are rejected with a
// [*WriterError]; composite elements are built with [Writer.Composite].
package x12
