// Package texthuffman builds a prefix-code tree from a symbol frequency
// table and uses it to serialize a byte stream as a textual bit string.
//
// The output is a string of ASCII '0' and '1' characters laid out as:
//
//	[16 digits]  decimal length of the code table section, zero-padded
//	[table]      one entry per symbol, in code table order:
//	                 [8 digits] decimal code length, zero-padded
//	                 [8 digits] decimal symbol value, zero-padded
//	                 [N chars]  the code itself
//	[payload]    the code of each source byte, concatenated
//
// Lengths are stored as decimal digit strings, not binary integers, so the
// whole stream stays human-inspectable.
//
// Only encoding is provided.  ParseHeader recovers the code table from an
// encoded stream but does not decode the payload.
package texthuffman
