// SPDX-License-Identifier: MPL-2.0

// Package footer parses the UCSC FOOTER manifest into program blocks.
//
// The manifest is a loosely structured text file listing every Kent utility:
// a banner header line per program, usually followed by a one-line summary.
// The parser yields one Block per program without interpreting the names;
// name resolution against the exception tables lives in package naming.
package footer
