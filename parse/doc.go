// Package parse parses QSPICE schematic text into ir tags.
//
// # Usage
//
//	// Parse a full tag body (the byte after the file header)
//	tag, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Parse starting at a known offset
//	tag, err := parse.ParseAt(data, 4)
//
// The parser is a single forward scan: nested «» units recurse into
// child tags, whitespace separates tokens, double-quoted spans and
// single-level (..) tuples are kept verbatim inside their token.
// Nested parentheses are not supported and fail fast.
//
// # Related Packages
//
//   - github.com/qsclib/go-qsch/ir - Tag representation
//   - github.com/qsclib/go-qsch/encode - Encode tags to text
package parse
