// Package encode serializes ir tags back to schematic text.
//
// # Usage
//
//	// Encode a tag tree
//	var buf bytes.Buffer
//	err := encode.Encode(tag, &buf)
//
//	// Encode starting at a nesting depth
//	err := encode.Encode(tag, &buf, encode.Depth(1))
//
// Tokens are joined by single spaces and children are indented two
// spaces per level, so re-parsing the output yields a tree with the
// same tokens and child structure.
//
// # Related Packages
//
//   - github.com/qsclib/go-qsch/ir - Tag representation
//   - github.com/qsclib/go-qsch/parse - Parse text to tags
package encode
