// Package format holds the on-disk constants of the QSPICE schematic
// file format: the 4-byte magic header, the «» node delimiters and the
// .qsch file suffix.
//
// # Related Packages
//
//   - github.com/qsclib/go-qsch/parse - Parse schematic text into tags
//   - github.com/qsclib/go-qsch/encode - Encode tags back to text
package format
