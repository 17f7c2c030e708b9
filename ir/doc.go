// Package ir provides the in-memory representation of a parsed
// schematic: a tree of tags.
//
// # Overview
//
// A Tag is one «»-delimited unit of a schematic file. Its first token
// is its name ("component", "wire", "text", ...); the remaining tokens
// are positional attributes. Nested units become child tags, in
// document order. Each tag exclusively owns its children; the tree is
// a strict forest rooted at one top-level tag.
//
// Attributes are raw token strings on the wire. Attr decodes a token
// into a closed variant type (Value: integer, string or integer
// tuple), and SetAttr re-encodes a Go value into token form in place.
// Token replacement through SetAttr is the sole mutation primitive
// used by the higher-level editing API.
//
// # Thread Safety
//
// Tag trees are not safe for concurrent mutation. Callers running
// edits from multiple goroutines must synchronize externally or work
// on independently parsed trees.
//
// # Related Packages
//
//   - github.com/qsclib/go-qsch/parse - Parses schematic text into tags
//   - github.com/qsclib/go-qsch/encode - Encodes tags back to text
//   - github.com/qsclib/go-qsch/qsch - Schematic-level editing API
package ir
