// Package parse provides schematic tag parsing support.
package parse

import (
	"fmt"
	"unicode/utf8"

	"github.com/qsclib/go-qsch/format"
	"github.com/qsclib/go-qsch/ir"
)

type Option func(*parseOpts)

type parseOpts struct {
	filename string
}

// WithFilename names the input in error messages.
func WithFilename(name string) Option {
	return func(o *parseOpts) { o.filename = name }
}

// Parse parses one tag starting at the beginning of doc.
func Parse(doc []byte, opts ...Option) (*ir.Tag, error) {
	return ParseAt(doc, 0, opts...)
}

// ParseAt parses one tag whose opening delimiter is at byte offset
// off. It fails with ErrMalformedInput if off does not hold the
// opening delimiter and with ErrUnterminatedNode if the input ends
// before the tag closes. Input past the tag's closing delimiter is
// left unread.
func ParseAt(doc []byte, off int, opts ...Option) (*ir.Tag, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	tag, _, err := parseTag(doc, off, pOpts)
	return tag, err
}

// parseTag scans one «...» unit and returns it along with the offset
// one past its closing delimiter.
func parseTag(doc []byte, start int, opts *parseOpts) (*ir.Tag, int, error) {
	r, size := utf8.DecodeRune(doc[start:])
	if r != format.OpenDelim {
		return nil, 0, opts.errAt(doc, start, ErrMalformedInput,
			fmt.Sprintf("expected %q", format.OpenDelim))
	}
	tag := &ir.Tag{Start: start}
	i := start + size
	i0 := i
	for i < len(doc) {
		r, size = utf8.DecodeRune(doc[i:])
		switch r {
		case format.OpenDelim:
			child, end, err := parseTag(doc, i, opts)
			if err != nil {
				return nil, 0, err
			}
			tag.Children = append(tag.Children, child)
			i = end
			i0 = i
			continue
		case format.CloseDelim:
			if i > i0 {
				tag.Tokens = append(tag.Tokens, string(doc[i0:i]))
			}
			tag.Stop = i + size
			return tag, tag.Stop, nil
		case ' ', '\n', '\r', '\t':
			if i > i0 {
				tag.Tokens = append(tag.Tokens, string(doc[i0:i]))
			}
			i0 = i + size
		case '"':
			// quoted span, kept verbatim inside the current token
			j := i + 1
			for j < len(doc) && doc[j] != '"' {
				j++
			}
			if j >= len(doc) {
				return nil, 0, opts.errAt(doc, i, ErrUnterminatedNode, "unclosed quote")
			}
			i = j
		case '(':
			// single-level tuple span, kept verbatim; nesting is not
			// supported by the format
			j := i + 1
			for j < len(doc) && doc[j] != ')' {
				if doc[j] == '(' {
					return nil, 0, opts.errAt(doc, j, ErrMalformedInput,
						"nested parentheses are not supported")
				}
				j++
			}
			if j >= len(doc) {
				return nil, 0, opts.errAt(doc, i, ErrUnterminatedNode, "unclosed parenthesis")
			}
			i = j
		}
		i += size
	}
	return nil, 0, opts.errAt(doc, start, ErrUnterminatedNode,
		fmt.Sprintf("missing %q", format.CloseDelim))
}

func (o *parseOpts) errAt(doc []byte, off int, sentinel error, msg string) error {
	pos := PosAt(doc, off)
	if o.filename != "" {
		return fmt.Errorf("%w: %s at %s:%s", sentinel, msg, o.filename, pos)
	}
	return fmt.Errorf("%w: %s at %s", sentinel, msg, pos)
}
