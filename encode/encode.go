package encode

import (
	"io"
	"strings"

	"github.com/qsclib/go-qsch/format"
	"github.com/qsclib/go-qsch/ir"
)

type EncState struct {
	depth  int
	indent int

	Color func(ColorAttr, string) string
}

// Encode writes the serialized form of tag to w: the tag's tokens
// joined by single spaces between the «» delimiters, children indented
// by two spaces per nesting level, newline terminated.
func Encode(tag *ir.Tag, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(tag, w, es)
}

func encode(tag *ir.Tag, w io.Writer, es *EncState) error {
	spaces := strings.Repeat(" ", es.depth*es.indent)
	if err := writeString(w, spaces+es.color(DelimColor, string(format.OpenDelim))); err != nil {
		return err
	}
	if err := writeTokens(tag, w, es); err != nil {
		return err
	}
	if len(tag.Children) == 0 {
		return writeString(w, es.color(DelimColor, string(format.CloseDelim))+"\n")
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	es.depth++
	for _, c := range tag.Children {
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, spaces+es.color(DelimColor, string(format.CloseDelim))+"\n")
}

func writeTokens(tag *ir.Tag, w io.Writer, es *EncState) error {
	for i, tok := range tag.Tokens {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		attr := tokenAttr(i, tok)
		if err := writeString(w, es.color(attr, tok)); err != nil {
			return err
		}
	}
	return nil
}

func tokenAttr(i int, tok string) ColorAttr {
	switch {
	case i == 0:
		return NameColor
	case strings.HasPrefix(tok, `"`):
		return StringColor
	case strings.HasPrefix(tok, "("):
		return TupleColor
	default:
		return NumberColor
	}
}

func (es *EncState) color(attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}

func writeString(w io.Writer, v string) error {
	_, err := io.WriteString(w, v)
	return err
}
