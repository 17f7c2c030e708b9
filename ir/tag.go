package ir

import (
	"fmt"
	"strings"
)

// Tag is one node of a parsed schematic tree.
type Tag struct {
	// Tokens holds the raw token strings. Tokens[0] is the tag name.
	Tokens []string
	// Children holds the nested tags, in document order.
	Children []*Tag

	// Start and Stop are the byte offsets of the node in the input it
	// was parsed from. They are diagnostic metadata only and are not
	// maintained across mutation.
	Start, Stop int
}

// Name returns the tag name, the empty string for a tokenless tag.
func (t *Tag) Name() string {
	if len(t.Tokens) == 0 {
		return ""
	}
	return t.Tokens[0]
}

// String returns the tag's own tokens joined by single spaces, without
// children. Use encode.Encode for the full serialized form.
func (t *Tag) String() string {
	return strings.Join(t.Tokens, " ")
}

// Items returns the direct children named name, in document order.
// The search is not transitive.
func (t *Tag) Items(name string) []*Tag {
	var res []*Tag
	for _, c := range t.Children {
		if c.Name() == name {
			res = append(res, c)
		}
	}
	return res
}

// Item returns the first direct child named name, or nil.
func (t *Tag) Item(name string) *Tag {
	for _, c := range t.Children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// GetText returns the second token of the unique child tagged
// "label:". Symbol metadata is stored this way, e.g. «type: R».
func (t *Tag) GetText(label string) (string, error) {
	items := t.Items(label + ":")
	if len(items) != 1 {
		return "", fmt.Errorf("%w: %s: (%d matches)", ErrLabelNotFound, label, len(items))
	}
	if len(items[0].Tokens) < 2 {
		return "", fmt.Errorf("%w: %s: has no value token", ErrLabelNotFound, label)
	}
	return items[0].Tokens[1], nil
}

// Attr decodes token index i into a Value.
func (t *Tag) Attr(i int) (Value, error) {
	if i < 0 || i >= len(t.Tokens) {
		return Value{}, fmt.Errorf("%w: index %d of %q (%d tokens)",
			ErrNoSuchAttr, i, t.Name(), len(t.Tokens))
	}
	return DecodeToken(t.Tokens[i])
}

// StringAt decodes token index i and requires a quoted string.
func (t *Tag) StringAt(i int) (string, error) {
	v, err := t.Attr(i)
	if err != nil {
		return "", err
	}
	if v.Kind != StringKind {
		return "", fmt.Errorf("%w: token %d of %q is %s, not a string",
			ErrAttrDecode, i, t.Name(), v.Kind)
	}
	return v.Str, nil
}

// PairAt decodes token index i and requires a 2-tuple, returning its
// elements. Coordinate attributes have this shape.
func (t *Tag) PairAt(i int) (x, y int64, err error) {
	v, err := t.Attr(i)
	if err != nil {
		return 0, 0, err
	}
	if v.Kind != TupleKind || len(v.Tuple) != 2 {
		return 0, 0, fmt.Errorf("%w: token %d of %q is not a coordinate pair",
			ErrAttrDecode, i, t.Name())
	}
	return v.Tuple[0], v.Tuple[1], nil
}

// SetAttr encodes value and replaces token index i in place. Accepted
// value types are the integer kinds, string and Value; anything else
// fails with ErrUnsupportedValue.
func (t *Tag) SetAttr(i int, value any) error {
	if i < 0 || i >= len(t.Tokens) {
		return fmt.Errorf("%w: index %d of %q (%d tokens)",
			ErrNoSuchAttr, i, t.Name(), len(t.Tokens))
	}
	tok, err := EncodeToken(value)
	if err != nil {
		return err
	}
	t.Tokens[i] = tok
	return nil
}

// Append adds child as the last child of t.
func (t *Tag) Append(child *Tag) {
	t.Children = append(t.Children, child)
}

// Remove removes the first child identical to child, reporting whether
// it was present.
func (t *Tag) Remove(child *Tag) bool {
	for i, c := range t.Children {
		if c == child {
			t.Children = append(t.Children[:i], t.Children[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of t. Offsets are carried over.
func (t *Tag) Clone() *Tag {
	res := &Tag{
		Tokens: make([]string, len(t.Tokens)),
		Start:  t.Start,
		Stop:   t.Stop,
	}
	copy(res.Tokens, t.Tokens)
	if len(t.Children) > 0 {
		res.Children = make([]*Tag, len(t.Children))
		for i, c := range t.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Visit walks t in document order, calling f before and after each
// tag's children. Returning false from a pre-order call skips the
// children; any error aborts the walk.
func (t *Tag) Visit(f func(t *Tag, isPost bool) (bool, error)) error {
	dive, err := f(t, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range t.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(t, true); err != nil {
		return err
	}
	return nil
}
