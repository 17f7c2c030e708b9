package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the decoded forms an attribute token can take.
type Kind int

const (
	IntKind Kind = iota
	StringKind
	TupleKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case StringKind:
		return "string"
	case TupleKind:
		return "tuple"
	default:
		return fmt.Sprintf("<err: %d is not a kind>", int(k))
	}
}

// Value is the decoded form of one attribute token. Exactly the field
// selected by Kind is meaningful.
type Value struct {
	Kind  Kind
	Int   int64
	Str   string
	Tuple []int64
}

func FromInt(v int64) Value      { return Value{Kind: IntKind, Int: v} }
func FromString(v string) Value  { return Value{Kind: StringKind, Str: v} }
func FromTuple(v ...int64) Value { return Value{Kind: TupleKind, Tuple: v} }

// DecodeToken sniffs the lexical form of tok and decodes it:
// "(a,b,...)" to an integer tuple, "0xHEX" to an integer, a
// double-quoted span to a string, anything else to a decimal integer.
func DecodeToken(tok string) (Value, error) {
	switch {
	case strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")"):
		parts := strings.Split(tok[1:len(tok)-1], ",")
		tuple := make([]int64, len(parts))
		for i, p := range parts {
			n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return Value{}, fmt.Errorf("%w: tuple element %q in %q", ErrAttrDecode, p, tok)
			}
			tuple[i] = n
		}
		return FromTuple(tuple...), nil
	case strings.HasPrefix(tok, "0x"):
		n, err := strconv.ParseInt(tok[2:], 16, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: hex literal %q", ErrAttrDecode, tok)
		}
		return FromInt(n), nil
	case len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`):
		return FromString(tok[1 : len(tok)-1]), nil
	default:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a tuple, hex, string or integer", ErrAttrDecode, tok)
		}
		return FromInt(n), nil
	}
}

// EncodeToken renders value as a raw token string. Integers become
// decimal text, strings become quoted text unless already
// hex-prefixed, a Value is rendered per its Kind. Any other value type
// fails with ErrUnsupportedValue.
func EncodeToken(value any) (string, error) {
	switch x := value.(type) {
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case string:
		if strings.HasPrefix(x, "0x") {
			return x, nil
		}
		return `"` + x + `"`, nil
	case Value:
		return x.Token(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// Token renders v back to its wire form.
func (v Value) Token() string {
	switch v.Kind {
	case IntKind:
		return strconv.FormatInt(v.Int, 10)
	case StringKind:
		return `"` + v.Str + `"`
	case TupleKind:
		parts := make([]string, len(v.Tuple))
		for i, n := range v.Tuple {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return ""
	}
}
