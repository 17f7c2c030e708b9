package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type decodeTest struct {
	in   string
	want Value
	e    error
}

func TestDecodeToken(t *testing.T) {
	dts := []decodeTest{
		{in: "42", want: FromInt(42)},
		{in: "-17", want: FromInt(-17)},
		{in: "0x1000000", want: FromInt(0x1000000)},
		{in: `"10k"`, want: FromString("10k")},
		{in: `""`, want: FromString("")},
		{in: "(100,-250)", want: FromTuple(100, -250)},
		{in: "(1,2,3)", want: FromTuple(1, 2, 3)},
		{in: "R1", e: ErrAttrDecode},
		{in: "(a,b)", e: ErrAttrDecode},
		{in: "0xzz", e: ErrAttrDecode},
	}
	for _, dt := range dts {
		got, err := DecodeToken(dt.in)
		if dt.e != nil {
			if !errors.Is(err, dt.e) {
				t.Errorf("DecodeToken(%q): got err %v, want %v", dt.in, err, dt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("DecodeToken(%q): %v", dt.in, err)
			continue
		}
		if d := cmp.Diff(dt.want, got); d != "" {
			t.Errorf("DecodeToken(%q): (-want +got):\n%s", dt.in, d)
		}
	}
}

func TestEncodeToken(t *testing.T) {
	for _, et := range []struct {
		in   any
		want string
		e    error
	}{
		{in: 3300, want: "3300"},
		{in: int64(-5), want: "-5"},
		{in: "10k", want: `"10k"`},
		{in: "0x1000000", want: "0x1000000"},
		{in: FromTuple(1, 2), want: "(1,2)"},
		{in: 3.14, e: ErrUnsupportedValue},
		{in: []string{"x"}, e: ErrUnsupportedValue},
	} {
		got, err := EncodeToken(et.in)
		if et.e != nil {
			if !errors.Is(err, et.e) {
				t.Errorf("EncodeToken(%v): got err %v, want %v", et.in, err, et.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("EncodeToken(%v): %v", et.in, err)
			continue
		}
		if got != et.want {
			t.Errorf("EncodeToken(%v): got %q, want %q", et.in, got, et.want)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for _, tok := range []string{"42", `"hello world"`, "(0,-24)"} {
		v, err := DecodeToken(tok)
		if err != nil {
			t.Fatalf("DecodeToken(%q): %v", tok, err)
		}
		if got := v.Token(); got != tok {
			t.Errorf("round trip %q: got %q", tok, got)
		}
	}
}
