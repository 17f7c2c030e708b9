package encode

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/qsclib/go-qsch/ir"
	"github.com/qsclib/go-qsch/parse"
)

func TestEncodeLeaf(t *testing.T) {
	tag := &ir.Tag{Tokens: []string{"symbol", "R1"}}
	var buf bytes.Buffer
	if err := Encode(tag, &buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "«symbol R1»\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeNested(t *testing.T) {
	tag := &ir.Tag{
		Tokens: []string{"schematic"},
		Children: []*ir.Tag{
			{
				Tokens: []string{"component", "(0,0)"},
				Children: []*ir.Tag{
					{Tokens: []string{"symbol", "R1"}},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := Encode(tag, &buf); err != nil {
		t.Fatal(err)
	}
	want := "«schematic\n" +
		"  «component (0,0)\n" +
		"    «symbol R1»\n" +
		"  »\n" +
		"»\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	tag := &ir.Tag{Tokens: []string{"symbol", "R1"}}
	var buf bytes.Buffer
	if err := Encode(tag, &buf, Depth(2)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "    «symbol R1»\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	in := "«schematic v 1\n" +
		"  «component (100,50) 0 0\n" +
		"    «symbol R\n" +
		"      «type: R»\n" +
		"      «text (100,150) 1 7 0 0x1000000 -1 -1 \"R1\"»\n" +
		"      «text (100,-150) 1 7 0 0x1000000 -1 -1 \"10k\"»\n" +
		"    »\n" +
		"  »\n" +
		"  «wire (0,0) (100,0) \"N01\"»\n" +
		"»"
	tag, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(tag, &buf); err != nil {
		t.Fatal(err)
	}
	again, err := parse.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("re-parse: %v\nserialized:\n%s", err, buf.String())
	}
	if d := cmp.Diff(tag, again, cmpopts.IgnoreFields(ir.Tag{}, "Start", "Stop")); d != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", d)
	}
}

func TestMustString(t *testing.T) {
	tag := &ir.Tag{Tokens: []string{"net", "(0,0)", "1"}}
	if got, want := MustString(tag), "«net (0,0) 1»"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
