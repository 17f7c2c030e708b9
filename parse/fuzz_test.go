package parse

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/qsclib/go-qsch/encode"
	"github.com/qsclib/go-qsch/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// minimal tags
		`«a»`,
		`«schematic»`,
		`«a 1 2 3»`,

		// nesting
		`«a «b»»`,
		`«a «b «c»»»`,
		"«a\n  «b 1»\n  «c 2»\n»",

		// quoted and tuple tokens
		`«text (0,-24) 1 0 0 0x1000000 -1 -1 ".tran 1m"»`,
		`«wire (0,0) (100,0) "N01"»`,
		`«a "quoted « delimiter"»`,
		`«a "two  spaces"»`,

		// realistic component shape
		"«schematic v 1\n" +
			"  «component (100,50) 0 0\n" +
			"    «symbol R\n" +
			"      «type: R»\n" +
			"      «description: Resistor»\n" +
			"      «text (100,150) 1 7 0 0x1000000 -1 -1 \"R1\"»\n" +
			"      «text (100,-150) 1 7 0 0x1000000 -1 -1 \"10k\"»\n" +
			"    »\n" +
			"  »\n" +
			"»",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		tag, err := Parse(data)
		if err != nil {
			// malformed input is fine, crashing is not
			return
		}
		var buf bytes.Buffer
		if err := encode.Encode(tag, &buf); err != nil {
			t.Fatalf("encode after successful parse: %v", err)
		}
		again, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("re-parse of encoded output: %v\noutput:\n%s", err, buf.String())
		}
		if d := cmp.Diff(tag, again, cmpopts.IgnoreFields(ir.Tag{}, "Start", "Stop")); d != "" {
			t.Fatalf("round trip not stable (-first +second):\n%s", d)
		}
	})
}
