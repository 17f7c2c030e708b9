package eng

import (
	"errors"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	for _, ft := range []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: 1, want: "1"},
		{in: 330, want: "330"},
		{in: 1000, want: "1k"},
		{in: 3300, want: "3.3k"},
		{in: 10000, want: "10k"},
		{in: 4.7e6, want: "4.7Meg"},
		{in: 1e9, want: "1G"},
		{in: 2.2e12, want: "2.2T"},
		{in: 0.01, want: "10m"},
		{in: 1e-6, want: "1u"},
		{in: 4.7e-9, want: "4.7n"},
		{in: 22e-12, want: "22p"},
		{in: 1e-15, want: "1f"},
		{in: -3300, want: "-3.3k"},
	} {
		if got := Format(ft.in); got != ft.want {
			t.Errorf("Format(%v): got %q, want %q", ft.in, got, ft.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, pt := range []struct {
		in   string
		want float64
		e    error
	}{
		{in: "3.3k", want: 3300},
		{in: "10K", want: 10000},
		{in: "4.7Meg", want: 4.7e6},
		{in: "4.7meg", want: 4.7e6},
		{in: "1G", want: 1e9},
		{in: "100m", want: 0.1},
		{in: "47u", want: 47e-6},
		{in: "2n", want: 2e-9},
		{in: "10p", want: 10e-12},
		{in: "330", want: 330},
		{in: "-1.5k", want: -1500},
		{in: "1e3", want: 1000},
		{in: "", e: ErrBadNumber},
		{in: "abc", e: ErrBadNumber},
		{in: "10x", e: ErrBadNumber},
		{in: "10kOhm", e: ErrBadNumber},
	} {
		got, err := Parse(pt.in)
		if pt.e != nil {
			if !errors.Is(err, pt.e) {
				t.Errorf("Parse(%q): got err %v, want %v", pt.in, err, pt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", pt.in, err)
			continue
		}
		if math.Abs(got-pt.want) > math.Abs(pt.want)*1e-12 {
			t.Errorf("Parse(%q): got %v, want %v", pt.in, got, pt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, v := range []float64{3300, 0.01, 4.7e6, 1e-9, 220, -47000} {
		got, err := Parse(Format(v))
		if err != nil {
			t.Fatalf("Parse(Format(%v)): %v", v, err)
		}
		if math.Abs(got-v) > math.Abs(v)*1e-12 {
			t.Errorf("round trip %v: got %v", v, got)
		}
	}
}
