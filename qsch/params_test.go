package qsch

import (
	"errors"
	"strings"
	"testing"

	"github.com/qsclib/go-qsch/editor"
)

const paramSchematic = `«schematic
  «component (100,50) 0 0
    «symbol R
      «type: R»
      «description: Resistor»
      «text (100,150) 1 7 0 0x1000000 -1 -1 "R1"»
      «text (100,-150) 1 7 0 0x1000000 -1 -1 "{res}"»
    »
  »
  «text (0,-24) 1 0 0 0x1000000 -1 -1 ".param res=10k cap=1n"»
»`

func loadParamSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Load(writeSchematic(t, paramSchematic))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestParameter(t *testing.T) {
	doc := loadParamSample(t)
	for name, want := range map[string]string{
		"res": "10k",
		"RES": "10k", // case-insensitive
		"cap": "1n",
	} {
		got, err := doc.Parameter(name)
		if err != nil {
			t.Errorf("Parameter(%s): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("Parameter(%s): got %q, want %q", name, got, want)
		}
	}
	if _, err := doc.Parameter("gain"); !errors.Is(err, editor.ErrParameterNotFound) {
		t.Errorf("Parameter(gain): got %v, want ErrParameterNotFound", err)
	}
}

func TestSetParameterSplice(t *testing.T) {
	doc := loadParamSample(t)
	if err := doc.SetParameter("res", 4700); err != nil {
		t.Fatal(err)
	}
	got, err := doc.Parameter("res")
	if err != nil {
		t.Fatal(err)
	}
	if got != "4.7k" {
		t.Errorf("Parameter(res): got %q, want 4.7k", got)
	}
	// the splice must not disturb the neighboring assignment
	if got, _ := doc.Parameter("cap"); got != "1n" {
		t.Errorf("Parameter(cap) after splicing res: got %q, want 1n", got)
	}
	// still exactly one .param text
	n := 0
	for _, line := range doc.Instructions() {
		if strings.HasPrefix(strings.ToUpper(line), ".PARAM") {
			n++
		}
	}
	if n != 1 {
		t.Errorf("got %d .param texts, want 1", n)
	}
}

func TestSetParameterSynthesis(t *testing.T) {
	doc := loadParamSample(t)
	if err := doc.SetParameter("gain", 20); err != nil {
		t.Fatal(err)
	}
	got, err := doc.Parameter("gain")
	if err != nil {
		t.Fatal(err)
	}
	if got != "20" {
		t.Errorf("Parameter(gain): got %q, want 20", got)
	}
	// exactly one new text node of the canonical form
	n := 0
	for _, line := range doc.Instructions() {
		if line == ".param gain=20" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("got %d '.param gain=20' texts, want 1", n)
	}
	// placed below the drawing bounding box
	texts := doc.Root().Items("text")
	last := texts[len(texts)-1]
	_, y, err := last.PairAt(textPosAttr)
	if err != nil {
		t.Fatal(err)
	}
	if y > 50-24 {
		t.Errorf("synthesized text at y=%d overlaps the drawing", y)
	}
}

func TestSetParameterString(t *testing.T) {
	doc := loadParamSample(t)
	if err := doc.SetParameter("model", "BC547B"); err != nil {
		t.Fatal(err)
	}
	if got, _ := doc.Parameter("model"); got != "BC547B" {
		t.Errorf("Parameter(model): got %q, want BC547B", got)
	}
}
