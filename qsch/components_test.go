package qsch

import (
	"errors"
	"testing"

	"github.com/qsclib/go-qsch/editor"
)

func TestSetComponentValue(t *testing.T) {
	doc := loadSample(t)
	// numeric values come out in engineering notation
	if err := doc.SetComponentValue("R1", 3300); err != nil {
		t.Fatal(err)
	}
	v, err := doc.ComponentValue("R1")
	if err != nil {
		t.Fatal(err)
	}
	if v != "3.3k" {
		t.Errorf("after numeric set: got %q, want 3.3k", v)
	}
	// strings pass verbatim
	if err := doc.SetComponentValue("C1", "2.2u"); err != nil {
		t.Fatal(err)
	}
	if v, _ := doc.ComponentValue("C1"); v != "2.2u" {
		t.Errorf("after string set: got %q, want 2.2u", v)
	}
	// the index record follows the edit
	info, err := doc.ComponentInfo("R1")
	if err != nil {
		t.Fatal(err)
	}
	if info.Model != "3.3k" {
		t.Errorf("index record model: got %q, want 3.3k", info.Model)
	}
}

func TestComponentNotFound(t *testing.T) {
	doc := loadSample(t)
	if _, err := doc.ComponentValue("Z99"); !errors.Is(err, editor.ErrComponentNotFound) {
		t.Errorf("ComponentValue(Z99): got %v, want ErrComponentNotFound", err)
	}
	if _, err := doc.ComponentInfo("Z99"); !errors.Is(err, editor.ErrComponentNotFound) {
		t.Errorf("ComponentInfo(Z99): got %v, want ErrComponentNotFound", err)
	}
	if err := doc.SetComponentValue("Z99", 1); !errors.Is(err, editor.ErrComponentNotFound) {
		t.Errorf("SetComponentValue(Z99): got %v, want ErrComponentNotFound", err)
	}
	if err := doc.RemoveComponent("Z99"); !errors.Is(err, editor.ErrComponentNotFound) {
		t.Errorf("RemoveComponent(Z99): got %v, want ErrComponentNotFound", err)
	}
}

func TestSetComponentValueUnsupportedType(t *testing.T) {
	doc := loadSample(t)
	if err := doc.SetComponentValue("R1", []int{1}); err == nil {
		t.Error("no error for unsupported value type")
	}
}

func TestRemoveComponent(t *testing.T) {
	doc := loadSample(t)
	if err := doc.RemoveComponent("R1"); err != nil {
		t.Fatal(err)
	}
	if got := doc.Components("*"); len(got) != 1 || got[0] != "C1" {
		t.Errorf("after remove: got %v, want [C1]", got)
	}
	if len(doc.Root().Items("component")) != 1 {
		t.Error("component tag still in the tree")
	}
	if _, err := doc.ComponentValue("R1"); !errors.Is(err, editor.ErrComponentNotFound) {
		t.Errorf("ComponentValue after remove: got %v", err)
	}
}

func TestSetElementModelCorruptGuard(t *testing.T) {
	doc := loadSample(t)
	// break the designator text behind the index's back
	rec := doc.comps["R1"]
	texts, err := symbolTexts(rec.tag)
	if err != nil {
		t.Fatal(err)
	}
	if err := texts[symbolTextRefDes].SetAttr(textStrAttr, "R2"); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetElementModel("R1", "1k"); !errors.Is(err, editor.ErrCorruptStructure) {
		t.Errorf("got %v, want ErrCorruptStructure", err)
	}
}
