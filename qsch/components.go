package qsch

import (
	"fmt"
	"strings"

	"github.com/qsclib/go-qsch/debug"
	"github.com/qsclib/go-qsch/editor"
	"github.com/qsclib/go-qsch/eng"
	"github.com/qsclib/go-qsch/ir"
)

// Components lists reference designators in scan order. prefixes is
// "*" for all components, otherwise a set of leading characters
// ("RC" lists resistors and capacitors).
func (d *Document) Components(prefixes string) []string {
	if prefixes == "*" {
		return append([]string(nil), d.order...)
	}
	var res []string
	for _, ref := range d.order {
		if ref != "" && strings.ContainsRune(prefixes, rune(ref[0])) {
			res = append(res, ref)
		}
	}
	return res
}

// ComponentInfo returns the metadata record for ref.
func (d *Document) ComponentInfo(ref string) (editor.ComponentInfo, error) {
	rec, err := d.component(ref)
	if err != nil {
		return editor.ComponentInfo{}, err
	}
	return rec.info, nil
}

// ComponentValue returns the value/model of ref, read through the live
// tree so preceding edits are visible.
func (d *Document) ComponentValue(ref string) (string, error) {
	rec, err := d.component(ref)
	if err != nil {
		return "", err
	}
	texts, err := symbolTexts(rec.tag)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", editor.ErrValueMissing, ref, err)
	}
	value, err := texts[symbolTextValue].StringAt(textStrAttr)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", editor.ErrValueMissing, ref, err)
	}
	return value, nil
}

// SetComponentValue sets the value of ref. A string value is used
// verbatim; a numeric value is rendered in engineering notation.
func (d *Document) SetComponentValue(ref string, value any) error {
	valueStr, err := eng.FormatValue(value)
	if err != nil {
		return err
	}
	return d.SetElementModel(ref, valueStr)
}

// SetElementModel overwrites the value/model text of ref in place.
func (d *Document) SetElementModel(ref, model string) error {
	rec, err := d.component(ref)
	if err != nil {
		return err
	}
	texts, err := symbolTexts(rec.tag)
	if err != nil {
		return err
	}
	// the first symbol text must still carry the designator we
	// indexed under, otherwise the tree was edited behind our back
	refdes, err := texts[symbolTextRefDes].StringAt(textStrAttr)
	if err != nil || refdes != ref {
		return fmt.Errorf("%w: component %s designator text reads %q",
			editor.ErrCorruptStructure, ref, refdes)
	}
	if err := texts[symbolTextValue].SetAttr(textStrAttr, model); err != nil {
		return err
	}
	rec.info.Model = model
	log.Infof("component %s updated to %s", ref, model)
	if debug.Edit() {
		debug.Logf("component at %s updated:\n%v", componentAt(rec.tag), rec.tag)
	}
	return nil
}

// RemoveComponent removes ref's component tag and its whole subtree.
func (d *Document) RemoveComponent(ref string) error {
	rec, err := d.component(ref)
	if err != nil {
		return err
	}
	d.root.Remove(rec.tag)
	delete(d.comps, ref)
	for i, r := range d.order {
		if r == ref {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	log.Infof("component %s removed", ref)
	return nil
}

func (d *Document) component(ref string) (*componentRec, error) {
	rec, ok := d.comps[ref]
	if !ok {
		log.Errorf("component %s not found in schematic", ref)
		return nil, fmt.Errorf("%w: %s", editor.ErrComponentNotFound, ref)
	}
	return rec, nil
}

func symbolTexts(comp *ir.Tag) ([]*ir.Tag, error) {
	sym := comp.Item("symbol")
	if sym == nil {
		return nil, fmt.Errorf("%w: no symbol", editor.ErrCorruptStructure)
	}
	texts := sym.Items("text")
	if len(texts) < 2 {
		return nil, fmt.Errorf("%w: symbol has %d texts", editor.ErrCorruptStructure, len(texts))
	}
	return texts, nil
}
