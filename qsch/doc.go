// Package qsch edits QSPICE schematic files in place.
//
// # Usage
//
//	doc, err := qsch.Load("amp.qsch")
//	if err != nil {
//	    return err
//	}
//	if err := doc.SetComponentValue("R1", 3300); err != nil { // "3.3k"
//	    return err
//	}
//	if err := doc.SetParameter("fmax", "10Meg"); err != nil {
//	    return err
//	}
//	if err := doc.AddInstruction(".tran 1m"); err != nil {
//	    return err
//	}
//	if err := doc.Write("amp_run1.qsch"); err != nil {
//	    return err
//	}
//
// A Document is the parsed tag tree plus a component index keyed by
// reference designator. Edits mutate the live tree through the index's
// back-references; Write serializes the tree back out behind the
// original header bytes. Document implements editor.Editor.
//
// Documents are not safe for concurrent mutation. Parallel simulation
// runs must each load their own Document or serialize edits
// externally.
package qsch
