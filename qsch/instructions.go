package qsch

import (
	"fmt"
	"strings"

	"github.com/qsclib/go-qsch/editor"
)

// Instructions returns the payloads of all top-level text tags, in
// document order.
func (d *Document) Instructions() []string {
	var res []string
	for _, tag := range d.root.Items("text") {
		line, err := tag.StringAt(textStrAttr)
		if err != nil {
			continue
		}
		res = append(res, line)
	}
	return res
}

// AddInstruction adds a free-form simulation instruction as a new text
// tag. A unique-per-document directive (.tran, .ac, ...) replaces any
// existing unique directive in place instead of appending. .param
// lines are rejected; use SetParameter.
func (d *Document) AddInstruction(instruction string) error {
	instruction = strings.TrimSpace(instruction)
	command := editor.InstructionCommand(instruction)
	if editor.IsUniqueInstruction(command) {
		for _, tag := range d.root.Items("text") {
			line, err := tag.StringAt(textStrAttr)
			if err != nil {
				continue
			}
			if editor.IsUniqueInstruction(editor.InstructionCommand(line)) {
				log.Infof("replacing %q with %q", line, instruction)
				return tag.SetAttr(textStrAttr, instruction)
			}
		}
	} else if strings.HasPrefix(command, ".PARAM") {
		return fmt.Errorf("%w: %q", editor.ErrUseSetParameter, instruction)
	}
	return d.appendText(instruction)
}

// RemoveInstruction removes the first top-level text whose payload
// contains instruction as a substring.
func (d *Document) RemoveInstruction(instruction string) error {
	for _, tag := range d.root.Items("text") {
		line, err := tag.StringAt(textStrAttr)
		if err != nil {
			continue
		}
		if strings.Contains(line, instruction) {
			d.root.Remove(tag)
			log.Infof("instruction %q removed", line)
			return nil
		}
	}
	log.Errorf("instruction %q not found", instruction)
	return fmt.Errorf("%w: %q", editor.ErrInstructionNotFound, instruction)
}
