package qsch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/qsclib/go-qsch/editor"
	"github.com/qsclib/go-qsch/eng"
	"github.com/qsclib/go-qsch/ir"
)

// textMatching finds the first top-level text whose payload starts
// with command (case-insensitively) and matches re. It returns the
// tag, the submatch index spans within the payload, and the payload.
func (d *Document) textMatching(command string, re *regexp.Regexp) (*ir.Tag, []int, string) {
	commandUpped := strings.ToUpper(command)
	for _, tag := range d.root.Items("text") {
		line, err := tag.StringAt(textStrAttr)
		if err != nil {
			continue
		}
		if !strings.HasPrefix(strings.ToUpper(line), commandUpped) {
			continue
		}
		if m := re.FindStringSubmatchIndex(line); m != nil {
			return tag, m, line
		}
	}
	return nil, nil, ""
}

// Parameter returns the value assigned to name in a .param directive.
func (d *Document) Parameter(name string) (string, error) {
	re := editor.ParamRegex(name)
	_, m, line := d.textMatching(".PARAM", re)
	if m == nil {
		log.Errorf("parameter %s not found in schematic", name)
		return "", fmt.Errorf("%w: %s", editor.ErrParameterNotFound, name)
	}
	vi := re.SubexpIndex("value")
	return line[m[2*vi]:m[2*vi+1]], nil
}

// SetParameter assigns value to name. An existing assignment is
// spliced in place over the matched span; otherwise a new .param text
// is synthesized below the drawing. A string value is used verbatim, a
// numeric value is rendered in engineering notation.
func (d *Document) SetParameter(name string, value any) error {
	valueStr, err := eng.FormatValue(value)
	if err != nil {
		return err
	}
	re := editor.ParamRegex(name)
	tag, m, line := d.textMatching(".PARAM", re)
	if m != nil {
		ri := re.SubexpIndex("replace")
		start, stop := m[2*ri], m[2*ri+1]
		line = line[:start] + name + "=" + valueStr + line[stop:]
		if err := tag.SetAttr(textStrAttr, line); err != nil {
			return err
		}
		log.Infof("parameter %s updated to %s", name, valueStr)
		return nil
	}
	if err := d.appendText(fmt.Sprintf(".param %s=%s", name, valueStr)); err != nil {
		return err
	}
	log.Infof("parameter %s added with value %s", name, valueStr)
	return nil
}
