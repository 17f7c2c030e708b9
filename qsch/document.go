package qsch

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/qsclib/go-qsch/debug"
	"github.com/qsclib/go-qsch/editor"
	"github.com/qsclib/go-qsch/encode"
	"github.com/qsclib/go-qsch/format"
	"github.com/qsclib/go-qsch/ir"
	"github.com/qsclib/go-qsch/parse"
)

var log = commonlog.GetLogger("qsch.editor")

// Attribute positions fixed by the wire layout.
const (
	textPosAttr = 1 // coordinate pair of a text tag
	textStrAttr = 8 // string payload of a text tag

	symbolTextRefDes = 0 // first symbol text: reference designator
	symbolTextValue  = 1 // second symbol text: value/model
)

// componentRec is one component index entry. tag is a non-owning
// back-reference into the document tree: mutating through it mutates
// the live tree. Records are rebuilt wholesale on Load and Reset.
type componentRec struct {
	info editor.ComponentInfo
	tag  *ir.Tag
}

// Document is a loaded schematic: the header bytes read from the
// file, the root tag tree, and the component index built over it.
type Document struct {
	path   string
	header [4]byte
	root   *ir.Tag
	comps  map[string]*componentRec
	order  []string
}

var _ editor.Editor = (*Document)(nil)

// Load reads and parses the schematic at path.
func Load(path string) (*Document, error) {
	d := &Document{path: path}
	if err := d.Reset(); err != nil {
		return nil, err
	}
	return d, nil
}

// CircuitFile returns the path the document was loaded from.
func (d *Document) CircuitFile() string {
	return d.path
}

// Root returns the root tag. Structural edits through it invalidate
// the component index until the next Reset.
func (d *Document) Root() *ir.Tag {
	return d.root
}

// Reset re-reads the backing file, discarding all in-memory edits and
// rebuilding the component index.
func (d *Document) Reset() error {
	log.Infof("reading schematic %s", d.path)
	data, err := os.ReadFile(d.path)
	if err != nil {
		return err
	}
	return d.parseStream(data)
}

// parseStream parses data and replaces the document state. On error
// the previous state is left untouched.
func (d *Document) parseStream(data []byte) error {
	n, err := format.CheckHeader(data)
	if err != nil {
		return err
	}
	root, err := parse.ParseAt(data, n, parse.WithFilename(d.path))
	if err != nil {
		return err
	}
	comps, order, err := scanComponents(root)
	if err != nil {
		return err
	}
	copy(d.header[:], data[:n])
	d.root = root
	d.comps = comps
	d.order = order
	if debug.Parse() {
		debug.Logf("parsed %s:\n%v", d.path, root)
	}
	return nil
}

// scanComponents walks the root's component children and builds the
// designator index. A designator appearing twice keeps its first scan
// position but the later record wins.
func scanComponents(root *ir.Tag) (map[string]*componentRec, []string, error) {
	comps := map[string]*componentRec{}
	var order []string
	for _, comp := range root.Items("component") {
		sym := comp.Item("symbol")
		if sym == nil {
			return nil, nil, fmt.Errorf("%w: component at %s has no symbol",
				editor.ErrStructural, componentAt(comp))
		}
		typ, err := sym.GetText("type")
		if err != nil {
			return nil, nil, fmt.Errorf("%w: component at %s: %v",
				editor.ErrStructural, componentAt(comp), err)
		}
		desc, err := sym.GetText("description")
		if err != nil {
			return nil, nil, fmt.Errorf("%w: component at %s: %v",
				editor.ErrStructural, componentAt(comp), err)
		}
		texts := sym.Items("text")
		if len(texts) < 2 {
			return nil, nil, fmt.Errorf("%w: missing texts in component at %s",
				editor.ErrStructural, componentAt(comp))
		}
		refdes, err := texts[symbolTextRefDes].StringAt(textStrAttr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: component at %s: %v",
				editor.ErrStructural, componentAt(comp), err)
		}
		value, err := texts[symbolTextValue].StringAt(textStrAttr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: component at %s: %v",
				editor.ErrStructural, componentAt(comp), err)
		}
		if _, seen := comps[refdes]; !seen {
			order = append(order, refdes)
		}
		comps[refdes] = &componentRec{
			info: editor.ComponentInfo{
				Designator:  refdes,
				Type:        typ,
				Description: desc,
				Model:       value,
			},
			tag: comp,
		}
		if debug.Index() {
			debug.Logf("indexed %s (%s) = %s\n", refdes, typ, value)
		}
	}
	return comps, order, nil
}

func componentAt(comp *ir.Tag) string {
	v, err := comp.Attr(textPosAttr)
	if err != nil {
		return "(unknown position)"
	}
	return v.Token()
}

// Write serializes the document to path, forcing the .qsch suffix and
// echoing the header bytes read on load. An empty document is a
// logged no-op, not an error: simulation drivers call Write
// unconditionally.
func (d *Document) Write(path string) error {
	if d.root == nil {
		log.Error("empty schematic information, nothing to write")
		return nil
	}
	path = format.WithSuffix(path)
	log.Infof("writing schematic %s", path)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(d.header[:]); err != nil {
		f.Close()
		return err
	}
	if err := encode.Encode(d.root, f); err != nil {
		f.Close()
		return err
	}
	if _, err := f.WriteString("\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
