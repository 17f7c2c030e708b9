package qsch

import (
	"fmt"

	"github.com/qsclib/go-qsch/parse"
)

// textSpace returns a canvas coordinate below the bounding box of the
// drawn elements, where a new text annotation will not overlap them.
func (d *Document) textSpace() (int64, int64) {
	// sentinels high enough that any drawn element replaces them
	minX, minY := int64(100000), int64(100000)
	for _, tag := range d.root.Children {
		var x1, y1, x2, y2 int64
		var err error
		switch tag.Name() {
		case "component", "net":
			x1, y1, err = tag.PairAt(1)
			x2, y2 = x1, y1
		case "wire":
			x1, y1, err = tag.PairAt(1)
			if err == nil {
				x2, y2, err = tag.PairAt(2)
			}
		default:
			continue
		}
		if err != nil {
			continue
		}
		minX = min(minX, x1, x2)
		minY = min(minY, y1, y2)
	}
	return minX, minY - 24 // bottom left corner of the canvas
}

// appendText synthesizes a new top-level text tag holding line, placed
// at the free text space. The tag is built by parsing its literal wire
// form, so it has exactly the shape a drawn text has.
func (d *Document) appendText(line string) error {
	x, y := d.textSpace()
	tag, err := parse.Parse(
		[]byte(fmt.Sprintf(`«text (%d,%d) 1 0 0 0x1000000 -1 -1 "%s"»`, x, y, line)))
	if err != nil {
		return err
	}
	d.root.Append(tag)
	return nil
}
