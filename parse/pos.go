package parse

import "fmt"

// Pos is a resolved position in the input, for diagnostics.
type Pos struct {
	Offset int
	Line   int // 1-based
	Col    int // 1-based, in bytes
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// PosAt resolves a byte offset to line and column by scanning the
// newlines before it.
func PosAt(doc []byte, off int) Pos {
	if off > len(doc) {
		off = len(doc)
	}
	line, col := 1, 1
	for _, c := range doc[:off] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return Pos{Offset: off, Line: line, Col: col}
}
