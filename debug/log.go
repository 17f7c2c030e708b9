package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/qsclib/go-qsch/encode"
	"github.com/qsclib/go-qsch/ir"
)

// Qsch wraps a tag so %v renders its full serialized form.
type Qsch struct{ *ir.Tag }

func (q Qsch) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(q.Tag, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Tag] %v", q.Tag)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Tag); ok {
			args[i] = Qsch{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
