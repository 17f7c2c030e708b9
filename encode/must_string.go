package encode

import (
	"bytes"
	"strings"

	"github.com/qsclib/go-qsch/ir"
)

func MustString(tag *ir.Tag) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(tag, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
