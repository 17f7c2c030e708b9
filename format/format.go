package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Header is the fixed 4-byte magic sequence at the start of every
// schematic file. It is read verbatim on load and echoed back verbatim
// on write.
var Header = [4]byte{0xFF, 0xD8, 0xFF, 0xDB}

// Delimiters of the tagged node syntax.
const (
	OpenDelim  = '«'
	CloseDelim = '»'
)

// Suffix is the file extension for schematic files. It is enforced on
// write regardless of the caller-supplied path's extension.
const Suffix = ".qsch"

var ErrHeaderMismatch = errors.New("header mismatch")

// CheckHeader verifies that d starts with the magic header and returns
// the number of header bytes on success.
func CheckHeader(d []byte) (int, error) {
	if len(d) < len(Header) {
		return 0, fmt.Errorf("%w: want % 02X, have only %d bytes",
			ErrHeaderMismatch, Header, len(d))
	}
	for i, c := range Header {
		if d[i] != c {
			return 0, fmt.Errorf("%w: want % 02X, got % 02X",
				ErrHeaderMismatch, Header, d[:len(Header)])
		}
	}
	return len(Header), nil
}

// WithSuffix rewrites p so that it carries the schematic Suffix,
// replacing any existing extension.
func WithSuffix(p string) string {
	ext := filepath.Ext(p)
	return strings.TrimSuffix(p, ext) + Suffix
}
