package parse

import "errors"

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrUnterminatedNode = errors.New("unterminated node")
)
