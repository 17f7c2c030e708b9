package ir

import "errors"

var (
	ErrAttrDecode       = errors.New("attribute decode error")
	ErrUnsupportedValue = errors.New("unsupported attribute value")
	ErrNoSuchAttr       = errors.New("no such attribute")
	ErrLabelNotFound    = errors.New("label not found")
)
