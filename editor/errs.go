package editor

import "errors"

var (
	ErrComponentNotFound   = errors.New("component not found")
	ErrParameterNotFound   = errors.New("parameter not found")
	ErrInstructionNotFound = errors.New("instruction not found")
	ErrStructural          = errors.New("structural error")
	ErrCorruptStructure    = errors.New("corrupt structure")
	ErrValueMissing        = errors.New("component has no value attribute")
	ErrUseSetParameter     = errors.New(".param instructions must go through SetParameter")
)
