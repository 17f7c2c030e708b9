package editor

// ComponentInfo is the metadata record kept per component.
type ComponentInfo struct {
	Designator  string `yaml:"designator"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Model       string `yaml:"model"`
}

// Editor is the operation surface a simulation driver uses to prepare
// circuit files. Set operations taking an `any` value accept a string
// (used verbatim) or an int/int64/float64 (rendered in engineering
// notation).
//
// Errors returned by these operations wrap the sentinel values of this
// package so callers can branch with errors.Is.
type Editor interface {
	// CircuitFile returns the path the editor was loaded from.
	CircuitFile() string
	// Reset re-reads the backing file, discarding all edits.
	Reset() error
	// Write writes the current state to path. The format's file
	// suffix is enforced regardless of path's extension.
	Write(path string) error

	// Components lists reference designators in scan order. prefixes
	// is "*" for all, otherwise a set of leading characters.
	Components(prefixes string) []string
	ComponentInfo(ref string) (ComponentInfo, error)
	ComponentValue(ref string) (string, error)
	SetComponentValue(ref string, value any) error
	// SetElementModel is the string-typed core of SetComponentValue.
	SetElementModel(ref, model string) error
	RemoveComponent(ref string) error

	Parameter(name string) (string, error)
	SetParameter(name string, value any) error

	AddInstruction(instruction string) error
	RemoveInstruction(instruction string) error
}
