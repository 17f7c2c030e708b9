package encode

type EncodeOption func(*EncState)

// Depth sets the starting nesting level.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colorizes the output for terminal display. Colored
// output is for viewing only and is not re-parseable.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
