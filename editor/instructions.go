package editor

import "strings"

// uniqueInstructions are the simulation directives a document may
// carry at most once. Adding a second replaces the first.
var uniqueInstructions = map[string]bool{
	".AC":    true,
	".DC":    true,
	".NOISE": true,
	".OP":    true,
	".TF":    true,
	".TRAN":  true,
}

// IsUniqueInstruction reports whether command is a unique-per-document
// simulation directive keyword.
func IsUniqueInstruction(command string) bool {
	return uniqueInstructions[strings.ToUpper(command)]
}

// InstructionCommand returns the upper-cased first word of an
// instruction line, the empty string for a blank line.
func InstructionCommand(instruction string) string {
	fields := strings.Fields(instruction)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}
