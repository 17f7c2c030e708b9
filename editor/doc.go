// Package editor defines the contract shared by schematic and netlist
// editors: the operation surface a simulation driver programs against,
// the common error taxonomy, and the conventions around simulation
// directives and .param assignments.
//
// Concrete editors (such as qsch.Document) implement Editor; callers
// should depend on this package rather than on a concrete format.
package editor
