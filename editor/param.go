package editor

import "regexp"

// ParamRegex compiles the per-parameter expression used to locate a
// `name=value` assignment inside a .param directive line. The match is
// case-insensitive and word-boundary-safe: parameter R does not match
// inside VR or R2. Group "replace" spans the whole assignment, group
// "value" the assigned value.
func ParamRegex(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?i)\b(?P<replace>` + regexp.QuoteMeta(name) + `\s*=\s*(?P<value>[\w.+\-*/{}()]*))`)
}
