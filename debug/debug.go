package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Index bool
	Edit  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("QSCH_DEBUG_PARSE")
	d.Index = boolEnv("QSCH_DEBUG_INDEX")
	d.Edit = boolEnv("QSCH_DEBUG_EDIT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Index() bool {
	return d.Index
}
func Edit() bool {
	return d.Edit
}
