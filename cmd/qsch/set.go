package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/qsclib/go-qsch/eng"
	"github.com/qsclib/go-qsch/qsch"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires a designator, a value and a schematic file", cli.ErrUsage)
	}
	doc, err := qsch.Load(args[2])
	if err != nil {
		return err
	}
	var value any = args[1]
	if cfg.Eval {
		value, err = evalValue(doc, args[1])
		if err != nil {
			return err
		}
	}
	if err := doc.SetComponentValue(args[0], value); err != nil {
		return err
	}
	return doc.Write(doc.CircuitFile())
}

// evalValue evaluates src as an arithmetic expression with the
// document's .param definitions bound as floats.
func evalValue(doc *qsch.Document, src string) (float64, error) {
	res, err := expr.Eval(src, paramEnv(doc))
	if err != nil {
		return 0, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	switch x := res.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, fmt.Errorf("expression %q did not produce a number", src)
}

var assignRegex = regexp.MustCompile(`(?i)\b([a-z_]\w*)\s*=\s*([\w.+\-]*)`)

// paramEnv collects the numeric parameter assignments of doc. Values
// that are themselves expressions are skipped.
func paramEnv(doc *qsch.Document) map[string]any {
	env := map[string]any{}
	for _, line := range doc.Instructions() {
		if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(line)), ".PARAM") {
			continue
		}
		for _, m := range assignRegex.FindAllStringSubmatch(line, -1) {
			v, err := eng.Parse(m[2])
			if err != nil {
				continue
			}
			env[m[1]] = v
		}
	}
	return env
}
