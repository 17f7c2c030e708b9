package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/qsclib/go-qsch/encode"
	"github.com/qsclib/go-qsch/qsch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two schematic files", cli.ErrUsage)
	}
	a, err := render(args[0])
	if err != nil {
		return err
	}
	b, err := render(args[1])
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		return nil
	}
	diffs = dmp.DiffCleanupSemantic(diffs)
	_, err = io.WriteString(cc.Out, dmp.DiffPrettyText(diffs))
	return err
}

func render(path string) (string, error) {
	doc, err := qsch.Load(path)
	if err != nil {
		return "", err
	}
	return encode.MustString(doc.Root()), nil
}
