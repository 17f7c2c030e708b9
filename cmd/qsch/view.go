package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/qsclib/go-qsch/encode"
	"github.com/qsclib/go-qsch/qsch"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires at least one schematic file", cli.ErrUsage)
	}
	for _, arg := range args {
		doc, err := qsch.Load(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc.Root(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
