package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/qsclib/go-qsch/encode"
	"github.com/qsclib/go-qsch/qsch"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: fmt requires at least one schematic file", cli.ErrUsage)
	}
	for _, arg := range args {
		doc, err := qsch.Load(arg)
		if err != nil {
			return err
		}
		if cfg.Print {
			if err := encode.Encode(doc.Root(), cc.Out); err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
			continue
		}
		if err := doc.Write(doc.CircuitFile()); err != nil {
			return err
		}
	}
	return nil
}
