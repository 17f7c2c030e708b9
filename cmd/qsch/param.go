package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/qsclib/go-qsch/qsch"
)

func paramGet(cfg *ParamGetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ParamGet.Parse(cc, args)
	if err != nil {
		cfg.ParamGet.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: param get requires a name and a schematic file", cli.ErrUsage)
	}
	doc, err := qsch.Load(args[1])
	if err != nil {
		return err
	}
	v, err := doc.Parameter(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, v)
	return err
}

func paramSet(cfg *ParamSetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ParamSet.Parse(cc, args)
	if err != nil {
		cfg.ParamSet.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: param set requires a name, a value and a schematic file", cli.ErrUsage)
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
	if err := doc.SetParameter(args[0], value); err != nil {
		return err
	}
	return doc.Write(doc.CircuitFile())
}
