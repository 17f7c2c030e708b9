package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/qsclib/go-qsch/qsch"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a designator and a schematic file", cli.ErrUsage)
	}
	doc, err := qsch.Load(args[1])
	if err != nil {
		return err
	}
	v, err := doc.ComponentValue(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, v)
	return err
}
