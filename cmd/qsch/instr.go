package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/qsclib/go-qsch/qsch"
)

func instrList(cfg *InstrListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.InstrList.Parse(cc, args)
	if err != nil {
		cfg.InstrList.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: instr list requires one schematic file", cli.ErrUsage)
	}
	doc, err := qsch.Load(args[0])
	if err != nil {
		return err
	}
	for _, line := range doc.Instructions() {
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func instrAdd(cfg *InstrAddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.InstrAdd.Parse(cc, args)
	if err != nil {
		cfg.InstrAdd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: instr add requires an instruction and a schematic file", cli.ErrUsage)
	}
	doc, err := qsch.Load(args[1])
	if err != nil {
		return err
	}
	if err := doc.AddInstruction(args[0]); err != nil {
		return err
	}
	return doc.Write(doc.CircuitFile())
}

func instrRm(cfg *InstrRmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.InstrRm.Parse(cc, args)
	if err != nil {
		cfg.InstrRm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: instr rm requires an instruction and a schematic file", cli.ErrUsage)
	}
	doc, err := qsch.Load(args[1])
	if err != nil {
		return err
	}
	if err := doc.RemoveInstruction(args[0]); err != nil {
		return err
	}
	return doc.Write(doc.CircuitFile())
}
