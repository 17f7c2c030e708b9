package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "qsch").
		WithSynopsis("qsch [opts] command [opts]").
		WithDescription("qsch is a tool for working with QSPICE schematic files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return qschMain(cfg, cc, args)
		}).
		WithSubs(
			ListCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			ParamCommand(cfg),
			InstrCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			FmtCommand(cfg))
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-p prefix] [-y] <file>").
		WithDescription("list the components of a schematic").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <designator> <file>").
		WithDescription("print a component's value or model").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-e] <designator> <value> <file>").
		WithDescription("set a component's value or model and save the file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func ParamCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("param").
		WithAliases("p", "pa").
		WithSynopsis("param <get|set> ...").
		WithDescription("read and write .param definitions").
		WithSubs(
			ParamGetCommand(mainCfg),
			ParamSetCommand(mainCfg))
}

func ParamGetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParamGetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.ParamGet, "get").
		WithSynopsis("param get <name> <file>").
		WithDescription("print a parameter's value").
		WithRun(func(cc *cli.Context, args []string) error {
			return paramGet(cfg, cc, args)
		})
}

func ParamSetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParamSetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.ParamSet, "set").
		WithSynopsis("param set [-e] <name> <value> <file>").
		WithDescription("set a parameter's value and save the file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return paramSet(cfg, cc, args)
		})
}

func InstrCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("instr").
		WithAliases("i", "in").
		WithSynopsis("instr <list|add|rm> ...").
		WithDescription("manage simulation instruction texts").
		WithSubs(
			InstrListCommand(mainCfg),
			InstrAddCommand(mainCfg),
			InstrRmCommand(mainCfg))
}

func InstrListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InstrListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.InstrList, "list").
		WithAliases("l", "ls").
		WithSynopsis("instr list <file>").
		WithDescription("print the top-level instruction texts").
		WithRun(func(cc *cli.Context, args []string) error {
			return instrList(cfg, cc, args)
		})
}

func InstrAddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InstrAddConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.InstrAdd, "add").
		WithAliases("a").
		WithSynopsis("instr add <instruction> <file>").
		WithDescription("add an instruction text and save the file").
		WithRun(func(cc *cli.Context, args []string) error {
			return instrAdd(cfg, cc, args)
		})
}

func InstrRmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InstrRmConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.InstrRm, "rm").
		WithAliases("remove").
		WithSynopsis("instr rm <instruction> <file>").
		WithDescription("remove a matching instruction text and save the file").
		WithRun(func(cc *cli.Context, args []string) error {
			return instrRm(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view schematic files with tags in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two schematics in serialized form").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-p] [files]").
		WithDescription("rewrite schematic files in normalized form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtFiles(cfg, cc, args)
		})
}
