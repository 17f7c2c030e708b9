package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/qsclib/go-qsch/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	V     bool `cli:"name=v aliases=verbose desc='verbose logging'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ListConfig struct {
	*MainConfig

	YAML   bool   `cli:"name=y aliases=yaml desc='emit component records as yaml'"`
	Prefix string `cli:"name=p aliases=prefix desc='designator prefix filter'"`

	List *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Eval bool `cli:"name=e aliases=eval desc='evaluate value as an arithmetic expression'"`

	Set *cli.Command
}

type ParamGetConfig struct {
	*MainConfig

	ParamGet *cli.Command
}

type ParamSetConfig struct {
	*MainConfig

	Eval bool `cli:"name=e aliases=eval desc='evaluate value as an arithmetic expression'"`

	ParamSet *cli.Command
}

type InstrListConfig struct {
	*MainConfig

	InstrList *cli.Command
}

type InstrAddConfig struct {
	*MainConfig

	InstrAdd *cli.Command
}

type InstrRmConfig struct {
	*MainConfig

	InstrRm *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Print bool `cli:"name=p aliases=print desc='print to output instead of rewriting in place'"`

	Fmt *cli.Command
}
