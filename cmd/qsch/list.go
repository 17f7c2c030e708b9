package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/qsclib/go-qsch/editor"
	"github.com/qsclib/go-qsch/qsch"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: list requires one schematic file", cli.ErrUsage)
	}
	doc, err := qsch.Load(args[0])
	if err != nil {
		return err
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "*"
	}
	refs := doc.Components(prefix)
	if !cfg.YAML {
		for _, ref := range refs {
			if _, err := fmt.Fprintln(cc.Out, ref); err != nil {
				return err
			}
		}
		return nil
	}
	infos := make([]editor.ComponentInfo, 0, len(refs))
	for _, ref := range refs {
		info, err := doc.ComponentInfo(ref)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}
	data, err := yaml.Marshal(infos)
	if err != nil {
		return fmt.Errorf("error encoding records: %w", err)
	}
	_, err = cc.Out.Write(data)
	return err
}
