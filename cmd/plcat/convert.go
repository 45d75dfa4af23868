package main

import (
	"fmt"

	"github.com/pkginfo-tools/plcat/encode"
	"github.com/pkginfo-tools/plcat/plist"
	"github.com/pkginfo-tools/plcat/sanitize"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: convert requires at least one plist file", cli.ErrUsage)
	}
	for i, arg := range args {
		y, err := plist.Load(arg)
		if err != nil {
			return err
		}
		safe := sanitize.Sanitize(y, cfg.sanOpts()...)
		if i > 0 && cfg.outFormat().IsYAML() {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(safe, cc.Out, cfg.encOpts()...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
