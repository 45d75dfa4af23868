package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkginfo-tools/plcat/encode"
	"github.com/pkginfo-tools/plcat/format"
	"github.com/pkginfo-tools/plcat/report"
	"github.com/pkginfo-tools/plcat/sanitize"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='report in color'"`

	Y bool `cli:"name=y aliases=yaml desc='emit yaml'"`
	J bool `cli:"name=j aliases=json desc='emit json'"`

	KeepZone  bool `cli:"name=keep-zone desc='keep timezone offsets instead of converting dates to UTC'"`
	Stringify bool `cli:"name=stringify-unknown desc='render unrecognized value kinds as text'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
}

func (cfg *MainConfig) sanOpts() []sanitize.Option {
	res := []sanitize.Option{
		sanitize.KeepZone(cfg.KeepZone),
	}
	if cfg.Stringify {
		res = append(res, sanitize.UnknownPolicy(sanitize.StringifyUnknown))
	}
	return res
}

func (cfg *MainConfig) reporter(w io.Writer) *report.Reporter {
	if cfg.Color {
		return report.New(w, report.WithColor(true))
	}
	return report.New(w)
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type ScanConfig struct {
	*MainConfig

	Scan *cli.Command
}

type DemoConfig struct {
	*MainConfig

	Demo *cli.Command
}
