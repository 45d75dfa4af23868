package main

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkginfo-tools/plcat/encode"
	"github.com/pkginfo-tools/plcat/plist"
	"github.com/pkginfo-tools/plcat/report"
	"github.com/pkginfo-tools/plcat/sanitize"
	"github.com/pkginfo-tools/plcat/scan"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	r := cfg.reporter(cc.Out)

	// Plist files may be named directly; anything else is a root to
	// search for pkgsinfo repositories.
	var roots []string
	for _, arg := range args {
		if strings.HasSuffix(arg, ".plist") {
			checkFile(cfg, r, arg, arg)
			continue
		}
		roots = append(roots, arg)
	}
	for _, repo := range scan.FindRepos(roots...) {
		r.Section(repo.Root)
		files, err := repo.InfoFiles()
		if err != nil {
			r.Failf("%s: %v", repo.Root, err)
			continue
		}
		for _, f := range files {
			rel, err := filepath.Rel(repo.Root, f)
			if err != nil {
				rel = f
			}
			checkFile(cfg, r, f, rel)
		}
	}
	r.Summary()
	if r.Failed() > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, r *report.Reporter, path, label string) {
	y, err := plist.Load(path)
	if err != nil {
		r.Failf("%s: %v", label, err)
		return
	}
	rawErr := encode.Encode(y, io.Discard, cfg.encOpts()...)
	if rawErr == nil {
		r.OK("%s: already safe", label)
		return
	}
	if !errors.Is(rawErr, encode.ErrUnsafe) {
		r.Failf("%s: %v", label, rawErr)
		return
	}
	safe := sanitize.Sanitize(y, cfg.sanOpts()...)
	if err := encode.Encode(safe, io.Discard, cfg.encOpts()...); err != nil {
		r.Failf("%s: sanitized tree still rejected: %v", label, err)
		return
	}
	r.Warnf("%s: needs sanitizing (%v)", label, rawErr)
}
