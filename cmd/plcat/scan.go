package main

import (
	"fmt"

	"github.com/pkginfo-tools/plcat/scan"

	"github.com/scott-cotton/cli"
)

func scanRepos(cfg *ScanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Scan.Parse(cc, args)
	if err != nil {
		cfg.Scan.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	repos := scan.FindRepos(args...)
	if len(repos) == 0 {
		return fmt.Errorf("no %s repositories under %v", scan.InfoDirName, args)
	}
	for _, repo := range repos {
		files, err := repo.InfoFiles()
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s (%d files)\n", repo.Root, len(files))
	}
	return nil
}
