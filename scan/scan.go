// Package scan discovers package-info repositories on the local
// filesystem: directory trees holding a pkgsinfo directory of plist
// files.
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pkginfo-tools/plcat/debug"
)

// InfoDirName is the directory that marks a repository.
const InfoDirName = "pkgsinfo"

// Repo is a discovered repository; Root is its pkgsinfo directory.
type Repo struct {
	Root string
}

// FindRepos walks each root and collects pkgsinfo directories. Roots
// that do not exist and subtrees that cannot be read are skipped, not
// fatal: discovery is best effort.
func FindRepos(roots ...string) []Repo {
	var res []Repo
	for _, root := range roots {
		filepath.WalkDir(root, func(path string, e fs.DirEntry, err error) error {
			if err != nil {
				if debug.Scan() {
					debug.Logf("scan: skipping %s: %v", path, err)
				}
				if e != nil && e.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !e.IsDir() {
				return nil
			}
			if e.Name() != InfoDirName {
				return nil
			}
			res = append(res, Repo{Root: path})
			// Repos don't nest.
			return fs.SkipDir
		})
	}
	return res
}

// InfoFiles lists the plist files beneath the repo root, in walk
// (lexical) order. Subtrees that cannot be read are skipped; only a
// failure on the root itself is an error.
func (r Repo) InfoFiles() ([]string, error) {
	var res []string
	err := filepath.WalkDir(r.Root, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			if path == r.Root {
				return err
			}
			if debug.Scan() {
				debug.Logf("scan: skipping %s: %v", path, err)
			}
			if e != nil && e.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if e.IsDir() {
			return nil
		}
		if strings.HasSuffix(e.Name(), ".plist") {
			res = append(res, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
