package discover

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Repos walks root and returns every directory holding a .git entry.
// The walk never descends into .git itself, so nested submodule
// checkouts inside it are not reported twice. Results come back in
// lexical walk order.
func Repos(root string) ([]string, error) {
	var repos []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable subtrees are skipped, not fatal.
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			repos = append(repos, filepath.Dir(path))
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return repos, nil
}
