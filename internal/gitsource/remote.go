package gitsource

import (
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-git/v5"
)

// CloneRemote clones url into a temporary directory so it can be
// analyzed like any discovered local repository. The returned cleanup
// removes the clone; it is safe to call even after a failed clone.
func CloneRemote(url string, progress io.Writer) (string, func(), error) {
	dir, err := os.MkdirTemp("", "gitcontribs-clone-")
	if err != nil {
		return "", func() {}, fmt.Errorf("creating clone directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	_, err = git.PlainClone(dir, false, &git.CloneOptions{
		URL:          url,
		SingleBranch: true,
		Progress:     progress,
	})
	if err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("cloning %s: %w", url, err)
	}

	return dir, cleanup, nil
}
