package gitsource

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/gnomegl/gitcontribs/internal/models"
)

// Commits returns authorEmail's commits reachable from HEAD of the
// repository at repoPath, limited to the trailing window of `days`
// days. The path is always passed in explicitly; the process working
// directory is never changed to query a repository.
func Commits(repoPath string, days int, authorEmail string) ([]models.CommitInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", repoPath, err)
	}

	since := time.Now().AddDate(0, 0, -days)
	iter, err := repo.Log(&git.LogOptions{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading log of %s: %w", repoPath, err)
	}
	defer iter.Close()

	var commits []models.CommitInfo
	err = iter.ForEach(func(c *object.Commit) error {
		if !strings.EqualFold(c.Author.Email, authorEmail) {
			return nil
		}
		commits = append(commits, models.CommitInfo{
			Hash:        c.Hash.String(),
			AuthorName:  c.Author.Name,
			AuthorEmail: c.Author.Email,
			Message:     firstLine(c.Message),
			Date:        c.Author.When,
			RepoPath:    repoPath,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating log of %s: %w", repoPath, err)
	}

	return commits, nil
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimRight(message, "\r")
}
