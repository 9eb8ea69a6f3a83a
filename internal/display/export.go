package display

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

type jsonCommit struct {
	Hash        string    `json:"hash"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Date        time.Time `json:"date"`
	Message     string    `json:"message"`
}

type jsonRepo struct {
	Path        string `json:"path"`
	CommitCount int    `json:"commit_count"`
}

type jsonReport struct {
	UserName          string         `json:"user_name"`
	UserEmail         string         `json:"user_email"`
	Days              int            `json:"days"`
	TotalRepositories int            `json:"total_repositories"`
	TotalCommits      int            `json:"total_commits"`
	CommitsByDate     map[string]int `json:"commits_by_date"`
	Repositories      []jsonRepo     `json:"repositories"`
	FirstCommit       *jsonCommit    `json:"first_commit,omitempty"`
	LastCommit        *jsonCommit    `json:"last_commit,omitempty"`
}

// JSON writes the whole report as a single object.
func JSON(w io.Writer, r *Report) error {
	out := jsonReport{
		UserName:          r.UserName,
		UserEmail:         r.UserEmail,
		Days:              r.Days,
		TotalRepositories: len(r.Repos),
		TotalCommits:      r.Stats.TotalCommits,
		CommitsByDate:     r.Stats.CommitsByDate,
		Repositories:      make([]jsonRepo, 0, len(r.Repos)),
	}
	for _, repo := range r.Repos {
		out.Repositories = append(out.Repositories, jsonRepo{
			Path:        repo.Path,
			CommitCount: repo.CommitCount,
		})
	}
	if c := r.Stats.FirstCommit; c != nil {
		out.FirstCommit = &jsonCommit{c.Hash, c.AuthorName, c.AuthorEmail, c.Date, c.Message}
	}
	if c := r.Stats.LastCommit; c != nil {
		out.LastCommit = &jsonCommit{c.Hash, c.AuthorName, c.AuthorEmail, c.Date, c.Message}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// CSV writes one row per commit.
func CSV(w io.Writer, r *Report) error {
	writer := csv.NewWriter(w)

	headers := []string{
		"repository",
		"hash",
		"author_name",
		"author_email",
		"date",
		"message",
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("writing CSV headers: %w", err)
	}

	for _, commit := range r.Commits {
		row := []string{
			commit.RepoPath,
			commit.Hash,
			commit.AuthorName,
			commit.AuthorEmail,
			commit.Date.Format(time.RFC3339),
			commit.Message,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
