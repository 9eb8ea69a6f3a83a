package models

import "time"

// DateLayout is the bucket key format: commits are grouped by the
// calendar day of their timestamp, in the timestamp's own offset.
const DateLayout = "2006-01-02"

type CommitInfo struct {
	Hash        string
	AuthorName  string
	AuthorEmail string
	Message     string
	Date        time.Time
	RepoPath    string
}

type RepoResult struct {
	Path        string
	CommitCount int
}

type Stats struct {
	TotalCommits  int
	CommitsByDate map[string]int
	FirstCommit   *CommitInfo
	LastCommit    *CommitInfo
}
