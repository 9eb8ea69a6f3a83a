package stats

import "github.com/gnomegl/gitcontribs/internal/models"

// Compute aggregates a flattened, unordered commit list into per-day
// totals. The same commit appearing in two clones counts twice; the
// tool reports occurrences, not unique hashes.
func Compute(commits []models.CommitInfo) models.Stats {
	s := models.Stats{
		CommitsByDate: make(map[string]int, len(commits)),
	}

	for i := range commits {
		c := &commits[i]
		s.TotalCommits++
		s.CommitsByDate[c.Date.Format(models.DateLayout)]++

		// Strict comparisons so the earliest input record wins ties.
		if s.FirstCommit == nil || c.Date.Before(s.FirstCommit.Date) {
			s.FirstCommit = c
		}
		if s.LastCommit == nil || c.Date.After(s.LastCommit.Date) {
			s.LastCommit = c
		}
	}

	return s
}
