package stats

import (
	"testing"
	"time"

	"github.com/gnomegl/gitcontribs/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitAt(t *testing.T, ts, hash string) models.CommitInfo {
	t.Helper()
	when, err := time.Parse("2006-01-02 15:04:05 -0700", ts)
	require.NoError(t, err)
	return models.CommitInfo{
		Hash:        hash,
		AuthorName:  "Test Dev",
		AuthorEmail: "dev@example.com",
		Message:     "change " + hash,
		Date:        when,
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)

	assert.Equal(t, 0, s.TotalCommits)
	require.NotNil(t, s.CommitsByDate)
	assert.Empty(t, s.CommitsByDate)
	assert.Nil(t, s.FirstCommit)
	assert.Nil(t, s.LastCommit)
}

func TestComputeTotalMatchesInputLength(t *testing.T) {
	commits := []models.CommitInfo{
		commitAt(t, "2024-03-01 09:00:00 +0000", "a"),
		commitAt(t, "2024-03-01 17:30:00 +0000", "b"),
		commitAt(t, "2024-03-02 08:15:00 +0000", "c"),
	}

	s := Compute(commits)

	assert.Equal(t, len(commits), s.TotalCommits)

	sum := 0
	for _, n := range s.CommitsByDate {
		sum += n
	}
	assert.Equal(t, s.TotalCommits, sum)
}

func TestComputeBucketsByCalendarDay(t *testing.T) {
	// Same calendar day in each commit's own offset, different clocks.
	commits := []models.CommitInfo{
		commitAt(t, "2024-03-01 00:10:00 +0200", "a"),
		commitAt(t, "2024-03-01 23:50:00 -0500", "b"),
		commitAt(t, "2024-03-02 12:00:00 +0000", "c"),
	}

	s := Compute(commits)

	assert.Equal(t, map[string]int{
		"2024-03-01": 2,
		"2024-03-02": 1,
	}, s.CommitsByDate)
}

func TestComputeFirstAndLast(t *testing.T) {
	commits := []models.CommitInfo{
		commitAt(t, "2024-03-05 10:00:00 +0000", "middle"),
		commitAt(t, "2024-03-09 10:00:00 +0000", "newest"),
		commitAt(t, "2024-03-01 10:00:00 +0000", "oldest"),
	}

	s := Compute(commits)

	require.NotNil(t, s.FirstCommit)
	require.NotNil(t, s.LastCommit)
	assert.Equal(t, "oldest", s.FirstCommit.Hash)
	assert.Equal(t, "newest", s.LastCommit.Hash)
	assert.False(t, s.LastCommit.Date.Before(s.FirstCommit.Date))
}

func TestComputeTiesKeepEarliestInputRecord(t *testing.T) {
	commits := []models.CommitInfo{
		commitAt(t, "2024-03-05 10:00:00 +0000", "a"),
		commitAt(t, "2024-03-05 10:00:00 +0000", "b"),
	}

	s := Compute(commits)

	assert.Equal(t, "a", s.FirstCommit.Hash)
	assert.Equal(t, "a", s.LastCommit.Hash)
}

func TestComputeIsPure(t *testing.T) {
	commits := []models.CommitInfo{
		commitAt(t, "2024-03-01 09:00:00 +0000", "a"),
		commitAt(t, "2024-03-02 09:00:00 +0000", "b"),
	}

	first := Compute(commits)
	second := Compute(commits)

	assert.Equal(t, first, second)
}

func TestComputeCountsDuplicateClonesSeparately(t *testing.T) {
	c := commitAt(t, "2024-03-01 09:00:00 +0000", "same")
	a, b := c, c
	a.RepoPath = "/src/clone-a"
	b.RepoPath = "/src/clone-b"

	s := Compute([]models.CommitInfo{a, b})

	assert.Equal(t, 2, s.TotalCommits)
	assert.Equal(t, 2, s.CommitsByDate["2024-03-01"])
}

func TestComputeMixedActivityWeek(t *testing.T) {
	var commits []models.CommitInfo
	addDay := func(day string, n int) {
		for i := 0; i < n; i++ {
			commits = append(commits, commitAt(t, day+" 12:00:00 +0000", day))
		}
	}
	addDay("2024-01-01", 3)
	addDay("2024-01-02", 6)
	addDay("2024-01-05", 12)

	s := Compute(commits)

	assert.Equal(t, 21, s.TotalCommits)
	assert.Equal(t, map[string]int{
		"2024-01-01": 3,
		"2024-01-02": 6,
		"2024-01-05": 12,
	}, s.CommitsByDate)
	assert.Equal(t, "2024-01-01", s.FirstCommit.Date.Format(models.DateLayout))
	assert.Equal(t, "2024-01-05", s.LastCommit.Date.Format(models.DateLayout))
}
