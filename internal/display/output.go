package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gnomegl/gitcontribs/internal/heatmap"
	"github.com/gnomegl/gitcontribs/internal/models"
)

// Report is everything a single run produced: who was analyzed, what
// was found where, and the aggregate statistics.
type Report struct {
	UserName  string
	UserEmail string
	Days      int
	Repos     []models.RepoResult
	Commits   []models.CommitInfo
	Stats     models.Stats
}

// Text prints the human-readable report: the repository list with
// per-repository counts, the totals, and - only when there is any
// activity - the contribution graph.
func Text(w io.Writer, r *Report) {
	fmt.Fprintf(w, "%s\n", color.BlueString("Found %d git repositories:", len(r.Repos)))
	for _, repo := range r.Repos {
		fmt.Fprintf(w, "  - %s\n", repo.Path)
		fmt.Fprintf(w, "    %s\n", color.WhiteString("%d commits in the last %d days", repo.CommitCount, r.Days))
	}

	fmt.Fprintf(w, "\n%s\n", color.HiCyanString("Total commits in the last %d days: %d", r.Days, r.Stats.TotalCommits))

	if r.Stats.TotalCommits == 0 {
		return
	}

	if r.Stats.FirstCommit != nil && r.Stats.LastCommit != nil {
		fmt.Fprintf(w, "%s %s  %s\n",
			color.WhiteString("First commit:"),
			r.Stats.FirstCommit.Date.Format(models.DateLayout),
			r.Stats.FirstCommit.Message)
		fmt.Fprintf(w, "%s  %s  %s\n",
			color.WhiteString("Last commit:"),
			r.Stats.LastCommit.Date.Format(models.DateLayout),
			r.Stats.LastCommit.Message)
	}

	fmt.Fprintf(w, "\nContribution Graph:\n")
	fmt.Fprintln(w, heatmap.Render(r.Stats.CommitsByDate, r.Days))
}
