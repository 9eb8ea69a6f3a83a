package heatmap

import (
	"strings"
	"time"

	"github.com/gnomegl/gitcontribs/internal/models"
)

// Two character cells per day: one glyph, one separator. The month
// header uses the same pitch so both rows stay column-aligned.
const (
	gutter    = "    "
	cellWidth = 2
)

const (
	glyphNone   = "·"
	glyphLow    = "▪"
	glyphMedium = "▫"
	glyphHigh   = "█"
)

// Render draws the contribution graph for the trailing window of
// `days` calendar days ending today: a month-label header, one density
// glyph per day, and a legend. days must be positive; callers validate
// it before getting here.
func Render(counts map[string]int, days int) string {
	return renderFrom(counts, days, time.Now())
}

func renderFrom(counts map[string]int, days int, end time.Time) string {
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	dates := make([]time.Time, 0, days)
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, endDay.AddDate(0, 0, -i))
	}

	var b strings.Builder
	b.WriteString(monthHeader(dates))
	b.WriteString("\n")
	b.WriteString(densityRow(counts, dates))
	b.WriteString("\n")
	b.WriteString(legend())
	return b.String()
}

// monthHeader places an abbreviated month name at the column of the
// first day of each month in the window. Adjacent labels may collide
// in very short windows; overlap is left as-is rather than truncated.
func monthHeader(dates []time.Time) string {
	var b strings.Builder
	b.WriteString(gutter)
	prev := time.Month(0)
	for i, d := range dates {
		if d.Month() == prev {
			continue
		}
		prev = d.Month()
		start := len(gutter) + cellWidth*i
		for b.Len() < start {
			b.WriteByte(' ')
		}
		b.WriteString(d.Format("Jan"))
	}
	return b.String()
}

func densityRow(counts map[string]int, dates []time.Time) string {
	var b strings.Builder
	b.WriteString(gutter)
	for _, d := range dates {
		b.WriteString(glyph(counts[d.Format(models.DateLayout)]))
		b.WriteByte(' ')
	}
	return b.String()
}

func glyph(count int) string {
	switch {
	case count == 0:
		return glyphNone
	case count < 5:
		return glyphLow
	case count < 10:
		return glyphMedium
	default:
		return glyphHigh
	}
}

func legend() string {
	return strings.Join([]string{
		"",
		"Legend:",
		glyphNone + " - No commits",
		glyphLow + " - 1-4 commits",
		glyphMedium + " - 5-9 commits",
		glyphHigh + " - 10+ commits",
	}, "\n")
}
