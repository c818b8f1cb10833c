package report

import (
	"fmt"
	"strings"

	"github.com/Petre55/nk-predictor/internal/domain"
)

// DefaultLeaderboardTitle is the title row text of the cumulative
// leaderboard table.
const DefaultLeaderboardTitle = "Összesített eredmény"

// Column header labels of the leaderboard table.
const (
	leaderboardNameLabel  = "Név"
	leaderboardScoreLabel = "Pontszám"
)

// LeaderboardRenderer serializes the cumulative leaderboard into the same
// family of table markup as the round reports, with rank, name, and
// cumulative score columns and no per-match detail.
type LeaderboardRenderer struct {
	// Title is the text of the table's title row. Empty falls back to
	// DefaultLeaderboardTitle.
	Title string
}

// NewLeaderboardRenderer creates a LeaderboardRenderer with the given
// title.
func NewLeaderboardRenderer(title string) *LeaderboardRenderer {
	return &LeaderboardRenderer{Title: title}
}

// Render produces the leaderboard table text for the given entries,
// in the order provided.
func (lr *LeaderboardRenderer) Render(entries []domain.LeaderboardEntry) string {
	title := lr.Title
	if title == "" {
		title = DefaultLeaderboardTitle
	}

	var b strings.Builder
	b.WriteString("[table]\n")
	fmt.Fprintf(&b, "[tr][th colspan=7 align=center][q]%s[/q][/th][/tr]\n", title)
	b.WriteString("[tr][th][/th][th]" + leaderboardNameLabel + "[/th][th]" + leaderboardScoreLabel + "[/th][/tr]\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "[tr][td]%d[/td][td]%s[/td][td]%d[/td][/tr]\n", e.Rank, e.Name, e.Total)
	}
	b.WriteString("[/table]")
	return b.String()
}
