// Package report owns the forum-table interchange format: rendering round
// reports and the cumulative leaderboard, and extracting scores back out
// of rendered report text. Renderer and extractor live in one package so
// their shared textual shape cannot drift apart.
package report

import (
	"fmt"
	"strings"

	"github.com/Petre55/nk-predictor/internal/domain"
)

// Fixed cell labels of the round table. These are part of the interchange
// format consumed downstream and must stay byte-stable.
const (
	headerTotalLabel   = "Össz"
	headerResultsLabel = "Eredmények"
	headerReplayLabel  = "Replay"
	headerBonusLabel   = "Bónusz"
)

// ReportRenderer serializes one evaluated round into the forum table
// markup. The output shape is the interchange format the score aggregator
// extracts from: participant rows carry the name in a [th] cell followed
// immediately by the total in a [td] cell with a trailing "p" marker.
//
// ReportRenderer never mutates its input and renders participants in the
// ranked order it is given; per-match cells stay in original match order.
type ReportRenderer struct{}

// NewReportRenderer creates a ReportRenderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// Render produces the round report text.
//
// Shape, one table row per line:
//   - title row carrying the round name,
//   - header row with one label-pair cell per match plus replay and
//     bonus headers,
//   - the official results row,
//   - one row per ranked participant: name, total, per-match
//     "guess (score)" cells, "replay (score)", and the bonus score, which
//     renders as "0 p" when the guess missed, never blank.
//
// A short or odd label list degrades to the pairs that are available;
// it never panics.
func (r *ReportRenderer) Render(result domain.RoundResult) string {
	var b strings.Builder

	official := result.Round.Official

	fmt.Fprintf(&b, "[table][tr][th colspan=10 align=center][q]%s[/q][/th][/tr]\n", result.Round.Name)

	b.WriteString("[tr][th]" + headerTotalLabel + "[/th][td][/td]")
	labels := official.Labels
	for i := 0; i+1 < len(labels); i += 2 {
		fmt.Fprintf(&b, "[td]%s - %s[/td]\n", labels[i], labels[i+1])
	}
	b.WriteString("[td]" + headerReplayLabel + "[/td][td]" + headerBonusLabel + "[/td][/tr]\n")

	b.WriteString("[tr][th]" + headerResultsLabel + "[/th][td][/td]")
	for _, m := range official.Matches {
		fmt.Fprintf(&b, "[td]%d - %d[/td]", m.Home, m.Away)
	}
	fmt.Fprintf(&b, "[td]%s[/td][td]%s[/td][/tr]\n", formatReplay(official.Replay), official.Bonus)

	for _, p := range result.Ranked {
		fmt.Fprintf(&b, "[tr][th]%s[/th][td]%dp[/td]", p.Name, p.Breakdown.Total)
		for i, g := range p.Guesses {
			fmt.Fprintf(&b, "[td]%d-%d (%d p)[/td]", g.Home, g.Away, p.Breakdown.MatchScores[i])
		}
		fmt.Fprintf(&b, "[td]%s (%d p)[/td][td]%d p[/td][/tr]\n",
			formatReplay(p.Replay), p.Breakdown.ReplayScore, p.Breakdown.BonusScore)
	}

	b.WriteString("[/table]\n")
	return b.String()
}

// formatReplay joins a replay triple with dashes, the form used in both
// the official results row and participant rows.
func formatReplay(r domain.ReplayGuess) string {
	return fmt.Sprintf("%d-%d-%d", r.First, r.Second, r.Third)
}
