package report

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Petre55/nk-predictor/internal/domain"
)

// participantRowPattern matches the name/total cells of a rendered
// participant row: a [th] name cell followed immediately by a [td] cell
// holding the total with its trailing "p" marker. The title, header, and
// official-results rows never match because their second cell is empty.
var participantRowPattern = regexp.MustCompile(`\[tr\]\[th\](.*?)\[/th\]\[td\](\d+)p\[/td\]`)

// ScoreAggregator accumulates per-participant totals across rounds into a
// cumulative leaderboard. Totals are keyed by trimmed participant name and
// only ever grow as rounds are merged in.
//
// Aggregation is additive, not idempotent: ingesting the same report twice
// doubles that round's contribution. Deduplication is deliberately out of
// scope; callers own the set of reports they feed in.
//
// ScoreAggregator is a plain value with no background work. Ingest calls
// mutate the shared totals map and must not run concurrently; run them
// from a single goroutine or merge per-report aggregators sequentially.
type ScoreAggregator struct {
	totals map[string]int
	// order records each name at first sight, fixing the tie order of
	// the leaderboard.
	order []string
}

// NewScoreAggregator creates an empty aggregator.
func NewScoreAggregator() *ScoreAggregator {
	return &ScoreAggregator{totals: make(map[string]int)}
}

// IngestReport scans a rendered report text for participant rows and adds
// each extracted total to that name's running sum. It returns the number
// of rows extracted; a text with no matching rows is a no-op, not an
// error.
func (a *ScoreAggregator) IngestReport(text string) int {
	matches := participantRowPattern.FindAllStringSubmatch(text, -1)
	for _, m := range matches {
		pts, err := strconv.Atoi(m[2])
		if err != nil {
			// Unreachable with the \d+ pattern short of overflow;
			// skip rather than corrupt the totals.
			continue
		}
		a.add(m[1], pts)
	}
	return len(matches)
}

// IngestResult merges one evaluated round through the structured
// in-process path, adding each ranked participant's total directly.
// For renderer-produced reports this yields exactly the totals
// IngestReport would extract, without the text round-trip.
func (a *ScoreAggregator) IngestResult(result domain.RoundResult) {
	for _, p := range result.Ranked {
		a.add(p.Name, p.Breakdown.Total)
	}
}

// add accumulates points under the trimmed name, recording first-seen
// order for leaderboard tie-breaking.
func (a *ScoreAggregator) add(name string, pts int) {
	key := strings.TrimSpace(name)
	if _, seen := a.totals[key]; !seen {
		a.order = append(a.order, key)
	}
	a.totals[key] += pts
}

// Leaderboard returns the cumulative standings sorted by total score
// descending. Ties keep the order names were first seen while ingesting.
// Ranks are 1-based.
func (a *ScoreAggregator) Leaderboard() []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(a.order))
	for _, name := range a.order {
		entries = append(entries, domain.LeaderboardEntry{Name: name, Total: a.totals[name]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Render produces the leaderboard table text for the current standings
// using the given renderer.
func (a *ScoreAggregator) Render(lr *LeaderboardRenderer) string {
	return lr.Render(a.Leaderboard())
}
