package domain

import "sort"

// RankByTotal returns the participants sorted by Breakdown.Total in
// descending order. The sort is stable: participants with equal totals
// keep their relative input order, and no secondary key is ever applied.
// The input slice is not modified; an empty input yields an empty ranking.
func RankByTotal(participants []Participant) []Participant {
	ranked := make([]Participant, len(participants))
	copy(ranked, participants)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Breakdown.Total > ranked[j].Breakdown.Total
	})
	return ranked
}

// LeaderboardEntry is one row of the cumulative cross-round leaderboard.
type LeaderboardEntry struct {
	// Rank is the 1-based position after sorting by Total descending.
	Rank int `json:"rank"`

	// Name is the trimmed participant name the totals are keyed by.
	Name string `json:"name"`

	// Total is the cumulative score across all ingested rounds.
	Total int `json:"total"`
}
