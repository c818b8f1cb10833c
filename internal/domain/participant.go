package domain

// ScoreBreakdown is the derived per-participant scoring result.
// Total is always recomputed in full from the other fields, never
// incrementally mutated; the tuti match's score is already doubled inside
// MatchScores before summation.
type ScoreBreakdown struct {
	// MatchScores holds one score per match in original match order.
	MatchScores [MatchesPerRound]int `json:"match_scores"`

	// ReplayScore is the tiered proximity score for the replay triple
	// (0 to 6).
	ReplayScore int `json:"replay_score"`

	// BonusScore is 1 when the bonus guess matched, otherwise 0.
	BonusScore int `json:"bonus_score"`

	// Total is sum(MatchScores) + ReplayScore + BonusScore.
	Total int `json:"total"`
}

// Participant is one contestant's full guess set for a round, plus the
// score breakdown populated by the scorer.
type Participant struct {
	// ID is the contestant's numeric identifier from the source row.
	ID int `json:"id"`

	// Name is the contestant's display name. The cross-round leaderboard
	// is keyed by the trimmed name, not the ID.
	Name string `json:"name"`

	// Guesses are the five match guesses, index-aligned with the official
	// matches.
	Guesses [MatchesPerRound]MatchGuess `json:"guesses"`

	// TutiMatch is the 1-based index of the participant's doubled-score
	// pick. Zero or out-of-range means no pick; nothing is doubled.
	TutiMatch int `json:"tuti_match"`

	// Replay is the participant's tie-break guess.
	Replay ReplayGuess `json:"replay"`

	// Bonus is the participant's bonus guess.
	Bonus string `json:"bonus"`

	// Breakdown is populated exactly once by the participant scorer.
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// HasTuti reports whether the tuti pick addresses a real match slot.
func (p Participant) HasTuti() bool {
	return p.TutiMatch >= 1 && p.TutiMatch <= MatchesPerRound
}
