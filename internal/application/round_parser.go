package application

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Petre55/nk-predictor/internal/domain"
)

// emptySentinel is the explicit "no guess provided" token that may appear
// in any numeric field. It is treated exactly like a missing field.
const emptySentinel = "[]"

// Fixed column layout of a participant or official-answer row.
const (
	colID       = 0
	colName     = 1
	colGuesses  = 2 // five (home, away) pairs at even/odd offsets
	colTuti     = 12
	colReplay   = 13 // three tokens
	colBonus    = 16
	minRowWidth = colTuti // id, name, and all five guess pairs
)

// RoundParser turns one round's raw tabular rows into a normalized Round:
// the official answer plus every participant record that survived
// parsing. The parser is stateless per call; per-row problems are
// absorbed with a diagnostic notice and only structural impossibility is
// fatal.
type RoundParser struct {
	logger *slog.Logger
}

// NewRoundParser creates a RoundParser logging row diagnostics through
// the given logger.
func NewRoundParser(logger *slog.Logger) *RoundParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoundParser{logger: logger}
}

// Parse builds the named round from raw rows. The final two rows are
// reserved: second-to-last is the official answer, last is the labels
// row; every preceding row is a candidate participant record.
//
// It returns the round, the number of participant rows dropped, and an
// error only when the input cannot structurally hold an official answer
// and labels row (domain.ErrInsufficientData).
func (rp *RoundParser) Parse(name string, rows [][]string) (*domain.Round, int, error) {
	if len(rows) < 2 {
		return nil, 0, fmt.Errorf("%w: got %d rows", domain.ErrInsufficientData, len(rows))
	}

	officialRow := rows[len(rows)-2]
	labelsRow := rows[len(rows)-1]

	round := &domain.Round{
		Name:     name,
		Official: parseOfficial(officialRow, labelsRow),
	}

	skipped := 0
	for i, row := range rows[:len(rows)-2] {
		p, err := parseParticipant(i, row)
		if err != nil {
			skipped++
			rp.logger.Warn("skipping participant row",
				slog.Int("row", i),
				slog.String("reason", err.Error()),
			)
			continue
		}
		round.Participants = append(round.Participants, p)
	}

	return round, skipped, nil
}

// parseParticipant builds one participant record from a raw row.
// Guess pairs with sentinel or unparsable tokens default to (0, 0); only
// a row too short to hold all five pairs, or an unparsable id, drops the
// whole record.
func parseParticipant(index int, row []string) (domain.Participant, error) {
	if len(row) < minRowWidth {
		return domain.Participant{}, domain.NewRowError(index, "guesses",
			fmt.Errorf("%w: row has %d tokens", domain.ErrIncompleteParticipant, len(row)))
	}

	id, err := strconv.Atoi(strings.TrimSpace(row[colID]))
	if err != nil {
		// A non-integer id usually marks a mis-sliced row; nothing else
		// in it can be trusted.
		return domain.Participant{}, domain.NewRowError(index, "id",
			fmt.Errorf("%w: %q is not an integer", domain.ErrMalformedRow, row[colID]))
	}

	p := domain.Participant{
		ID:     id,
		Name:   row[colName],
		Replay: parseReplay(row, false),
		Bonus:  tokenAt(row, colBonus),
	}

	for m := 0; m < domain.MatchesPerRound; m++ {
		p.Guesses[m] = parsePair(row, colGuesses+2*m)
	}

	if t := tokenAt(row, colTuti); t != "" && t != emptySentinel {
		if v, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			p.TutiMatch = v
		}
	}

	return p, nil
}

// parseOfficial builds the official answer with the same per-field
// leniency as participant rows: an unparsable pair becomes (0, 0), a bad
// replay triple becomes all-zero, a missing bonus becomes empty.
func parseOfficial(row, labelsRow []string) domain.OfficialAnswer {
	official := domain.OfficialAnswer{
		Replay: parseReplay(row, true),
		Bonus:  tokenAt(row, colBonus),
		Labels: append([]string(nil), labelsRow...),
	}
	for m := 0; m < domain.MatchesPerRound; m++ {
		official.Matches[m] = parsePair(row, colGuesses+2*m)
	}
	return official
}

// parsePair reads the (home, away) pair starting at column i, defaulting
// to (0, 0) when either token is missing, a sentinel, or not an integer.
func parsePair(row []string, i int) domain.MatchGuess {
	h, a := tokenAt(row, i), tokenAt(row, i+1)
	if h == "" || a == "" || h == emptySentinel || a == emptySentinel {
		return domain.MatchGuess{}
	}

	home, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return domain.MatchGuess{}
	}
	away, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return domain.MatchGuess{}
	}
	return domain.MatchGuess{Home: home, Away: away}
}

// parseReplay reads the replay triple. Missing or sentinel components
// default to zero individually; a present component that fails to parse
// poisons the whole triple to (0, 0, 0). When strict is set (official
// row), any incomplete or unparsable triple collapses to all-zero.
func parseReplay(row []string, strict bool) domain.ReplayGuess {
	var vals [3]int
	for i := 0; i < 3; i++ {
		t := tokenAt(row, colReplay+i)
		if t == "" || t == emptySentinel {
			if strict {
				return domain.ReplayGuess{}
			}
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return domain.ReplayGuess{}
		}
		vals[i] = v
	}
	return domain.ReplayGuess{First: vals[0], Second: vals[1], Third: vals[2]}
}

// tokenAt returns row[i] or "" when the row is too short.
func tokenAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
