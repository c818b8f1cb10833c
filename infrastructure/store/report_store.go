package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Petre55/nk-predictor/internal/ports"
)

var (
	_ ports.ReportSource = (*ReportStore)(nil)
	_ ports.ReportSink   = (*ReportStore)(nil)
)

// reportExt is the extension of stored round reports. Only files with
// this extension are picked up during aggregation.
const reportExt = ".txt"

// ReportStore keeps one rendered report per round as a text file in a
// directory, plus the standalone leaderboard artifact. The leaderboard
// lives outside the report directory so a later aggregation run never
// picks it up as a round report.
//
// The directory is the system of record for aggregation: the leaderboard
// is re-derived from the full set of report files on every run, so report
// files must not be deleted or edited between runs.
type ReportStore struct {
	dir             string
	leaderboardPath string
}

// NewReportStore creates a store writing round reports under dir and the
// leaderboard to leaderboardPath.
func NewReportStore(dir, leaderboardPath string) *ReportStore {
	return &ReportStore{dir: dir, leaderboardPath: leaderboardPath}
}

// WriteReport stores the rendered report for the named round as
// <dir>/<round>.txt, creating the directory when missing.
func (st *ReportStore) WriteReport(ctx context.Context, round string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(st.dir, 0o755); err != nil {
		return ports.NewSourceError(st.dir, "mkdir", err)
	}

	path := filepath.Join(st.dir, round+reportExt)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return ports.NewSourceError(path, "write", err)
	}
	return nil
}

// WriteLeaderboard stores the rendered cumulative leaderboard.
func (st *ReportStore) WriteLeaderboard(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(st.leaderboardPath, []byte(text), 0o644); err != nil {
		return ports.NewSourceError(st.leaderboardPath, "write", err)
	}
	return nil
}

// Reports returns the text of every stored report, ordered by file name
// for deterministic aggregation. Read failures surface as a
// ports.SourceError wrapping the original error unchanged.
func (st *ReportStore) Reports(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(st.dir)
	if err != nil {
		return nil, ports.NewSourceError(st.dir, "list", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), reportExt) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	texts := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(st.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, ports.NewSourceError(path, "read", err)
		}
		texts = append(texts, string(data))
	}
	return texts, nil
}
