// Package store provides file-backed implementations of the engine's
// source and sink ports: CSV round inputs and a directory of rendered
// report texts.
package store

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/Petre55/nk-predictor/internal/ports"
)

var _ ports.RowSource = (*CSVSource)(nil)

// CSVSource reads one round's raw rows from a CSV file. Records may have
// varying width; short rows are passed through for the parser to handle
// explicitly.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSVSource for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Name returns the file's base name without extension, used as the round
// identifier in logs and report naming.
func (s *CSVSource) Name() string {
	base := filepath.Base(s.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Rows reads and returns all records of the CSV file. Failures surface as
// a ports.SourceError wrapping the original error unchanged, so callers
// can still match fs.ErrNotExist and friends.
func (s *CSVSource) Rows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, ports.NewSourceError(s.path, "open", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Rows legitimately vary in length: a participant who skipped the
	// bonus produces a shorter record.
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, ports.NewSourceError(s.path, "read", err)
	}
	return rows, nil
}
