package store

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petre55/nk-predictor/internal/ports"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSource_Name(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/data/NK1.csv", want: "NK1"},
		{path: "round-2.csv", want: "round-2"},
		{path: "/data/noext", want: "noext"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewCSVSource(tt.path).Name())
	}
}

func TestCSVSource_Rows(t *testing.T) {
	path := writeCSV(t, "NK1.csv",
		"1,User1,1,0,2,1,0,0,1,1,3,2,2,50,60,70,A\n"+
			"2,User2,0,0,[],[]\n"+
			"AUS,NED,ESP,ITA\n")

	rows, err := NewCSVSource(path).Rows(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "User1", rows[0][1])
	assert.Len(t, rows[0], 17)
	assert.Len(t, rows[1], 6, "short records pass through unchanged")
	assert.Equal(t, "[]", rows[1][4])
}

func TestCSVSource_MissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "absent.csv"))

	rows, err := src.Rows(context.Background())
	assert.Nil(t, rows)

	var srcErr *ports.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "open", srcErr.Operation)
	assert.ErrorIs(t, err, fs.ErrNotExist, "original cause stays matchable")
}

func TestCSVSource_CanceledContext(t *testing.T) {
	path := writeCSV(t, "NK1.csv", "1,User1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVSource(path).Rows(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
