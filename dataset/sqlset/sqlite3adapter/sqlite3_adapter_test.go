package sqlite3adapter_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/dataset/sqlset"
	"github.com/jonathanhungc/id3/dataset/sqlset/sqlite3adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	a, err := sqlite3adapter.New(filepath.Join(t.TempDir(), "examples.db"), 1)
	require.NoError(t, err)
	defer a.Close()

	rows := make([][]string, 0, 25)
	for i := 0; i < 25; i++ {
		label := "No"
		if i%3 == 0 {
			label = "Yes"
		}
		rows = append(rows, []string{string(rune('a' + i)), label})
	}
	s, err := dataset.FromRows(rows)
	require.NoError(t, err)

	names := []string{"Letter", "Label"}
	w, err := sqlset.CreateWriter(ctx, a, names)
	require.NoError(t, err)
	n, err := w.Write(ctx, s.Examples())
	require.NoError(t, err)
	assert.Equal(t, 25, n)
	require.NoError(t, w.Flush())

	count, err := a.CountExamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, count)

	read, err := sqlset.ReadSet(ctx, a, names)
	require.NoError(t, err)
	assert.Equal(t, s.Examples(), read.Examples())
}
