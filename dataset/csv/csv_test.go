package csv_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/dataset/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSet(t *testing.T) {
	input := " x , p ,Yes\nx,q, No \ny,p,Yes\n"
	s, names, err := csv.ReadSet(strings.NewReader(input), false)
	require.NoError(t, err)
	assert.Nil(t, names)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Arity())
	assert.Equal(t, []string{"x", "p", "Yes"}, s.Example(0).Row())
	assert.Equal(t, []string{"x", "q", "No"}, s.Example(1).Row())
}

func TestReadSetWithHeader(t *testing.T) {
	input := "A, B ,Label\nx,p,Yes\n"
	s, names, err := csv.ReadSet(strings.NewReader(input), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "Label"}, names)
	assert.Equal(t, 1, s.Len())
}

func TestReadSetInconsistentWidth(t *testing.T) {
	_, _, err := csv.ReadSet(strings.NewReader("x,p,Yes\nx,No\n"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = csv.ReadSet(strings.NewReader("A,B,L\nx,No\n"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadSetEmpty(t *testing.T) {
	s, names, err := csv.ReadSet(strings.NewReader(""), true)
	require.NoError(t, err)
	assert.Nil(t, names)
	assert.Equal(t, 0, s.Len())
}

func TestReadSetByExampleStops(t *testing.T) {
	var read []int
	_, err := csv.ReadSetByExample(strings.NewReader("a,Yes\nb,No\nc,Yes\n"), false, func(i int, e dataset.Example) (bool, error) {
		read = append(read, i)
		return i < 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, read)
}

func TestReadSetFromFilePath(t *testing.T) {
	s, names, err := csv.ReadSetFromFilePath("../../testdata/restaurant.csv", true)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Len())
	assert.Equal(t, 10, s.Arity())
	assert.Equal(t, "WillWait", names[len(names)-1])

	_, _, err = csv.ReadSetFromFilePath("../../testdata/missing.csv", true)
	assert.Error(t, err)
}

func TestWriteCSVSet(t *testing.T) {
	s, err := dataset.FromRows([][]string{{"x", "p", "Yes"}, {"y", "q", "No"}})
	require.NoError(t, err)
	var buf bytes.Buffer
	err = csv.WriteCSVSet(context.Background(), &buf, s, []string{"A", "B", "Label"})
	require.NoError(t, err)
	assert.Equal(t, "A,B,Label\nx,p,Yes\ny,q,No\n", buf.String())

	read, names, err := csv.ReadSet(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "Label"}, names)
	assert.Equal(t, s.Examples(), read.Examples())
}

func TestWriterCount(t *testing.T) {
	var buf bytes.Buffer
	w, err := csv.NewWriter(&buf, nil)
	require.NoError(t, err)
	n, err := w.Write(context.Background(), []dataset.Example{dataset.NewExample([]string{"x"}, "Yes")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, w.Flush())
	assert.Equal(t, 1, w.Count())
	assert.Equal(t, "x,Yes\n", buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err = w.Write(ctx, []dataset.Example{dataset.NewExample([]string{"y"}, "No")})
	assert.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, w.Count())
}
