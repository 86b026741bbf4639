package dataset_test

import (
	"testing"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherSet(t *testing.T) *dataset.Set {
	t.Helper()
	s, err := dataset.FromRows([][]string{
		{"sunny", "hot", "No"},
		{"rainy", "mild", "Yes"},
		{"sunny", "mild", "Yes"},
		{"overcast", "hot", "Yes"},
		{"rainy", "cool", "No"},
	})
	require.NoError(t, err)
	return s
}

func TestExample(t *testing.T) {
	values := []string{"a", "b"}
	e := dataset.NewExample(values, "Yes")
	values[0] = "changed"
	attrs := feature.NewIndexTable(3).Attributes()
	v, err := e.ValueFor(attrs[0])
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	_, err = e.ValueFor(attrs[2])
	assert.Error(t, err)
	assert.Equal(t, "Yes", e.Label())
	assert.Equal(t, 2, e.Arity())
	assert.Equal(t, []string{"a", "b", "Yes"}, e.Row())
	assert.Equal(t, "[a, b -> Yes]", e.String())

	_, err = dataset.NewExampleFromRow(nil)
	assert.Error(t, err)
	e, err = dataset.NewExampleFromRow([]string{"No"})
	require.NoError(t, err)
	assert.Equal(t, 0, e.Arity())
	assert.Equal(t, "No", e.Label())
}

func TestNewInconsistentArity(t *testing.T) {
	_, err := dataset.FromRows([][]string{{"a", "b", "Yes"}, {"a", "No"}})
	assert.Error(t, err)
}

func TestSetAccessors(t *testing.T) {
	s := weatherSet(t)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 2, s.Arity())
	assert.Equal(t, []string{"No", "Yes", "Yes", "Yes", "No"}, s.Labels())
	assert.Equal(t, 3, s.CountLabel("Yes"))
	assert.Equal(t, 0, s.CountLabel("Maybe"))
	assert.Equal(t, "No", s.Example(4).Label())

	examples := s.Examples()
	examples[0] = dataset.NewExample([]string{"x", "y"}, "Maybe")
	assert.Equal(t, "No", s.Example(0).Label(), "Examples returns a copy")

	empty, err := dataset.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.Arity())
}

func TestPartition(t *testing.T) {
	s := weatherSet(t)
	outlook := feature.NewIndexTable(2).Attributes()[0]
	values, subsets, err := s.Partition(outlook)
	require.NoError(t, err)
	assert.Equal(t, []string{"sunny", "rainy", "overcast"}, values)
	require.Len(t, subsets, 3)
	assert.Equal(t, []string{"No", "Yes"}, subsets["sunny"].Labels())
	assert.Equal(t, []string{"Yes", "No"}, subsets["rainy"].Labels())
	assert.Equal(t, []string{"Yes"}, subsets["overcast"].Labels())
	for _, ss := range subsets {
		assert.Equal(t, 2, ss.Arity())
	}
	assert.Equal(t, 5, s.Len(), "partitioning leaves the set untouched")

	_, _, err = s.Partition(feature.NewIndexTable(3).Attributes()[2])
	assert.Error(t, err)
}

func TestAttributeValues(t *testing.T) {
	s := weatherSet(t)
	values, err := s.AttributeValues(feature.NewIndexTable(2).Attributes()[1])
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "mild", "cool"}, values)
}

func TestSubsetWith(t *testing.T) {
	s := weatherSet(t)
	temperature := feature.NewIndexTable(2).Attributes()[1]
	ss, err := s.SubsetWith(feature.NewValueCriterion(temperature, "mild"))
	require.NoError(t, err)
	assert.Equal(t, 2, ss.Len())
	assert.Equal(t, []string{"rainy", "mild", "Yes"}, ss.Example(0).Row())
	assert.Equal(t, []string{"sunny", "mild", "Yes"}, ss.Example(1).Row())

	ss, err = s.SubsetWith(feature.NewValueCriterion(temperature, "freezing"))
	require.NoError(t, err)
	assert.Equal(t, 0, ss.Len())
	assert.Equal(t, 2, ss.Arity())
}
