package tree_test

import (
	"fmt"
	"testing"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/feature"
	"github.com/jonathanhungc/id3/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSample map[string]string

func (ms mapSample) ValueFor(a feature.Attribute) (string, error) {
	v, ok := ms[a.Name()]
	if !ok {
		return "", fmt.Errorf("no value for %s", a.Name())
	}
	return v, nil
}

func abTree(t *testing.T) *tree.Tree {
	t.Helper()
	table, err := feature.NewTable([]string{"A", "B"})
	require.NoError(t, err)
	a, _ := table.Lookup("A")
	b, _ := table.Lookup("B")
	splitB := tree.NewSplit(b)
	splitB.Branches = []tree.Branch{
		{Value: "p", Node: &tree.Leaf{Label: "Yes"}},
		{Value: "q", Node: &tree.Leaf{Label: "No"}},
	}
	root := tree.NewSplit(a)
	root.Branches = []tree.Branch{
		{Value: "x", Node: splitB},
		{Value: "y", Node: &tree.Leaf{Label: "Yes"}},
	}
	return tree.New(root, table, "Label")
}

func TestSplit(t *testing.T) {
	root := abTree(t).Root.(*tree.Split)
	assert.Equal(t, []string{"x", "y"}, root.Values())
	c, ok := root.Child("y")
	require.True(t, ok)
	assert.Equal(t, &tree.Leaf{Label: "Yes"}, c)
	_, ok = root.Child("z")
	assert.False(t, ok)
	assert.Equal(t, "A is x", fmt.Sprint(root.Criterion(0)))
}

func TestPredict(t *testing.T) {
	tr := abTree(t)
	testCases := []struct {
		sample   mapSample
		expected string
	}{
		{mapSample{"A": "x", "B": "p"}, "Yes"},
		{mapSample{"A": "x", "B": "q"}, "No"},
		{mapSample{"A": "y"}, "Yes"},
	}
	for _, tc := range testCases {
		label, err := tr.Predict(tc.sample)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, label, "prediction for %v", tc.sample)
	}

	_, err := tr.Predict(mapSample{"A": "z"})
	assert.Equal(t, tree.ErrCannotPredictFromSample, err)
	_, err = tr.Predict(mapSample{"A": "x"})
	assert.Error(t, err)
	assert.NotEqual(t, tree.ErrCannotPredictFromSample, err)

	var nilTree *tree.Tree
	_, err = nilTree.Predict(mapSample{})
	assert.Error(t, err)
}

func TestTest(t *testing.T) {
	tr := abTree(t)
	s, err := dataset.FromRows([][]string{
		{"x", "p", "Yes"},
		{"x", "q", "Yes"},
		{"y", "q", "Yes"},
		{"z", "p", "No"},
	})
	require.NoError(t, err)
	rate, failures, err := tr.Test(s)
	require.NoError(t, err)
	assert.Equal(t, 0.5, rate)
	assert.Equal(t, 1, failures)

	empty, err := dataset.New(nil)
	require.NoError(t, err)
	rate, failures, err = tr.Test(empty)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)
	assert.Equal(t, 0, failures)
}

func TestTraverse(t *testing.T) {
	tr := abTree(t)
	var topdown, bottomup []string
	describe := func(path []feature.ValueCriterion, n tree.Node) string {
		switch node := n.(type) {
		case *tree.Leaf:
			return fmt.Sprintf("%v:%s", path, node.Label)
		case *tree.Split:
			return fmt.Sprintf("%v:[%s]", path, node.Attribute.Name())
		}
		return ""
	}
	err := tr.Traverse(false, func(path []feature.ValueCriterion, n tree.Node) error {
		topdown = append(topdown, describe(path, n))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[]:[A]",
		"[A is x]:[B]",
		"[A is x B is p]:Yes",
		"[A is x B is q]:No",
		"[A is y]:Yes",
	}, topdown)

	err = tr.Traverse(true, func(path []feature.ValueCriterion, n tree.Node) error {
		bottomup = append(bottomup, describe(path, n))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[A is x B is p]:Yes",
		"[A is x B is q]:No",
		"[A is x]:[B]",
		"[A is y]:Yes",
		"[]:[A]",
	}, bottomup)

	var visited int
	err = tr.Traverse(false, func(path []feature.ValueCriterion, n tree.Node) error {
		visited++
		if len(path) == 1 {
			return fmt.Errorf("stop")
		}
		return nil
	})
	assert.EqualError(t, err, "stop")
	assert.Equal(t, 2, visited)
}

func TestRules(t *testing.T) {
	rules := abTree(t).Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "[A is x B is q]", fmt.Sprint(rules[1].Criteria))
	assert.Equal(t, "No", rules[1].Label)
	assert.Equal(t, "[A is y]", fmt.Sprint(rules[2].Criteria))
	assert.Equal(t, "Yes", rules[2].Label)
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 2, abTree(t).Depth())
	leafOnly := tree.New(&tree.Leaf{Label: "Yes"}, feature.NewIndexTable(0), "Label")
	assert.Equal(t, 0, leafOnly.Depth())
}

func TestString(t *testing.T) {
	expected := "[A]\n" +
		"|\n" +
		"|__A is x\n" +
		"|  [B]\n" +
		"|  |\n" +
		"|  |__B is p\n" +
		"|  |  { Yes }\n" +
		"|  |__B is q\n" +
		"|     { No }\n" +
		"|__A is y\n" +
		"   { Yes }\n"
	assert.Equal(t, expected, abTree(t).String())
	assert.Equal(t, "[empty tree]\n", (&tree.Tree{}).String())
}
