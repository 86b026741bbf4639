package json_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathanhungc/id3/feature"
	"github.com/jonathanhungc/id3/tree"
	"github.com/jonathanhungc/id3/tree/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abJSON = `{
  "A": {
    "x": {
      "B": {
        "p": "Yes",
        "q": "No"
      }
    },
    "y": "Yes"
  }
}
`

func abTree(t *testing.T) *tree.Tree {
	t.Helper()
	table, err := feature.NewTable([]string{"A", "B"})
	require.NoError(t, err)
	a, _ := table.Lookup("A")
	b, _ := table.Lookup("B")
	splitB := tree.NewSplit(b)
	splitB.Branches = []tree.Branch{
		{Value: "q", Node: &tree.Leaf{Label: "No"}},
		{Value: "p", Node: &tree.Leaf{Label: "Yes"}},
	}
	root := tree.NewSplit(a)
	root.Branches = []tree.Branch{
		{Value: "y", Node: &tree.Leaf{Label: "Yes"}},
		{Value: "x", Node: splitB},
	}
	return tree.New(root, table, "Label")
}

func TestMarshal(t *testing.T) {
	data, err := json.Marshal(abTree(t))
	require.NoError(t, err)
	assert.Equal(t, abJSON, string(data))

	data, err = json.Marshal(tree.New(&tree.Leaf{Label: "Yes & No"}, feature.NewIndexTable(0), "Label"))
	require.NoError(t, err)
	assert.Equal(t, "\"Yes & No\"\n", string(data))

	_, err = json.Marshal(&tree.Tree{})
	assert.Error(t, err)
}

func TestUnmarshal(t *testing.T) {
	original := abTree(t)
	decoded, err := json.Unmarshal([]byte(abJSON), original.Attributes, "Label")
	require.NoError(t, err)
	assert.Equal(t, "Label", decoded.Label)
	root, ok := decoded.Root.(*tree.Split)
	require.True(t, ok)
	assert.Equal(t, "A", root.Attribute.Name())
	assert.Equal(t, []string{"x", "y"}, root.Values())
	x, _ := root.Child("x")
	assert.Equal(t, []string{"p", "q"}, x.(*tree.Split).Values())

	data, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, abJSON, string(data))
}

func TestUnmarshalErrors(t *testing.T) {
	table, err := feature.NewTable([]string{"A", "B"})
	require.NoError(t, err)
	testCases := map[string]string{
		"invalid json":      `{"A": `,
		"unknown attribute": `{"C": {"x": "Yes"}}`,
		"two attributes":    `{"A": {"x": "Yes"}, "B": {"p": "No"}}`,
		"branches not map":  `{"A": ["x", "Yes"]}`,
		"number leaf":       `{"A": {"x": 1}}`,
	}
	for name, input := range testCases {
		_, err := json.ReadJSONTree(strings.NewReader(input), table, "Label")
		assert.Error(t, err, name)
	}
}

func TestWriteJSONRules(t *testing.T) {
	var buf bytes.Buffer
	err := json.WriteJSONRules(&buf, abTree(t))
	require.NoError(t, err)
	expected := `{"if":[{"attribute":"A","value":"y"}],"then":"Yes"}` + "\n" +
		`{"if":[{"attribute":"A","value":"x"},{"attribute":"B","value":"q"}],"then":"No"}` + "\n" +
		`{"if":[{"attribute":"A","value":"x"},{"attribute":"B","value":"p"}],"then":"Yes"}` + "\n"
	assert.Equal(t, expected, buf.String())

	assert.Error(t, json.WriteJSONRules(&buf, nil))
}
