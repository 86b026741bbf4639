/*
Package json renders trees as nested JSON objects and reads them back.

A leaf is rendered as its label string. A split is rendered as an object
with a single property named after the split's attribute, whose value is an
object with a property per branch value holding the rendered subtree:

	{"Pat": {"Full": {"Hun": {...}}, "None": "No", "Some": "Yes"}}
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jonathanhungc/id3/feature"
	featurejson "github.com/jonathanhungc/id3/feature/json"
	"github.com/jonathanhungc/id3/tree"
)

/*
Marshal takes a tree and returns its nested JSON representation, with keys
sorted and two-space indentation, or an error.
*/
func Marshal(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	err := WriteJSONTree(&buf, t)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/*
WriteJSONTree takes an io.Writer and a pointer to a tree.Tree and
serializes the given tree as nested JSON onto the io.Writer.
An error is returned if the tree contains unknown nodes or the
JSON cannot be written onto the io.Writer.
*/
func WriteJSONTree(w io.Writer, t *tree.Tree) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("cannot serialize empty tree")
	}
	v, err := nodeValue(t.Root)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

/*
Unmarshal takes a slice of bytes with a nested JSON tree, the table of
attributes its splits refer to and the name of the label and returns
the decoded tree or an error.
*/
func Unmarshal(data []byte, attributes *feature.Table, label string) (*tree.Tree, error) {
	return ReadJSONTree(bytes.NewReader(data), attributes, label)
}

/*
ReadJSONTree takes an io.Reader, the table of attributes and the label name
and decodes the nested JSON tree in the reader.
Split attributes are resolved by name on the table. As the JSON objects do
not keep the order of their properties, branches of the decoded splits are
sorted by value.
An error is returned if the JSON cannot be read, if a split names an unknown
attribute or if a value is neither a string nor a single-property object.
*/
func ReadJSONTree(r io.Reader, attributes *feature.Table, label string) (*tree.Tree, error) {
	var v interface{}
	err := json.NewDecoder(r).Decode(&v)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON tree: %v", err)
	}
	root, err := decodeNode(v, attributes)
	if err != nil {
		return nil, err
	}
	return tree.New(root, attributes, label), nil
}

type jsonRule struct {
	If   []json.RawMessage `json:"if"`
	Then string            `json:"then"`
}

/*
WriteJSONRules takes an io.Writer and a pointer to a tree.Tree and writes
onto the io.Writer a line per rule of the tree with a JSON object holding
the criteria of the rule under "if" and its label under "then":

	{"if":[{"attribute":"Pat","value":"None"}],"then":"No"}

An error is returned if a rule cannot be encoded or written.
*/
func WriteJSONRules(w io.Writer, t *tree.Tree) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("cannot serialize empty tree")
	}
	ced := featurejson.NewCriteriaEncodeDecoder(t.Attributes)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range t.Rules() {
		criteria, err := featurejson.EncodeCriteria(ced, r.Criteria)
		if err != nil {
			return err
		}
		err = enc.Encode(&jsonRule{criteria, r.Label})
		if err != nil {
			return err
		}
	}
	return nil
}

func nodeValue(n tree.Node) (interface{}, error) {
	switch node := n.(type) {
	case *tree.Leaf:
		return node.Label, nil
	case *tree.Split:
		branches := make(map[string]interface{}, len(node.Branches))
		for _, b := range node.Branches {
			v, err := nodeValue(b.Node)
			if err != nil {
				return nil, err
			}
			branches[b.Value] = v
		}
		return map[string]interface{}{node.Attribute.Name(): branches}, nil
	default:
		return nil, fmt.Errorf("unknown node type %T", n)
	}
}

func decodeNode(v interface{}, attributes *feature.Table) (tree.Node, error) {
	switch jn := v.(type) {
	case string:
		return &tree.Leaf{Label: jn}, nil
	case map[string]interface{}:
		if len(jn) != 1 {
			return nil, fmt.Errorf("split object must have exactly one attribute property, got %d", len(jn))
		}
		for name, rawBranches := range jn {
			a, ok := attributes.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("unknown attribute %q", name)
			}
			branches, ok := rawBranches.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("split on %s: expected object of branches, got %T", name, rawBranches)
			}
			values := make([]string, 0, len(branches))
			for value := range branches {
				values = append(values, value)
			}
			sort.Strings(values)
			s := tree.NewSplit(a)
			for _, value := range values {
				child, err := decodeNode(branches[value], attributes)
				if err != nil {
					return nil, fmt.Errorf("split on %s, branch %q: %v", name, value, err)
				}
				s.Branches = append(s.Branches, tree.Branch{Value: value, Node: child})
			}
			return s, nil
		}
	}
	return nil, fmt.Errorf("unexpected JSON value of type %T in tree", v)
}
