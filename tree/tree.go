package tree

import (
	"fmt"
	"strings"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/feature"
)

// Tree represents a decision tree. It is composed of its root
// node, the table of attributes its splits refer to and the
// name of the label it predicts.
type Tree struct {
	Root       Node
	Attributes *feature.Table
	Label      string
}

// New takes the root Node, the attribute table and the label name
// and returns a tree with them.
func New(root Node, attributes *feature.Table, label string) *Tree {
	return &Tree{root, attributes, label}
}

// Predict takes a sample and returns the label the tree predicts for it and
// an error if the prediction could not be made.
func (t *Tree) Predict(s feature.Sample) (string, error) {
	if t == nil || t.Root == nil {
		return "", fmt.Errorf("nil tree cannot predict samples")
	}
	n := t.Root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Label, nil
		case *Split:
			v, err := s.ValueFor(node.Attribute)
			if err != nil {
				return "", fmt.Errorf("predicting sample: %v", err)
			}
			child, ok := node.Child(v)
			if !ok {
				return "", ErrCannotPredictFromSample
			}
			n = child
		default:
			return "", fmt.Errorf("predicting sample: unknown node type %T", n)
		}
	}
}

/*
Test takes an example set and returns three values:
 * the prediction success rate of the tree over the given set
 * the number of failing predictions because of ErrCannotPredictFromSample errors
 * an error if a prediction could not be made for reasons other than the tree not
   being able to do so. If this is not nil, the other values will be 0.0 and 0
   respectively
*/
func (t *Tree) Test(s *dataset.Set) (float64, int, error) {
	if s.Len() == 0 {
		return 0.0, 0, nil
	}
	var result float64
	var errCount int
	for _, e := range s.Examples() {
		p, err := t.Predict(e)
		if err != nil {
			if err != ErrCannotPredictFromSample {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		if p == e.Label() {
			result += 1.0
		}
	}
	return result / float64(s.Len()), errCount, nil
}

// Traverse takes a bottomup boolean and an error-returning
// function that takes the criteria leading to a node and the
// node itself, and goes through the tree calling the function
// for every node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true. Children are
// visited in branch order.
// If the call to the function returns an error, the traversing
// is aborted and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func([]feature.ValueCriterion, Node) error) error {
	if t.Root == nil {
		return nil
	}
	return traverse(nil, t.Root, bottomup, f)
}

func traverse(path []feature.ValueCriterion, n Node, bottomup bool, f func([]feature.ValueCriterion, Node) error) error {
	if !bottomup {
		if err := f(path, n); err != nil {
			return err
		}
	}
	if s, ok := n.(*Split); ok {
		for i, b := range s.Branches {
			subpath := append(append(make([]feature.ValueCriterion, 0, len(path)+1), path...), s.Criterion(i))
			if err := traverse(subpath, b.Node, bottomup, f); err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(path, n)
	}
	return nil
}

// Rule is the path of criteria from the root of a tree to one
// of its leaves, along with the label the leaf predicts.
type Rule struct {
	Criteria []feature.ValueCriterion
	Label    string
}

// Rules returns a rule per leaf of the tree, in branch order.
func (t *Tree) Rules() []Rule {
	var rules []Rule
	t.Traverse(false, func(path []feature.ValueCriterion, n Node) error {
		if l, ok := n.(*Leaf); ok {
			rules = append(rules, Rule{path, l.Label})
		}
		return nil
	})
	return rules
}

// Depth returns the number of splits on the longest path of the tree.
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(path []feature.ValueCriterion, _ Node) error {
		if len(path) > depth {
			depth = len(path)
		}
		return nil
	})
	return depth
}

func (t *Tree) String() string {
	if t.Root == nil {
		return "[empty tree]\n"
	}
	return subtreeString(t.Root)
}

func subtreeString(n Node) string {
	var result string
	switch node := n.(type) {
	case *Leaf:
		return fmt.Sprintf("{ %s }\n", node.Label)
	case *Split:
		result = fmt.Sprintf("[%s]\n|\n", node.Attribute.Name())
		for i, b := range node.Branches {
			lines := strings.Split(subtreeString(b.Node), "\n")
			result = fmt.Sprintf("%s|__%v\n", result, node.Criterion(i))
			for _, line := range lines {
				if len(line) == 0 {
					continue
				}
				if i == len(node.Branches)-1 {
					result = fmt.Sprintf("%s   %s\n", result, line)
				} else {
					result = fmt.Sprintf("%s|  %s\n", result, line)
				}
			}
		}
	default:
		result = fmt.Sprintf("ERROR: unknown node type %T\n", n)
	}
	return result
}
