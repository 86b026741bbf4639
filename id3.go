/*
Package id3 induces decision trees from sets of labeled categorical
examples, splitting on the attribute with the highest information gain at
every node.
*/
package id3

import (
	"fmt"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/feature"
	"github.com/jonathanhungc/id3/tree"
)

// DefaultPositiveLabel is the label value counted as positive when an
// Inducer is not given another one.
const DefaultPositiveLabel = "Yes"

// InductionError represents an error related with the induction of a tree
type InductionError string

/*
ErrEmptyExampleSet is the error returned when a tree is to be induced from,
or a plurality value computed over, a set with no examples.
*/
const ErrEmptyExampleSet = InductionError("cannot induce from an empty example set")

func (ie InductionError) Error() string {
	return string(ie)
}

/*
Logger is the interface wrapping the Logf method, used by the Inducer to
report the scores of candidate attributes and the splits it makes.
*/
type Logger interface {
	Logf(format string, a ...interface{})
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...interface{}) {}

/*
Inducer grows decision trees over the attributes of a table. It holds no
state between inductions and is safe for concurrent use.
*/
type Inducer struct {
	attributes    *feature.Table
	positiveLabel string
	logger        Logger
	parallelism   int
}

// Option configures an Inducer.
type Option func(*Inducer)

// WithPositiveLabel sets the label value counted as positive when
// computing information gain.
func WithPositiveLabel(label string) Option {
	return func(in *Inducer) {
		in.positiveLabel = label
	}
}

// WithLogger sets the Logger the Inducer reports its diagnostics to.
func WithLogger(l Logger) Option {
	return func(in *Inducer) {
		if l != nil {
			in.logger = l
		}
	}
}

// WithParallelism sets the number of candidate attributes whose
// information gain may be computed at the same time. Values below 2
// keep the computation sequential.
func WithParallelism(n int) Option {
	return func(in *Inducer) {
		in.parallelism = n
	}
}

/*
New takes the table of attributes examples are described by and a set of
options and returns an Inducer.
*/
func New(attributes *feature.Table, opts ...Option) *Inducer {
	in := &Inducer{
		attributes:    attributes,
		positiveLabel: DefaultPositiveLabel,
		logger:        nopLogger{},
		parallelism:   1,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

/*
Grow takes an example set and the name of the label its examples carry and
returns the tree induced from the set using every attribute of the table as
candidate, or an error.
*/
func (in *Inducer) Grow(s *dataset.Set, label string) (*tree.Tree, error) {
	root, err := in.Induce(s, in.attributes.Attributes())
	if err != nil {
		return nil, err
	}
	return tree.New(root, in.attributes, label), nil
}

/*
Induce takes an example set and the candidate attributes to split it on and
returns the root of the induced tree.

At each node, in this order:
  * a node without examples becomes a leaf with the plurality value of its
    parent's examples,
  * a node whose examples share a label becomes a leaf with that label,
  * a node without candidate attributes left becomes a leaf with the
    plurality value of its examples,
  * otherwise the node splits on the candidate with the highest information
    gain (the first one in the given order on ties) and has a child for each
    value of the attribute among its examples, in order of first occurrence,
    induced from the examples taking that value and the remaining candidates.

An error is returned before anything is induced if the set is empty, if its
examples do not have as many values as the table has attributes, or if a
candidate is repeated or does not belong to the table.
*/
func (in *Inducer) Induce(s *dataset.Set, candidates []feature.Attribute) (tree.Node, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptyExampleSet
	}
	if s.Arity() != in.attributes.Len() {
		return nil, fmt.Errorf("examples have %d attribute values, the attribute table has %d attributes", s.Arity(), in.attributes.Len())
	}
	seen := make(map[int]bool, len(candidates))
	for _, c := range candidates {
		a, err := in.attributes.Attribute(c.Index())
		if err != nil {
			return nil, fmt.Errorf("candidate %s: %v", c.Name(), err)
		}
		if a != c {
			return nil, fmt.Errorf("candidate %s at index %d does not match attribute %s of the table", c.Name(), c.Index(), a.Name())
		}
		if seen[c.Index()] {
			return nil, fmt.Errorf("candidate %s given more than once", c.Name())
		}
		seen[c.Index()] = true
	}
	return in.induce(s, candidates, nil)
}

func (in *Inducer) induce(examples *dataset.Set, candidates []feature.Attribute, parent *dataset.Set) (tree.Node, error) {
	if examples.Len() == 0 {
		label, err := PluralityValue(parent)
		if err != nil {
			return nil, err
		}
		return &tree.Leaf{Label: label}, nil
	}
	if SameClassification(examples) {
		return &tree.Leaf{Label: examples.Example(0).Label()}, nil
	}
	if len(candidates) == 0 {
		label, err := PluralityValue(examples)
		if err != nil {
			return nil, err
		}
		return &tree.Leaf{Label: label}, nil
	}
	selected, err := in.selectPartition(examples, candidates)
	if err != nil {
		return nil, err
	}
	in.logger.Logf("Splitting by : %s", selected.Attribute.Name())
	remaining := make([]feature.Attribute, 0, len(candidates)-1)
	for _, c := range candidates {
		if c != selected.Attribute {
			remaining = append(remaining, c)
		}
	}
	split := tree.NewSplit(selected.Attribute)
	for _, v := range selected.Values {
		child, err := in.induce(selected.Subsets[v], remaining, examples)
		if err != nil {
			return nil, err
		}
		split.Branches = append(split.Branches, tree.Branch{Value: v, Node: child})
	}
	return split, nil
}
