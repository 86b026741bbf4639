package tree

import (
	"github.com/jonathanhungc/id3/feature"
)

/*
Node is a node of the tree: either a *Leaf or a *Split. No other types
implement it, so a type switch over those two cases is exhaustive.
*/
type Node interface {
	isNode()
}

/*
Leaf is a terminal node holding the label predicted for the samples that
reach it.
*/
type Leaf struct {
	Label string
}

/*
Split is an internal node that asks about an attribute and continues on the
branch for the sample's value of it.
*/
type Split struct {
	// The attribute whose value selects the branch to follow.
	Attribute feature.Attribute
	// The branches of the node, one per value of the attribute observed
	// among the examples that reached the node, in order of first
	// occurrence.
	Branches []Branch
}

/*
Branch connects a Split to the subtree for one value of its attribute.
*/
type Branch struct {
	Value string
	Node  Node
}

func (*Leaf) isNode()  {}
func (*Split) isNode() {}

/*
NewSplit takes an attribute and returns a Split on it with no branches.
*/
func NewSplit(a feature.Attribute) *Split {
	return &Split{Attribute: a}
}

/*
Child takes a value and returns the subtree under the branch for it and
true, or nil and false if the split has no branch for the value.
*/
func (s *Split) Child(value string) (Node, bool) {
	for _, b := range s.Branches {
		if b.Value == value {
			return b.Node, true
		}
	}
	return nil, false
}

/*
Values returns the values for which the split has a branch, in branch order.
*/
func (s *Split) Values() []string {
	result := make([]string, len(s.Branches))
	for i, b := range s.Branches {
		result[i] = b.Value
	}
	return result
}

// Criterion returns the criterion a sample satisfies to follow branch i.
func (s *Split) Criterion(i int) feature.ValueCriterion {
	return feature.NewValueCriterion(s.Attribute, s.Branches[i].Value)
}
