package id3

import (
	"math"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/feature"
)

/*
Partition represents a partition of an example set according to an
attribute into subsets with an information gain to predict the label
*/
type Partition struct {
	Attribute feature.Attribute
	// Values holds the distinct values of the attribute among the
	// partitioned examples, in order of first occurrence.
	Values []string
	// Subsets holds the examples taking each value.
	Subsets         map[string]*dataset.Set
	informationGain float64
}

/*
NewPartition takes an example set, an attribute and the label value counted
as positive and returns the partition of the set by the attribute.
Its information gain is computed as 1 minus the entropies of the subsets
weighted by their share of the examples, taking the entropy of a subset as
the binary entropy of its fraction of positive examples. The baseline of 1
stands for the entropy of an evenly split set rather than the actual
entropy of the partitioned one.
An empty set yields a partition with no subsets and 0 information gain.
*/
func NewPartition(s *dataset.Set, a feature.Attribute, positive string) (*Partition, error) {
	values, subsets, err := s.Partition(a)
	if err != nil {
		return nil, err
	}
	p := &Partition{Attribute: a, Values: values, Subsets: subsets}
	if s.Len() == 0 {
		return p, nil
	}
	totalCount := float64(s.Len())
	var residual float64
	for _, v := range values {
		ss := subsets[v]
		subsetCount := float64(ss.Len())
		// H(q) = H(1-q): taking the minority count keeps mirrored subsets
		// bit-identical
		pos := ss.CountLabel(positive)
		q := float64(min(pos, ss.Len()-pos)) / subsetCount
		residual += subsetCount / totalCount * Entropy(q)
	}
	// rounding may push the weighted sum just past 1
	p.informationGain = math.Max(0, 1-residual)
	return p, nil
}

// InformationGain returns the information gain of the partition.
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

/*
InformationGain takes an example set, an attribute and the label value
counted as positive and returns the information gain of partitioning the
set by the attribute, a value in [0, 1] (see NewPartition). An error is
returned if an example has no value for the attribute.
*/
func InformationGain(s *dataset.Set, a feature.Attribute, positive string) (float64, error) {
	p, err := NewPartition(s, a, positive)
	if err != nil {
		return 0, err
	}
	return p.informationGain, nil
}

/*
Entropy takes the probability q of a binary outcome and returns its entropy
in bits. Values of q at or outside the bounds of (0, 1) have no uncertainty
and yield 0.
*/
func Entropy(q float64) float64 {
	if !(q > 0 && q < 1) {
		return 0
	}
	return -(q*math.Log2(q) + (1-q)*math.Log2(1-q))
}
