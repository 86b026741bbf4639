/*
Package dataset defines labeled examples and the immutable, ordered sets of
them that trees are induced from.
*/
package dataset

import (
	"fmt"

	"github.com/jonathanhungc/id3/feature"
)

/*
Set is an ordered collection of examples that share the same arity. A Set is
never modified after being built: subsetting and partitioning return new
sets that keep the relative order of the examples.
*/
type Set struct {
	examples []Example
	arity    int
}

/*
New takes a slice of examples and returns a set built with them, or an error
if they do not all have the same number of attribute values.
*/
func New(examples []Example) (*Set, error) {
	s := &Set{examples: make([]Example, len(examples))}
	copy(s.examples, examples)
	for i, e := range s.examples {
		if i == 0 {
			s.arity = e.Arity()
			continue
		}
		if e.Arity() != s.arity {
			return nil, fmt.Errorf("example %d has %d attribute values, expected %d", i, e.Arity(), s.arity)
		}
	}
	return s, nil
}

/*
FromRows takes rows of fields, each with the label as last field, and
returns the set of examples they describe. It fails on the first row whose
length differs from the first one's.
*/
func FromRows(rows [][]string) (*Set, error) {
	examples := make([]Example, 0, len(rows))
	for i, row := range rows {
		e, err := NewExampleFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %v", i, err)
		}
		examples = append(examples, e)
	}
	return New(examples)
}

// Len returns the number of examples in the set.
func (s *Set) Len() int {
	return len(s.examples)
}

/*
Arity returns the number of attribute values of the examples in the set,
0 for an empty set.
*/
func (s *Set) Arity() int {
	return s.arity
}

// Examples returns a copy of the examples in the set, in order.
func (s *Set) Examples() []Example {
	result := make([]Example, len(s.examples))
	copy(result, s.examples)
	return result
}

// Example returns the i-th example of the set.
func (s *Set) Example(i int) Example {
	return s.examples[i]
}

// Labels returns the labels of the examples in the set, in order.
func (s *Set) Labels() []string {
	result := make([]string, len(s.examples))
	for i, e := range s.examples {
		result[i] = e.label
	}
	return result
}

/*
CountLabel returns the number of examples in the set labeled with the given
value.
*/
func (s *Set) CountLabel(label string) int {
	var count int
	for _, e := range s.examples {
		if e.label == label {
			count++
		}
	}
	return count
}

/*
SubsetWith takes a feature.Criterion and returns a subset that only
contains the examples that satisfy it.
*/
func (s *Set) SubsetWith(fc feature.Criterion) (*Set, error) {
	var examples []Example
	for _, e := range s.examples {
		ok, err := fc.SatisfiedBy(e)
		if err != nil {
			return nil, err
		}
		if ok {
			examples = append(examples, e)
		}
	}
	return &Set{examples, s.arity}, nil
}

/*
AttributeValues returns the distinct values the examples in the set take for
the given attribute, in order of first occurrence.
*/
func (s *Set) AttributeValues(a feature.Attribute) ([]string, error) {
	var result []string
	encountered := make(map[string]bool)
	for _, e := range s.examples {
		v, err := e.ValueFor(a)
		if err != nil {
			return nil, err
		}
		if !encountered[v] {
			encountered[v] = true
			result = append(result, v)
		}
	}
	return result, nil
}

/*
Partition splits the set by the examples' value for the given attribute. It
returns the distinct values in order of first occurrence and, for each of
them, the subset of examples taking it. No value is returned without
examples.
*/
func (s *Set) Partition(a feature.Attribute) ([]string, map[string]*Set, error) {
	var values []string
	subsets := make(map[string]*Set)
	for _, e := range s.examples {
		v, err := e.ValueFor(a)
		if err != nil {
			return nil, nil, err
		}
		ss, ok := subsets[v]
		if !ok {
			ss = &Set{arity: s.arity}
			subsets[v] = ss
			values = append(values, v)
		}
		ss.examples = append(ss.examples, e)
	}
	return values, subsets, nil
}

func (s *Set) String() string {
	return fmt.Sprintf("{Set %d examples of arity %d}", len(s.examples), s.arity)
}
