package id3

import (
	"github.com/jonathanhungc/id3/dataset"
)

/*
PluralityValue takes an example set and returns its most common label. When
several labels share the highest count, the one that occurs first in the
set wins. ErrEmptyExampleSet is returned for a nil or empty set.
*/
func PluralityValue(s *dataset.Set) (string, error) {
	if s == nil || s.Len() == 0 {
		return "", ErrEmptyExampleSet
	}
	counts := make(map[string]int)
	var order []string
	for _, l := range s.Labels() {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}
	best := order[0]
	for _, l := range order[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best, nil
}

/*
SameClassification returns true if every example in the set has the label
of the first one. It returns false for an empty set, which has no label to
share.
*/
func SameClassification(s *dataset.Set) bool {
	if s.Len() == 0 {
		return false
	}
	label := s.Example(0).Label()
	for i := 1; i < s.Len(); i++ {
		if s.Example(i).Label() != label {
			return false
		}
	}
	return true
}
