package id3

import (
	"fmt"
	"strings"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/feature"
	"golang.org/x/sync/errgroup"
)

// gainTolerance is the margin by which a gain has to exceed another one to
// count as higher. Gains closer than that are tied.
const gainTolerance = 1e-12

/*
SelectAttribute takes a non-empty example set, a non-empty slice of
candidate attributes and the label value counted as positive, and returns
the candidate whose partition of the set has the highest information gain.
Ties, including gains equal up to rounding, go to the candidate that comes
first in the slice.
*/
func SelectAttribute(s *dataset.Set, candidates []feature.Attribute, positive string) (feature.Attribute, error) {
	p, err := New(nil, WithPositiveLabel(positive)).selectPartition(s, candidates)
	if err != nil {
		return feature.Attribute{}, err
	}
	return p.Attribute, nil
}

func (in *Inducer) selectPartition(s *dataset.Set, candidates []feature.Attribute) (*Partition, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("selecting attribute: no candidates")
	}
	partitions, err := in.partitions(s, candidates)
	if err != nil {
		return nil, fmt.Errorf("selecting attribute: %v", err)
	}
	scores := make([]string, len(partitions))
	var selected *Partition
	for i, p := range partitions {
		scores[i] = fmt.Sprintf("%s: %v", p.Attribute.Name(), p.InformationGain())
		if selected == nil || p.InformationGain() > selected.InformationGain()+gainTolerance {
			selected = p
		}
	}
	in.logger.Logf("%s", strings.Join(scores, ", "))
	return selected, nil
}

// partitions returns the partition of s by each candidate, in candidate
// order, computing up to in.parallelism of them at the same time.
func (in *Inducer) partitions(s *dataset.Set, candidates []feature.Attribute) ([]*Partition, error) {
	partitions := make([]*Partition, len(candidates))
	if in.parallelism < 2 || len(candidates) < 2 {
		for i, c := range candidates {
			p, err := NewPartition(s, c, in.positiveLabel)
			if err != nil {
				return nil, err
			}
			partitions[i] = p
		}
		return partitions, nil
	}
	g := new(errgroup.Group)
	g.SetLimit(in.parallelism)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			p, err := NewPartition(s, c, in.positiveLabel)
			if err != nil {
				return err
			}
			partitions[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partitions, nil
}
