package dataset

import (
	"fmt"
	"strings"

	"github.com/jonathanhungc/id3/feature"
)

/*
Example represents a labeled item from which to learn: an ordered sequence
of attribute values followed by its label.
*/
type Example struct {
	values []string
	label  string
}

/*
NewExample takes a slice of attribute values and a label and returns an
example with them. The slice is copied, so later changes to it do not
affect the example.
*/
func NewExample(values []string, label string) Example {
	vs := make([]string, len(values))
	copy(vs, values)
	return Example{vs, label}
}

/*
NewExampleFromRow takes a row of fields whose last one is the label and
returns the corresponding example, or an error if the row has no fields.
*/
func NewExampleFromRow(row []string) (Example, error) {
	if len(row) == 0 {
		return Example{}, fmt.Errorf("empty row has no label")
	}
	return NewExample(row[:len(row)-1], row[len(row)-1]), nil
}

// ValueFor returns the example's value for the given attribute.
func (e Example) ValueFor(a feature.Attribute) (string, error) {
	i := a.Index()
	if i < 0 || i >= len(e.values) {
		return "", fmt.Errorf("attribute %s (index %d) not present in example with %d values", a.Name(), i, len(e.values))
	}
	return e.values[i], nil
}

// Label returns the label of the example.
func (e Example) Label() string {
	return e.label
}

// Arity returns the number of attribute values of the example.
func (e Example) Arity() int {
	return len(e.values)
}

// Row returns the attribute values of the example followed by its label.
func (e Example) Row() []string {
	return append(append(make([]string, 0, len(e.values)+1), e.values...), e.label)
}

func (e Example) String() string {
	return fmt.Sprintf("[%s -> %s]", strings.Join(e.values, ", "), e.label)
}
