/*
Package feature defines the attributes examples are described by and the
criteria that constrain their values.
*/
package feature

import "fmt"

/*
Attribute represents a categorical property observed on every example. It is
identified by its position in the examples and carries a display name.
*/
type Attribute struct {
	index int
	name  string
}

/*
Table is the ordered, immutable list of attributes shared by an induction run
and the formatters that render its result. The order of the table is the
declaration order used to break ties between equally good attributes.
*/
type Table struct {
	attributes []Attribute
	byName     map[string]int
}

/*
NewTable takes a slice of attribute names and returns a table whose attribute
at index i is named names[i]. An error is returned if a name is empty or
repeated.
*/
func NewTable(names []string) (*Table, error) {
	t := &Table{
		attributes: make([]Attribute, 0, len(names)),
		byName:     make(map[string]int, len(names)),
	}
	for i, n := range names {
		if n == "" {
			return nil, fmt.Errorf("attribute %d has an empty name", i)
		}
		if j, ok := t.byName[n]; ok {
			return nil, fmt.Errorf("attribute name %q used for attributes %d and %d", n, j, i)
		}
		t.byName[n] = i
		t.attributes = append(t.attributes, Attribute{i, n})
	}
	return t, nil
}

/*
NewIndexTable returns a table of n attributes named after their
positions ("0", "1", ...).
*/
func NewIndexTable(n int) *Table {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%d", i)
	}
	t, _ := NewTable(names)
	return t
}

// Len returns the number of attributes in the table.
func (t *Table) Len() int {
	return len(t.attributes)
}

/*
Attribute takes an index and returns the attribute at that position or an
error if the index is out of range.
*/
func (t *Table) Attribute(i int) (Attribute, error) {
	if i < 0 || i >= len(t.attributes) {
		return Attribute{}, fmt.Errorf("attribute index %d out of range [0, %d)", i, len(t.attributes))
	}
	return t.attributes[i], nil
}

/*
Lookup takes an attribute name and returns the attribute with that name and
true, or a zero Attribute and false if the table has no such attribute.
*/
func (t *Table) Lookup(name string) (Attribute, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Attribute{}, false
	}
	return t.attributes[i], true
}

/*
Attributes returns a copy of the attributes in the table in declaration
order, the usual initial candidate set for an induction run.
*/
func (t *Table) Attributes() []Attribute {
	result := make([]Attribute, len(t.attributes))
	copy(result, t.attributes)
	return result
}

// Names returns the attribute names in declaration order.
func (t *Table) Names() []string {
	result := make([]string, len(t.attributes))
	for i, a := range t.attributes {
		result[i] = a.name
	}
	return result
}

// Index returns the position of the attribute's values in an example.
func (a Attribute) Index() int {
	return a.index
}

// Name returns the display name of the attribute.
func (a Attribute) Name() string {
	return a.name
}

func (a Attribute) String() string {
	return a.name
}
