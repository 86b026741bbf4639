/*
Package yaml provides methods to parse the metadata describing an example
set, its attributes and label, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes the columns of an example set: the attributes in
declaration order, the name of the label and the label value counted as
positive when computing information gain.
*/
type Metadata struct {
	Table         *feature.Table
	Label         string
	PositiveLabel string
	// Values holds, for the attributes that declare them, the values they
	// are allowed to take. Attributes without an entry accept any value.
	Values map[string][]string
}

/*
ReadMetadata takes a slice of bytes with a metadata specification in YML and
returns the Metadata parsed from it or an error.
The YML is expected to be an object with the following properties:
  * attributes: a list whose items are either an attribute name or an object
    with a name property and a values property listing the valid values for
    the attribute
  * label: the name of the label column (optional)
  * positive: the label value counted as positive (optional)
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	raw := struct {
		Attributes []interface{} `yaml:"attributes"`
		Label      string        `yaml:"label"`
		Positive   string        `yaml:"positive"`
	}{}
	err := yaml.Unmarshal(md, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(raw.Attributes) == 0 {
		return nil, fmt.Errorf("metadata has no attribute information")
	}
	names := make([]string, 0, len(raw.Attributes))
	values := make(map[string][]string)
	for i, ra := range raw.Attributes {
		switch a := ra.(type) {
		case string:
			names = append(names, a)
		case map[interface{}]interface{}:
			name, vs, err := parseAttributeDeclaration(a)
			if err != nil {
				return nil, fmt.Errorf("parsing attribute %d: %v", i, err)
			}
			names = append(names, name)
			if vs != nil {
				values[name] = vs
			}
		default:
			return nil, fmt.Errorf("invalid attribute declaration of type %T", ra)
		}
	}
	table, err := feature.NewTable(names)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if _, ok := table.Lookup(raw.Label); ok {
		return nil, fmt.Errorf("label %q is also declared as an attribute", raw.Label)
	}
	return &Metadata{Table: table, Label: raw.Label, PositiveLabel: raw.Positive, Values: values}, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed Metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	m, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return m, err
}

/*
Validate takes an example set and returns an error if its arity does not
match the metadata attributes or if any example holds a value not listed
for an attribute that declares its valid values.
*/
func (m *Metadata) Validate(s *dataset.Set) error {
	if s.Len() == 0 {
		return nil
	}
	if s.Arity() != m.Table.Len() {
		return fmt.Errorf("examples have %d attributes, metadata declares %d", s.Arity(), m.Table.Len())
	}
	for name, vs := range m.Values {
		a, _ := m.Table.Lookup(name)
		valid := make(map[string]bool, len(vs))
		for _, v := range vs {
			valid[v] = true
		}
		for i, e := range s.Examples() {
			v, err := e.ValueFor(a)
			if err != nil {
				return err
			}
			if !valid[v] {
				return fmt.Errorf("example %d: attribute %s got unknown value %q", i, name, v)
			}
		}
	}
	return nil
}

func parseAttributeDeclaration(decl map[interface{}]interface{}) (string, []string, error) {
	name, ok := decl["name"].(string)
	if !ok {
		return "", nil, fmt.Errorf("expected a string name, got %T", decl["name"])
	}
	rawValues, ok := decl["values"]
	if !ok {
		return name, nil, nil
	}
	list, ok := rawValues.([]interface{})
	if !ok {
		return "", nil, fmt.Errorf("attribute %s: expected a list of values, got %T", name, rawValues)
	}
	values := make([]string, 0, len(list))
	for _, v := range list {
		values = append(values, fmt.Sprintf("%v", v))
	}
	return name, values, nil
}
