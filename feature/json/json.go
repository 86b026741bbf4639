/*
Package json encodes attribute criteria as JSON objects and decodes them
back.
*/
package json

import (
	"encoding/json"
	"fmt"

	"github.com/jonathanhungc/id3/feature"
)

/*
CriteriaEncodeDecoder is an interface for objects
that allow encoding criteria into slices of
bytes and decoding them back to criteria.
*/
type CriteriaEncodeDecoder interface {

	//Encode receives a feature.ValueCriterion
	//and returns a slice of bytes with the criterion
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(feature.ValueCriterion) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a feature.ValueCriterion decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	Decode([]byte) (feature.ValueCriterion, error)
}

type jsonCriteriaEncodeDecoder struct {
	attributes *feature.Table
}

type jsonCriterion struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// NewCriteriaEncodeDecoder takes the table of attributes criteria
// refer to and returns a CriteriaEncodeDecoder that marshals and
// unmarshals criteria into/from slices of bytes as JSON.
// Specifically, criteria are encoded as a JSON object
// with an "attribute" property set to the name of the attribute
// of the criterion and a "value" property set to the value the
// attribute is constrained to.
func NewCriteriaEncodeDecoder(attributes *feature.Table) CriteriaEncodeDecoder {
	return &jsonCriteriaEncodeDecoder{attributes}
}

func (jced *jsonCriteriaEncodeDecoder) Encode(vc feature.ValueCriterion) ([]byte, error) {
	if vc == nil {
		return nil, fmt.Errorf("cannot encode nil criterion")
	}
	return json.Marshal(&jsonCriterion{
		Attribute: vc.Attribute().Name(),
		Value:     vc.Value(),
	})
}

func (jced *jsonCriteriaEncodeDecoder) Decode(data []byte) (feature.ValueCriterion, error) {
	jc := &jsonCriterion{}
	err := json.Unmarshal(data, jc)
	if err != nil {
		return nil, err
	}
	return jc.Criterion(jced.attributes)
}

func (jc *jsonCriterion) Criterion(attributes *feature.Table) (feature.ValueCriterion, error) {
	a, ok := attributes.Lookup(jc.Attribute)
	if !ok {
		return nil, fmt.Errorf("unknown attribute '%s'", jc.Attribute)
	}
	return feature.NewValueCriterion(a, jc.Value), nil
}

/*
EncodeCriteria takes a CriteriaEncodeDecoder and a slice of criteria and
returns the encoding of every criterion as raw JSON, ready to be marshalled
as an array, or an error if any of them cannot be encoded.
*/
func EncodeCriteria(ced CriteriaEncodeDecoder, criteria []feature.ValueCriterion) ([]json.RawMessage, error) {
	result := make([]json.RawMessage, 0, len(criteria))
	for _, vc := range criteria {
		data, err := ced.Encode(vc)
		if err != nil {
			return nil, fmt.Errorf("encoding criterion %v: %v", vc, err)
		}
		result = append(result, json.RawMessage(data))
	}
	return result, nil
}
