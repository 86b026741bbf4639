package json_test

import (
	"testing"

	"github.com/jonathanhungc/id3/feature"
	"github.com/jonathanhungc/id3/feature/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaEncodeDecoder(t *testing.T) {
	table, err := feature.NewTable([]string{"Pat", "Hun"})
	require.NoError(t, err)
	hun, _ := table.Lookup("Hun")
	ced := json.NewCriteriaEncodeDecoder(table)

	data, err := ced.Encode(feature.NewValueCriterion(hun, "Yes"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"attribute":"Hun","value":"Yes"}`, string(data))

	vc, err := ced.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, hun, vc.Attribute())
	assert.Equal(t, "Yes", vc.Value())

	_, err = ced.Decode([]byte(`{"attribute":"Type","value":"Thai"}`))
	assert.Error(t, err)
	_, err = ced.Decode([]byte(`not json`))
	assert.Error(t, err)
	_, err = ced.Encode(nil)
	assert.Error(t, err)
}

func TestEncodeCriteria(t *testing.T) {
	table, err := feature.NewTable([]string{"Pat", "Hun"})
	require.NoError(t, err)
	pat, _ := table.Lookup("Pat")
	hun, _ := table.Lookup("Hun")
	encoded, err := json.EncodeCriteria(json.NewCriteriaEncodeDecoder(table), []feature.ValueCriterion{
		feature.NewValueCriterion(pat, "Full"),
		feature.NewValueCriterion(hun, "No"),
	})
	require.NoError(t, err)
	require.Len(t, encoded, 2)
	assert.JSONEq(t, `{"attribute":"Pat","value":"Full"}`, string(encoded[0]))
	assert.JSONEq(t, `{"attribute":"Hun","value":"No"}`, string(encoded[1]))
}
