package mongodataset_test

import (
	"context"
	"testing"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/dataset/mongodataset"
	"github.com/jonathanhungc/id3/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"
)

var names = []string{"Pat", "Hun", "WillWait"}

func TestDocumentFor(t *testing.T) {
	doc, err := mongodataset.DocumentFor(names, dataset.NewExample([]string{"Full", "Yes"}, "No"))
	require.NoError(t, err)
	assert.Equal(t, bson.M{"Pat": "Full", "Hun": "Yes", "WillWait": "No"}, doc)

	_, err = mongodataset.DocumentFor(names, dataset.NewExample([]string{"Full"}, "No"))
	assert.Error(t, err)
}

func TestExampleFor(t *testing.T) {
	e, err := mongodataset.ExampleFor(names, bson.M{"_id": 1, "Pat": "Some", "Hun": "No", "WillWait": "Yes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Some", "No", "Yes"}, e.Row())

	_, err = mongodataset.ExampleFor(names, bson.M{"Pat": "Some", "WillWait": "Yes"})
	assert.Error(t, err)
	_, err = mongodataset.ExampleFor(names, bson.M{"Pat": "Some", "Hun": true, "WillWait": "Yes"})
	assert.Error(t, err)
}

func TestQueryFor(t *testing.T) {
	table, err := feature.NewTable(names[:2])
	require.NoError(t, err)
	pat, _ := table.Lookup("Pat")
	hun, _ := table.Lookup("Hun")
	query, err := mongodataset.QueryFor(names, []feature.ValueCriterion{
		feature.NewValueCriterion(pat, "Full"),
		feature.NewValueCriterion(hun, "Yes"),
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"Pat": "Full", "Hun": "Yes"}, query)

	query, err = mongodataset.QueryFor(names, nil)
	require.NoError(t, err)
	assert.Empty(t, query)

	outside := feature.NewIndexTable(3).Attributes()[2]
	_, err = mongodataset.QueryFor(names, []feature.ValueCriterion{feature.NewValueCriterion(outside, "Yes")})
	assert.Error(t, err, "the label cannot be queried as an attribute")
}

func TestOpenInvalidNames(t *testing.T) {
	for _, n := range [][]string{{"_id", "L"}, {"Pat.Full", "L"}, {"$Pat", "L"}} {
		_, err := mongodataset.Open(context.Background(), nil, n)
		assert.Error(t, err, "names %v", n)
	}
}
