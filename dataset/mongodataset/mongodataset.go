/*
Package mongodataset reads example sets from and writes them to a MongoDB
database.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Collection gives access to the examples stored on a MongoDB collection.
It can be read as a dataset.Set and written to as a dataset.Writer.
*/
type Collection interface {
	dataset.Writer
	ReadSet(context.Context) (*dataset.Set, error)
	Read(context.Context) (<-chan dataset.Example, <-chan error)
}

type collection struct {
	session  *mgo.Session
	names    []string
	criteria []feature.ValueCriterion
	count    int
}

const (
	examplesCollectionName = "examples"
)

/*
Open takes a MongoDB database session, the names of the fields holding the
attribute values and the label, the label last, and optionally a set of
criteria examples must satisfy to be read, and returns a Collection that
works on the examples collection of the default database for that session,
or an error if the names cannot be used as fields or the indexes on them
cannot be ensured.
*/
func Open(ctx context.Context, session *mgo.Session, names []string, criteria ...feature.ValueCriterion) (Collection, error) {
	c := &collection{session: session, names: names, criteria: criteria}
	err := c.ensureIndexes()
	if err != nil {
		return nil, err
	}
	return c, nil
}

/*
QueryFor takes the names of the fields of an example document and a set of
criteria and returns the MongoDB query selecting the documents that satisfy
all of them, or an error if a criterion refers to an attribute without a
field.
*/
func QueryFor(names []string, criteria []feature.ValueCriterion) (bson.M, error) {
	query := make(bson.M)
	for _, vc := range criteria {
		i := vc.Attribute().Index()
		if i < 0 || i >= len(names)-1 {
			return nil, fmt.Errorf("criterion %v refers to attribute %d with no field", vc, i)
		}
		query[names[i]] = vc.Value()
	}
	return query, nil
}

/*
DocumentFor takes the names of the fields of an example document and an
example and returns the document for the example, or an error if the
example does not have a value for every field.
*/
func DocumentFor(names []string, e dataset.Example) (bson.M, error) {
	row := e.Row()
	if len(row) != len(names) {
		return nil, fmt.Errorf("example has %d fields, expected %d", len(row), len(names))
	}
	doc := make(bson.M, len(names))
	for i, n := range names {
		doc[n] = row[i]
	}
	return doc, nil
}

/*
ExampleFor takes the names of the fields of an example document and a
document and returns the example it holds, or an error if a field is
missing or is not a string.
*/
func ExampleFor(names []string, doc bson.M) (dataset.Example, error) {
	row := make([]string, len(names))
	for i, n := range names {
		v, ok := doc[n]
		if !ok {
			return dataset.Example{}, fmt.Errorf("document %v has no field %q", doc["_id"], n)
		}
		s, ok := v.(string)
		if !ok {
			return dataset.Example{}, fmt.Errorf("document %v: field %q holds a %T instead of a string", doc["_id"], n, v)
		}
		row[i] = s
	}
	return dataset.NewExampleFromRow(row)
}

func (c *collection) ReadSet(ctx context.Context) (*dataset.Set, error) {
	var examples []dataset.Example
	exampleChan, errs := c.Read(ctx)
	for e := range exampleChan {
		examples = append(examples, e)
	}
	if err := <-errs; err != nil {
		return nil, err
	}
	return dataset.New(examples)
}

func (c *collection) Read(ctx context.Context) (<-chan dataset.Example, <-chan error) {
	examples := make(chan dataset.Example)
	errs := make(chan error, 1)
	go func() {
		defer close(examples)
		defer close(errs)
		query, err := QueryFor(c.names, c.criteria)
		if err != nil {
			errs <- err
			return
		}
		iter := c.examplesCollection().Find(query).Sort("_id").Iter()
		defer iter.Close()
		var doc bson.M
		for iter.Next(&doc) {
			e, err := ExampleFor(c.names, doc)
			if err != nil {
				errs <- err
				return
			}
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case examples <- e:
			}
			doc = nil
		}
		if err := iter.Err(); err != nil {
			errs <- err
		}
	}()
	return examples, errs
}

func (c *collection) Write(ctx context.Context, examples []dataset.Example) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, len(examples))
	for i, e := range examples {
		doc, err := DocumentFor(c.names, e)
		if err != nil {
			return 0, fmt.Errorf("writing example %d: %v", i, err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	err := c.examplesCollection().Insert(docs...)
	if err != nil {
		return 0, err
	}
	c.count += len(examples)
	return len(examples), nil
}

func (c *collection) Count() int {
	return c.count
}

func (c *collection) Flush() error {
	return nil
}

func (c *collection) ensureIndexes() error {
	for _, n := range c.names {
		if n == "_id" {
			return fmt.Errorf("invalid field name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(n, ".$") {
			return fmt.Errorf("invalid field name %q: contains reserved characters %q or %q", n, ".", "$")
		}
	}
	for _, vc := range c.criteria {
		i := vc.Attribute().Index()
		if i < 0 || i >= len(c.names)-1 {
			continue
		}
		index := mgo.Index{
			Key:        []string{c.names[i]},
			Background: true,
			Sparse:     true,
		}
		err := c.examplesCollection().EnsureIndex(index)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *collection) examplesCollection() *mgo.Collection {
	return c.session.DB("").C(examplesCollectionName)
}
