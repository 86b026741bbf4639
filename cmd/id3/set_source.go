package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathanhungc/id3"
	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/dataset/csv"
	"github.com/jonathanhungc/id3/dataset/mongodataset"
	"github.com/jonathanhungc/id3/dataset/sqlset"
	"github.com/jonathanhungc/id3/dataset/sqlset/pgadapter"
	"github.com/jonathanhungc/id3/dataset/sqlset/sqlite3adapter"
	"github.com/jonathanhungc/id3/feature"
	"github.com/jonathanhungc/id3/feature/yaml"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

// setSourceConfig holds the flags of commands that read an example set.
type setSourceConfig struct {
	input         string
	metadataInput string
	header        bool
	label         string
	positive      string
	maxDBConns    int
}

// schema names the columns of an example set.
type schema struct {
	attributes *feature.Table
	label      string
	positive   string
}

func (ssc *setSourceConfig) addFlags(cmd *cobra.Command, use string) {
	cmd.PersistentFlags().StringVarP(&(ssc.input), "input", "i", "", fmt.Sprintf("path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the examples to %s (defaults to STDIN, interpreted as CSV)", use))
	cmd.PersistentFlags().StringVarP(&(ssc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes and label of the examples (required for database inputs)")
	cmd.PersistentFlags().BoolVar(&(ssc.header), "header", false, "take the first row of a CSV input as the names of its columns")
	cmd.PersistentFlags().StringVarP(&(ssc.label), "label", "l", "", "name of the label column, overriding the one in the metadata or header")
	cmd.PersistentFlags().StringVarP(&(ssc.positive), "positive", "p", "", fmt.Sprintf("label value counted as positive when computing information gain (defaults to the metadata's or %q)", id3.DefaultPositiveLabel))
	cmd.PersistentFlags().IntVar(&(ssc.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}

func (ssc *setSourceConfig) metadata() (*yaml.Metadata, error) {
	if ssc.metadataInput == "" {
		return nil, nil
	}
	return yaml.ReadMetadataFromFile(ssc.metadataInput)
}

/*
readSet reads the example set from the configured input and resolves the
schema of its columns. The criteria are pushed down to sources that can
filter examples themselves; callers still have to filter the returned set.
*/
func (ssc *setSourceConfig) readSet(ctx context.Context, l logger, md *yaml.Metadata, criteria ...feature.ValueCriterion) (*dataset.Set, *schema, error) {
	if !isDBURL(ssc.input) && !strings.HasSuffix(ssc.input, ".db") {
		if ssc.input == "" {
			l.Logf("Reading example set from STDIN...")
		} else {
			l.Logf("Reading example set from %s...", ssc.input)
		}
		s, header, err := csv.ReadSetFromFilePath(ssc.input, ssc.header)
		if err != nil {
			return nil, nil, err
		}
		sch, err := ssc.schema(md, header, s.Arity())
		if err != nil {
			return nil, nil, err
		}
		return s, sch, nil
	}
	if md == nil {
		return nil, nil, fmt.Errorf("required metadata flag was not set: it is needed to read examples from %s", ssc.input)
	}
	sch, err := ssc.schema(md, nil, md.Table.Len())
	if err != nil {
		return nil, nil, err
	}
	var s *dataset.Set
	switch {
	case strings.HasPrefix(ssc.input, "mongodb://"):
		s, err = ssc.readMongoSet(ctx, l, sch, criteria)
	default:
		var a sqlset.Adapter
		a, err = ssc.sqlAdapter(l, ssc.input)
		if err != nil {
			return nil, nil, err
		}
		defer a.Close()
		if count, cerr := a.CountExamples(ctx); cerr == nil {
			l.Logf("Reading %d examples over SQL adapter for %s...", count, ssc.input)
		}
		s, err = sqlset.ReadSet(ctx, a, sch.columns())
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading example set from %s: %v", ssc.input, err)
	}
	return s, sch, nil
}

func (ssc *setSourceConfig) readMongoSet(ctx context.Context, l logger, sch *schema, criteria []feature.ValueCriterion) (*dataset.Set, error) {
	l.Logf("Dialing MongoDB at %s to read example set...", ssc.input)
	session, err := mgo.Dial(ssc.input)
	if err != nil {
		return nil, err
	}
	defer session.Close()
	c, err := mongodataset.Open(ctx, session, sch.columns(), criteria...)
	if err != nil {
		return nil, err
	}
	return c.ReadSet(ctx)
}

func (ssc *setSourceConfig) sqlAdapter(l logger, url string) (sqlset.Adapter, error) {
	if strings.HasSuffix(url, ".db") {
		l.Logf("Creating SQLite3 adapter for file %s...", url)
		return sqlite3adapter.New(url, ssc.maxDBConns)
	}
	l.Logf("Creating PostgreSQL adapter for url %s...", url)
	return pgadapter.New(url)
}

/*
schema resolves the names of the attributes and the label of a set with the
given arity. Names come from the metadata if given, otherwise from the CSV
header if read, otherwise each column is named after its index.
The label and positive flags take precedence over both.
*/
func (ssc *setSourceConfig) schema(md *yaml.Metadata, header []string, arity int) (*schema, error) {
	sch := &schema{positive: id3.DefaultPositiveLabel}
	var err error
	switch {
	case md != nil:
		sch.attributes = md.Table
		sch.label = md.Label
		if md.PositiveLabel != "" {
			sch.positive = md.PositiveLabel
		}
	case len(header) > 0:
		sch.attributes, err = feature.NewTable(header[:len(header)-1])
		if err != nil {
			return nil, fmt.Errorf("reading CSV header: %v", err)
		}
		sch.label = header[len(header)-1]
	default:
		sch.attributes = feature.NewIndexTable(arity)
		sch.label = strconv.Itoa(arity)
	}
	if ssc.label != "" {
		sch.label = ssc.label
	}
	if ssc.positive != "" {
		sch.positive = ssc.positive
	}
	if sch.label == "" {
		return nil, fmt.Errorf("the label column has no name: set the label flag or declare it on the metadata")
	}
	if _, ok := sch.attributes.Lookup(sch.label); ok {
		return nil, fmt.Errorf("label %q is also the name of an attribute", sch.label)
	}
	return sch, nil
}

// columns returns the names of the columns of a set: its attributes
// followed by its label.
func (sch *schema) columns() []string {
	return append(sch.attributes.Names(), sch.label)
}

func isDBURL(input string) bool {
	return strings.HasPrefix(input, "postgresql://") || strings.HasPrefix(input, "postgres://") || strings.HasPrefix(input, "mongodb://")
}
