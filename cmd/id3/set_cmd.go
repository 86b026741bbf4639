package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathanhungc/id3/dataset"
	"github.com/jonathanhungc/id3/dataset/csv"
	"github.com/jonathanhungc/id3/dataset/mongodataset"
	"github.com/jonathanhungc/id3/dataset/sqlset"
	"github.com/jonathanhungc/id3/feature"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

type setCmdConfig struct {
	*rootCmdConfig
	setSourceConfig
	setOutput    string
	outputHeader bool
	where        []string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of examples",
		Long:  `Copy a set of examples from one backend to another, optionally keeping only the examples with the given attribute values`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			md, err := config.metadata()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			var pushed []feature.ValueCriterion
			if md != nil {
				pushed, err = parseWhere(config.where, md.Table)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(3)
				}
			}
			s, sch, err := config.readSet(config.Context(), config.logger, md, pushed...)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			criteria, err := parseWhere(config.where, sch.attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			for _, c := range criteria {
				s, err = s.SubsetWith(c)
				if err != nil {
					fmt.Fprintf(os.Stderr, "filtering examples with %v: %v\n", c, err)
					os.Exit(5)
				}
			}
			config.Logf("Writing %d examples to output set...", s.Len())
			n, err := config.writeSet(config.Context(), s, sch)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			config.Logf("Done: %d examples written", n)
		},
	}
	config.setSourceConfig.addFlags(cmd, "copy")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the output set (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().BoolVar(&(config.outputHeader), "output-header", false, "write the names of the columns as the first row of a CSV output")
	cmd.PersistentFlags().StringSliceVarP(&(config.where), "where", "w", nil, "attribute=value condition the examples in the output set must satisfy (can be given several times)")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	for _, w := range scc.where {
		if !strings.Contains(w, "=") {
			return fmt.Errorf("where flag %q is not in attribute=value form", w)
		}
	}
	if (isDBURL(scc.setOutput) || strings.HasSuffix(scc.setOutput, ".db")) && scc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set: it is needed to write examples to %s", scc.setOutput)
	}
	return nil
}

func (scc *setCmdConfig) writeSet(ctx context.Context, s *dataset.Set, sch *schema) (int, error) {
	switch {
	case strings.HasPrefix(scc.setOutput, "mongodb://"):
		scc.Logf("Dialing MongoDB at %s to dump output set...", scc.setOutput)
		session, err := mgo.Dial(scc.setOutput)
		if err != nil {
			return 0, err
		}
		defer session.Close()
		c, err := mongodataset.Open(ctx, session, sch.columns())
		if err != nil {
			return 0, err
		}
		return writeAndFlush(ctx, c, s)
	case isDBURL(scc.setOutput) || strings.HasSuffix(scc.setOutput, ".db"):
		a, err := scc.sqlAdapter(scc.logger, scc.setOutput)
		if err != nil {
			return 0, err
		}
		defer a.Close()
		w, err := sqlset.CreateWriter(ctx, a, sch.columns())
		if err != nil {
			return 0, err
		}
		return writeAndFlush(ctx, w, s)
	}
	f := os.Stdout
	if scc.setOutput != "" {
		scc.Logf("Creating %s to dump output set...", scc.setOutput)
		var err error
		f, err = os.Create(scc.setOutput)
		if err != nil {
			return 0, err
		}
		defer f.Close()
	}
	var names []string
	if scc.outputHeader {
		names = sch.columns()
	}
	w, err := csv.NewWriter(f, names)
	if err != nil {
		return 0, err
	}
	return writeAndFlush(ctx, w, s)
}

func writeAndFlush(ctx context.Context, w dataset.Writer, s *dataset.Set) (int, error) {
	_, err := w.Write(ctx, s.Examples())
	if err != nil {
		return 0, err
	}
	err = w.Flush()
	if err != nil {
		return 0, err
	}
	return w.Count(), nil
}

/*
parseWhere takes a list of attribute=value conditions and the table of
attributes they refer to and returns the criteria they stand for.
*/
func parseWhere(where []string, attributes *feature.Table) ([]feature.ValueCriterion, error) {
	criteria := make([]feature.ValueCriterion, 0, len(where))
	for _, w := range where {
		parts := strings.SplitN(w, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("where condition %q is not in attribute=value form", w)
		}
		a, ok := attributes.Lookup(strings.TrimSpace(parts[0]))
		if !ok {
			return nil, fmt.Errorf("where condition %q refers to unknown attribute %q", w, parts[0])
		}
		criteria = append(criteria, feature.NewValueCriterion(a, strings.TrimSpace(parts[1])))
	}
	return criteria, nil
}
