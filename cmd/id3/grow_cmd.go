package main

import (
	"fmt"
	"os"

	"github.com/jonathanhungc/id3"
	"github.com/jonathanhungc/id3/tree"
	"github.com/jonathanhungc/id3/tree/json"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	setSourceConfig
	treeStoreConfig
	output      string
	parallelism int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of examples",
		Long:  `Grow a decision tree from a set of examples to predict their label.`,
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
			trainingSet, sch, err := config.readSet(config.Context(), config.logger, md)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if md != nil {
				err = md.Validate(trainingSet)
				if err != nil {
					fmt.Fprintf(os.Stderr, "validating training set: %v\n", err)
					os.Exit(4)
				}
			}
			inducer := id3.New(sch.attributes,
				id3.WithPositiveLabel(sch.positive),
				id3.WithLogger(config.logger),
				id3.WithParallelism(config.parallelism),
			)
			config.Logf("Growing tree from a set with %d examples and %d attributes to predict %s ...", trainingSet.Len(), sch.attributes.Len(), sch.label)
			t, err := inducer.Grow(trainingSet, sch.label)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			config.Logf("%v", t)
			err = outputTree(config.output, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			if config.treeStoreConfig.enabled() {
				config.Logf("Storing tree on redis at %s under %s...", config.redisAddr, config.redisKey)
				store := config.store(sch)
				defer store.Close(config.Context())
				err = store.Put(config.Context(), config.redisKey, t)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(7)
				}
			}
		},
	}
	config.setSourceConfig.addFlags(cmd, "grow the tree from")
	config.treeStoreConfig.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written in JSON format (defaults to STDOUT, after a \"Final Tree:\" line)")
	cmd.PersistentFlags().IntVar(&(config.parallelism), "parallelism", 1, "number of attributes whose information gain is computed at the same time")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.parallelism < 1 {
		return fmt.Errorf("parallelism flag was set to an invalid value: it must be a positive integer")
	}
	if gcc.maxDBConns < 0 {
		return fmt.Errorf("max-db-conns flag was set to an invalid value: it must not be negative")
	}
	return gcc.treeStoreConfig.Validate()
}

func outputTree(outputPath string, t *tree.Tree) error {
	if outputPath == "" {
		fmt.Println("Final Tree:")
		return json.WriteJSONTree(os.Stdout, t)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.WriteJSONTree(f, t)
}
