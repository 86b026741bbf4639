package main

import (
	"fmt"
	"os"

	"github.com/jonathanhungc/id3/feature/yaml"
	"github.com/jonathanhungc/id3/tree/json"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	treeStoreConfig
	treeInput     string
	metadataInput string
	label         string
	rules         bool
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a decision tree",
		Long:  `Show a decision tree as an outline of its splits and leaves`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			sch, err := metadataSchema(config.logger, config.metadataInput, config.label)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := loadTree(config.Context(), config.logger, config.treeInput, &config.treeStoreConfig, sch)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Tree of depth %d predicting %s", t.Depth(), t.Label)
			if config.rules {
				err = json.WriteJSONRules(os.Stdout, t)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				return
			}
			fmt.Print(t)
		},
	}
	config.treeStoreConfig.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes used on the tree (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to show will be read and parsed as JSON (required unless redis-addr is set)")
	cmd.PersistentFlags().StringVarP(&(config.label), "label", "l", "", "name of the label the tree predicts, overriding the one in the metadata")
	cmd.PersistentFlags().BoolVar(&(config.rules), "rules", false, "print the rules of the tree, one JSON object per leaf, instead of its outline")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if tcc.treeInput == "" && !tcc.enabled() {
		return fmt.Errorf("required tree flag was not set")
	}
	return tcc.treeStoreConfig.Validate()
}

// metadataSchema reads the metadata file at path and returns the schema it
// describes, with label overriding its label if not empty.
func metadataSchema(l logger, path, label string) (*schema, error) {
	l.Logf("Reading attributes from metadata at %s...", path)
	md, err := yaml.ReadMetadataFromFile(path)
	if err != nil {
		return nil, err
	}
	ssc := &setSourceConfig{label: label}
	return ssc.schema(md, nil, md.Table.Len())
}
