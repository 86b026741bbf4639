package main

import (
	"fmt"
	"os"

	"github.com/jonathanhungc/id3/dataset/inputsample"
	"github.com/jonathanhungc/id3/feature"
	"github.com/jonathanhungc/id3/feature/yaml"
	"github.com/jonathanhungc/id3/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	treeStoreConfig
	treeInput     string
	metadataInput string
	label         string
}

type stdoutValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the label of an example answering questions",
		Long:  `Use a tree to predict the label of an example answering only the questions about the attributes on its decision path`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			config.Logf("Reading attributes from metadata at %s...", config.metadataInput)
			md, err := yaml.ReadMetadataFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			sch, err := (&setSourceConfig{label: config.label}).schema(md, nil, md.Table.Len())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := loadTree(config.Context(), config.logger, config.treeInput, &config.treeStoreConfig, sch)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			prediction, err := t.Predict(inputsample.New(os.Stdin, stdoutValueRequester{}, md.Values))
			if err == tree.ErrCannotPredictFromSample {
				fmt.Println("The tree cannot predict a label for the example: it has a value never seen while growing the tree")
				os.Exit(4)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			fmt.Printf("Predicted %s is %s\n", t.Label, prediction)
		},
	}
	config.treeStoreConfig.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes used on the tree (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to use will be read and parsed as JSON (required unless redis-addr is set)")
	cmd.PersistentFlags().StringVarP(&(config.label), "label", "l", "", "name of the label the tree predicts, overriding the one in the metadata")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if pcc.treeInput == "" && !pcc.enabled() {
		return fmt.Errorf("required tree flag was not set")
	}
	return pcc.treeStoreConfig.Validate()
}

func (stdoutValueRequester) RequestValueFor(a feature.Attribute, validValues []string) error {
	if len(validValues) == 0 {
		fmt.Printf("Please provide the example's %s:\n", a.Name())
		return nil
	}
	fmt.Printf("Please provide the example's %s:\n(valid values are %v)\n", a.Name(), validValues)
	return nil
}

func (stdoutValueRequester) RejectValueFor(a feature.Attribute, value string, validValues []string) error {
	fmt.Printf("%s is not a valid value for the example's %s. Please provide one of %v.\n", value, a.Name(), validValues)
	return nil
}
