package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	setSourceConfig
	treeStoreConfig
	treeInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test set of examples`,
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
			testingSet, sch, err := config.readSet(config.Context(), config.logger, md)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			t, err := loadTree(config.Context(), config.logger, config.treeInput, &config.treeStoreConfig, sch)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Testing tree against test set with %d examples...", testingSet.Len())
			successRate, errorCount, err := t.Test(testingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			fmt.Printf("%f success rate, failed to make a prediction for %d examples\n", successRate, errorCount)
		},
	}
	config.setSourceConfig.addFlags(cmd, "test the tree against")
	config.treeStoreConfig.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to test will be read and parsed as JSON (required unless redis-addr is set)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" && !tcc.enabled() {
		return fmt.Errorf("required tree flag was not set")
	}
	return tcc.treeStoreConfig.Validate()
}
