package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	ctx        context.Context
	cancelFunc context.CancelFunc
	logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to grow decision trees",
		Long:  `A tool to grow decision trees from categorical examples with the ID3 algorithm, test them, and use them to make predictions`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&(config.logger)), "verbose", "v", false, "log diagnostics to STDERR")
	rootCmd.AddCommand(versionCmd(), growCmd(config), treeCmd(config), testCmd(config), predictCmd(config), setCmd(config))
	return rootCmd
}

func (rcc *rootCmdConfig) Context() context.Context {
	rcc.setContextAndCancelFunc()
	return rcc.ctx
}

func (rcc *rootCmdConfig) ContextCancelFunc() context.CancelFunc {
	rcc.setContextAndCancelFunc()
	return rcc.cancelFunc
}

func (rcc *rootCmdConfig) setContextAndCancelFunc() {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = context.WithCancel(context.Background())
	}
}
