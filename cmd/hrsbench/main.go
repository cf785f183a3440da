// Command hrsbench scores the output of a text-to-image generation
// pipeline against compositional ground-truth assertions: spatial
// relations, relative sizes, object counts, and color attributions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thisisWooyeol/HRSBench/config"
)

var cfgPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hrsbench",
		Short:         "Score text-to-image outputs against compositional ground truth",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	root.AddCommand(newSpatialCmd(), newSizeCmd(), newCountingCmd(), newColorCmd(), newPrepareCmd())
	return root
}

// setup loads the config and builds the process logger.
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, nil, err
	}
	log, err := cfg.Logger()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}
