package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antarctic/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.antarctic/configs/antarctic.yaml or ./configs/antarctic.yaml and edit it
to change the game; files only need the keys they change.

With --resolved, print the configuration play would actually use.

Examples:
  antarctic config > ~/.antarctic/configs/antarctic.yaml
  antarctic config --resolved --config ./my-antarctic.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the configuration after the search order is applied")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (with --resolved)")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadAntarctic(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
