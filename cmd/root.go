// Package cmd implements the trafficq command line interface.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/campusflow/trafficq/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "trafficq",
	Short: "Campus traffic forecasting and risk classification",
	Long: `trafficq predicts short-horizon traffic volume for campus road
segments and classifies each prediction into one of four risk levels
through a simulated variational policy circuit.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.AddCommand(trainCmd, forecastCmd, riskCmd, statusCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file. The untouched default path falls
// back to defaults when absent; a path passed via --config must exist.
func loadConfig() (*config.Config, error) {
	return loadConfigFrom(cfgPath, rootCmd.PersistentFlags().Changed("config"))
}

func loadConfigFrom(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
