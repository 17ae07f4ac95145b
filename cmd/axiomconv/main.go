// The MIT License (MIT)

// Copyright (c) 2016, 2017 Fabian Wenzelmann

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command axiomconv converts SNOMED CT OWL axioms to relationships and back.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FabianWe/elaxioms/config"
	"github.com/FabianWe/elaxioms/conversion"
	"github.com/FabianWe/elaxioms/logging"
)

const (
	Version = "0.1.0"
	appName = "axiomconv"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by all sub commands, it's initialized in the
// persistent pre run of the root command.
type app struct {
	configPath string
	neverGroup []int64
	logMode    string
	logLevel   string
	workers    int

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	service  *conversion.ConversionService
}

func rootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Convert OWL axioms to relationships and back",
		Long: `axiomconv converts SNOMED CT OWL axioms in functional syntax to the
relationship form (a named concept plus grouped attribute-value pairs) and
renders relationships as canonical axioms.

Attributes configured as never-group are always rendered ungrouped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	flags.Int64SliceVar(&a.neverGroup, "never-group", nil, "Attribute types that are never grouped (overrides config)")
	flags.StringVar(&a.logMode, "log-mode", "", "Log mode (development, production)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.IntVar(&a.workers, "workers", 0, "Number of concurrent conversions in batch mode")

	cmd.AddCommand(
		a.relationshipsCmd(),
		a.axiomCmd(),
		a.idsCmd(),
		a.batchCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		fileCfg, err := config.LoadFromFile(a.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = fileCfg
	}
	flagCfg := &config.Config{
		Workers: a.workers,
		Log:     config.LogConfig{Mode: a.logMode, Level: a.logLevel},
	}
	cfg.Merge(flagCfg)
	// the flag replaces the configured set
	if cmd.Flags().Changed("never-group") {
		cfg.NeverGroupAttributes = a.neverGroup
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	logger.Debug("Configuration loaded",
		zap.Int64s("never_group_attributes", cfg.NeverGroupAttributes),
		zap.Int("workers", cfg.Workers))

	registry := prometheus.NewRegistry()
	metrics, err := conversion.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.registry = registry
	a.service = conversion.NewConversionService(cfg.NeverGroupAttributes,
		conversion.WithLogger(logger), conversion.WithMetrics(metrics))
	return nil
}
