// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ilhamster/mtlweaken/internal/config"
	"github.com/ilhamster/mtlweaken/internal/logging"
)

var (
	cfg    *config.Config
	logger *zap.SugaredLogger

	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "weaken",
	Short: "Weaken an MTL formula's interval against a trace",
	Long: `weaken computes the minimal change to a temporal operator's
interval that makes a formula hold on a given trace (or, via
"weaken lower", prepares the formula for an external model checker).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		`logging verbosity: "debug", "info", "warn", or "error" (default from weaken.yaml, or "info")`)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(lowerCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.BindFlag("log-level", cmd.Flags().Lookup("log-level")); err != nil {
		return fmt.Errorf("binding --log-level: %w", err)
	}

	logger, err = logging.New(cfg.LogLevel())
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	return nil
}
