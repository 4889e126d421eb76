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
	"os"

	"github.com/spf13/cobra"

	"github.com/ilhamster/mtlweaken/internal/reqcount"
	"github.com/ilhamster/mtlweaken/pkg/ltl"
	"github.com/ilhamster/mtlweaken/pkg/parser"
)

var (
	lowerFormula string
	lowerStats   string
)

var lowerCmd = &cobra.Command{
	Use:   "lower",
	Short: "Lower --formula to a unit-step LTL formula for an external model checker",
	RunE:  runLower,
}

func init() {
	lowerCmd.Flags().StringVar(&lowerFormula, "formula", "", "MTL formula text (required)")
	lowerCmd.Flags().StringVar(&lowerStats, "stats", "",
		"path to a requirements CSV sheet; if set, print a weakenability tally instead of lowering")
	_ = lowerCmd.MarkFlagRequired("formula")
}

func runLower(_ *cobra.Command, _ []string) error {
	if lowerStats != "" {
		return runLowerStats()
	}

	formula, err := parser.Parse(lowerFormula)
	if err != nil {
		return fmt.Errorf("parsing formula: %w", err)
	}
	lowered, err := ltl.Lower(formula)
	if err != nil {
		return fmt.Errorf("lowering to LTL: %w", err)
	}
	fmt.Fprintln(os.Stdout, lowered.String())
	return nil
}

func runLowerStats() error {
	f, err := os.Open(lowerStats)
	if err != nil {
		return fmt.Errorf("opening requirements sheet: %w", err)
	}
	defer f.Close()

	totals, err := reqcount.Count(f)
	if err != nil {
		return fmt.Errorf("counting requirements: %w", err)
	}
	fmt.Fprintf(os.Stdout, "total: %d\nweakenable: %d (extension: %d, contraction: %d)\n",
		totals.Total, totals.Weakenable, totals.Extension, totals.Contraction)
	return nil
}
