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

	"github.com/ilhamster/mtlweaken/pkg/marking"
	"github.com/ilhamster/mtlweaken/pkg/parser"
)

var (
	markFormula   string
	markTraceFile string
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Print whether --formula holds at every position of --trace",
	RunE:  runMark,
}

func init() {
	markCmd.Flags().StringVar(&markFormula, "formula", "", "MTL formula text (required)")
	markCmd.Flags().StringVar(&markTraceFile, "trace", "", "path to a JSON trace document (required)")
	_ = markCmd.MarkFlagRequired("formula")
	_ = markCmd.MarkFlagRequired("trace")
}

func runMark(_ *cobra.Command, _ []string) error {
	formula, err := parser.Parse(markFormula)
	if err != nil {
		return fmt.Errorf("parsing formula: %w", err)
	}
	tr, err := loadTrace(markTraceFile)
	if err != nil {
		return err
	}

	m, err := marking.New(tr, formula)
	if err != nil {
		return fmt.Errorf("marking trace: %w", err)
	}

	vector, err := m.Vector(formula)
	if err != nil {
		return fmt.Errorf("reading marking vector: %w", err)
	}
	for i, v := range vector {
		fmt.Fprintf(os.Stdout, "%d: %t\n", i, v)
	}
	return nil
}
