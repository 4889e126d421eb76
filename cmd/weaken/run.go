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
	"github.com/ilhamster/mtlweaken/pkg/mtlctx"
	"github.com/ilhamster/mtlweaken/pkg/parser"
	"github.com/ilhamster/mtlweaken/pkg/trace"
	"github.com/ilhamster/mtlweaken/pkg/traceio"
	"github.com/ilhamster/mtlweaken/pkg/weaken"
)

var (
	runFormula   string
	runTraceFile string
	runPath      string
	runAt        int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Weaken the temporal operator at --path within --formula against --trace",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFormula, "formula", "", "MTL formula text (required)")
	runCmd.Flags().StringVar(&runTraceFile, "trace", "", "path to a JSON trace document (required)")
	runCmd.Flags().StringVar(&runPath, "path", "", "comma-separated 0/1 descent path to the operator to weaken (default: the root)")
	runCmd.Flags().IntVar(&runAt, "at", 0, "trace index to weaken at")
	_ = runCmd.MarkFlagRequired("formula")
	_ = runCmd.MarkFlagRequired("trace")
}

func runRun(_ *cobra.Command, _ []string) error {
	formula, err := parser.Parse(runFormula)
	if err != nil {
		return fmt.Errorf("parsing formula: %w", err)
	}
	path, err := parser.ParsePath(runPath)
	if err != nil {
		return fmt.Errorf("parsing path: %w", err)
	}
	tr, err := loadTrace(runTraceFile)
	if err != nil {
		return err
	}

	c, sub, err := mtlctx.Split(formula, path)
	if err != nil {
		return fmt.Errorf("splitting formula at path: %w", err)
	}
	c, sub, err = mtlctx.PartialNNF(c, sub)
	if err != nil {
		return fmt.Errorf("normalizing polarity: %w", err)
	}

	m, err := marking.New(tr, formula)
	if err != nil {
		return fmt.Errorf("marking trace: %w", err)
	}

	logger.Debugw("weakening", "formula", formula.String(), "subformula", sub.String(), "at", runAt)
	interval, err := weaken.Weaken(c, sub, runAt, tr, m)
	if err != nil {
		return fmt.Errorf("weakening: %w", err)
	}
	if interval == nil {
		fmt.Fprintln(os.Stdout, "No suitable weakening of the interval exists")
		return nil
	}
	fmt.Fprintln(os.Stdout, interval.String())
	return nil
}

func loadTrace(path string) (*trace.Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer f.Close()

	doc, err := traceio.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding trace file: %w", err)
	}
	tr, err := traceio.ToTrace(doc)
	if err != nil {
		return nil, fmt.Errorf("building trace: %w", err)
	}
	return tr, nil
}
