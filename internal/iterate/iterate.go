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

// Package iterate drives the outer refinement loop that repeatedly
// weakens a subformula against model-checker counterexamples until the
// enclosing formula is valid or no further weakening exists, restoring
// the shape of original_source/src/iterative_weaken.py without its
// nuXmv/SPIN process invocation, which stays external behind
// CounterexampleSource.
package iterate

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ilhamster/mtlweaken/pkg/marking"
	"github.com/ilhamster/mtlweaken/pkg/mtl"
	"github.com/ilhamster/mtlweaken/pkg/mtlctx"
	"github.com/ilhamster/mtlweaken/pkg/trace"
	"github.com/ilhamster/mtlweaken/pkg/weaken"
)

// ErrNoWeakeningExists is returned when the model checker keeps finding
// counterexamples but pkg/weaken can no longer find a weakening that
// eliminates them: the formula at path, as written, cannot be loosened
// into something the model satisfies.
var ErrNoWeakeningExists = errors.New("iterate: no weakening exists")

// CounterexampleSource checks whether formula, de Bruijn-indexed as
// deBruijn, holds of the model being verified within bound steps. A
// true ok means the property holds; ok == false must come with a
// witnessing lasso trace. An error return means the checker itself
// failed (a parse error, a timeout, a missing binary), as opposed to a
// reported violation.
type CounterexampleSource interface {
	Check(ctx context.Context, formula mtl.Formula, deBruijn []int, bound int) (tr *trace.Trace, ok bool, err error)
}

// Result is the outcome of a completed Run.
type Result struct {
	// Formula is the original formula with its weakened subformula
	// substituted back in.
	Formula mtl.Formula
	// Interval is the subformula's final, weakened interval.
	Interval mtl.Interval
	// Iterations is the number of counterexample-driven weakening
	// steps Run performed before converging.
	Iterations int
}

// Options configures Run's bound-growth heuristic.
type Options struct {
	// BoundMin is the smallest bound to try, and the floor every
	// subsequent bound is clamped to.
	BoundMin int
	// BoundGrowth multiplies a witnessed interval's upper endpoint to
	// size the next iteration's bound.
	BoundGrowth float64
}

// Run repeatedly weakens the temporal operator at path within formula
// against counterexamples from source, until source reports the
// substituted formula valid (success) or pkg/weaken finds no further
// weakening (ErrNoWeakeningExists).
func Run(ctx context.Context, source CounterexampleSource, formula mtl.Formula, path []int, opts Options, logger *zap.SugaredLogger) (*Result, error) {
	c, sub, err := mtlctx.Split(formula, path)
	if err != nil {
		return nil, fmt.Errorf("iterate: splitting formula at path: %w", err)
	}
	c, sub, err = mtlctx.PartialNNF(c, sub)
	if err != nil {
		return nil, fmt.Errorf("iterate: normalizing polarity: %w", err)
	}

	interval, err := intervalOf(sub)
	if err != nil {
		return nil, err
	}
	bound := nextBound(interval, opts)

	deBruijn, err := mtlctx.Path(c)
	if err != nil {
		return nil, fmt.Errorf("iterate: recovering de Bruijn path: %w", err)
	}

	iterations := 0
	for {
		full, err := mtlctx.Substitute(c, sub)
		if err != nil {
			return nil, fmt.Errorf("iterate: substituting weakened formula: %w", err)
		}

		logger.Infow("checking weakened formula",
			"formula", full.String(), "bound", bound, "iteration", iterations)

		tr, ok, err := source.Check(ctx, full, deBruijn, bound)
		if err != nil {
			return nil, fmt.Errorf("iterate: model checker: %w", err)
		}
		if ok {
			logger.Infow("formula valid", "iterations", iterations)
			return &Result{Formula: full, Interval: interval, Iterations: iterations}, nil
		}

		m, err := marking.New(tr, full)
		if err != nil {
			return nil, fmt.Errorf("iterate: marking counterexample trace: %w", err)
		}
		weakened, err := weaken.Weaken(c, sub, 0, tr, m)
		if err != nil {
			return nil, fmt.Errorf("iterate: weakening against counterexample: %w", err)
		}
		if weakened == nil {
			logger.Infow("no weakening exists", "iterations", iterations)
			return nil, ErrNoWeakeningExists
		}

		sub, err = substituteInterval(sub, *weakened)
		if err != nil {
			return nil, err
		}
		interval = *weakened
		bound = nextBound(interval, opts)
		iterations++
	}
}

// nextBound sizes the next iteration's exploration bound: BoundMin for
// an unbounded interval, otherwise BoundGrowth times the interval's
// upper endpoint, floored at BoundMin.
func nextBound(interval mtl.Interval, opts Options) int {
	if interval.Unbounded() {
		return opts.BoundMin
	}
	bound := int(float64(interval.Hi) * opts.BoundGrowth)
	if bound < opts.BoundMin {
		return opts.BoundMin
	}
	return bound
}

// intervalOf extracts g's interval, failing if g isn't a temporal
// operator.
func intervalOf(g mtl.Formula) (mtl.Interval, error) {
	switch f := g.(type) {
	case mtl.Eventually:
		return f.Interval, nil
	case mtl.Always:
		return f.Interval, nil
	case mtl.Until:
		return f.Interval, nil
	case mtl.Release:
		return f.Interval, nil
	default:
		return mtl.Interval{}, fmt.Errorf("%w: %v", ErrNotTemporal, g)
	}
}

// substituteInterval rebuilds g with interval in place of its own,
// mirroring original_source/src/iterative_weaken.py:substitute_interval.
func substituteInterval(g mtl.Formula, interval mtl.Interval) (mtl.Formula, error) {
	switch f := g.(type) {
	case mtl.Eventually:
		return mtl.Eventually{Operand: f.Operand, Interval: interval}, nil
	case mtl.Always:
		return mtl.Always{Operand: f.Operand, Interval: interval}, nil
	case mtl.Until:
		return mtl.Until{Left: f.Left, Right: f.Right, Interval: interval}, nil
	case mtl.Release:
		return mtl.Release{Left: f.Left, Right: f.Right, Interval: interval}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrNotTemporal, g)
	}
}
