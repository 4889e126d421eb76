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

package ltl

import (
	"fmt"

	"github.com/ilhamster/mtlweaken/pkg/mtl"
)

// Lower expands a bounded MTL formula into an equisatisfiable unit-step
// LTL formula, for handoff to an external model checker (§6). Release is
// rewritten via the ¬Until¬ duality before descending, so no Release
// node ever needs its own expansion.
func Lower(f mtl.Formula) (Formula, error) {
	switch v := f.(type) {
	case mtl.True:
		return Prop{Name: "TRUE"}, nil
	case mtl.False:
		return Prop{Name: "FALSE"}, nil
	case mtl.Prop:
		return Prop{Name: v.Name}, nil

	case mtl.Not:
		operand, err := Lower(v.Operand)
		if err != nil {
			return nil, err
		}
		return Not{Operand: operand}, nil

	case mtl.Next:
		operand, err := Lower(v.Operand)
		if err != nil {
			return nil, err
		}
		return Next{Operand: operand}, nil

	case mtl.And:
		return lowerBinary(v.Left, v.Right, func(l, r Formula) Formula { return And{Left: l, Right: r} })

	case mtl.Or:
		return lowerBinary(v.Left, v.Right, func(l, r Formula) Formula { return Or{Left: l, Right: r} })

	case mtl.Implies:
		return lowerBinary(v.Left, v.Right, func(l, r Formula) Formula { return Implies{Left: l, Right: r} })

	case mtl.Eventually:
		return lowerEventually(v)

	case mtl.Always:
		return lowerAlways(v)

	case mtl.Until:
		return lowerUntil(v)

	case mtl.Release:
		return Lower(mtl.Not{Operand: mtl.Until{
			Left:     mtl.Not{Operand: v.Left},
			Right:    mtl.Not{Operand: v.Right},
			Interval: v.Interval,
		}})

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedConstruct, f)
	}
}

func lowerBinary(left, right mtl.Formula, combine func(l, r Formula) Formula) (Formula, error) {
	l, err := Lower(left)
	if err != nil {
		return nil, err
	}
	r, err := Lower(right)
	if err != nil {
		return nil, err
	}
	return combine(l, r), nil
}

// lowerEventually expands F[a,b] f into a chain of Or(f, X(...))
// unrolled b-a times and wrapped in a unconditional F when the interval
// is unbounded, then shifted a steps forward.
func lowerEventually(f mtl.Eventually) (Formula, error) {
	sub, err := Lower(f.Operand)
	if err != nil {
		return nil, err
	}
	var out Formula
	if f.Interval.Unbounded() {
		out = Eventually{Operand: sub}
	} else {
		out = sub
		for i := 0; i < f.Interval.Hi-f.Interval.Lo; i++ {
			out = Or{Left: sub, Right: Next{Operand: out}}
		}
	}
	return applyNextK(out, f.Interval.Lo), nil
}

// lowerAlways is lowerEventually's dual: a chain of And(f, X(...)).
func lowerAlways(f mtl.Always) (Formula, error) {
	sub, err := Lower(f.Operand)
	if err != nil {
		return nil, err
	}
	var out Formula
	if f.Interval.Unbounded() {
		out = Always{Operand: sub}
	} else {
		out = sub
		for i := 0; i < f.Interval.Hi-f.Interval.Lo; i++ {
			out = And{Left: sub, Right: Next{Operand: out}}
		}
	}
	return applyNextK(out, f.Interval.Lo), nil
}

// lowerUntil expands U[a,b] into a disjunction of "right holds after
// exactly i steps, preceded by left holding at every earlier step", for
// each i in [0, b-a], then shifts the whole disjunction forward by a.
// An unbounded interval needs no unrolling: plain Until is already
// unit-step.
func lowerUntil(f mtl.Until) (Formula, error) {
	left, err := Lower(f.Left)
	if err != nil {
		return nil, err
	}
	right, err := Lower(f.Right)
	if err != nil {
		return nil, err
	}
	if f.Interval.Unbounded() {
		return applyNextK(Until{Left: left, Right: right}, f.Interval.Lo), nil
	}
	terms := make([]Formula, 0, f.Interval.Hi-f.Interval.Lo+1)
	for i := 0; i <= f.Interval.Hi-f.Interval.Lo; i++ {
		out := right
		for j := 0; j < i; j++ {
			out = And{Left: left, Right: Next{Operand: out}}
		}
		terms = append(terms, out)
	}
	return applyNextK(makeDisjunction(terms), f.Interval.Lo), nil
}

// applyNextK wraps formula in k nested Next operators.
func applyNextK(formula Formula, k int) Formula {
	for i := 0; i < k; i++ {
		formula = Next{Operand: formula}
	}
	return formula
}

// makeConjunction folds terms into a left-nested And chain, Prop("TRUE")
// for the empty case.
func makeConjunction(terms []Formula) Formula {
	if len(terms) == 0 {
		return Prop{Name: "TRUE"}
	}
	result := terms[0]
	for _, t := range terms[1:] {
		result = And{Left: result, Right: t}
	}
	return result
}

// makeDisjunction folds terms into a left-nested Or chain, Prop("FALSE")
// for the empty case.
func makeDisjunction(terms []Formula) Formula {
	if len(terms) == 0 {
		return Prop{Name: "FALSE"}
	}
	result := terms[0]
	for _, t := range terms[1:] {
		result = Or{Left: result, Right: t}
	}
	return result
}
