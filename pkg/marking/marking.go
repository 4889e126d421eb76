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

// Package marking evaluates an MTL formula and every subformula
// reachable from it against a lasso trace, producing a memoised
// per-subformula boolean vector.
package marking

import (
	"fmt"

	"github.com/ilhamster/mtlweaken/pkg/mtl"
	"github.com/ilhamster/mtlweaken/pkg/trace"
)

// Marking holds the memoised boolean vectors for a formula and its
// subformulas, evaluated against a fixed trace.
type Marking struct {
	trace  *trace.Trace
	values map[mtl.Formula][]bool
}

// New eagerly computes markings for formula and every subformula
// reachable from it, against tr.
func New(tr *trace.Trace, formula mtl.Formula) (*Marking, error) {
	m := &Marking{trace: tr, values: make(map[mtl.Formula][]bool)}
	if _, err := m.eval(formula); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns M[f][i], resolving i through the trace's cyclic index
// arithmetic, or universally true when i falls beyond the end of a
// finite trace (§4.3). If f is not among the formulas already evaluated,
// Get evaluates and caches it first.
func (m *Marking) Get(f mtl.Formula, i int) (bool, error) {
	vs, ok := m.values[f]
	if !ok {
		var err error
		vs, err = m.eval(f)
		if err != nil {
			return false, err
		}
	}
	return m.trace.BoolAt(vs, i), nil
}

// Vector returns the full boolean vector M[f], of length m.trace.Len().
func (m *Marking) Vector(f mtl.Formula) ([]bool, error) {
	if vs, ok := m.values[f]; ok {
		return vs, nil
	}
	return m.eval(f)
}

func (m *Marking) eval(f mtl.Formula) ([]bool, error) {
	if vs, ok := m.values[f]; ok {
		return vs, nil
	}
	n := m.trace.Len()

	var bs []bool
	switch v := f.(type) {
	case mtl.True:
		bs = fill(n, true)
	case mtl.False:
		bs = fill(n, false)
	case mtl.Prop:
		vs, err := m.evalProp(v, n)
		if err != nil {
			return nil, err
		}
		bs = vs
	case mtl.Not:
		operand, err := m.eval(v.Operand)
		if err != nil {
			return nil, err
		}
		bs = make([]bool, n)
		for i, b := range operand {
			bs[i] = !b
		}
	case mtl.And:
		l, r, err := m.evalPair(v.Left, v.Right)
		if err != nil {
			return nil, err
		}
		bs = pointwise(l, r, func(a, b bool) bool { return a && b })
	case mtl.Or:
		l, r, err := m.evalPair(v.Left, v.Right)
		if err != nil {
			return nil, err
		}
		bs = pointwise(l, r, func(a, b bool) bool { return a || b })
	case mtl.Implies:
		l, r, err := m.evalPair(v.Left, v.Right)
		if err != nil {
			return nil, err
		}
		bs = pointwise(l, r, func(a, b bool) bool { return !a || b })
	case mtl.Next:
		operand, err := m.eval(v.Operand)
		if err != nil {
			return nil, err
		}
		bs = make([]bool, n)
		for i := range bs {
			bs[i] = m.trace.BoolAt(operand, i+1)
		}
	case mtl.Eventually:
		operand, err := m.eval(v.Operand)
		if err != nil {
			return nil, err
		}
		bs = m.evalEventually(operand, v.Interval)
	case mtl.Always:
		operand, err := m.eval(v.Operand)
		if err != nil {
			return nil, err
		}
		bs = m.evalAlways(operand, v.Interval)
	case mtl.Until:
		l, r, err := m.evalPair(v.Left, v.Right)
		if err != nil {
			return nil, err
		}
		bs = m.evalUntil(l, r, v.Interval)
	case mtl.Release:
		l, r, err := m.evalPair(v.Left, v.Right)
		if err != nil {
			return nil, err
		}
		bs = m.evalRelease(l, r, v.Interval)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedConstruct, f)
	}
	m.values[f] = bs
	return bs, nil
}

func (m *Marking) evalPair(left, right mtl.Formula) ([]bool, []bool, error) {
	l, err := m.eval(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := m.eval(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (m *Marking) evalProp(p mtl.Prop, n int) ([]bool, error) {
	bs := make([]bool, n)
	for i := 0; i < n; i++ {
		state, _ := m.trace.At(i)
		v, ok := state[p.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q at trace index %d", ErrPropositionMissing, p.Name, i)
		}
		bs[i] = v
	}
	return bs, nil
}

// windowEnd is the inclusive upper index of the exploration window
// starting at unrolled position t+lo: t+hi when the interval is
// bounded, trace.RightIdx(t+lo) when it is unbounded.
func (m *Marking) windowEnd(t int, iv mtl.Interval) int {
	if !iv.Unbounded() {
		return t + iv.Hi
	}
	return m.trace.RightIdx(t + iv.Lo)
}

func (m *Marking) evalEventually(operand []bool, iv mtl.Interval) []bool {
	n := len(operand)
	bs := make([]bool, n)
	for t := 0; t < n; t++ {
		end := m.windowEnd(t, iv)
		for j := t + iv.Lo; j <= end; j++ {
			if m.trace.BoolAt(operand, j) {
				bs[t] = true
				break
			}
		}
	}
	return bs
}

func (m *Marking) evalAlways(operand []bool, iv mtl.Interval) []bool {
	n := len(operand)
	bs := make([]bool, n)
	for t := 0; t < n; t++ {
		end := m.windowEnd(t, iv)
		ok := true
		for j := t + iv.Lo; j <= end; j++ {
			if !m.trace.BoolAt(operand, j) {
				ok = false
				break
			}
		}
		bs[t] = ok
	}
	return bs
}

// evalUntil implements M[Until(l, r, (lo,hi))][t]: exists j in the
// window with r true, and l true at every k with t+lo <= k < j.
func (m *Marking) evalUntil(left, right []bool, iv mtl.Interval) []bool {
	n := len(right)
	bs := make([]bool, n)
	for t := 0; t < n; t++ {
		end := m.windowEnd(t, iv)
		// Every k < j visited so far has satisfied left, or we would
		// already have broken out below.
		for j := t + iv.Lo; j <= end; j++ {
			if m.trace.BoolAt(right, j) {
				bs[t] = true
				break
			}
			if !m.trace.BoolAt(left, j) {
				break
			}
		}
	}
	return bs
}

// evalRelease implements M[Release(l, r, (lo,hi))][t]: for every j in
// the window, r holds at j unless l already held at some strictly
// earlier position in the window — the exact dual of evalUntil's
// "l holds at every k < j" clause.
func (m *Marking) evalRelease(left, right []bool, iv mtl.Interval) []bool {
	n := len(right)
	bs := make([]bool, n)
	for t := 0; t < n; t++ {
		end := m.windowEnd(t, iv)
		ok := true
		lSeenBefore := false
		for j := t + iv.Lo; j <= end; j++ {
			if lSeenBefore {
				break
			}
			if !m.trace.BoolAt(right, j) {
				ok = false
				break
			}
			lSeenBefore = m.trace.BoolAt(left, j)
		}
		bs[t] = ok
	}
	return bs
}

func fill(n int, v bool) []bool {
	bs := make([]bool, n)
	for i := range bs {
		bs[i] = v
	}
	return bs
}

func pointwise(l, r []bool, op func(a, b bool) bool) []bool {
	bs := make([]bool, len(l))
	for i := range bs {
		bs[i] = op(l[i], r[i])
	}
	return bs
}
