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

// Package trace implements lasso-shaped execution traces: a finite
// prefix optionally followed by a repeating cycle, and the cyclic index
// arithmetic Marking and Weaken evaluate against.
package trace

import "fmt"

// State is one step of a trace: a snapshot of named, Boolean-valued
// atomic propositions.
type State map[string]bool

// Trace is a finite sequence of States, optionally looping back to
// LoopStart to form a lasso. A nil LoopStart means the trace is finite:
// positions at or beyond its length are left to the caller (Marking
// treats them as universally true, per §4.3).
type Trace struct {
	States    []State
	LoopStart *int
}

// New constructs a Trace. If loopStart is non-nil, it must index a
// valid position in states.
func New(states []State, loopStart *int) (*Trace, error) {
	if loopStart != nil && (*loopStart < 0 || *loopStart >= len(states)) {
		return nil, fmt.Errorf("trace: loop_start %d out of range [0,%d)", *loopStart, len(states))
	}
	return &Trace{States: states, LoopStart: loopStart}, nil
}

// Len returns the number of states in the trace's underlying sequence
// (the prefix-plus-cycle, not the unrolled infinite lasso).
func (t *Trace) Len() int {
	return len(t.States)
}

// Idx maps a (possibly unrolled) trace position i to an index into
// States, wrapping around the cycle when the trace loops. For a finite
// trace (LoopStart == nil), i must be < Len(); positions beyond the end
// are the caller's responsibility — use BoolAt, which resolves them to
// universally true per §4.3, rather than indexing States directly.
func (t *Trace) Idx(i int) int {
	if t.LoopStart == nil {
		return i
	}
	k := *t.LoopStart
	if i < len(t.States) {
		return i
	}
	period := len(t.States) - k
	return k + (i-k)%period
}

// RightIdx returns the largest index j such that the unrolled positions
// a, a+1, ..., j visit the trace's cycle at least once — the explore
// bound used whenever a temporal operator's upper endpoint is ∞.
func (t *Trace) RightIdx(a int) int {
	if t.LoopStart == nil || a < *t.LoopStart {
		return len(t.States) - 1
	}
	k := *t.LoopStart
	sufLen := len(t.States) - k
	return a + sufLen - 1
}

// At returns the State at unrolled position i, along with whether the
// position is in range: false only for a finite trace queried beyond
// its end.
func (t *Trace) At(i int) (State, bool) {
	if t.LoopStart == nil && i >= len(t.States) {
		return nil, false
	}
	return t.States[t.Idx(i)], true
}

// BoolAt returns vs[Idx(i)], treating a position at or beyond the end
// of a finite (non-looping) trace as universally true per §4.3, rather
// than indexing vs out of range. vs must have length Len(); it is
// typically a Marking subformula vector.
func (t *Trace) BoolAt(vs []bool, i int) bool {
	if t.LoopStart == nil && i >= len(t.States) {
		return true
	}
	return vs[t.Idx(i)]
}

// Value reports whether proposition name holds in State s. A missing
// proposition defaults to true, mirroring the source project's
// "extended dict" semantics for partially-specified states.
func (s State) Value(name string) bool {
	if v, ok := s[name]; ok {
		return v
	}
	return true
}
