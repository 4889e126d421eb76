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

// Package mtl defines the abstract syntax of Metric Temporal Logic (MTL):
// intervals, formulas, negation-normal-form duals, and textual rendering.
package mtl

import (
	"fmt"
	"math"
)

// Unbounded is the value of an Interval's Hi field when the interval's
// upper endpoint is ∞.
const Unbounded = math.MaxInt

// Interval is the integer-valued time window `[Lo, Hi]` attached to a
// temporal operator. Hi == Unbounded denotes an unbounded upper endpoint.
// The default interval for a bare temporal operator is (0, ∞).
type Interval struct {
	Lo, Hi int
}

// Unbounded reports whether i's upper endpoint is ∞.
func (i Interval) Unbounded() bool {
	return i.Hi == Unbounded
}

// Valid reports whether i satisfies the Interval invariants: Lo >= 0,
// Hi >= 0 (or unbounded), and Lo <= Hi.
func (i Interval) Valid() bool {
	if i.Lo < 0 {
		return false
	}
	if i.Unbounded() {
		return true
	}
	return i.Hi >= 0 && i.Lo <= i.Hi
}

// Default is the interval (0, ∞), used when a temporal operator's surface
// syntax omits an explicit interval.
var Default = Interval{Lo: 0, Hi: Unbounded}

// NewInterval constructs an Interval and validates it, returning
// ErrBadInterval if the invariants in Valid are violated.
func NewInterval(lo, hi int) (Interval, error) {
	i := Interval{Lo: lo, Hi: hi}
	if !i.Valid() {
		return Interval{}, fmt.Errorf("%w: [%d,%s]", ErrBadInterval, lo, hiString(hi))
	}
	return i, nil
}

func hiString(hi int) string {
	if hi == Unbounded {
		return "∞"
	}
	return fmt.Sprintf("%d", hi)
}

// String renders the interval in the `[lo,hi]` surface form used for
// weakened-interval output (§6), with "∞" for an unbounded upper endpoint.
func (i Interval) String() string {
	return fmt.Sprintf("[%d,%s]", i.Lo, hiString(i.Hi))
}

// diff is the minimum-absolute-diff measure from §4.4: the distance
// between a candidate interval and the original, used to rank weakening
// candidates. ∞-vs-∞ contributes 0 on the right; ∞-vs-finite contributes
// -hi' (so wider infinite "shrinkage" ranks as a smaller diff); otherwise
// it is the absolute difference of the two upper endpoints.
func (orig Interval) diff(candidate Interval) int {
	left := abs(candidate.Lo - orig.Lo)
	var right int
	switch {
	case orig.Unbounded() && candidate.Unbounded():
		right = 0
	case orig.Unbounded():
		right = -candidate.Hi
	default:
		right = abs(candidate.Hi - orig.Hi)
	}
	return left + right
}

// Diff returns the minimum-absolute-diff measure (§4.4) of candidate
// relative to the receiver, which is treated as the original interval.
func (orig Interval) Diff(candidate Interval) int {
	return orig.diff(candidate)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
