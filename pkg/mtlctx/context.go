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

// Package mtlctx implements one-hole MTL formula contexts: the zipper
// that locates a subformula inside a larger formula, tracks the
// polarity of that location, and rewrites a context into partial
// negation-normal form ahead of weakening.
package mtlctx

import (
	"fmt"

	"github.com/ilhamster/mtlweaken/pkg/mtl"
)

// Context is a formula with exactly one hole. Every concrete Context in
// this package is a comparable value type, mirroring mtl.Formula.
type Context interface {
	String() string
	isContext()
}

// Hole is the empty context: the hole itself.
type Hole struct{}

// Not is Boolean negation of a context.
type Not struct {
	Operand Context
}

// AndLeft is Boolean conjunction with the hole in the left operand.
type AndLeft struct {
	Left  Context
	Right mtl.Formula
}

// AndRight is Boolean conjunction with the hole in the right operand.
type AndRight struct {
	Left  mtl.Formula
	Right Context
}

// OrLeft is Boolean disjunction with the hole in the left operand.
type OrLeft struct {
	Left  Context
	Right mtl.Formula
}

// OrRight is Boolean disjunction with the hole in the right operand.
type OrRight struct {
	Left  mtl.Formula
	Right Context
}

// ImpliesLeft is implication with the hole in the antecedent.
type ImpliesLeft struct {
	Left  Context
	Right mtl.Formula
}

// ImpliesRight is implication with the hole in the consequent.
type ImpliesRight struct {
	Left  mtl.Formula
	Right Context
}

// Next is the next-step operator applied to a context.
type Next struct {
	Operand Context
}

// Eventually is the bounded-eventually operator applied to a context.
type Eventually struct {
	Operand  Context
	Interval mtl.Interval
}

// Always is the bounded-always operator applied to a context.
type Always struct {
	Operand  Context
	Interval mtl.Interval
}

// UntilLeft is Until with the hole in the left (waiting) operand.
type UntilLeft struct {
	Left     Context
	Right    mtl.Formula
	Interval mtl.Interval
}

// UntilRight is Until with the hole in the right (releasing) operand.
type UntilRight struct {
	Left     mtl.Formula
	Right    Context
	Interval mtl.Interval
}

// ReleaseLeft is Release with the hole in the left (releasing) operand.
type ReleaseLeft struct {
	Left     Context
	Right    mtl.Formula
	Interval mtl.Interval
}

// ReleaseRight is Release with the hole in the right (held) operand.
type ReleaseRight struct {
	Left     mtl.Formula
	Right    Context
	Interval mtl.Interval
}

func (Hole) isContext()         {}
func (Not) isContext()          {}
func (AndLeft) isContext()      {}
func (AndRight) isContext()     {}
func (OrLeft) isContext()       {}
func (OrRight) isContext()      {}
func (ImpliesLeft) isContext()  {}
func (ImpliesRight) isContext() {}
func (Next) isContext()         {}
func (Eventually) isContext()   {}
func (Always) isContext()       {}
func (UntilLeft) isContext()    {}
func (UntilRight) isContext()   {}
func (ReleaseLeft) isContext()  {}
func (ReleaseRight) isContext() {}

func (c Hole) String() string         { return "[-]" }
func (c Not) String() string          { return fmt.Sprintf("!(%s)", c.Operand) }
func (c AndLeft) String() string      { return fmt.Sprintf("(%s & %s)", c.Left, c.Right) }
func (c AndRight) String() string     { return fmt.Sprintf("(%s & %s)", c.Left, c.Right) }
func (c OrLeft) String() string       { return fmt.Sprintf("(%s | %s)", c.Left, c.Right) }
func (c OrRight) String() string      { return fmt.Sprintf("(%s | %s)", c.Left, c.Right) }
func (c ImpliesLeft) String() string  { return fmt.Sprintf("(%s -> %s)", c.Left, c.Right) }
func (c ImpliesRight) String() string { return fmt.Sprintf("(%s -> %s)", c.Left, c.Right) }
func (c Next) String() string         { return fmt.Sprintf("X (%s)", c.Operand) }

func (c Eventually) String() string {
	return fmt.Sprintf("F%s (%s)", fmtInterval(c.Interval), c.Operand)
}

func (c Always) String() string {
	return fmt.Sprintf("G%s (%s)", fmtInterval(c.Interval), c.Operand)
}

func (c UntilLeft) String() string {
	return fmt.Sprintf("(%s U%s %s)", c.Left, fmtInterval(c.Interval), c.Right)
}

func (c UntilRight) String() string {
	return fmt.Sprintf("(%s U%s %s)", c.Left, fmtInterval(c.Interval), c.Right)
}

func (c ReleaseLeft) String() string {
	return fmt.Sprintf("(%s R%s %s)", c.Left, fmtInterval(c.Interval), c.Right)
}

func (c ReleaseRight) String() string {
	return fmt.Sprintf("(%s R%s %s)", c.Left, fmtInterval(c.Interval), c.Right)
}

// fmtInterval mirrors mtl's own interval rendering: the empty string
// for the implicit default, otherwise "[lo, hi]"/"[lo, ∞)".
func fmtInterval(i mtl.Interval) string {
	if i.Unbounded() {
		if i.Lo == 0 {
			return ""
		}
		return fmt.Sprintf("[%d, ∞)", i.Lo)
	}
	return fmt.Sprintf("[%d, %d]", i.Lo, i.Hi)
}
