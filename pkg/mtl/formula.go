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

package mtl

import (
	"fmt"
	"strings"
)

// Formula is an immutable MTL term. Every concrete Formula in this
// package is a comparable value type, so Formulas may be used directly
// as map keys (the property the Marking memo relies on) and compared
// with ==/reflect-free structural equality.
type Formula interface {
	// String renders the formula in a parenthesised infix form close
	// to the parser's surface syntax (see toString for where they
	// differ).
	String() string

	// isFormula restricts Formula to the variants defined in this
	// package.
	isFormula()
}

// True is the formula that holds everywhere.
type True struct{}

// False is the formula that holds nowhere.
type False struct{}

// Prop is an atomic proposition, named by a trace variable.
type Prop struct {
	Name string
}

// Not is Boolean negation.
type Not struct {
	Operand Formula
}

// Next requires its operand to hold at the following trace position.
type Next struct {
	Operand Formula
}

// And is Boolean conjunction.
type And struct {
	Left, Right Formula
}

// Or is Boolean disjunction.
type Or struct {
	Left, Right Formula
}

// Implies is Boolean implication.
type Implies struct {
	Left, Right Formula
}

// Eventually (`F`) requires its operand to hold at some position within
// Interval of the current one.
type Eventually struct {
	Operand  Formula
	Interval Interval
}

// Always (`G`) requires its operand to hold at every position within
// Interval of the current one.
type Always struct {
	Operand  Formula
	Interval Interval
}

// Until (`U`) requires Left to hold continuously until Right holds,
// which it must do at some position within Interval of the current one.
type Until struct {
	Left, Right Formula
	Interval    Interval
}

// Release (`R`) requires Right to hold up to and including the position
// at which Left first holds (which need never happen, in which case
// Right must hold throughout Interval).
type Release struct {
	Left, Right Formula
	Interval    Interval
}

func (True) isFormula()       {}
func (False) isFormula()      {}
func (Prop) isFormula()       {}
func (Not) isFormula()        {}
func (Next) isFormula()       {}
func (And) isFormula()        {}
func (Or) isFormula()         {}
func (Implies) isFormula()    {}
func (Eventually) isFormula() {}
func (Always) isFormula()     {}
func (Until) isFormula()      {}
func (Release) isFormula()    {}

func (f True) String() string  { return toString(f) }
func (f False) String() string { return toString(f) }
func (f Prop) String() string  { return toString(f) }
func (f Not) String() string   { return toString(f) }
func (f Next) String() string  { return toString(f) }

func (f And) String() string        { return toString(f) }
func (f Or) String() string         { return toString(f) }
func (f Implies) String() string    { return toString(f) }
func (f Eventually) String() string { return toString(f) }
func (f Always) String() string     { return toString(f) }
func (f Until) String() string      { return toString(f) }
func (f Release) String() string    { return toString(f) }

// NewEventually constructs an Eventually formula, validating interval.
func NewEventually(operand Formula, interval Interval) (Eventually, error) {
	if !interval.Valid() {
		return Eventually{}, badInterval(interval)
	}
	return Eventually{Operand: operand, Interval: interval}, nil
}

// NewAlways constructs an Always formula, validating interval.
func NewAlways(operand Formula, interval Interval) (Always, error) {
	if !interval.Valid() {
		return Always{}, badInterval(interval)
	}
	return Always{Operand: operand, Interval: interval}, nil
}

// NewUntil constructs an Until formula, validating interval.
func NewUntil(left, right Formula, interval Interval) (Until, error) {
	if !interval.Valid() {
		return Until{}, badInterval(interval)
	}
	return Until{Left: left, Right: right, Interval: interval}, nil
}

// NewRelease constructs a Release formula, validating interval.
func NewRelease(left, right Formula, interval Interval) (Release, error) {
	if !interval.Valid() {
		return Release{}, badInterval(interval)
	}
	return Release{Left: left, Right: right, Interval: interval}, nil
}

func badInterval(i Interval) error {
	_, err := NewInterval(i.Lo, i.Hi)
	return err
}

// DeBruijnIndexError is returned by Split/Path-adjacent operations when a
// descent path selects a child that a formula's shape does not have
// (§7 "invalid path").
type DeBruijnIndexError struct {
	Indices    []int
	FormulaIdx int
	AtFormula  Formula
}

func (e *DeBruijnIndexError) Error() string {
	strs := make([]string, len(e.Indices))
	for i, v := range e.Indices {
		strs[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf(
		"mtl: de Bruijn index [%s] at i=%d invalid for %s",
		strings.Join(strs, ","), e.FormulaIdx, e.AtFormula,
	)
}
