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

// Package ltl defines the unit-step Linear Temporal Logic AST that
// bounded MTL formulas are lowered into (§6 "semantically equivalent
// expansion... for handoff to an external LTL model checker"), and its
// nuXmv-compatible textual rendering.
package ltl

import "fmt"

// Formula is an LTL term. Unlike mtl.Formula, no node carries an
// interval: every temporal operator here is unit-step, the form a model
// checker's input language expects.
type Formula interface {
	String() string
	isFormula()
}

// Prop is an atomic proposition.
type Prop struct {
	Name string
}

// Not is Boolean negation.
type Not struct {
	Operand Formula
}

// Next requires Operand to hold at the following position.
type Next struct {
	Operand Formula
}

// Eventually requires Operand to hold at some future position.
type Eventually struct {
	Operand Formula
}

// Always requires Operand to hold at every future position.
type Always struct {
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

// Until requires Left to hold until Right holds, which it must
// eventually do. There is no Release node: lowering rewrites Release via
// the ¬Until¬ duality before it ever reaches this package.
type Until struct {
	Left, Right Formula
}

func (Prop) isFormula()       {}
func (Not) isFormula()        {}
func (Next) isFormula()       {}
func (Eventually) isFormula() {}
func (Always) isFormula()     {}
func (And) isFormula()        {}
func (Or) isFormula()         {}
func (Implies) isFormula()    {}
func (Until) isFormula()      {}

func (f Prop) String() string       { return f.Name }
func (f Not) String() string        { return fmt.Sprintf("!(%s)", f.Operand) }
func (f Next) String() string       { return fmt.Sprintf("X (%s)", f.Operand) }
func (f Eventually) String() string { return fmt.Sprintf("F (%s)", f.Operand) }
func (f Always) String() string     { return fmt.Sprintf("G (%s)", f.Operand) }
func (f And) String() string        { return fmt.Sprintf("(%s & %s)", f.Left, f.Right) }
func (f Or) String() string         { return fmt.Sprintf("(%s | %s)", f.Left, f.Right) }
func (f Implies) String() string    { return fmt.Sprintf("(%s -> %s)", f.Left, f.Right) }
func (f Until) String() string      { return fmt.Sprintf("(%s U %s)", f.Left, f.Right) }
