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

import "fmt"

// fmtInterval renders a temporal operator's interval: the empty string
// for the implicit default (0, ∞), `[lo, ∞)` for any other unbounded
// interval, and `[lo, hi]` for a bounded one. The `[lo, ∞)` form is not
// accepted by package parser, which reads an unbounded interval as
// `[lo, ∞]`.
func fmtInterval(i Interval) string {
	if i.Unbounded() {
		if i.Lo == 0 {
			return ""
		}
		return fmt.Sprintf("[%d, ∞)", i.Lo)
	}
	return fmt.Sprintf("[%d, %d]", i.Lo, i.Hi)
}

// toString renders f in a fully parenthesised infix form close to the
// parser's surface syntax. It differs from what package parser accepts
// in two places: True and False render as lowercase `true`/`false`
// (the parser reads `TRUE`/`FALSE`), and intervals as fmtInterval
// renders them.
func toString(f Formula) string {
	switch v := f.(type) {
	case True:
		return "true"
	case False:
		return "false"
	case Prop:
		return v.Name
	case Not:
		return fmt.Sprintf("!(%s)", toString(v.Operand))
	case Next:
		return fmt.Sprintf("X (%s)", toString(v.Operand))
	case And:
		return fmt.Sprintf("(%s & %s)", toString(v.Left), toString(v.Right))
	case Or:
		return fmt.Sprintf("(%s | %s)", toString(v.Left), toString(v.Right))
	case Implies:
		return fmt.Sprintf("(%s -> %s)", toString(v.Left), toString(v.Right))
	case Eventually:
		return fmt.Sprintf("F%s (%s)", fmtInterval(v.Interval), toString(v.Operand))
	case Always:
		return fmt.Sprintf("G%s (%s)", fmtInterval(v.Interval), toString(v.Operand))
	case Until:
		return fmt.Sprintf("(%s U%s %s)", toString(v.Left), fmtInterval(v.Interval), toString(v.Right))
	case Release:
		return fmt.Sprintf("(%s R%s %s)", toString(v.Left), fmtInterval(v.Interval), toString(v.Right))
	default:
		return fmt.Sprintf("<unsupported mtl construct %v>", f)
	}
}
