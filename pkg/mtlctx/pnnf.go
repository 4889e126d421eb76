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

package mtlctx

import "github.com/ilhamster/mtlweaken/pkg/mtl"

// PartialNNF transforms the pair (c, g) into an equivalent pair (c', g')
// in which c' has Positive polarity at its hole, at the cost of possibly
// dualising the target temporal operator g. g must be one of
// mtl.Eventually, mtl.Always, mtl.Until or mtl.Release.
//
// This is the mandatory preprocessing step between Split and the
// weakening recursion: it collapses what would otherwise be a
// mutually-recursive positive/negative pair of routines into the single
// positive-polarity-only recursion the weakener implements.
func PartialNNF(c Context, g mtl.Formula) (Context, mtl.Formula, error) {
	c2, negate, err := pushNot(c, false)
	if err != nil {
		return nil, nil, err
	}
	if !negate {
		return c2, g, nil
	}
	g2, err := mtl.Dual(g)
	if err != nil {
		return nil, nil, err
	}
	return c2, g2, nil
}

// pushNot rewrites c by pushing every explicit Not it contains inward
// using MTL dualities, accumulating negate as the number (mod 2) of
// negations above the current node. It returns the rewritten context
// (now Not-free) and the final negate value at the hole: true means the
// subformula eventually placed at the hole must itself be dualised to
// preserve the original semantics.
func pushNot(c Context, negate bool) (Context, bool, error) {
	switch v := c.(type) {
	case Hole:
		return Hole{}, negate, nil

	case Not:
		return pushNot(v.Operand, !negate)

	case Next:
		operand, holeNeg, err := pushNot(v.Operand, negate)
		if err != nil {
			return nil, false, err
		}
		return Next{Operand: operand}, holeNeg, nil

	case Eventually:
		operand, holeNeg, err := pushNot(v.Operand, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return Always{Operand: operand, Interval: v.Interval}, holeNeg, nil
		}
		return Eventually{Operand: operand, Interval: v.Interval}, holeNeg, nil

	case Always:
		operand, holeNeg, err := pushNot(v.Operand, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return Eventually{Operand: operand, Interval: v.Interval}, holeNeg, nil
		}
		return Always{Operand: operand, Interval: v.Interval}, holeNeg, nil

	case AndLeft:
		left, holeNeg, err := pushNot(v.Left, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return OrLeft{Left: left, Right: mtl.Not{Operand: v.Right}}, holeNeg, nil
		}
		return AndLeft{Left: left, Right: v.Right}, holeNeg, nil

	case AndRight:
		right, holeNeg, err := pushNot(v.Right, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return OrRight{Left: mtl.Not{Operand: v.Left}, Right: right}, holeNeg, nil
		}
		return AndRight{Left: v.Left, Right: right}, holeNeg, nil

	case OrLeft:
		left, holeNeg, err := pushNot(v.Left, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return AndLeft{Left: left, Right: mtl.Not{Operand: v.Right}}, holeNeg, nil
		}
		return OrLeft{Left: left, Right: v.Right}, holeNeg, nil

	case OrRight:
		right, holeNeg, err := pushNot(v.Right, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return AndRight{Left: mtl.Not{Operand: v.Left}, Right: right}, holeNeg, nil
		}
		return OrRight{Left: v.Left, Right: right}, holeNeg, nil

	case UntilLeft:
		left, holeNeg, err := pushNot(v.Left, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return ReleaseLeft{Left: left, Right: mtl.Not{Operand: v.Right}, Interval: v.Interval}, holeNeg, nil
		}
		return UntilLeft{Left: left, Right: v.Right, Interval: v.Interval}, holeNeg, nil

	case UntilRight:
		right, holeNeg, err := pushNot(v.Right, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return ReleaseRight{Left: mtl.Not{Operand: v.Left}, Right: right, Interval: v.Interval}, holeNeg, nil
		}
		return UntilRight{Left: v.Left, Right: right, Interval: v.Interval}, holeNeg, nil

	case ReleaseLeft:
		left, holeNeg, err := pushNot(v.Left, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return UntilLeft{Left: left, Right: mtl.Not{Operand: v.Right}, Interval: v.Interval}, holeNeg, nil
		}
		return ReleaseLeft{Left: left, Right: v.Right, Interval: v.Interval}, holeNeg, nil

	case ReleaseRight:
		right, holeNeg, err := pushNot(v.Right, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return UntilRight{Left: mtl.Not{Operand: v.Left}, Right: right, Interval: v.Interval}, holeNeg, nil
		}
		return ReleaseRight{Left: v.Left, Right: right, Interval: v.Interval}, holeNeg, nil

	case ImpliesLeft:
		// The antecedent of l -> r sits in negative position: l -> r
		// ≡ ¬l | r, so crossing into the hole always flips the running
		// negation regardless of what's accumulated above.
		left, holeNeg, err := pushNot(v.Left, !negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return AndLeft{Left: left, Right: mtl.Not{Operand: v.Right}}, holeNeg, nil
		}
		return OrLeft{Left: left, Right: v.Right}, holeNeg, nil

	case ImpliesRight:
		right, holeNeg, err := pushNot(v.Right, negate)
		if err != nil {
			return nil, false, err
		}
		if negate {
			return AndRight{Left: v.Left, Right: right}, holeNeg, nil
		}
		return OrRight{Left: mtl.Not{Operand: v.Left}, Right: right}, holeNeg, nil

	default:
		return nil, false, ErrUnsupportedContext
	}
}
