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

// Split traverses formula along path (0 = left/only operand, 1 = right
// operand) and returns the context locating the formula reached at the
// end of path, together with that subformula. It fails with a
// *mtl.DeBruijnIndexError if path is incompatible with formula's shape.
func Split(formula mtl.Formula, path []int) (Context, mtl.Formula, error) {
	return splitAux(formula, path, 0)
}

func splitAux(f mtl.Formula, indices []int, idx int) (Context, mtl.Formula, error) {
	if idx == len(indices) {
		return Hole{}, f, nil
	}
	invalid := func() error {
		return &mtl.DeBruijnIndexError{Indices: indices, FormulaIdx: idx, AtFormula: f}
	}
	switch v := f.(type) {
	case mtl.Not:
		if indices[idx] != 0 {
			return nil, nil, invalid()
		}
		c, subf, err := splitAux(v.Operand, indices, idx+1)
		if err != nil {
			return nil, nil, err
		}
		return Not{Operand: c}, subf, nil
	case mtl.Next:
		if indices[idx] != 0 {
			return nil, nil, invalid()
		}
		c, subf, err := splitAux(v.Operand, indices, idx+1)
		if err != nil {
			return nil, nil, err
		}
		return Next{Operand: c}, subf, nil
	case mtl.And:
		switch indices[idx] {
		case 0:
			c, subf, err := splitAux(v.Left, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return AndLeft{Left: c, Right: v.Right}, subf, nil
		case 1:
			c, subf, err := splitAux(v.Right, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return AndRight{Left: v.Left, Right: c}, subf, nil
		default:
			return nil, nil, invalid()
		}
	case mtl.Or:
		switch indices[idx] {
		case 0:
			c, subf, err := splitAux(v.Left, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return OrLeft{Left: c, Right: v.Right}, subf, nil
		case 1:
			c, subf, err := splitAux(v.Right, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return OrRight{Left: v.Left, Right: c}, subf, nil
		default:
			return nil, nil, invalid()
		}
	case mtl.Implies:
		switch indices[idx] {
		case 0:
			c, subf, err := splitAux(v.Left, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return ImpliesLeft{Left: c, Right: v.Right}, subf, nil
		case 1:
			c, subf, err := splitAux(v.Right, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return ImpliesRight{Left: v.Left, Right: c}, subf, nil
		default:
			return nil, nil, invalid()
		}
	case mtl.Eventually:
		if indices[idx] != 0 {
			return nil, nil, invalid()
		}
		c, subf, err := splitAux(v.Operand, indices, idx+1)
		if err != nil {
			return nil, nil, err
		}
		return Eventually{Operand: c, Interval: v.Interval}, subf, nil
	case mtl.Always:
		if indices[idx] != 0 {
			return nil, nil, invalid()
		}
		c, subf, err := splitAux(v.Operand, indices, idx+1)
		if err != nil {
			return nil, nil, err
		}
		return Always{Operand: c, Interval: v.Interval}, subf, nil
	case mtl.Until:
		switch indices[idx] {
		case 0:
			c, subf, err := splitAux(v.Left, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return UntilLeft{Left: c, Right: v.Right, Interval: v.Interval}, subf, nil
		case 1:
			c, subf, err := splitAux(v.Right, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return UntilRight{Left: v.Left, Right: c, Interval: v.Interval}, subf, nil
		default:
			return nil, nil, invalid()
		}
	case mtl.Release:
		switch indices[idx] {
		case 0:
			c, subf, err := splitAux(v.Left, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return ReleaseLeft{Left: c, Right: v.Right, Interval: v.Interval}, subf, nil
		case 1:
			c, subf, err := splitAux(v.Right, indices, idx+1)
			if err != nil {
				return nil, nil, err
			}
			return ReleaseRight{Left: v.Left, Right: c, Interval: v.Interval}, subf, nil
		default:
			return nil, nil, invalid()
		}
	default:
		// True, False, Prop and any other leaf cannot be descended into.
		return nil, nil, invalid()
	}
}
