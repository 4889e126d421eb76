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

// Substitute rebuilds the formula c locates, placing f at its hole.
// substitute(c, f) is the formula-level inverse of Split: for any
// (c, sub) := Split(formula, path), Substitute(c, sub) reproduces
// formula exactly.
func Substitute(c Context, f mtl.Formula) (mtl.Formula, error) {
	switch v := c.(type) {
	case Hole:
		return f, nil
	case Not:
		inner, err := Substitute(v.Operand, f)
		if err != nil {
			return nil, err
		}
		return mtl.Not{Operand: inner}, nil
	case AndLeft:
		inner, err := Substitute(v.Left, f)
		if err != nil {
			return nil, err
		}
		return mtl.And{Left: inner, Right: v.Right}, nil
	case AndRight:
		inner, err := Substitute(v.Right, f)
		if err != nil {
			return nil, err
		}
		return mtl.And{Left: v.Left, Right: inner}, nil
	case OrLeft:
		inner, err := Substitute(v.Left, f)
		if err != nil {
			return nil, err
		}
		return mtl.Or{Left: inner, Right: v.Right}, nil
	case OrRight:
		inner, err := Substitute(v.Right, f)
		if err != nil {
			return nil, err
		}
		return mtl.Or{Left: v.Left, Right: inner}, nil
	case ImpliesLeft:
		inner, err := Substitute(v.Left, f)
		if err != nil {
			return nil, err
		}
		return mtl.Implies{Left: inner, Right: v.Right}, nil
	case ImpliesRight:
		inner, err := Substitute(v.Right, f)
		if err != nil {
			return nil, err
		}
		return mtl.Implies{Left: v.Left, Right: inner}, nil
	case Next:
		inner, err := Substitute(v.Operand, f)
		if err != nil {
			return nil, err
		}
		return mtl.Next{Operand: inner}, nil
	case Eventually:
		inner, err := Substitute(v.Operand, f)
		if err != nil {
			return nil, err
		}
		return mtl.Eventually{Operand: inner, Interval: v.Interval}, nil
	case Always:
		inner, err := Substitute(v.Operand, f)
		if err != nil {
			return nil, err
		}
		return mtl.Always{Operand: inner, Interval: v.Interval}, nil
	case UntilLeft:
		inner, err := Substitute(v.Left, f)
		if err != nil {
			return nil, err
		}
		return mtl.Until{Left: inner, Right: v.Right, Interval: v.Interval}, nil
	case UntilRight:
		inner, err := Substitute(v.Right, f)
		if err != nil {
			return nil, err
		}
		return mtl.Until{Left: v.Left, Right: inner, Interval: v.Interval}, nil
	case ReleaseLeft:
		inner, err := Substitute(v.Left, f)
		if err != nil {
			return nil, err
		}
		return mtl.Release{Left: inner, Right: v.Right, Interval: v.Interval}, nil
	case ReleaseRight:
		inner, err := Substitute(v.Right, f)
		if err != nil {
			return nil, err
		}
		return mtl.Release{Left: v.Left, Right: inner, Interval: v.Interval}, nil
	default:
		return nil, ErrUnsupportedContext
	}
}
