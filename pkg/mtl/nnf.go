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

// Dual rewrites Not(f) into an equivalent formula with the negation
// pushed one level inward, using the classical MTL dualities:
// ¬And↦Or, ¬Or↦And, ¬Implies↦And, ¬Eventually↦Always, ¬Always↦Eventually,
// ¬Until↦Release, ¬Release↦Until, ¬Next↦Next¬. It does not recurse: the
// operands of the result may still contain a Not that a caller wanting
// full negation-normal-form must push further (see NNF).
//
// Dual is the single-level primitive that mtlctx.PartialNNF uses to
// dualise the one target temporal operator. NNF does not call Dual; it
// pushes negation with its own recursive helper, nnfNot.
func Dual(f Formula) (Formula, error) {
	switch v := f.(type) {
	case True:
		return False{}, nil
	case False:
		return True{}, nil
	case Prop:
		return Not{Operand: v}, nil
	case Not:
		return v.Operand, nil
	case And:
		return Or{Left: Not{Operand: v.Left}, Right: Not{Operand: v.Right}}, nil
	case Or:
		return And{Left: Not{Operand: v.Left}, Right: Not{Operand: v.Right}}, nil
	case Implies:
		return And{Left: v.Left, Right: Not{Operand: v.Right}}, nil
	case Next:
		return Next{Operand: Not{Operand: v.Operand}}, nil
	case Eventually:
		return Always{Operand: Not{Operand: v.Operand}, Interval: v.Interval}, nil
	case Always:
		return Eventually{Operand: Not{Operand: v.Operand}, Interval: v.Interval}, nil
	case Until:
		return Release{
			Left:     Not{Operand: v.Left},
			Right:    Not{Operand: v.Right},
			Interval: v.Interval,
		}, nil
	case Release:
		return Until{
			Left:     Not{Operand: v.Left},
			Right:    Not{Operand: v.Right},
			Interval: v.Interval,
		}, nil
	default:
		return nil, ErrUnsupportedConstruct
	}
}

// NNF rewrites f into full negation-normal-form: every Not is pushed
// down to an atomic proposition, via nnfNot.
func NNF(f Formula) (Formula, error) {
	switch v := f.(type) {
	case True, False, Prop:
		return v, nil
	case Not:
		inner, err := NNF(v.Operand)
		if err != nil {
			return nil, err
		}
		return nnfNot(inner)
	case And:
		l, err := NNF(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := NNF(v.Right)
		if err != nil {
			return nil, err
		}
		return And{Left: l, Right: r}, nil
	case Or:
		l, err := NNF(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := NNF(v.Right)
		if err != nil {
			return nil, err
		}
		return Or{Left: l, Right: r}, nil
	case Implies:
		l, err := NNF(Not{Operand: v.Left})
		if err != nil {
			return nil, err
		}
		r, err := NNF(v.Right)
		if err != nil {
			return nil, err
		}
		return Or{Left: l, Right: r}, nil
	case Next:
		inner, err := NNF(v.Operand)
		if err != nil {
			return nil, err
		}
		return Next{Operand: inner}, nil
	case Eventually:
		inner, err := NNF(v.Operand)
		if err != nil {
			return nil, err
		}
		return Eventually{Operand: inner, Interval: v.Interval}, nil
	case Always:
		inner, err := NNF(v.Operand)
		if err != nil {
			return nil, err
		}
		return Always{Operand: inner, Interval: v.Interval}, nil
	case Until:
		l, err := NNF(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := NNF(v.Right)
		if err != nil {
			return nil, err
		}
		return Until{Left: l, Right: r, Interval: v.Interval}, nil
	case Release:
		l, err := NNF(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := NNF(v.Right)
		if err != nil {
			return nil, err
		}
		return Release{Left: l, Right: r, Interval: v.Interval}, nil
	default:
		return nil, ErrUnsupportedConstruct
	}
}

// nnfNot pushes a single Not through f, recursing into NNF for the
// resulting operands (f is assumed already in NNF).
func nnfNot(f Formula) (Formula, error) {
	switch v := f.(type) {
	case True:
		return False{}, nil
	case False:
		return True{}, nil
	case Prop:
		return Not{Operand: v}, nil
	case Not:
		return v.Operand, nil
	case And:
		l, err := nnfNot(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := nnfNot(v.Right)
		if err != nil {
			return nil, err
		}
		return Or{Left: l, Right: r}, nil
	case Or:
		l, err := nnfNot(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := nnfNot(v.Right)
		if err != nil {
			return nil, err
		}
		return And{Left: l, Right: r}, nil
	case Implies:
		l, err := NNF(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := nnfNot(v.Right)
		if err != nil {
			return nil, err
		}
		return And{Left: l, Right: r}, nil
	case Next:
		inner, err := nnfNot(v.Operand)
		if err != nil {
			return nil, err
		}
		return Next{Operand: inner}, nil
	case Eventually:
		inner, err := nnfNot(v.Operand)
		if err != nil {
			return nil, err
		}
		return Always{Operand: inner, Interval: v.Interval}, nil
	case Always:
		inner, err := nnfNot(v.Operand)
		if err != nil {
			return nil, err
		}
		return Eventually{Operand: inner, Interval: v.Interval}, nil
	case Until:
		l, err := nnfNot(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := nnfNot(v.Right)
		if err != nil {
			return nil, err
		}
		return Release{Left: l, Right: r, Interval: v.Interval}, nil
	case Release:
		l, err := nnfNot(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := nnfNot(v.Right)
		if err != nil {
			return nil, err
		}
		return Until{Left: l, Right: r, Interval: v.Interval}, nil
	default:
		return nil, ErrUnsupportedConstruct
	}
}
