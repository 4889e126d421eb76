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

// Polarity is the sign of a context's hole: Positive if the hole lies
// under an even number of negations (counting an ImpliesLeft antecedent
// crossing as one), Negative otherwise.
type Polarity bool

const (
	Positive Polarity = true
	Negative Polarity = false
)

// Flip returns the opposite polarity.
func (p Polarity) Flip() Polarity {
	return !p
}

func (p Polarity) String() string {
	if p == Positive {
		return "+"
	}
	return "-"
}

// GetPolarity computes the polarity of c's hole by a single top-down
// traversal: Not and an ImpliesLeft antecedent crossing flip polarity;
// every other constructor preserves it.
func GetPolarity(c Context) (Polarity, error) {
	switch v := c.(type) {
	case Hole:
		return Positive, nil
	case Not:
		p, err := GetPolarity(v.Operand)
		if err != nil {
			return Positive, err
		}
		return p.Flip(), nil
	case ImpliesLeft:
		p, err := GetPolarity(v.Left)
		if err != nil {
			return Positive, err
		}
		return p.Flip(), nil
	case ImpliesRight:
		return GetPolarity(v.Right)
	case AndLeft:
		return GetPolarity(v.Left)
	case AndRight:
		return GetPolarity(v.Right)
	case OrLeft:
		return GetPolarity(v.Left)
	case OrRight:
		return GetPolarity(v.Right)
	case Next:
		return GetPolarity(v.Operand)
	case Eventually:
		return GetPolarity(v.Operand)
	case Always:
		return GetPolarity(v.Operand)
	case UntilLeft:
		return GetPolarity(v.Left)
	case UntilRight:
		return GetPolarity(v.Right)
	case ReleaseLeft:
		return GetPolarity(v.Left)
	case ReleaseRight:
		return GetPolarity(v.Right)
	default:
		return Positive, ErrUnsupportedContext
	}
}
