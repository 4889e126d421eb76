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

// Path recovers the child-index sequence that, passed to Split along
// with the formula Substitute(c, anything) reproduces, would locate c's
// hole: the inverse of Split's path argument.
func Path(c Context) ([]int, error) {
	switch v := c.(type) {
	case Hole:
		return nil, nil
	case Not:
		return prependZero(Path(v.Operand))
	case Next:
		return prependZero(Path(v.Operand))
	case Eventually:
		return prependZero(Path(v.Operand))
	case Always:
		return prependZero(Path(v.Operand))
	case AndLeft:
		return prependZero(Path(v.Left))
	case OrLeft:
		return prependZero(Path(v.Left))
	case ImpliesLeft:
		return prependZero(Path(v.Left))
	case UntilLeft:
		return prependZero(Path(v.Left))
	case ReleaseLeft:
		return prependZero(Path(v.Left))
	case AndRight:
		return prependOne(Path(v.Right))
	case OrRight:
		return prependOne(Path(v.Right))
	case ImpliesRight:
		return prependOne(Path(v.Right))
	case UntilRight:
		return prependOne(Path(v.Right))
	case ReleaseRight:
		return prependOne(Path(v.Right))
	default:
		return nil, ErrUnsupportedContext
	}
}

func prependZero(rest []int, err error) ([]int, error) {
	if err != nil {
		return nil, err
	}
	return append([]int{0}, rest...), nil
}

func prependOne(rest []int, err error) ([]int, error) {
	if err != nil {
		return nil, err
	}
	return append([]int{1}, rest...), nil
}
