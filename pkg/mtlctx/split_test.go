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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilhamster/mtlweaken/pkg/mtl"
)

func TestSplitSubstituteRoundTrip(t *testing.T) {
	a, b := mtl.Prop{Name: "a"}, mtl.Prop{Name: "b"}
	formula := mtl.And{
		Left: mtl.Eventually{Operand: a, Interval: mtl.Interval{Lo: 0, Hi: 2}},
		Right: mtl.Until{
			Left:     b,
			Right:    mtl.Not{Operand: a},
			Interval: mtl.Default,
		},
	}

	tests := []struct {
		name string
		path []int
		want mtl.Formula
	}{
		{name: "whole formula", path: nil, want: formula},
		{name: "left eventually operand", path: []int{0, 0}, want: a},
		{name: "right until left operand", path: []int{1, 0}, want: b},
		{name: "right until right operand", path: []int{1, 1}, want: mtl.Not{Operand: a}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, sub, err := Split(formula, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sub)

			rebuilt, err := Substitute(ctx, sub)
			require.NoError(t, err)
			assert.Equal(t, formula, rebuilt)

			gotPath, err := Path(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}

func TestSplitInvalidPathReturnsDeBruijnError(t *testing.T) {
	a := mtl.Prop{Name: "a"}
	formula := mtl.Eventually{Operand: a, Interval: mtl.Default}

	_, _, err := Split(formula, []int{1})
	var dbErr *mtl.DeBruijnIndexError
	require.ErrorAs(t, err, &dbErr)

	_, _, err = Split(formula, []int{0, 0})
	require.ErrorAs(t, err, &dbErr)
}
