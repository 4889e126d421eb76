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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDual(t *testing.T) {
	a, b := Prop{Name: "a"}, Prop{Name: "b"}
	iv := Interval{Lo: 1, Hi: 4}

	tests := []struct {
		name string
		f    Formula
		want Formula
	}{
		{name: "true", f: True{}, want: False{}},
		{name: "false", f: False{}, want: True{}},
		{name: "prop", f: a, want: Not{Operand: a}},
		{name: "not", f: Not{Operand: a}, want: a},
		{name: "and", f: And{Left: a, Right: b},
			want: Or{Left: Not{Operand: a}, Right: Not{Operand: b}}},
		{name: "or", f: Or{Left: a, Right: b},
			want: And{Left: Not{Operand: a}, Right: Not{Operand: b}}},
		{name: "implies", f: Implies{Left: a, Right: b},
			want: And{Left: a, Right: Not{Operand: b}}},
		{name: "eventually", f: Eventually{Operand: a, Interval: iv},
			want: Always{Operand: Not{Operand: a}, Interval: iv}},
		{name: "always", f: Always{Operand: a, Interval: iv},
			want: Eventually{Operand: Not{Operand: a}, Interval: iv}},
		{name: "until", f: Until{Left: a, Right: b, Interval: iv},
			want: Release{Left: Not{Operand: a}, Right: Not{Operand: b}, Interval: iv}},
		{name: "release", f: Release{Left: a, Right: b, Interval: iv},
			want: Until{Left: Not{Operand: a}, Right: Not{Operand: b}, Interval: iv}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dual(tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNNFPushesNegationToAtoms(t *testing.T) {
	a, b := Prop{Name: "a"}, Prop{Name: "b"}
	iv := Interval{Lo: 0, Hi: 3}

	// !(G[0,3] (a U b)) should become F[0,3] (!a R !b).
	f := Not{Operand: Always{
		Operand:  Until{Left: a, Right: b, Interval: iv},
		Interval: iv,
	}}
	want := Eventually{
		Operand:  Release{Left: Not{Operand: a}, Right: Not{Operand: b}, Interval: iv},
		Interval: iv,
	}
	got, err := NNF(f)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNNFDoubleNegationCancels(t *testing.T) {
	a := Prop{Name: "a"}
	got, err := NNF(Not{Operand: Not{Operand: a}})
	require.NoError(t, err)
	assert.Equal(t, Formula(a), got)
}

func TestNNFImpliesRewrite(t *testing.T) {
	a, b := Prop{Name: "a"}, Prop{Name: "b"}
	got, err := NNF(Implies{Left: a, Right: b})
	require.NoError(t, err)
	assert.Equal(t, Or{Left: Not{Operand: a}, Right: b}, got)
}

func TestNNFAlreadyInNNFIsUnchanged(t *testing.T) {
	a, b := Prop{Name: "a"}, Prop{Name: "b"}
	f := Until{Left: Not{Operand: a}, Right: b, Interval: Default}
	got, err := NNF(f)
	require.NoError(t, err)
	assert.Equal(t, Formula(f), got)
}
