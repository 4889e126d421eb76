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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilhamster/mtlweaken/pkg/mtl"
)

func TestParseAtoms(t *testing.T) {
	f, err := Parse("TRUE")
	require.NoError(t, err)
	assert.Equal(t, mtl.True{}, f)

	f, err = Parse("FALSE")
	require.NoError(t, err)
	assert.Equal(t, mtl.False{}, f)

	f, err = Parse("a")
	require.NoError(t, err)
	assert.Equal(t, mtl.Prop{Name: "a"}, f)
}

func TestParseUnaryWithInterval(t *testing.T) {
	f, err := Parse("F[0,2] a")
	require.NoError(t, err)
	assert.Equal(t, mtl.Eventually{
		Operand:  mtl.Prop{Name: "a"},
		Interval: mtl.Interval{Lo: 0, Hi: 2},
	}, f)
}

func TestParseUnaryOmittedIntervalDefaults(t *testing.T) {
	f, err := Parse("F a")
	require.NoError(t, err)
	assert.Equal(t, mtl.Eventually{Operand: mtl.Prop{Name: "a"}, Interval: mtl.Default}, f)
}

func TestParseUnboundedInterval(t *testing.T) {
	f, err := Parse("G[1,∞] a")
	require.NoError(t, err)
	assert.Equal(t, mtl.Always{
		Operand:  mtl.Prop{Name: "a"},
		Interval: mtl.Interval{Lo: 1, Hi: mtl.Unbounded},
	}, f)
}

func TestParseNestedFG(t *testing.T) {
	f, err := Parse("F G[0,2] a")
	require.NoError(t, err)
	assert.Equal(t, mtl.Eventually{
		Operand: mtl.Always{
			Operand:  mtl.Prop{Name: "a"},
			Interval: mtl.Interval{Lo: 0, Hi: 2},
		},
		Interval: mtl.Default,
	}, f)
}

func TestParseUntilWithInterval(t *testing.T) {
	f, err := Parse("a U F[2,3] b")
	require.NoError(t, err)
	assert.Equal(t, mtl.Until{
		Left: mtl.Prop{Name: "a"},
		Right: mtl.Eventually{
			Operand:  mtl.Prop{Name: "b"},
			Interval: mtl.Interval{Lo: 2, Hi: 3},
		},
		Interval: mtl.Default,
	}, f)
}

func TestParseNegationUnderGlobally(t *testing.T) {
	f, err := Parse("!G[0,1] p")
	require.NoError(t, err)
	assert.Equal(t, mtl.Not{
		Operand: mtl.Always{Operand: mtl.Prop{Name: "p"}, Interval: mtl.Interval{Lo: 0, Hi: 1}},
	}, f)
}

func TestParseUntilLeftAssociative(t *testing.T) {
	f, err := Parse("a U b U c")
	require.NoError(t, err)
	assert.Equal(t, mtl.Until{
		Left:     mtl.Until{Left: mtl.Prop{Name: "a"}, Right: mtl.Prop{Name: "b"}, Interval: mtl.Default},
		Right:    mtl.Prop{Name: "c"},
		Interval: mtl.Default,
	}, f)
}

func TestParseImpliesRightAssociative(t *testing.T) {
	f, err := Parse("a -> b -> c")
	require.NoError(t, err)
	assert.Equal(t, mtl.Implies{
		Left:  mtl.Prop{Name: "a"},
		Right: mtl.Implies{Left: mtl.Prop{Name: "b"}, Right: mtl.Prop{Name: "c"}},
	}, f)
}

func TestParsePrecedenceAndBeforeOr(t *testing.T) {
	f, err := Parse("a | b & c")
	require.NoError(t, err)
	assert.Equal(t, mtl.Or{
		Left:  mtl.Prop{Name: "a"},
		Right: mtl.And{Left: mtl.Prop{Name: "b"}, Right: mtl.Prop{Name: "c"}},
	}, f)
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	f, err := Parse("(a | b) & c")
	require.NoError(t, err)
	assert.Equal(t, mtl.And{
		Left:  mtl.Or{Left: mtl.Prop{Name: "a"}, Right: mtl.Prop{Name: "b"}},
		Right: mtl.Prop{Name: "c"},
	}, f)
}

func TestParseTrailingInputIsError(t *testing.T) {
	_, err := Parse("a b")
	require.ErrorIs(t, err, ErrUnexpectedToken)
}

func TestParseInvalidIntervalPropagatesBadIntervalError(t *testing.T) {
	_, err := Parse("F[2,1] a")
	require.ErrorIs(t, err, mtl.ErrBadInterval)
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("0,1")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p)
}

func TestParsePathEmpty(t *testing.T) {
	p, err := ParsePath("")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestParsePathRejectsOutOfRangeDigit(t *testing.T) {
	_, err := ParsePath("0,2")
	require.ErrorIs(t, err, ErrInvalidPath)
}
