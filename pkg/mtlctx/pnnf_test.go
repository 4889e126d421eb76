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

// TestPartialNNFWeakenUnderNegation mirrors the "Weaken under negation"
// end-to-end scenario: "! G[0,1] p" at path "0" must come out of
// partial NNF as a bare hole with the target dualised into an
// Eventually of the negated operand.
func TestPartialNNFWeakenUnderNegation(t *testing.T) {
	p := mtl.Prop{Name: "p"}
	iv := mtl.Interval{Lo: 0, Hi: 1}
	formula := mtl.Not{Operand: mtl.Always{Operand: p, Interval: iv}}

	ctx, target, err := Split(formula, []int{0})
	require.NoError(t, err)
	require.Equal(t, mtl.Always{Operand: p, Interval: iv}, target)

	pol, err := GetPolarity(ctx)
	require.NoError(t, err)
	assert.Equal(t, Negative, pol)

	c2, g2, err := PartialNNF(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, Hole{}, c2)
	assert.Equal(t, mtl.Eventually{Operand: mtl.Not{Operand: p}, Interval: iv}, g2)

	pol2, err := GetPolarity(c2)
	require.NoError(t, err)
	assert.Equal(t, Positive, pol2)

	rebuiltBefore, err := Substitute(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, formula, rebuiltBefore)
}

// TestPartialNNFAlreadyPositiveIsUnchanged covers the common case where
// no ancestor negation exists: PartialNNF must be a no-op.
func TestPartialNNFAlreadyPositiveIsUnchanged(t *testing.T) {
	a, b := mtl.Prop{Name: "a"}, mtl.Prop{Name: "b"}
	iv := mtl.Interval{Lo: 0, Hi: 2}
	ctx := AndLeft{Left: Hole{}, Right: b}
	target := mtl.Eventually{Operand: a, Interval: iv}

	c2, g2, err := PartialNNF(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, ctx, c2)
	assert.Equal(t, target, g2)
}

// TestPartialNNFMaterialisesSiblingNegation covers a Not sitting above
// an AndLeft: the combinator must dualise to OrLeft and the sibling
// formula must be wrapped in Not, per the materialisation rule in the
// partial-NNF algorithm.
func TestPartialNNFMaterialisesSiblingNegation(t *testing.T) {
	a, b := mtl.Prop{Name: "a"}, mtl.Prop{Name: "b"}
	iv := mtl.Default
	ctx := Not{Operand: AndLeft{Left: Hole{}, Right: b}}
	target := mtl.Eventually{Operand: a, Interval: iv}

	c2, g2, err := PartialNNF(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, OrLeft{Left: Hole{}, Right: mtl.Not{Operand: b}}, c2)
	assert.Equal(t, mtl.Always{Operand: mtl.Not{Operand: a}, Interval: iv}, g2)

	pol, err := GetPolarity(c2)
	require.NoError(t, err)
	assert.Equal(t, Positive, pol)
}

// TestPartialNNFThroughImpliesLeftAlwaysEliminatesImplies checks that
// an ImpliesLeft context, even with no enclosing Not, is rewritten away
// into Or form (per the design note that no Implies survives PNNF).
func TestPartialNNFThroughImpliesLeftAlwaysEliminatesImplies(t *testing.T) {
	a, b := mtl.Prop{Name: "a"}, mtl.Prop{Name: "b"}
	iv := mtl.Default
	ctx := ImpliesLeft{Left: Hole{}, Right: b}
	target := mtl.Eventually{Operand: a, Interval: iv}

	c2, g2, err := PartialNNF(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, OrLeft{Left: Hole{}, Right: b}, c2)
	// The implicit antecedent negation must dualise the target.
	assert.Equal(t, mtl.Always{Operand: mtl.Not{Operand: a}, Interval: iv}, g2)
}
