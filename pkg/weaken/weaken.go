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

// Package weaken computes interval weakenings of a temporal operator
// sitting at the hole of a (partial-NNF) context, the minimal change to
// the operator's upper endpoint that makes the enclosing formula hold on
// a trace.
package weaken

import (
	"fmt"

	"github.com/ilhamster/mtlweaken/pkg/marking"
	"github.com/ilhamster/mtlweaken/pkg/mtl"
	"github.com/ilhamster/mtlweaken/pkg/mtlctx"
	"github.com/ilhamster/mtlweaken/pkg/trace"
)

// Weaken searches for a weakening of g's interval, valid at trace index
// t, such that substitute(c, g) with the weakened interval holds on tr.
// c must already be in partial negation-normal form (positive polarity
// at the hole): PartialNNF is mandatory preprocessing, not optional. m
// must hold markings for substitute(c, g) (or a superset of it). A nil
// result with a nil error means no suitable weakening exists.
func Weaken(c mtlctx.Context, g mtl.Formula, t int, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	return aux(c, g, t, tr, m)
}

func aux(c mtlctx.Context, g mtl.Formula, t int, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	switch ctx := c.(type) {
	case mtlctx.Hole:
		return directWeaken(g, t, tr, m)

	case mtlctx.Not:
		return nil, fmt.Errorf("%w: %v", ErrInternalNotContext, ctx)

	case mtlctx.AndLeft:
		ok, err := m.Get(ctx.Right, t)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return aux(ctx.Left, g, t, tr, m)

	case mtlctx.AndRight:
		ok, err := m.Get(ctx.Left, t)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return aux(ctx.Right, g, t, tr, m)

	case mtlctx.OrLeft:
		ok, err := m.Get(ctx.Right, t)
		if err != nil {
			return nil, err
		}
		if ok {
			orig, err := targetInterval(g)
			if err != nil {
				return nil, err
			}
			return &orig, nil
		}
		return aux(ctx.Left, g, t, tr, m)

	case mtlctx.OrRight:
		ok, err := m.Get(ctx.Left, t)
		if err != nil {
			return nil, err
		}
		if ok {
			orig, err := targetInterval(g)
			if err != nil {
				return nil, err
			}
			return &orig, nil
		}
		return aux(ctx.Right, g, t, tr, m)

	case mtlctx.Eventually:
		return weakenEventuallyCtx(ctx.Operand, g, t, ctx.Interval, tr, m)

	case mtlctx.Always:
		return weakenAlwaysCtx(ctx.Operand, g, t, ctx.Interval, tr, m)

	case mtlctx.UntilLeft:
		return weakenUntilLeftCtx(ctx.Left, ctx.Right, g, t, ctx.Interval, tr, m)

	case mtlctx.UntilRight:
		return weakenUntilRightCtx(ctx.Left, ctx.Right, g, t, ctx.Interval, tr, m)

	case mtlctx.ReleaseLeft:
		return weakenReleaseLeftCtx(ctx.Left, ctx.Right, g, t, ctx.Interval, tr, m)

	case mtlctx.ReleaseRight:
		return weakenReleaseRightCtx(ctx.Left, ctx.Right, g, t, ctx.Interval, tr, m)

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedContext, c)
	}
}

// targetInterval extracts the original interval of the temporal operator
// Weaken is asked to widen.
func targetInterval(g mtl.Formula) (mtl.Interval, error) {
	switch f := g.(type) {
	case mtl.Eventually:
		return f.Interval, nil
	case mtl.Always:
		return f.Interval, nil
	case mtl.Until:
		return f.Interval, nil
	case mtl.Release:
		return f.Interval, nil
	default:
		return mtl.Interval{}, fmt.Errorf("%w: %v", ErrUnsupportedTarget, g)
	}
}

// windowEnd is the inclusive upper bound, in offsets from t, of the
// exploration window starting at unrolled position t+lo: every caller
// scans an offset i from iv.Lo to this bound and probes position t+i.
// The bound is hi when the interval is bounded, or the offset that
// lands on trace.RightIdx(t+lo) when it is unbounded. Isolated here so
// no other part of this package computes modular offsets directly.
func windowEnd(t int, iv mtl.Interval, tr *trace.Trace) int {
	if !iv.Unbounded() {
		return iv.Hi
	}
	return tr.RightIdx(t+iv.Lo) - t
}

// directWeaken dispatches §4.4.1's direct-weakening rule for the
// temporal operator sitting at the hole.
func directWeaken(g mtl.Formula, t int, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	switch f := g.(type) {
	case mtl.Eventually:
		return weakenEventually(f, t, tr, m)
	case mtl.Always:
		return weakenAlways(f, t, tr, m)
	case mtl.Until:
		return weakenUntil(f, t, tr, m)
	case mtl.Release:
		return weakenRelease(f, t, tr, m)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedTarget, g)
	}
}

// weakenEventually is the extension-type direct weakening of
// Eventually(f, (lo,hi)): scan forward for the first witness and stretch
// hi out to meet it.
func weakenEventually(f mtl.Eventually, t int, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	iv := f.Interval
	if iv.Unbounded() {
		return nil, fmt.Errorf("%w: %v", ErrUnboundedInterval, f)
	}
	end := tr.RightIdx(t+iv.Lo) - t
	for i := iv.Lo; i <= end; i++ {
		ok, err := m.Get(f.Operand, t+i)
		if err != nil {
			return nil, err
		}
		if ok {
			hi := iv.Hi
			if i > hi {
				hi = i
			}
			return &mtl.Interval{Lo: iv.Lo, Hi: hi}, nil
		}
	}
	return nil, nil
}

// weakenAlways is the contraction-type direct weakening of
// Always(f, (lo,hi)): scan forward for the first violation and shrink hi
// back to just before it.
func weakenAlways(f mtl.Always, t int, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	iv := f.Interval
	end := windowEnd(t, iv, tr)
	for i := iv.Lo; i <= end; i++ {
		ok, err := m.Get(f.Operand, t+i)
		if err != nil {
			return nil, err
		}
		if !ok {
			if i == iv.Lo {
				return nil, nil
			}
			return &mtl.Interval{Lo: iv.Lo, Hi: i - 1}, nil
		}
	}
	orig := iv
	return &orig, nil
}

// weakenUntil is the extension-type direct weakening of
// Until(l, r, (lo,hi)): scan forward for an r-witness, as long as l keeps
// holding along the way.
func weakenUntil(f mtl.Until, t int, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	iv := f.Interval
	if iv.Unbounded() {
		return nil, fmt.Errorf("%w: %v", ErrUnboundedInterval, f)
	}
	end := tr.RightIdx(t+iv.Lo) - t
	for i := iv.Lo; i <= end; i++ {
		rOk, err := m.Get(f.Right, t+i)
		if err != nil {
			return nil, err
		}
		if rOk {
			hi := iv.Hi
			if i > hi {
				hi = i
			}
			return &mtl.Interval{Lo: iv.Lo, Hi: hi}, nil
		}
		lOk, err := m.Get(f.Left, t+i)
		if err != nil {
			return nil, err
		}
		if !lOk {
			break
		}
	}
	return nil, nil
}

// weakenRelease is the contraction-type direct weakening of
// Release(l, r, (lo,hi)): scan forward for an r-violation (shrink hi
// back to just before it) or an l-discharge (the original interval
// already holds).
func weakenRelease(f mtl.Release, t int, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	iv := f.Interval
	end := windowEnd(t, iv, tr)
	for i := iv.Lo; i <= end; i++ {
		rOk, err := m.Get(f.Right, t+i)
		if err != nil {
			return nil, err
		}
		if !rOk {
			if i == iv.Lo {
				return nil, nil
			}
			return &mtl.Interval{Lo: iv.Lo, Hi: i - 1}, nil
		}
		lOk, err := m.Get(f.Left, t+i)
		if err != nil {
			return nil, err
		}
		if lOk {
			orig := iv
			return &orig, nil
		}
	}
	orig := iv
	return &orig, nil
}

// weakenEventuallyCtx handles an Eventually context node: the hole
// weakening is required at only one position within the window, so the
// closest (min-diff) candidate wins.
func weakenEventuallyCtx(c mtlctx.Context, g mtl.Formula, t int, iv mtl.Interval, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	orig, err := targetInterval(g)
	if err != nil {
		return nil, err
	}
	end := windowEnd(t, iv, tr)
	var best *mtl.Interval
	for i := iv.Lo; i <= end; i++ {
		cand, err := aux(c, g, t+i, tr, m)
		if err != nil {
			return nil, err
		}
		if cand == nil {
			continue
		}
		if best == nil || orig.Diff(*cand) < orig.Diff(*best) {
			best = cand
		}
	}
	return best, nil
}

// weakenAlwaysCtx handles an Always context node: every position in the
// window must be satisfiable, so a single failure propagates as None,
// and the surviving candidates are reconciled by taking the weakest
// (max-diff) one.
func weakenAlwaysCtx(c mtlctx.Context, g mtl.Formula, t int, iv mtl.Interval, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	orig, err := targetInterval(g)
	if err != nil {
		return nil, err
	}
	end := windowEnd(t, iv, tr)
	var best *mtl.Interval
	for i := iv.Lo; i <= end; i++ {
		cand, err := aux(c, g, t+i, tr, m)
		if err != nil {
			return nil, err
		}
		if cand == nil {
			return nil, nil
		}
		if best == nil || orig.Diff(*cand) > orig.Diff(*best) {
			best = cand
		}
	}
	return best, nil
}

// weakenUntilLeftCtx handles Until with the hole in the left (waiting)
// operand: scan until the right operand witnesses the Until (no further
// weakening of the left side is needed past that point) or the
// recursion fails, accumulating only the positions strictly before
// either stop condition, then pick the weakest (max-diff) one.
func weakenUntilLeftCtx(c mtlctx.Context, right mtl.Formula, g mtl.Formula, t int, iv mtl.Interval, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	orig, err := targetInterval(g)
	if err != nil {
		return nil, err
	}
	end := windowEnd(t, iv, tr)
	var candidates []mtl.Interval
	for i := iv.Lo; i <= end; i++ {
		cand, err := aux(c, g, t+i, tr, m)
		if err != nil {
			return nil, err
		}
		if cand == nil {
			break
		}
		rOk, err := m.Get(right, t+i)
		if err != nil {
			return nil, err
		}
		if rOk {
			break
		}
		candidates = append(candidates, *cand)
	}
	if len(candidates) == 0 {
		return &orig, nil
	}
	best := candidates[0]
	for _, cd := range candidates[1:] {
		if orig.Diff(cd) > orig.Diff(best) {
			best = cd
		}
	}
	return &best, nil
}

// weakenUntilRightCtx handles Until with the hole in the right
// (releasing) operand: every position while the left operand still
// holds is a potential witness, so accumulate each and take the
// closest (min-diff) candidate.
func weakenUntilRightCtx(left mtl.Formula, c mtlctx.Context, g mtl.Formula, t int, iv mtl.Interval, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	orig, err := targetInterval(g)
	if err != nil {
		return nil, err
	}
	end := windowEnd(t, iv, tr)
	var candidates []mtl.Interval
	for i := iv.Lo; i <= end; i++ {
		cand, err := aux(c, g, t+i, tr, m)
		if err != nil {
			return nil, err
		}
		if cand != nil {
			candidates = append(candidates, *cand)
		}
		lOk, err := m.Get(left, t+i)
		if err != nil {
			return nil, err
		}
		if !lOk {
			break
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	best := candidates[0]
	for _, cd := range candidates[1:] {
		if orig.Diff(cd) < orig.Diff(best) {
			best = cd
		}
	}
	return &best, nil
}

// weakenReleaseLeftCtx handles Release with the hole in the left
// (releasing) operand: the right operand must keep holding for the
// recursion to matter at all, so stop as soon as it fails and take the
// closest (min-diff) candidate among the positions visited.
func weakenReleaseLeftCtx(c mtlctx.Context, right mtl.Formula, g mtl.Formula, t int, iv mtl.Interval, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	orig, err := targetInterval(g)
	if err != nil {
		return nil, err
	}
	end := windowEnd(t, iv, tr)
	var candidates []mtl.Interval
	for i := iv.Lo; i <= end; i++ {
		rOk, err := m.Get(right, t+i)
		if err != nil {
			return nil, err
		}
		if !rOk {
			break
		}
		cand, err := aux(c, g, t+i, tr, m)
		if err != nil {
			return nil, err
		}
		if cand != nil {
			candidates = append(candidates, *cand)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	best := candidates[0]
	for _, cd := range candidates[1:] {
		if orig.Diff(cd) < orig.Diff(best) {
			best = cd
		}
	}
	return &best, nil
}

// weakenReleaseRightCtx handles Release with the hole in the right (held)
// operand: scan while accumulating, stopping as soon as the recursion
// fails or the left operand discharges the release, then take the
// weakest (max-diff) candidate among the positions visited.
func weakenReleaseRightCtx(left mtl.Formula, c mtlctx.Context, g mtl.Formula, t int, iv mtl.Interval, tr *trace.Trace, m *marking.Marking) (*mtl.Interval, error) {
	orig, err := targetInterval(g)
	if err != nil {
		return nil, err
	}
	end := windowEnd(t, iv, tr)
	var candidates []mtl.Interval
	for i := iv.Lo; i <= end; i++ {
		cand, err := aux(c, g, t+i, tr, m)
		if err != nil {
			return nil, err
		}
		if cand == nil {
			break
		}
		candidates = append(candidates, *cand)
		lOk, err := m.Get(left, t+i)
		if err != nil {
			return nil, err
		}
		if lOk {
			break
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	best := candidates[0]
	for _, cd := range candidates[1:] {
		if orig.Diff(cd) > orig.Diff(best) {
			best = cd
		}
	}
	return &best, nil
}
