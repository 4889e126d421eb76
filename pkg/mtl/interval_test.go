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

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  int
		wantErr bool
	}{
		{name: "default", lo: 0, hi: Unbounded},
		{name: "bounded", lo: 2, hi: 5},
		{name: "degenerate point", lo: 3, hi: 3},
		{name: "negative lo", lo: -1, hi: 5, wantErr: true},
		{name: "lo greater than hi", lo: 6, hi: 5, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInterval(tt.lo, tt.hi)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadInterval)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lo, got.Lo)
			assert.Equal(t, tt.hi, got.Hi)
		})
	}
}

func TestIntervalUnbounded(t *testing.T) {
	assert.True(t, Interval{Lo: 0, Hi: Unbounded}.Unbounded())
	assert.False(t, Interval{Lo: 0, Hi: 5}.Unbounded())
}

func TestIntervalString(t *testing.T) {
	assert.Equal(t, "[0,∞]", Interval{Lo: 0, Hi: Unbounded}.String())
	assert.Equal(t, "[2,5]", Interval{Lo: 2, Hi: 5}.String())
}

func TestIntervalDiff(t *testing.T) {
	tests := []struct {
		name      string
		orig      Interval
		candidate Interval
		want      int
	}{
		{name: "identical bounded", orig: Interval{2, 5}, candidate: Interval{2, 5}, want: 0},
		{name: "widened upper", orig: Interval{2, 5}, candidate: Interval{2, 8}, want: 3},
		{name: "widened lower", orig: Interval{2, 5}, candidate: Interval{0, 5}, want: 2},
		{name: "both widened", orig: Interval{2, 5}, candidate: Interval{1, 7}, want: 3},
		{name: "unbounded to unbounded", orig: Interval{2, Unbounded}, candidate: Interval{2, Unbounded}, want: 0},
		{name: "unbounded to finite", orig: Interval{2, Unbounded}, candidate: Interval{2, 10}, want: -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.orig.Diff(tt.candidate))
		})
	}
}
