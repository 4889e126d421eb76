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

package traceio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilhamster/mtlweaken/pkg/trace"
)

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"states":[{"a":true},{"a":false}],"loop_start":0}`))
	require.NoError(t, err)
	require.Len(t, doc.States, 2)
	require.NotNil(t, doc.LoopStart)
	assert.Equal(t, 0, *doc.LoopStart)
}

func TestExpandCompactForwardFillsOmittedVariables(t *testing.T) {
	states := []RawState{
		{"a": true, "b": false},
		{"a": false},
		{},
		{"b": true},
	}
	got := ExpandCompact(states)
	assert.Equal(t, RawState{"a": true, "b": false}, got[0])
	assert.Equal(t, RawState{"a": false, "b": false}, got[1])
	assert.Equal(t, RawState{"a": false, "b": false}, got[2])
	assert.Equal(t, RawState{"a": false, "b": true}, got[3])
}

func TestToTraceWithDeclaredLoopStart(t *testing.T) {
	loopStart := 1
	doc := &Document{
		States: []RawState{
			{"a": true},
			{"a": false},
			{},
		},
		LoopStart: &loopStart,
	}
	tr, err := ToTrace(doc)
	require.NoError(t, err)
	require.NotNil(t, tr.LoopStart)
	assert.Equal(t, 1, *tr.LoopStart)
	assert.Equal(t, trace.State{"a": false}, tr.States[1])
	assert.Equal(t, trace.State{"a": false}, tr.States[2])
}

func TestToTraceWithoutLoopStartDetectsOne(t *testing.T) {
	doc := &Document{
		States: []RawState{
			{"a": true},
			{"a": false},
			{"a": true},
			{"a": false},
		},
	}
	tr, err := ToTrace(doc)
	require.NoError(t, err)
	require.NotNil(t, tr.LoopStart)
}

func TestToTraceIgnoresNonBooleanVariables(t *testing.T) {
	doc := &Document{
		States: []RawState{
			{"a": true, "count": float64(3), "label": "ready"},
		},
	}
	tr, err := ToTrace(doc)
	require.NoError(t, err)
	assert.Equal(t, trace.State{"a": true}, tr.States[0])
}

func TestToTraceRejectsEmptyTrace(t *testing.T) {
	_, err := ToTrace(&Document{})
	require.ErrorIs(t, err, ErrEmptyTrace)
}
