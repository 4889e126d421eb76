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

// Package traceio decodes the JSON trace documents §6 accepts as input,
// restoring nuXmv's compact-trace convention (a variable's value is
// omitted from a step when it hasn't changed) and falling back to loop
// detection when the document declares no loop_start.
package traceio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ilhamster/mtlweaken/pkg/trace"
)

// RawState is one step of a trace as decoded from JSON, before compact
// expansion: boolean, integer, or string values, any of which the wire
// format permits, though Marking only ever consults the boolean ones.
type RawState map[string]any

// Document is the on-disk JSON shape: a state sequence and an optional
// declared loop point. A nil LoopStart means "detect one, or treat the
// trace as finite".
type Document struct {
	States    []RawState `json:"states"`
	LoopStart *int       `json:"loop_start,omitempty"`
}

// Decode reads a Document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("traceio: decoding trace: %w", err)
	}
	return &doc, nil
}

// ExpandCompact forward-fills state variables omitted because they
// didn't change from the previous step, mirroring nuXmv's compact trace
// dump convention. The variable set is fixed by the first state; states
// is modified in place and also returned.
func ExpandCompact(states []RawState) []RawState {
	if len(states) == 0 {
		return states
	}
	variables := make([]string, 0, len(states[0]))
	for v := range states[0] {
		variables = append(variables, v)
	}
	for i, state := range states {
		for _, v := range variables {
			if _, ok := state[v]; !ok {
				state[v] = states[i-1][v]
			}
		}
	}
	return states
}

// ToTrace expands doc's compact states, filters them to their boolean
// variables, and builds a *trace.Trace: trace.New(with doc's declared
// LoopStart) if present, or trace.NewWithLoopDetection otherwise.
func ToTrace(doc *Document) (*trace.Trace, error) {
	if len(doc.States) == 0 {
		return nil, ErrEmptyTrace
	}
	expanded := ExpandCompact(doc.States)
	states := make([]trace.State, len(expanded))
	for i, raw := range expanded {
		st := make(trace.State, len(raw))
		for k, v := range raw {
			b, ok := v.(bool)
			if !ok {
				continue
			}
			st[k] = b
		}
		states[i] = st
	}
	if doc.LoopStart != nil {
		return trace.New(states, doc.LoopStart)
	}
	return trace.NewWithLoopDetection(states)
}
