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

package trace

import "reflect"

// DetectLoop searches states for the largest j such that some earlier
// index i < j repeats state[j], and reports (i, j, true) if found. When
// no repeated state exists the trace is finite and DetectLoop returns
// (0, 0, false).
//
// Callers that accept a raw state list with no declared loop point use
// this to recover a lasso: truncate states to [:j] and use i as
// LoopStart.
func DetectLoop(states []State) (i, j int, found bool) {
	for j := len(states) - 1; j > 0; j-- {
		for i := 0; i < j; i++ {
			if reflect.DeepEqual(states[i], states[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// NewWithLoopDetection builds a Trace from a raw state list with no
// declared loop_start, first attempting DetectLoop; it falls back to a
// finite trace if no repeated state is found.
func NewWithLoopDetection(states []State) (*Trace, error) {
	i, j, found := DetectLoop(states)
	if !found {
		return New(states, nil)
	}
	truncated := states[:j]
	loopStart := i
	return New(truncated, &loopStart)
}
