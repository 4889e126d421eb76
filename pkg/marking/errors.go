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

package marking

import "errors"

// ErrPropositionMissing is returned when a formula references a
// proposition that does not appear as a boolean value in every state of
// the trace.
var ErrPropositionMissing = errors.New("marking: proposition not found in trace")

// ErrUnsupportedConstruct is returned when Marking is asked to evaluate
// a formula shape it does not recognise.
var ErrUnsupportedConstruct = errors.New("marking: unsupported formula construct")
