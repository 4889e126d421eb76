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

package weaken

import "errors"

// ErrUnsupportedTarget is returned when the formula at the context's hole
// is not one of the four temporal operators Weaken knows how to widen.
var ErrUnsupportedTarget = errors.New("weaken: target subformula is not a temporal operator")

// ErrUnsupportedContext is returned when the recursion reaches a context
// node with no weakening rule of its own. PartialNNF eliminates Implies
// contexts before Weaken ever sees them; Next contexts have no rule
// because the specification does not define one.
var ErrUnsupportedContext = errors.New("weaken: context node has no weakening rule")

// ErrInternalNotContext is returned if the recursion reaches a Not
// context node. PartialNNF guarantees positive polarity at the hole, so
// a well-formed caller never triggers this; seeing it means the context
// passed to Weaken skipped partial-NNF preprocessing.
var ErrInternalNotContext = errors.New("weaken: internal error: Not context survived partial NNF")

// ErrUnboundedInterval is returned when direct weakening of Eventually or
// Until is attempted on an interval with an unbounded upper endpoint:
// the witness-search direct-weakening rule requires a finite hi to scan
// toward.
var ErrUnboundedInterval = errors.New("weaken: cannot directly weaken an unbounded interval")
