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

import "errors"

// ErrBadInterval is returned by NewInterval (and any constructor
// embedding it) when an interval violates the §3 Interval invariants:
// lo < 0, hi < 0, or lo > hi.
var ErrBadInterval = errors.New("mtl: invalid interval")

// ErrUnsupportedConstruct is returned by functions that switch
// exhaustively over Formula variants when handed an unrecognised one
// (a nil Formula, or one outside this package).
var ErrUnsupportedConstruct = errors.New("mtl: unsupported formula construct")
