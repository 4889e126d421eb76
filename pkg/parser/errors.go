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

import "errors"

// ErrUnexpectedToken is returned when the parser encounters a token its
// current grammar rule cannot accept.
var ErrUnexpectedToken = errors.New("parser: unexpected token")

// ErrUnexpectedEOF is returned when the input ends before a grammar rule
// is satisfied.
var ErrUnexpectedEOF = errors.New("parser: unexpected end of input")

// ErrInvalidPath is returned by ParsePath when a path element is not "0"
// or "1".
var ErrInvalidPath = errors.New("parser: path elements must be 0 or 1")
