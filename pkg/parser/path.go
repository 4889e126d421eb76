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

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses the comma-separated `0`/`1` descent list of §6 (e.g.
// "0,1" means "left child of the root, then right child"). The empty
// string parses to an empty path (the root itself).
func ParsePath(input string) ([]int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Split(trimmed, ",")
	path := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || (n != 0 && n != 1) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, part)
		}
		path[i] = n
	}
	return path, nil
}
