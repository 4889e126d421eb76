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

package reqcount

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountClassifiesEachKind(t *testing.T) {
	csv := "name,timing\n" +
		"r1,within 5 seconds\n" +
		"r2,for 10 seconds\n" +
		"r3,eventually\n" +
		"r4,always\n"

	totals, err := Count(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, Totals{Total: 4, Weakenable: 2, Extension: 1, Contraction: 1}, totals)
}

func TestCountIgnoresShortRows(t *testing.T) {
	csv := "name,timing\nr1\n"
	totals, err := Count(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)
}

func TestCountRejectsUnknownTiming(t *testing.T) {
	csv := "name,timing\nr1,sometime soon\n"
	_, err := Count(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestCountEmptyInputIsZero(t *testing.T) {
	totals, err := Count(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)
}
