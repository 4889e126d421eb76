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

// Package reqcount classifies a CSV sheet of natural-language timing
// requirements ("within 5 seconds", "always", "for 10 seconds", ...) by
// which kind of interval weakening a formula built from that phrasing
// would admit, and tallies them. cmd/weaken's "lower --stats" flag uses
// this to report, ahead of an actual weakening run, how many of a
// model's requirements could plausibly be loosened.
package reqcount

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// extensionPrefixes are timing phrases an Eventually- or Until-shaped
// formula uses: weakening them extends the interval's upper bound.
var extensionPrefixes = []string{
	"immediately",
	"at the next timepoint",
	"within ",
	"until buttonUnPressOr60Seconds",
	"until (P_insp >= MaxP_insp | inspClock >= inspiratoryTime)",
}

// contractionPrefixes are timing phrases an Always- or Release-shaped
// formula uses: weakening them shrinks the interval's upper bound.
var contractionPrefixes = []string{
	"for ",
}

// neitherPrefixes are timing phrases with no finite interval to
// weaken (unbounded Eventually/Always/Until, or a description that
// isn't itself a bound).
var neitherPrefixes = []string{
	"eventually",
	"always",
	"until l0",
	"until p",
	"until off",
	"until (diff(r(i),y(i)) < e)",
	"until (diff(setNL,observedNL) > NLmin)",
	"until (diff(setNL,observedNL) < NLmin)",
	"never",
	"after ",
}

// Totals holds one file's classification tally.
type Totals struct {
	Total       int
	Weakenable  int
	Extension   int
	Contraction int
}

func hasAnyPrefix(value string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(value, p) {
			return true
		}
	}
	return false
}

// Count reads a CSV requirements sheet from r: a header row followed by
// rows whose second column is a timing phrase. It returns an error if
// any row's timing phrase matches none of the known prefixes.
func Count(r io.Reader) (Totals, error) {
	var totals Totals

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return totals, nil
	}
	if err != nil {
		return totals, fmt.Errorf("reqcount: reading header: %w", err)
	}
	_ = header

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return totals, fmt.Errorf("reqcount: reading row: %w", err)
		}
		if len(row) < 2 {
			continue
		}
		timing := row[1]
		totals.Total++

		switch {
		case hasAnyPrefix(timing, extensionPrefixes):
			totals.Extension++
			totals.Weakenable++
		case hasAnyPrefix(timing, contractionPrefixes):
			totals.Contraction++
			totals.Weakenable++
		case hasAnyPrefix(timing, neitherPrefixes):
			// Not weakenable; counted in Total only.
		default:
			return totals, fmt.Errorf("reqcount: unrecognized timing phrase %q", timing)
		}
	}

	return totals, nil
}
