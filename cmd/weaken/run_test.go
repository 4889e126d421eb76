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

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTraceFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := dir + "/trace.json"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunRunWeakensEventuallyOfAlways(t *testing.T) {
	logger = zap.NewNop().Sugar()
	runFormula = "F G[0,2] a"
	runTraceFile = writeTraceFile(t, `{"states":[{"a":false},{"a":false},{"a":false},{"a":true},{"a":true}],"loop_start":0}`)
	runPath = "0"
	runAt = 0

	out := captureStdout(t, func() {
		require.NoError(t, runRun(runCmd, nil))
	})
	assert.Equal(t, "[0,1]\n", out)
}

func TestRunRunPrintsExactNoWeakeningMessage(t *testing.T) {
	logger = zap.NewNop().Sugar()
	runFormula = "F[0,0] a"
	runTraceFile = writeTraceFile(t, `{"states":[{"a":false}],"loop_start":0}`)
	runPath = ""
	runAt = 0

	out := captureStdout(t, func() {
		require.NoError(t, runRun(runCmd, nil))
	})
	assert.Equal(t, "No suitable weakening of the interval exists\n", out)
}

func TestRunMarkPrintsPerPositionTruth(t *testing.T) {
	logger = zap.NewNop().Sugar()
	markFormula = "a"
	markTraceFile = writeTraceFile(t, `{"states":[{"a":true},{"a":false}],"loop_start":0}`)

	out := captureStdout(t, func() {
		require.NoError(t, runMark(markCmd, nil))
	})
	assert.Equal(t, "0: true\n1: false\n", out)
}
