// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-numarray/simd"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report(&buf, "amd64", true))

	out := buf.String()
	assert.Contains(t, out, "Dispatch level: "+simd.CurrentLevel().String())
	assert.Contains(t, out, "=== golang.org/x/sys/cpu.X86 ===")
	assert.NotContains(t, out, "cpu.ARM64")
}

func TestReportWithoutFeatures(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report(&buf, "arm64", false))
	assert.NotContains(t, buf.String(), "===")
	assert.True(t, strings.HasPrefix(buf.String(), "GOOS: "))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReportWriteError(t *testing.T) {
	err := report(failingWriter{}, "amd64", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--features=false"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Lanes float64: ")
}
