// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/someonegg/matchmaker/roster"
)

const input = `
categories:
  - name: Cooking
    capacity: 10
  - name: Reading
    capacity: 10
  - name: Walking
    capacity: 5
students:
  - name: Bert
    preferences: [Cooking, Reading]
  - name: Suze
    preferences: [Reading, Cooking]
    exclude: [Walking]
  - name: Lisa
matcher:
  seed: 11
`

func writeInput(t *testing.T, data string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(file, []byte(data), 0644))
	return file
}

func TestDoMatch(t *testing.T) {
	color.NoColor = true

	dir := t.TempDir()
	opts := matchOptions{
		inputFile:   writeInput(t, input),
		outputFile:  filepath.Join(dir, "report.json"),
		metricsFile: filepath.Join(dir, "metrics.prom"),
	}

	var out bytes.Buffer
	require.NoError(t, doMatch(context.Background(), &out, opts))

	assert.Contains(t, out.String(), "mode: single, seed: 11")
	assert.Contains(t, out.String(), "Cooking: 1/10\n - Bert\n")
	assert.Contains(t, out.String(), "Reading: 1/10\n - Suze\n")
	assert.Contains(t, out.String(), "Not placeable:\n - Lisa\n")

	assert.FileExists(t, opts.outputFile)
	assert.FileExists(t, opts.metricsFile)
}

func TestDoMatch_Overrides(t *testing.T) {
	color.NoColor = true

	multiple, fillOpen, seed := true, true, uint64(5)
	opts := matchOptions{
		inputFile:  writeInput(t, input),
		outputFile: filepath.Join(t.TempDir(), "report.json"),
		multiple:   &multiple,
		fillOpen:   &fillOpen,
		seed:       &seed,
	}

	var out bytes.Buffer
	require.NoError(t, doMatch(context.Background(), &out, opts))
	assert.Contains(t, out.String(), "mode: multiple, seed: 5")
	assert.Contains(t, out.String(), "All students could be placed.")

	data, err := os.ReadFile(opts.outputFile)
	require.NoError(t, err)
	report, err := decodeReport(data)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Summary.Placements)
}

func TestDoMatch_Errors(t *testing.T) {
	var out bytes.Buffer

	err := doMatch(context.Background(), &out, matchOptions{inputFile: filepath.Join(t.TempDir(), "none.yaml")})
	assert.ErrorContains(t, err, "load input file failed")

	bad := writeInput(t, "categories: [{name: Cooking, capacity: 1}]\nstudents: [{name: Bert, preferences: [Diving]}]\n")
	err = doMatch(context.Background(), &out, matchOptions{inputFile: bad})
	assert.ErrorContains(t, err, "match failed")
}

func TestDoValidate(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	require.NoError(t, doValidate(context.Background(), &out, writeInput(t, input)))
	assert.Contains(t, out.String(), "is valid: 3 categories, 3 students")

	bad := writeInput(t, "categories: [{name: Cooking, capacity: -1}]\n")
	assert.ErrorContains(t, doValidate(context.Background(), &out, bad), "invalid input")
}

func decodeReport(data []byte) (*roster.Report, error) {
	var report roster.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
