// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roster

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlInput = `
categories:
  - name: Cooking
    capacity: 10
  - name: Walking
    capacity: 5
students:
  - name: Bert
    preferences: [Cooking]
  - name: Suze
    preferences: [Cooking]
    exclude: [Walking]
matcher:
  multiple: true
  seed: 7
`

const jsonInput = `{
  "categories": [{"name": "Cooking", "capacity": 10}, {"name": "Walking", "capacity": 5}],
  "students": [
    {"name": "Bert", "preferences": ["Cooking"]},
    {"name": "Suze", "preferences": ["Cooking"], "exclude": ["Walking"]}
  ],
  "matcher": {"multiple": true, "fill_open": false, "seed": 7}
}`

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()

	for _, c := range []struct {
		file string
		data string
	}{
		{"input.yaml", yamlInput},
		{"input.YML", yamlInput},
		{"input.json", jsonInput},
	} {
		t.Run(c.file, func(t *testing.T) {
			file := filepath.Join(dir, c.file)
			require.NoError(t, os.WriteFile(file, []byte(c.data), 0644))

			in, err := LoadInput(file)
			require.NoError(t, err)

			assert.Equal(t, []*Category{{"Cooking", 10}, {"Walking", 5}}, in.Categories)
			require.Len(t, in.Students, 2)
			assert.Equal(t, &Student{Name: "Suze", Preferences: []string{"Cooking"}, Exclude: []string{"Walking"}}, in.Students[1])
			require.NotNil(t, in.Matcher)
			assert.True(t, in.Matcher.Multiple)
			require.NotNil(t, in.Matcher.Seed)
			assert.Equal(t, uint64(7), *in.Matcher.Seed)
		})
	}

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadInput(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})
}

func TestDecodeInput_UnknownField(t *testing.T) {
	_, err := DecodeInput([]byte(`{"categories": [], "mentors": []}`), ".json")
	assert.Error(t, err)

	_, err = DecodeInput([]byte("mentors: []\n"), ".yaml")
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	file := filepath.Join(t.TempDir(), "report.json")

	report, err := (&Matcher{Seed: seed(1)}).Match(exampleInput())
	require.NoError(t, err)
	require.NoError(t, WriteReport(file, report))

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *report, got)
	assert.Contains(t, string(data), `"not_placeable": []`)
}

func TestWriteMetrics(t *testing.T) {
	file := filepath.Join(t.TempDir(), "metrics.prom")

	reg := prometheus.NewRegistry()
	_, err := (&Matcher{Seed: seed(1), Metrics: NewMetrics(reg)}).Match(exampleInput())
	require.NoError(t, err)
	require.NoError(t, WriteMetrics(file, reg))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `matchmaker_runs_total{mode="single",result="matched"} 1`))
}
