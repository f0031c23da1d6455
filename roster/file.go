// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roster

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadInput reads a .json, .yaml or .yml input file.
func LoadInput(file string) (*Input, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return DecodeInput(data, filepath.Ext(file))
}

// DecodeInput decodes data as YAML when ext is .yaml or .yml, JSON
// otherwise. Unknown fields are rejected.
func DecodeInput(data []byte, ext string) (*Input, error) {
	var in Input

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&in); err != nil {
			return nil, err
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&in); err != nil {
			return nil, err
		}
	}

	return &in, nil
}

func WriteReport(file string, report *Report) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(report); err != nil {
		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}
