// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roster uses matchmaker to place students in categories.
package roster

type Category struct {
	Name     string `json:"name" yaml:"name"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

type Student struct {
	Name        string   `json:"name" yaml:"name"`
	Preferences []string `json:"preferences" yaml:"preferences"` // category names, most wanted first
	Exclude     []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

type Input struct {
	Categories []*Category `json:"categories" yaml:"categories"`
	Students   []*Student  `json:"students" yaml:"students"`

	// Matcher holds the defaults for matching this input, can be nil.
	Matcher *Matcher `json:"matcher,omitempty" yaml:"matcher,omitempty"`
}

const (
	ModeSingle   = "single"
	ModeMultiple = "multiple"
)

type Matcher struct {
	// When set, a student can be placed in every category it prefers.
	Multiple bool `json:"multiple" yaml:"multiple"`

	// When set, students left without a category are put in a random open
	// category they did not exclude.
	FillOpen bool `json:"fill_open" yaml:"fill_open"`

	// Seed of the priority draw. A random seed is used when nil, the
	// report always records the one used.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	Metrics *Metrics `json:"-" yaml:"-"`

	seed uint64
}

type Report struct {
	RunID        string        `json:"run_id"`
	Seed         uint64        `json:"seed"`
	Mode         string        `json:"mode"`
	Categories   []*Assignment `json:"categories"`
	NotPlaceable []string      `json:"not_placeable"`
	Order        []string      `json:"order"` // priority, highest first
	Summary      Summary       `json:"summary"`
}

type Assignment struct {
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	Students []string `json:"students"`
}

type Summary struct {
	CategoriesCount   int `json:"categories"`
	StudentsCount     int `json:"students"`
	Capacity          int `json:"capacity"`
	Placements        int `json:"placements"`
	NotPlaceableCount int `json:"not_placeable"`
	OpenSpots         int `json:"open_spots"`
}
