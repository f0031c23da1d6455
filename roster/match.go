// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roster

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/someonegg/matchmaker"
)

func (m *Matcher) init() {
	if m.Seed == nil {
		m.seed = rand.Uint64()
	} else {
		m.seed = *m.Seed
	}
}

func (m *Matcher) mode() string {
	if m.Multiple {
		return ModeMultiple
	}
	return ModeSingle
}

// Check reports every problem of the input that would fail a match.
func Check(in *Input) error {
	return matchmaker.Validate(genApplicants(in.Students), genSlots(in.Categories))
}

func (m *Matcher) Match(in *Input) (*Report, error) {
	m.init()

	start := time.Now()
	slots := genSlots(in.Categories)
	applicants := genApplicants(in.Students)

	rnd := rand.New(rand.NewPCG(m.seed, m.seed))
	result, err := matchmaker.DASTBMatcher(m.Multiple, m.FillOpen).Match(applicants, slots, rnd)
	if err != nil {
		m.Metrics.observeFailure(m.mode())
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	report := &Report{
		RunID:        uuid.NewString(),
		Seed:         m.seed,
		Mode:         m.mode(),
		Categories:   genAssignments(in.Categories, result),
		NotPlaceable: names(result.NotPlaceable),
		Order:        result.Order,
	}
	report.Summary = summarize(report, len(in.Students))

	m.Metrics.observe(report, time.Since(start))

	klog.V(2).InfoS("Matched students to categories",
		"runID", report.RunID,
		"seed", report.Seed,
		"mode", report.Mode,
		"placements", report.Summary.Placements,
		"notPlaceable", report.Summary.NotPlaceableCount,
		"openSpots", report.Summary.OpenSpots)

	return report, nil
}

func genSlots(categories []*Category) []matchmaker.Slot {
	slots := make([]matchmaker.Slot, len(categories))

	for i, category := range categories {
		if category == nil {
			continue
		}
		slots[i].Name = category.Name
		slots[i].Capacity = category.Capacity
	}

	return slots
}

func genApplicants(students []*Student) []matchmaker.Applicant {
	applicants := make([]matchmaker.Applicant, len(students))

	for i, student := range students {
		if student == nil {
			continue
		}
		applicants[i].ID = student.Name
		applicants[i].Preferences = student.Preferences
		applicants[i].Excluded = student.Exclude
	}

	return applicants
}

func genAssignments(categories []*Category, result matchmaker.MatchResult) []*Assignment {
	assignments := make([]*Assignment, len(categories))

	for i, category := range categories {
		assignments[i] = &Assignment{
			Name:     category.Name,
			Capacity: category.Capacity,
			Students: names(result.Placed[category.Name]),
		}
	}

	return assignments
}

func summarize(report *Report, students int) Summary {
	summ := Summary{
		CategoriesCount:   len(report.Categories),
		StudentsCount:     students,
		NotPlaceableCount: len(report.NotPlaceable),
	}

	for _, assignment := range report.Categories {
		summ.Capacity += assignment.Capacity
		summ.Placements += len(assignment.Students)
	}
	summ.OpenSpots = summ.Capacity - summ.Placements

	return summ
}

func names(applicants []matchmaker.Applicant) []string {
	out := make([]string, len(applicants))
	for i := range applicants {
		out[i] = applicants[i].ID
	}
	return out
}
