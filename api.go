// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matchmaker fairly assigns applicants to capacity limited slots.
//
// Only applicants express preferences, slots just have a capacity. Ties are
// broken by one random priority order shared by every slot (DA-STB,
// Deferred Acceptance with a Single Tie-Break).
package matchmaker

import "sort"

type Matcher interface {
	Match(applicants []Applicant, slots []Slot, rnd Rand) (MatchResult, error)
}

// Rand is the source of randomness used to draw the priority order.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

type Slot struct {
	Name     string
	Capacity int
}

type Applicant struct {
	ID          string
	Preferences []string // slot names, most preferred first
	Excluded    []string // slot names, always wins over Preferences
}

type MatchResult struct {
	// Placed maps every slot name to its accepted applicants, highest
	// priority first.
	Placed map[string][]Applicant

	// NotPlaceable holds the applicants without any placement, highest
	// priority first.
	NotPlaceable []Applicant

	// Order is the drawn priority order, applicant IDs highest first.
	Order []string
}

// SlotsOf returns the sorted names of the slots the applicant was placed in.
func (r MatchResult) SlotsOf(id string) []string {
	var names []string
	for name, applicants := range r.Placed {
		for i := range applicants {
			if applicants[i].ID == id {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// Priority returns the position of the applicant in Order, or -1.
func (r MatchResult) Priority(id string) int {
	for i, o := range r.Order {
		if o == id {
			return i
		}
	}
	return -1
}
