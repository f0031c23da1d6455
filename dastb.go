// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchmaker

import (
	"sort"

	"k8s.io/klog/v2"
)

type dastbMatcher struct {
	multiple bool
	fillOpen bool
}

// DASTBMatcher returns the Deferred Acceptance - Single Tie-Break matcher.
//
// When multiple is set an applicant may be placed in every slot it ranks,
// as far as capacity and priority allow, otherwise in at most one.
// When fillOpen is set, applicants left without any placement are put in a
// random open slot they did not exclude, in priority order.
func DASTBMatcher(multiple, fillOpen bool) Matcher {
	return dastbMatcher{multiple, fillOpen}
}

// MatchSingle places each applicant in at most one slot.
func MatchSingle(applicants []Applicant, slots []Slot, rnd Rand) (MatchResult, error) {
	return DASTBMatcher(false, false).Match(applicants, slots, rnd)
}

// MatchMultiple places each applicant in as many of its ranked slots as
// capacity allows.
func MatchMultiple(applicants []Applicant, slots []Slot, rnd Rand) (MatchResult, error) {
	return DASTBMatcher(true, false).Match(applicants, slots, rnd)
}

func (m dastbMatcher) mode() string {
	if m.multiple {
		return "multiple"
	}
	return "single"
}

func (m dastbMatcher) Match(applicants []Applicant, slots []Slot, rnd Rand) (MatchResult, error) {
	if rnd == nil {
		return MatchResult{}, ErrNilRand
	}

	p, err := newProblem(applicants, slots)
	if err != nil {
		return MatchResult{}, err
	}

	order, rank := drawOrder(len(applicants), rnd)

	var (
		placed [][]int
		passes = 1
	)
	if m.multiple {
		placed, passes = p.acceptMultiple(rank)
	} else {
		placed, _ = deferAccept(p.prefs, p.capacities(), rank)
	}

	if m.fillOpen {
		p.fillOpen(placed, order, rnd)
	}

	for _, held := range placed {
		sortByRank(held, rank)
	}

	result := p.result(placed, order)

	klog.V(2).InfoS("Matched applicants to slots",
		"mode", m.mode(),
		"slots", len(slots),
		"applicants", len(applicants),
		"notPlaceable", len(result.NotPlaceable),
		"passes", passes)

	return result, nil
}

// deferAccept runs applicant proposing deferred acceptance. prefs holds the
// slot indexes each applicant will propose to, in order, caps the capacity
// of every slot. It returns the applicants each slot finally holds.
func deferAccept(prefs [][]int, caps []int, rank []int) (held [][]int, rounds int) {
	held = make([][]int, len(caps))
	proposals := make([][]int, len(caps))
	cursor := make([]int, len(prefs))

	free := make([]int, len(prefs))
	for i := range free {
		free[i] = i
	}

	var touched []int
	for len(free) > 0 {
		// All proposals of a round are in before any slot decides.
		touched = touched[:0]
		for _, a := range free {
			if cursor[a] >= len(prefs[a]) {
				continue
			}
			s := prefs[a][cursor[a]]
			cursor[a]++
			if len(proposals[s]) == 0 {
				touched = append(touched, s)
			}
			proposals[s] = append(proposals[s], a)
		}
		if len(touched) == 0 {
			break
		}
		rounds++

		free = free[:0]
		for _, s := range touched {
			candidates := append(held[s], proposals[s]...)
			proposals[s] = proposals[s][:0]

			sortByRank(candidates, rank)
			if len(candidates) > caps[s] {
				free = append(free, candidates[caps[s]:]...)
				candidates = candidates[:caps[s]]
			}
			held[s] = candidates
		}

		klog.V(4).InfoS("Deferred acceptance round",
			"round", rounds, "slots", len(touched), "rejected", len(free))
	}

	return
}

// acceptMultiple repeats deferred acceptance over the preferences not yet
// granted and the capacity not yet used, until a pass grants nothing.
func (p *problem) acceptMultiple(rank []int) (placed [][]int, passes int) {
	caps := p.capacities()
	placed = make([][]int, len(caps))

	remaining := make([][]int, len(p.prefs))
	for a, prefs := range p.prefs {
		remaining[a] = append([]int(nil), prefs...)
	}

	for {
		held, rounds := deferAccept(remaining, caps, rank)
		passes++

		granted := 0
		for s, applicants := range held {
			for _, a := range applicants {
				remaining[a] = removeInt(remaining[a], s)
			}
			placed[s] = append(placed[s], applicants...)
			caps[s] -= len(applicants)
			granted += len(applicants)
		}

		klog.V(4).InfoS("Deferred acceptance pass",
			"pass", passes, "rounds", rounds, "granted", granted)

		if granted == 0 {
			break
		}

		// Full slots are out of the game.
		for a := range remaining {
			n := 0
			for _, s := range remaining[a] {
				if caps[s] > 0 {
					remaining[a][n] = s
					n++
				}
			}
			remaining[a] = remaining[a][:n]
		}
	}

	return
}

func (p *problem) fillOpen(placed [][]int, order []int, rnd Rand) {
	has := make([]bool, len(p.applicants))
	for _, applicants := range placed {
		for _, a := range applicants {
			has[a] = true
		}
	}

	var open []int
	for _, a := range order {
		if has[a] {
			continue
		}

		open = open[:0]
		for s, slot := range p.slots {
			if len(placed[s]) < slot.Capacity && !p.excluded[a].Has(slot.Name) {
				open = append(open, s)
			}
		}
		if len(open) == 0 {
			continue
		}

		s := open[rnd.IntN(len(open))]
		placed[s] = append(placed[s], a)

		klog.V(4).InfoS("Filled open slot", "applicant", p.applicants[a].ID, "slot", p.slots[s].Name)
	}
}

func (p *problem) capacities() []int {
	caps := make([]int, len(p.slots))
	for s, slot := range p.slots {
		caps[s] = slot.Capacity
	}
	return caps
}

func (p *problem) result(placed [][]int, order []int) MatchResult {
	r := MatchResult{
		Placed: make(map[string][]Applicant, len(p.slots)),
		Order:  make([]string, len(order)),
	}

	has := make([]bool, len(p.applicants))
	for s, applicants := range placed {
		list := make([]Applicant, len(applicants))
		for i, a := range applicants {
			list[i] = p.applicants[a]
			has[a] = true
		}
		r.Placed[p.slots[s].Name] = list
	}

	for k, a := range order {
		r.Order[k] = p.applicants[a].ID
		if !has[a] {
			r.NotPlaceable = append(r.NotPlaceable, p.applicants[a])
		}
	}

	return r
}

func sortByRank(applicants []int, rank []int) {
	sort.Slice(applicants, func(i, j int) bool {
		return rank[applicants[i]] < rank[applicants[j]]
	})
}

func removeInt(s []int, v int) []int {
	for i := range s {
		if s[i] == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
