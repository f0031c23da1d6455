// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchmaker

import (
	"fmt"

	"go.uber.org/multierr"
	"k8s.io/apimachinery/pkg/util/sets"
)

// problem is the validated, index based form of one matching run.
type problem struct {
	slots      []Slot
	applicants []Applicant

	prefs    [][]int // slot indexes per applicant, excluded slots removed
	excluded []sets.Set[string]
}

// Validate reports every malformed slot or applicant, nil if the input can
// be matched.
func Validate(applicants []Applicant, slots []Slot) error {
	_, err := newProblem(applicants, slots)
	return err
}

func newProblem(applicants []Applicant, slots []Slot) (*problem, error) {
	var errs error

	slotIndex := make(map[string]int, len(slots))
	for i, slot := range slots {
		if slot.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: slot #%d has no name", ErrEmptyIdentifier, i))
			continue
		}
		if _, ok := slotIndex[slot.Name]; ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: slot %q", ErrDuplicateIdentifier, slot.Name))
			continue
		}
		if slot.Capacity < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: slot %q has capacity %d", ErrInvalidCapacity, slot.Name, slot.Capacity))
		}
		slotIndex[slot.Name] = i
	}

	p := &problem{
		slots:      slots,
		applicants: applicants,
		prefs:      make([][]int, len(applicants)),
		excluded:   make([]sets.Set[string], len(applicants)),
	}

	ids := sets.New[string]()
	for i, applicant := range applicants {
		id := applicant.ID
		if id == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: applicant #%d has no id", ErrEmptyIdentifier, i))
			id = fmt.Sprintf("#%d", i)
		} else if ids.Has(id) {
			errs = multierr.Append(errs, fmt.Errorf("%w: applicant %q", ErrDuplicateIdentifier, id))
		}
		ids.Insert(id)

		excluded := sets.New[string]()
		for _, name := range applicant.Excluded {
			if _, ok := slotIndex[name]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("%w: applicant %q excludes %q", ErrUnknownSlotReference, id, name))
				continue
			}
			excluded.Insert(name)
		}
		p.excluded[i] = excluded

		seen := sets.New[string]()
		prefs := make([]int, 0, len(applicant.Preferences))
		for _, name := range applicant.Preferences {
			s, ok := slotIndex[name]
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("%w: applicant %q prefers %q", ErrUnknownSlotReference, id, name))
				continue
			}
			if seen.Has(name) {
				errs = multierr.Append(errs, fmt.Errorf("%w: applicant %q lists %q twice", ErrDuplicateIdentifier, id, name))
				continue
			}
			seen.Insert(name)
			if excluded.Has(name) {
				continue
			}
			prefs = append(prefs, s)
		}
		p.prefs[i] = prefs
	}

	if errs != nil {
		return nil, errs
	}
	return p, nil
}
