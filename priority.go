// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchmaker

// drawOrder draws the single tie-break. order[k] is the applicant at
// position k, rank[i] is the position of applicant i. Lower goes first.
func drawOrder(n int, rnd Rand) (order, rank []int) {
	order = make([]int, n)
	for i := range order {
		order[i] = i
	}
	rnd.Shuffle(n, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	rank = make([]int, n)
	for k, i := range order {
		rank[i] = k
	}
	return
}
