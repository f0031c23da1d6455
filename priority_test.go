// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchmaker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reverseRand reverses on every shuffle and always picks the first choice.
type reverseRand struct{}

func (reverseRand) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func (reverseRand) IntN(n int) int {
	return 0
}

func TestDrawOrder(t *testing.T) {
	t.Run("Reverse", func(t *testing.T) {
		order, rank := drawOrder(3, reverseRand{})

		assert.Equal(t, []int{2, 1, 0}, order)
		assert.Equal(t, []int{2, 1, 0}, rank)
	})

	t.Run("Empty", func(t *testing.T) {
		order, rank := drawOrder(0, reverseRand{})

		assert.Empty(t, order)
		assert.Empty(t, rank)
	})

	t.Run("Permutation", func(t *testing.T) {
		rnd := rand.New(rand.NewPCG(1, 2))
		order, rank := drawOrder(50, rnd)

		require.Len(t, order, 50)
		seen := make(map[int]bool)
		for k, i := range order {
			require.False(t, seen[i], "applicant %d drawn twice", i)
			seen[i] = true
			assert.Equal(t, k, rank[i])
		}
	})

	t.Run("Seeded", func(t *testing.T) {
		order1, _ := drawOrder(20, rand.New(rand.NewPCG(9, 9)))
		order2, _ := drawOrder(20, rand.New(rand.NewPCG(9, 9)))

		assert.Equal(t, order1, order2)
	})
}
