// SPDX-License-Identifier: MIT

package bqm

import (
	"sort"
)

// sortedKeys returns the keys of a label map in lexicographic order.
func sortedKeys(h map[string]float64) []string {
	out := make([]string, 0, len(h))
	for k := range h {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// sortedPairs returns the keys of a pair map ordered by (first, second).
func sortedPairs(J map[[2]string]float64) [][2]string {
	out := make([][2]string, 0, len(J))
	for k := range J {
		out = append(out, k)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a][0] != out[b][0] {
			return out[a][0] < out[b][0]
		}
		return out[a][1] < out[b][1]
	})
	return out
}

// sortedInts returns the keys of an adjacency map in ascending order.
func sortedInts(nb map[int]float64) []int {
	out := make([]int, 0, len(nb))
	for k := range nb {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
