package internal

import "math"

// Height returns the height estimate used to size a tree with the given
// number of leaves: 1 for a single leaf, otherwise round(log2(leaves + 1)).
//
// The estimate is computed in single precision and rounded half away from
// zero so that capacities match previously published layouts bit for bit.
// It is a pre-allocation hint only and is not the exact depth of the built
// tree for every leaf count.
func Height(leaves int) int {
	if leaves == 1 {
		return 1
	}
	x := float32(leaves) + 1
	return int(math.Round(float64(float32(math.Log2(float64(x))))))
}

// Capacity returns the node count of a complete binary tree of the given
// height: 2^(height+1) - 1.
func Capacity(height int) int {
	return 1<<(height+1) - 1
}

// StoredNodes returns the exact number of digests a flat tree with the
// given number of leaves stores. Every level of length n contributes
// floor(n/2) parents plus one promoted node if n is odd.
func StoredNodes(leaves int) int {
	total := leaves
	for n := leaves; n > 1; {
		n = n/2 + n%2
		total += n
	}
	return total
}
