package simple

import (
	"crypto/sha256"
)

// FlatTree is a deliberately naive flat Merkle tree: every level is built as
// its own slice of digests and the levels are concatenated at the end. It is
// used to cross-check the flattree package.
type FlatTree struct {
	levels [][][]byte
}

func NewFlatTree(items [][]byte) *FlatTree {
	if len(items) == 0 {
		return &FlatTree{}
	}
	level := make([][]byte, len(items))
	for i, item := range items {
		level[i] = sum(item)
	}
	levels := [][][]byte{level}
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, sum(level[i], level[i+1]))
			} else {
				// odd node - promote to next level
				next = append(next, level[i])
			}
		}
		levels = append(levels, next)
		level = next
	}
	return &FlatTree{levels: levels}
}

// Nodes returns all levels concatenated, leaves first.
func (f *FlatTree) Nodes() [][]byte {
	var nodes [][]byte
	for _, level := range f.levels {
		nodes = append(nodes, level...)
	}
	return nodes
}

func (f *FlatTree) Root() []byte {
	if len(f.levels) == 0 {
		return nil
	}
	return f.levels[len(f.levels)-1][0]
}

// Depth returns the number of levels above the leaves.
func (f *FlatTree) Depth() int {
	if len(f.levels) == 0 {
		return 0
	}
	return len(f.levels) - 1
}

//nolint:errcheck
func sum(data ...[]byte) []byte {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
