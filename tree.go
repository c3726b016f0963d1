package flattree

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/celestiaorg/flattree/digest"
	"github.com/celestiaorg/flattree/internal"
)

var (
	ErrNoLeaves        = errors.New("a tree needs at least one leaf")
	ErrIndexOutOfRange = errors.New("node index out of range")
)

// Bytes is the set of item types a tree can be built from.
type Bytes interface {
	~[]byte | ~string
}

// Tree is a binary Merkle tree stored as one flat, level-order slice of
// digests: the leaves come first, in input order, followed by every upper
// level from left to right. The last stored digest is the root.
//
// An odd level promotes its last node to the next level unchanged, so the
// same digest can appear on several levels of an unbalanced tree.
//
// A Tree is immutable once returned by New.
type Tree[D digest.Digest] struct {
	nodes []D

	leaves   int
	height   int
	capacity int
	hashSize int
}

// New hashes every item into a leaf and combines the leaves level by level
// until a single root remains. It returns ErrNoLeaves if items is empty.
//
// If h is a digest.BatchHasher every level is combined with a single
// HashPairs call instead of one digest.HashPair call per pair.
func New[D digest.Digest, T Bytes](h digest.Hasher[D], items []T, setters ...Option) (*Tree[D], error) {
	// default options:
	opts := &Options{
		LeafWorkers: 1,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, setter := range setters {
		setter(opts)
	}

	if len(items) == 0 {
		return nil, ErrNoLeaves
	}

	t := &Tree[D]{
		leaves:   len(items),
		height:   internal.Height(len(items)),
		hashSize: h.Size(),
	}
	t.capacity = internal.Capacity(t.height)
	// the capacity hint is too small for some leaf counts
	t.nodes = make([]D, len(items), max(t.capacity, internal.StoredNodes(len(items))))

	hashLeaves(h, items, t.nodes, opts.LeafWorkers)
	if err := t.buildParents(h); err != nil {
		return nil, err
	}

	opts.Logger.Debug("Built flat tree",
		"leaves", t.leaves,
		"height", t.height,
		"capacity", t.capacity,
		"nodes", len(t.nodes),
	)

	if opts.NodeVisitor != nil {
		for i, node := range t.nodes {
			opts.NodeVisitor(i, node.Bytes())
		}
	}
	return t, nil
}

// hashLeaves writes the digest of items[i] to dst[i].
func hashLeaves[D digest.Digest, T Bytes](h digest.Hasher[D], items []T, dst []D, workers int) {
	if workers <= 1 || len(items) < 2*workers {
		for i, item := range items {
			dst[i] = h.Hash([]byte(item))
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (len(items) + workers - 1) / workers
	for start := 0; start < len(items); start += chunk {
		start := start
		end := min(start+chunk, len(items))
		g.Go(func() error {
			for i := start; i < end; i++ {
				dst[i] = h.Hash([]byte(items[i]))
			}
			return nil
		})
	}
	//nolint:errcheck
	g.Wait()
}

// buildParents appends every level above the leaves to t.nodes.
//
// Case - Seven Leaves
//
//	[ L0, L1, L2, L3, L4, L5, L6,  L7(L0+L1), L8(L2+L3), L9(L4+L5), L6,  L10(L7+L8), L11(L9+L6),  L12(L10+L11) ]
//	  start = 0, length = 7        start = 7, length = 4                start = 11, length = 2     start = 13, length = 1
func (t *Tree[D]) buildParents(h digest.Hasher[D]) error {
	batch, _ := h.(digest.BatchHasher[D])

	for start, length := 0, t.leaves; length > 1; {
		pairs := length / 2
		if batch != nil {
			end := len(t.nodes)
			t.nodes = slices.Grow(t.nodes, pairs)[:end+pairs]
			if err := batch.HashPairs(t.nodes[end:], t.nodes[start:start+2*pairs]); err != nil {
				return fmt.Errorf("failed to combine level [%d, %d): %w", start, start+length, err)
			}
		} else {
			for i := 0; i < pairs; i++ {
				left := start + 2*i
				t.nodes = append(t.nodes, digest.HashPair(h, t.nodes[left], &t.nodes[left+1]))
			}
		}

		next := pairs
		// promote the unpaired node without hashing it
		if length%2 == 1 {
			t.nodes = append(t.nodes, t.nodes[start+length-1])
			next++
		}
		start, length = start+length, next
	}
	return nil
}

// Height returns the height estimate the tree was sized with. It is 1 for a
// single leaf and round(log2(leaves + 1)) otherwise.
func (t *Tree[D]) Height() int {
	return t.height
}

// Capacity returns the node count of a complete binary tree of Height(),
// 2^(Height()+1) - 1. This is an allocation hint: Len() may be larger.
func (t *Tree[D]) Capacity() int {
	return t.capacity
}

// Len returns the number of digests stored in the tree, promoted copies
// included.
func (t *Tree[D]) Len() int {
	return len(t.nodes)
}

func (t *Tree[D]) LeafCount() int {
	return t.leaves
}

// HashSize returns the byte width of the tree's digests.
func (t *Tree[D]) HashSize() int {
	return t.hashSize
}

// Node returns the digest stored at index i.
func (t *Tree[D]) Node(i int) (D, error) {
	if i < 0 || i >= len(t.nodes) {
		var zero D
		return zero, fmt.Errorf("%w: got: %v, want: [0, %v)", ErrIndexOutOfRange, i, len(t.nodes))
	}
	return t.nodes[i], nil
}

// Leaves returns a copy of the leaf digests in input order.
func (t *Tree[D]) Leaves() []D {
	return slices.Clone(t.nodes[:t.leaves])
}

// Nodes returns a copy of all stored digests in level order.
func (t *Tree[D]) Nodes() []D {
	return slices.Clone(t.nodes)
}
