package flattree

import "log/slog"

// NodeVisitorFn is called with the index and raw bytes of every node stored
// in a tree.
type NodeVisitorFn = func(index int, node []byte)

type Options struct {
	// LeafWorkers is the number of goroutines used to hash leaves.
	LeafWorkers int
	NodeVisitor NodeVisitorFn
	Logger      *slog.Logger
}

type Option func(*Options)

// LeafWorkers sets the number of goroutines leaves are hashed with (defaults
// to 1). Digests are always stored in input order, whatever the number of
// workers.
func LeafWorkers(n int) Option {
	if n < 1 {
		panic("Got invalid number of leaf workers. Expected int greater or equal to 1.")
	}
	return func(opts *Options) {
		opts.LeafWorkers = n
	}
}

// NodeVisitor sets a function that is called for every node of a freshly
// built tree, in storage order.
func NodeVisitor(nodeVisitorFn NodeVisitorFn) Option {
	return func(opts *Options) {
		opts.NodeVisitor = nodeVisitorFn
	}
}

// Logger sets the structured logger a tree reports its construction to.
// By default nothing is logged.
func Logger(log *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = log
	}
}
