package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"
	"sync/atomic"

	"github.com/guiguan/caster"
)

// Tree is a container for a binary tree which may be shared between
// goroutines for insertion.
//
// Tree does not serialize insertions. Instead it detects an insertion
// overlapping with another one and rejects it with ErrConcurrentInsert,
// leaving the tree untouched. Clients wanting to wait have to synchronize
// externally.
//
// Reading the tree via Root while insertions are in progress is not
// synchronized.
type Tree[K any] struct {
	root   *Node[K]
	size   atomic.Int64
	busy   atomic.Bool
	closed atomic.Bool
	cast   *caster.Caster // broadcaster for insertion events
}

// InsertEvent is published to subscribers of a Tree for every successful
// insertion.
type InsertEvent[K any] struct {
	Key   K
	Path  Path // position of the new leaf relative to the root
	Index int  // level-order position of the new leaf; see Path.Index
	Size  int  // number of nodes after the insertion
}

// NewTree creates a tree consisting of a root node holding key.
func NewTree[K any](key K) *Tree[K] {
	return TreeFrom(New(key))
}

// TreeFrom wraps an existing node structure. root must not be nil and is
// owned by the tree afterwards.
func TreeFrom[K any](root *Node[K]) *Tree[K] {
	assert(root != nil, "TreeFrom called with nil root")
	t := &Tree[K]{
		root: root,
		cast: caster.New(nil),
	}
	t.size.Store(int64(root.Size()))
	return t
}

// Root returns the root node of t.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Len returns the number of nodes in t.
func (t *Tree[K]) Len() int {
	return int(t.size.Load())
}

// Insert adds a leaf holding key in level order (see Node.Insert) and returns
// the path to the new leaf.
//
// If another insertion is in progress, Insert returns ErrConcurrentInsert
// without modifying the tree. After Close, Insert returns ErrTreeClosed.
//
// Subscribers receive events in insertion order. A subscriber not draining
// its channel will eventually block the inserting goroutine.
func (t *Tree[K]) Insert(key K) (Path, error) {
	if t.closed.Load() {
		return nil, ErrTreeClosed
	}
	if !t.busy.CompareAndSwap(false, true) {
		T().Infof("bintree: rejecting overlapping insert of %v", key)
		return nil, ErrConcurrentInsert
	}
	defer t.busy.Store(false)
	path := t.root.insert(key)
	size := t.size.Add(1)
	T().Debugf("bintree: inserted %v at %q", key, path)
	t.cast.Pub(InsertEvent[K]{
		Key:   key,
		Path:  path,
		Index: path.Index(),
		Size:  int(size),
	})
	return path, nil
}

// Subscribe registers for insertion events. The returned channel is closed
// when ctx is done or when the tree is closed. capacity is the buffer size
// of the subscription.
func (t *Tree[K]) Subscribe(ctx context.Context, capacity uint) (<-chan InsertEvent[K], error) {
	if ctx == nil {
		return nil, ErrIllegalArguments
	}
	if t.closed.Load() {
		return nil, ErrTreeClosed
	}
	sub, ok := t.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrTreeClosed
	}
	events := make(chan InsertEvent[K], capacity)
	go func() {
		defer close(events)
		for msg := range sub {
			ev, ok := msg.(InsertEvent[K])
			if !ok {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

// Close ends all subscriptions. Further insertions are rejected.
func (t *Tree[K]) Close() {
	if t.closed.Swap(true) {
		return
	}
	t.cast.Close()
}
