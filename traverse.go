package bintree

import (
	"iter"
	"slices"
)

// RangeLevelOrder returns an iterator over all nodes of the subtree rooted at n
// in breadth-first order, left before right on each level.
//
// Iterating never modifies the tree.
func (n *Node[K]) RangeLevelOrder() iter.Seq[*Node[K]] {
	return func(yield func(*Node[K]) bool) {
		if n == nil {
			return
		}
		queue := []*Node[K]{n}
		for head := 0; head < len(queue); head++ {
			node := queue[head]
			if !yield(node) {
				return
			}
			if node.left != nil {
				queue = append(queue, node.left)
			}
			if node.right != nil {
				queue = append(queue, node.right)
			}
		}
	}
}

// Each visits all nodes of the subtree rooted at n in pre-order (node, then
// left subtree, then right subtree).
//
// The callback receives each node and its path relative to n; f may keep the
// path. Iteration stops at the first callback error and returns that error to
// the caller.
func (n *Node[K]) Each(f func(node *Node[K], path Path) error) error {
	if n == nil || f == nil {
		return nil
	}
	return n.each(f, Path{})
}

func (n *Node[K]) each(f func(*Node[K], Path) error, path Path) error {
	if err := f(n, path); err != nil {
		return err
	}
	if n.left != nil {
		if err := n.left.each(f, append(slices.Clip(path), Left)); err != nil {
			return err
		}
	}
	if n.right != nil {
		if err := n.right.each(f, append(slices.Clip(path), Right)); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns the keys of the subtree rooted at n in level order.
func (n *Node[K]) Keys() []K {
	var keys []K
	for node := range n.RangeLevelOrder() {
		keys = append(keys, node.key)
	}
	return keys
}

// Size returns the number of nodes of the subtree rooted at n.
func (n *Node[K]) Size() int {
	size := 0
	for range n.RangeLevelOrder() {
		size++
	}
	return size
}

// Height returns the number of levels of the subtree rooted at n, where 0
// means nil and 1 means a leaf.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.Height(), n.right.Height())
}
