package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Node is a vertex of a binary tree, carrying a key of type K.
//
// A node exclusively owns its children. Attaching a node to more than one
// parent, or to one of its own descendents, breaks the tree property; Check
// will detect this.
//
// K may be any type. The tree never compares keys.
type Node[K any] struct {
	key   K
	left  *Node[K]
	right *Node[K]
}

// New creates a leaf node holding key.
func New[K any](key K) *Node[K] {
	return &Node[K]{key: key}
}

// Build creates a root node holding key and grows it by inserting keys in
// level order. The result is a complete binary tree with len(keys)+1 nodes.
func Build[K any](key K, keys ...K) *Node[K] {
	root := New(key)
	for _, k := range keys {
		root.Insert(k)
	}
	return root
}

// Key returns the payload of node n.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the left child of n, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf reports whether n has no children.
func (n *Node[K]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// WithLeft attaches child as the left subtree of n and returns n, allowing
// calls to be chained. A previous left subtree is dropped.
func (n *Node[K]) WithLeft(child *Node[K]) *Node[K] {
	assert(n != nil, "WithLeft called on nil node")
	if n.left != nil {
		T().Debugf("bintree: replacing left subtree of node %v", n.key)
	}
	n.left = child
	return n
}

// WithRight attaches child as the right subtree of n and returns n, allowing
// calls to be chained. A previous right subtree is dropped.
func (n *Node[K]) WithRight(child *Node[K]) *Node[K] {
	assert(n != nil, "WithRight called on nil node")
	if n.right != nil {
		T().Debugf("bintree: replacing right subtree of node %v", n.key)
	}
	n.right = child
	return n
}

// Insert adds a leaf holding key at the first free child slot of the subtree
// rooted at n, searching breadth-first and left before right.
//
// Inserting into a complete tree keeps it complete.
func (n *Node[K]) Insert(key K) {
	n.insert(key)
}

// slot is an entry of the insertion queue. parent is the queue position of
// the entry node was reached from, or -1 for the scan root.
type slot[K any] struct {
	node   *Node[K]
	parent int
	side   Side
}

// insert performs the level-order insertion and returns the path from n to
// the new leaf.
//
// The queue is a slice with a moving head; visited entries stay in place so
// that the path to the insertion point can be reconstructed from parent links.
func (n *Node[K]) insert(key K) Path {
	assert(n != nil, "Insert called on nil node")
	queue := []slot[K]{{node: n, parent: -1}}
	for head := 0; head < len(queue); head++ {
		current := queue[head].node
		if current.left == nil {
			current.left = New(key)
			return slotPath(queue, head, Left)
		}
		queue = append(queue, slot[K]{node: current.left, parent: head, side: Left})
		if current.right == nil {
			current.right = New(key)
			return slotPath(queue, head, Right)
		}
		queue = append(queue, slot[K]{node: current.right, parent: head, side: Right})
	}
	// a finite tree always has a free slot on its lowest level
	assert(false, "Insert found no free slot")
	return nil
}

func slotPath[K any](queue []slot[K], at int, last Side) Path {
	var path Path
	path = append(path, last)
	for i := at; queue[i].parent >= 0; i = queue[i].parent {
		path = append(path, queue[i].side)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
