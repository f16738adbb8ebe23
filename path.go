package bintree

import (
	"fmt"
	"strings"
	"unicode"
)

// Side selects one of the two child slots of a node.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "L"
	}
	return "R"
}

// Path addresses a node relative to a root, as the sequence of child slots
// taken from the root downwards. The empty path addresses the root itself.
type Path []Side

// ParsePath reads a path from a string of 'L' and 'R' characters
// (case-insensitive). The empty string denotes the root.
func ParsePath(s string) (Path, error) {
	path := make(Path, 0, len(s))
	for i, c := range s {
		switch unicode.ToUpper(c) {
		case 'L':
			path = append(path, Left)
		case 'R':
			path = append(path, Right)
		default:
			return nil, fmt.Errorf("%w: invalid path character %q at %d", ErrIllegalArguments, c, i)
		}
	}
	return path, nil
}

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Depth is the number of edges between the root and the addressed node.
func (p Path) Depth() int {
	return len(p)
}

// Index returns the position of the addressed node in level order within a
// complete binary tree, i.e. its index in an array-backed heap layout
// (root = 0, children of i at 2i+1 and 2i+2).
func (p Path) Index() int {
	index := 0
	for _, s := range p {
		index = 2*index + 1 + int(s)
	}
	return index
}

// At returns the node at path p below n.
func (n *Node[K]) At(p Path) (*Node[K], bool) {
	node := n
	for _, s := range p {
		if node == nil {
			return nil, false
		}
		if s == Left {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node, node != nil
}
