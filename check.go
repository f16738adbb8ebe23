package bintree

import (
	"fmt"
	"slices"
)

// Check validates that the structure below n is a tree: every node is
// reachable from n on exactly one path. Shared subtrees and cycles, which
// may result from careless fluent attachment, are reported as ErrNotATree.
//
// Check terminates for arbitrary pointer structures.
func (n *Node[K]) Check() error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrIllegalArguments)
	}
	seen := make(map[*Node[K]]Path)
	return n.checkNode(seen, Path{})
}

func (n *Node[K]) checkNode(seen map[*Node[K]]Path, path Path) error {
	if first, ok := seen[n]; ok {
		return fmt.Errorf("%w: node %v at %q is also reachable at %q",
			ErrNotATree, n.key, first.String(), path.String())
	}
	seen[n] = path
	if n.left != nil {
		if err := n.left.checkNode(seen, append(slices.Clip(path), Left)); err != nil {
			return err
		}
	}
	if n.right != nil {
		if err := n.right.checkNode(seen, append(slices.Clip(path), Right)); err != nil {
			return err
		}
	}
	return nil
}

// CheckComplete validates that the structure below n is a complete binary
// tree: all levels are full except possibly the last, which is filled from
// the left without gaps. Structural errors are reported as by Check,
// violations of completeness as ErrIncomplete.
func (n *Node[K]) CheckComplete() error {
	if err := n.Check(); err != nil {
		return err
	}
	// Scanning child slots in level order, a complete tree never shows an
	// occupied slot after the first empty one.
	type entry struct {
		node *Node[K]
		path Path
	}
	queue := []entry{{node: n, path: Path{}}}
	var gap Path
	for head := 0; head < len(queue); head++ {
		e := queue[head]
		for _, side := range [...]Side{Left, Right} {
			child := e.node.left
			if side == Right {
				child = e.node.right
			}
			path := append(slices.Clip(e.path), side)
			if child == nil {
				if gap == nil {
					gap = path
				}
				continue
			}
			if gap != nil {
				T().Debugf("bintree: node at %q follows empty slot %q", path, gap)
				return fmt.Errorf("%w: node at %q follows empty slot %q",
					ErrIncomplete, path.String(), gap.String())
			}
			queue = append(queue, entry{node: child, path: path})
		}
	}
	return nil
}
