package bintree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K any] struct {
	idTable map[*Node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of the tree rooted at root in Graphviz DOT
// format (for debugging purposes). Empty child slots of inner nodes are drawn
// as small empty circles.
//
// If root is not a tree (see Check), an empty digraph is written.
func Tree2Dot[K any](root *Node[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if err := root.Check(); err != nil {
		T().Errorf("tree DOT: %s", err.Error())
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[K]()
	var nodelist, edgelist strings.Builder
	err := root.Each(func(node *Node[K], path Path) error {
		ID := ids.alloc(node)
		label := escapeLabel(fmt.Sprintf("%v", node.key))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node.IsLeaf()))
		if node.IsLeaf() {
			return nil
		}
		for i, child := range [...]*Node[K]{node.left, node.right} {
			if child == nil {
				nilid := -(2*ID + i)
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return nil
	})
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func escapeLabel(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
