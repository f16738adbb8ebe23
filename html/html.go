/*
Package html renders binary trees as nested HTML lists and reads them back.

A tree is represented as

	<ul class="bintree">
	  <li><span class="key">1</span>
	    <ul>
	      <li class="left"><span class="key">2</span></li>
	      <li class="right empty"></li>
	    </ul>
	  </li>
	</ul>

Child lists are present for inner nodes only and always carry two items, the
left one first; an empty slot is marked by class "empty".
*/
package html

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/npillmayer/bintree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrMalformed is flagged when markup does not represent a tree.
var ErrMalformed = errors.New("html: malformed tree markup")

const treeClass = "bintree"

// Render writes the tree rooted at root as a nested HTML list to w.
// Node keys are formatted with fmt's %v verb and escaped.
//
// root must be a tree (see bintree.Node.Check).
func Render[K any](root *bintree.Node[K], w io.Writer) error {
	if root == nil || w == nil {
		return bintree.ErrIllegalArguments
	}
	if err := root.Check(); err != nil {
		return err
	}
	list := element(atom.Ul, treeClass)
	list.AppendChild(item(root, ""))
	return html.Render(w, list)
}

func item[K any](node *bintree.Node[K], class string) *html.Node {
	li := element(atom.Li, class)
	if node == nil {
		return li
	}
	key := element(atom.Span, "key")
	key.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprintf("%v", node.Key())})
	li.AppendChild(key)
	if node.IsLeaf() {
		return li
	}
	children := element(atom.Ul, "")
	children.AppendChild(item(node.Left(), slotClass("left", node.Left() == nil)))
	children.AppendChild(item(node.Right(), slotClass("right", node.Right() == nil)))
	li.AppendChild(children)
	return li
}

func slotClass(side string, empty bool) string {
	if empty {
		return side + " empty"
	}
	return side
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// Parse reads a tree of string keys from HTML input, as produced by Render.
// The first list of class "bintree" in the input is used. Node structure
// is assembled with fluent attachment.
func Parse(input io.Reader) (*bintree.Node[string], error) {
	if input == nil {
		return nil, bintree.ErrIllegalArguments
	}
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	list := findList(doc)
	if list == nil {
		return nil, fmt.Errorf("%w: no list of class %q", ErrMalformed, treeClass)
	}
	items := childElements(list, atom.Li)
	if len(items) != 1 {
		return nil, fmt.Errorf("%w: tree list must have exactly one root item, has %d", ErrMalformed, len(items))
	}
	return parseItem(items[0])
}

func parseItem(li *html.Node) (*bintree.Node[string], error) {
	spans := childElements(li, atom.Span)
	if len(spans) == 0 || !hasClass(spans[0], "key") {
		return nil, fmt.Errorf("%w: list item without key", ErrMalformed)
	}
	node := bintree.New(textContent(spans[0]))
	lists := childElements(li, atom.Ul)
	if len(lists) == 0 {
		return node, nil
	}
	for _, child := range childElements(lists[0], atom.Li) {
		if hasClass(child, "empty") {
			continue
		}
		sub, err := parseItem(child)
		if err != nil {
			return nil, err
		}
		switch {
		case hasClass(child, "left"):
			node.WithLeft(sub)
		case hasClass(child, "right"):
			node.WithRight(sub)
		default:
			return nil, fmt.Errorf("%w: child of %q is neither left nor right", ErrMalformed, node.Key())
		}
	}
	return node, nil
}

func findList(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Ul && hasClass(n, treeClass) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if l := findList(c); l != nil {
			return l
		}
	}
	return nil
}

func childElements(n *html.Node, a atom.Atom) []*html.Node {
	var elems []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			elems = append(elems, c)
		}
	}
	return elems
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			return slices.Contains(strings.Fields(attr.Val), class)
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
