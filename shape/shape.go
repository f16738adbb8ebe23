/*
Package shape reads and writes tree shapes in YAML.

A shape document hand-authors a tree and optionally grows it by level-order
insertion afterwards:

	root:
	  key: "+"
	  left:
	    key: "*"
	    left:  { key: a }
	    right: { key: b }
	  right:
	    key: c
	insert: [d, e]

Keys are strings. Nodes without a key are rejected.
*/
package shape

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrInvalidShape is flagged for documents which do not describe a tree.
var ErrInvalidShape = errors.New("shape: invalid tree shape")

// MaxDepth limits the nesting of shape documents.
const MaxDepth = 256

// Document is the on-disk YAML shape of a tree.
type Document struct {
	Root   *Spec    `yaml:"root"`
	Insert []string `yaml:"insert,omitempty"`
}

// Spec describes a node and its subtrees.
type Spec struct {
	Key   *string `yaml:"key"`
	Left  *Spec   `yaml:"left,omitempty"`
	Right *Spec   `yaml:"right,omitempty"`
}

// Load reads a shape document and builds the tree it describes.
func Load(r io.Reader) (*bintree.Node[string], error) {
	if r == nil {
		return nil, bintree.ErrIllegalArguments
	}
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidShape)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return doc.Build()
}

// LoadFile reads a shape document from a file.
func LoadFile(path string) (*bintree.Node[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Build assembles the tree of doc with fluent attachment, then inserts the
// keys of doc.Insert in level order.
func (doc Document) Build() (*bintree.Node[string], error) {
	if doc.Root == nil {
		return nil, fmt.Errorf("%w: missing root", ErrInvalidShape)
	}
	root, err := build(doc.Root, bintree.Path{})
	if err != nil {
		return nil, err
	}
	for _, key := range doc.Insert {
		root.Insert(key)
	}
	T().Debugf("shape: built tree of %d nodes, %d inserted", root.Size(), len(doc.Insert))
	return root, nil
}

func build(spec *Spec, path bintree.Path) (*bintree.Node[string], error) {
	if spec.Key == nil {
		return nil, fmt.Errorf("%w: node at %q has no key", ErrInvalidShape, path.String())
	}
	if path.Depth() > MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrInvalidShape, MaxDepth)
	}
	node := bintree.New(*spec.Key)
	if spec.Left != nil {
		left, err := build(spec.Left, append(slices.Clip(path), bintree.Left))
		if err != nil {
			return nil, err
		}
		node.WithLeft(left)
	}
	if spec.Right != nil {
		right, err := build(spec.Right, append(slices.Clip(path), bintree.Right))
		if err != nil {
			return nil, err
		}
		node.WithRight(right)
	}
	return node, nil
}

// Describe creates the shape spec of the tree rooted at root. Keys are
// formatted with fmt's %v verb.
func Describe[K any](root *bintree.Node[K]) *Spec {
	if root == nil {
		return nil
	}
	key := fmt.Sprintf("%v", root.Key())
	return &Spec{
		Key:   &key,
		Left:  Describe(root.Left()),
		Right: Describe(root.Right()),
	}
}

// Dump writes the tree rooted at root as a shape document to w.
//
// root must be a tree (see bintree.Node.Check).
func Dump[K any](root *bintree.Node[K], w io.Writer) error {
	if root == nil || w == nil {
		return bintree.ErrIllegalArguments
	}
	if err := root.Check(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Root: Describe(root)}); err != nil {
		return err
	}
	return enc.Close()
}
