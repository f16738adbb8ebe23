package shape

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expression = `
root:
  key: "+"
  left:
    key: "*"
    left:  { key: a }
    right: { key: b }
  right:
    key: c
`

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func keysAt(t *testing.T, root *bintree.Node[string], paths ...string) []string {
	t.Helper()
	var keys []string
	for _, s := range paths {
		p, err := bintree.ParsePath(s)
		require.NoError(t, err)
		n, ok := root.At(p)
		require.True(t, ok, "no node at %q", s)
		keys = append(keys, n.Key())
	}
	return keys
}

func TestLoadHandAuthoredShape(t *testing.T) {
	defer setupTracing(t)()
	root, err := Load(strings.NewReader(expression))
	require.NoError(t, err)
	assert.Equal(t, []string{"+", "*", "c", "a", "b"}, root.Keys())
	assert.Equal(t, []string{"a", "b"}, keysAt(t, root, "LL", "LR"))
	assert.NoError(t, root.CheckComplete())
}

func TestLoadAppliesInsertions(t *testing.T) {
	defer setupTracing(t)()
	doc := expression + "insert: [d, e, f]\n"
	root, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e", "f"}, keysAt(t, root, "RL", "RR", "LLL"))
	assert.NoError(t, root.CheckComplete())
}

func TestLoadRejectsInvalidShapes(t *testing.T) {
	defer setupTracing(t)()
	for name, doc := range map[string]string{
		"empty":         "",
		"missing root":  "insert: [a]\n",
		"missing key":   "root:\n  left: { key: a }\n",
		"unknown field": "root:\n  key: a\n  middle: { key: b }\n",
		"not yaml":      "root: [\n",
	} {
		_, err := Load(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrInvalidShape, name)
	}
	_, err := Load(nil)
	assert.ErrorIs(t, err, bintree.ErrIllegalArguments)
}

func TestLoadRejectsDeepNesting(t *testing.T) {
	defer setupTracing(t)()
	var spec *Spec
	for i := 0; i <= MaxDepth+1; i++ {
		key := "k"
		spec = &Spec{Key: &key, Left: spec}
	}
	_, err := Document{Root: spec}.Build()
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestDumpLoadRoundTrip(t *testing.T) {
	defer setupTracing(t)()
	orig := bintree.Build(1, 2, 3, 4, 5)
	var buf bytes.Buffer
	require.NoError(t, Dump(orig, &buf))
	t.Logf("\n%s", buf.String())
	root, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, root.Keys())
	assert.Equal(t, []string{"4", "5"}, keysAt(t, root, "LL", "LR"))
}

func TestDumpRejectsNonTree(t *testing.T) {
	defer setupTracing(t)()
	n := bintree.New("loop")
	n.WithLeft(n)
	var buf bytes.Buffer
	assert.ErrorIs(t, Dump(n, &buf), bintree.ErrNotATree)
	assert.Zero(t, buf.Len())
}

func TestLoadFile(t *testing.T) {
	defer setupTracing(t)()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(expression), 0644))
	root, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, root.Size())
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
