package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for tree output.
type Config struct {
	LineWidth int            // maximum line width in “en”s; <= 0 means unlimited
	Context   *uax11.Context // context for character width; nil means Latin context
	NoColor   bool           // suppress coloring of node labels
	Palette   []*color.Color // colors per tree level, cycled; nil means default palette
}

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
	emptySlot  = "·"
	ellipsis   = "…"
)

var setupGraphemes sync.Once

// DefaultPalette is the default coloring of tree levels.
func DefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue, color.Bold),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
		color.New(color.FgYellow),
	}
}

// Output draws the tree rooted at root to w.
//
// root must be a tree (see bintree.Node.Check), otherwise the error from the
// check is returned and nothing is written. It is safe to have config set to
// nil or config.Context set to nil; defaults will be used instead.
func Output[K any](root *bintree.Node[K], w io.Writer, config *Config) error {
	if root == nil || w == nil {
		return bintree.ErrIllegalArguments
	}
	if err := root.Check(); err != nil {
		T().Errorf("formatter: refusing to draw: %v", err)
		return err
	}
	if config == nil {
		config = &Config{}
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	p := &printer{config: config, out: w}
	if !config.NoColor {
		p.palette = config.Palette
		if len(p.palette) == 0 {
			p.palette = DefaultPalette()
		}
	}
	T().Debugf("formatter: drawing tree of %d nodes, line width %d", root.Size(), config.LineWidth)
	p.label(keyLabel(root.Key()), "", 0)
	drawChildren(p, root, "", 1)
	return p.err
}

// Print draws a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print[K any](root *bintree.Node[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(root, os.Stdout, config)
}

func drawChildren[K any](p *printer, node *bintree.Node[K], indent string, depth int) {
	left, right := node.Left(), node.Right()
	if left == nil && right == nil {
		return
	}
	if left == nil {
		p.label(emptySlot, indent+branchMid, -1)
	} else {
		p.label(keyLabel(left.Key()), indent+branchMid, depth)
		drawChildren(p, left, indent+indentMid, depth+1)
	}
	if right == nil {
		p.label(emptySlot, indent+branchLast, -1)
	} else {
		p.label(keyLabel(right.Key()), indent+branchLast, depth)
		drawChildren(p, right, indent+indentLast, depth+1)
	}
}

func keyLabel(key any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", key), "\n", " ")
}

// printer writes lines and remembers the first write error.
type printer struct {
	config  *Config
	out     io.Writer
	palette []*color.Color
	err     error
}

// label outputs one line. A negative depth marks an empty slot, which is
// never colored.
func (p *printer) label(s string, prefix string, depth int) {
	if p.err != nil {
		return
	}
	if p.config.LineWidth > 0 {
		s = p.truncate(s, p.config.LineWidth-p.width(prefix))
	}
	if _, p.err = io.WriteString(p.out, prefix); p.err != nil {
		return
	}
	if depth >= 0 && len(p.palette) > 0 {
		_, p.err = p.palette[depth%len(p.palette)].Fprint(p.out, s)
	} else {
		_, p.err = io.WriteString(p.out, s)
	}
	if p.err == nil {
		_, p.err = io.WriteString(p.out, "\n")
	}
}

// width measures s in en's. Grapheme strings cannot be built from an empty
// string, so "" is answered directly.
func (p *printer) width(s string) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), p.config.Context)
}

// truncate shortens s to at most avail en's, marking the cut with an
// ellipsis. At least one character of s is kept.
func (p *printer) truncate(s string, avail int) string {
	if p.width(s) <= avail {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 && p.width(string(runes))+p.width(ellipsis) > avail {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating an output Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Coloring is switched
// off for non-terminals.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 80
		config.NoColor = true
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
