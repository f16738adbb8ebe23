package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/bintree/formatter"
	treehtml "github.com/npillmayer/bintree/html"
	"github.com/npillmayer/bintree/shape"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by all subcommands.
type options struct {
	format  string
	noColor bool
	width   int
	trace   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "bintree",
		Short:         "Build and render binary trees",
		Long:          "bintree grows complete binary trees by level-order insertion, or reads hand-authored tree shapes from YAML, and renders them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "console", "output format: console|dot|html|yaml")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colorized console output")
	root.PersistentFlags().IntVar(&opts.width, "width", 0, "console line width (0 = terminal width)")
	root.PersistentFlags().StringVar(&opts.trace, "trace", "error", "trace level: debug|info|error")
	root.AddCommand(newFillCmd(opts), newShowCmd(opts), newCheckCmd())
	return root
}

func (opts *options) setup() error {
	tracer := gologadapter.New()
	switch strings.ToLower(opts.trace) {
	case "debug":
		tracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		tracer.SetTraceLevel(tracing.LevelInfo)
	case "error":
		tracer.SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("unknown trace level %q", opts.trace)
	}
	gtrace.CoreTracer = tracer
	switch opts.format {
	case "console", "dot", "html", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q", opts.format)
}

// render writes root to w in the configured output format.
func (opts *options) render(root *bintree.Node[string], w io.Writer) error {
	switch opts.format {
	case "dot":
		bintree.Tree2Dot(root, w)
		return nil
	case "html":
		if err := treehtml.Render(root, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case "yaml":
		return shape.Dump(root, w)
	}
	config := formatter.ConfigFromTerminal()
	if opts.width > 0 {
		config.LineWidth = opts.width
	}
	config.NoColor = config.NoColor || opts.noColor
	return formatter.Output(root, w, config)
}
