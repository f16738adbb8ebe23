package main

import (
	"context"
	"fmt"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/bintree/shape"
	"github.com/spf13/cobra"
)

func newFillCmd(opts *options) *cobra.Command {
	var showPaths bool
	cmd := &cobra.Command{
		Use:   "fill ROOT [KEY...]",
		Short: "Grow a complete tree by level-order insertion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := bintree.NewTree(args[0])
			defer tree.Close()
			keys := args[1:]
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			var events <-chan bintree.InsertEvent[string]
			if showPaths && len(keys) > 0 {
				var err error
				if events, err = tree.Subscribe(ctx, uint(len(keys))); err != nil {
					return err
				}
			}
			for _, key := range keys {
				if _, err := tree.Insert(key); err != nil {
					return err
				}
			}
			if events != nil {
				for range keys {
					ev := <-events
					fmt.Fprintf(cmd.ErrOrStderr(), "%s\t%s\t%d\n", ev.Key, pathLabel(ev.Path), ev.Index)
				}
			}
			return opts.render(tree.Root(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&showPaths, "paths", false, "report the position of every inserted key on stderr")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Render a tree from a YAML shape file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := shape.LoadFile(args[0])
			if err != nil {
				return err
			}
			return opts.render(root, cmd.OutOrStdout())
		},
	}
}

func newCheckCmd() *cobra.Command {
	var structureOnly bool
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate that a YAML shape file describes a complete tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := shape.LoadFile(args[0])
			if err != nil {
				return err
			}
			if structureOnly {
				err = root.Check()
			} else {
				err = root.CheckComplete()
			}
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d nodes, height %d\n", args[0], root.Size(), root.Height())
			return nil
		},
	}
	cmd.Flags().BoolVar(&structureOnly, "structure-only", false, "only check the tree property, not completeness")
	return cmd
}

func pathLabel(p bintree.Path) string {
	if p.Depth() == 0 {
		return "root"
	}
	return p.String()
}
