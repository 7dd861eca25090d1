package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vango-dev/velem/pkg/dom"
)

func treeCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the mounted tree of a document",
		Long: `Mount a document and print the resulting node tree: element tags
with their attributes and listened events, and text nodes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			root, err := mountFile(context.Background(), cfg, g.registry(slog.Default()), args[0])
			if err != nil {
				return err
			}

			out := g.output()
			for i, c := range root.Children {
				printTree(out, c, "", i == len(root.Children)-1)
			}
			return nil
		},
	}
}

// printTree writes n and its descendants with box-drawing branches.
func printTree(out *termenv.Output, n *dom.Node, prefix string, last bool) {
	branch, next := "├── ", "│   "
	if last {
		branch, next = "└── ", "    "
	}
	fmt.Fprintf(out, "%s%s%s\n", prefix, branch, describe(out, n))

	for i, c := range n.Children {
		printTree(out, c, prefix+next, i == len(n.Children)-1)
	}
}

func describe(out *termenv.Output, n *dom.Node) string {
	if n.Type == dom.TextNode {
		return out.String(strconv.Quote(n.Data)).Foreground(out.Color("2")).String()
	}

	var b strings.Builder
	b.WriteString(out.String(n.Tag).Foreground(out.Color("6")).Bold().String())
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(out.String(a.Name).Foreground(out.Color("3")).String())
		if a.Value != "" {
			b.WriteString("=" + strconv.Quote(a.Value))
		}
	}
	for _, e := range n.Events() {
		b.WriteString(out.String(" @" + e).Foreground(out.Color("5")).String())
	}
	return b.String()
}
