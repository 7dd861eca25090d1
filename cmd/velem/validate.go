package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/velem/pkg/dom"
)

func validateCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that documents decode and mount",
		Long: `Decode and mount each document without writing any output.

Event props must name a built-in handler (log, noop) or one passed
with --handlers.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			reg := g.registry(slog.Default())
			out := g.output()

			for _, path := range args {
				root, err := mountFile(context.Background(), cfg, reg, path)
				if err != nil {
					return err
				}
				nodes := 0
				root.Walk(func(n *dom.Node) bool {
					nodes++
					return true
				})
				success(out, "%s (%d nodes)", path, nodes-1)
			}
			return nil
		},
	}
}
