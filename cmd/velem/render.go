package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/velem/internal/config"
	"github.com/vango-dev/velem/internal/errors"
	"github.com/vango-dev/velem/pkg/publish"
	"github.com/vango-dev/velem/pkg/render"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		pretty bool
		page   bool
		title  string
		outDir string
		toS3   bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render documents to HTML",
		Long: `Render one or more element documents to HTML.

Without --out or --s3 the HTML is written to stdout. With --out each
document is written to <dir>/<name>.html; with --s3 it is uploaded to
the bucket configured under publish.s3 in velem.json.

Examples:
  velem render button.yaml
  velem render --pretty --page pages/*.yaml --out dist
  velem render --s3 pages/about.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = pretty
			}
			if outDir != "" {
				cfg.Publish.Dir = outDir
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var store publish.Store
			switch {
			case toS3:
				store, err = s3Store(cfg)
			case outDir != "":
				store, err = publish.NewDiskStore(cfg.Publish.Dir)
			}
			if err != nil {
				return errors.New("E130").Wrap(err)
			}

			r := render.NewRenderer(render.RendererConfig{
				Pretty:       cfg.Render.Pretty,
				Indent:       cfg.Render.Indent,
				EventMarkers: cfg.Render.EventMarkers,
			})
			reg := g.registry(slog.Default())
			out := g.output()

			for _, path := range args {
				root, err := mountFile(ctx, cfg, reg, path)
				if err != nil {
					return err
				}

				var buf bytes.Buffer
				if page {
					err = r.RenderPage(&buf, render.PageData{Body: root, Title: title})
				} else {
					err = r.RenderToWriter(&buf, root)
					buf.WriteByte('\n')
				}
				if err != nil {
					return err
				}

				if store == nil {
					if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
						return err
					}
					continue
				}

				loc, err := store.Put(ctx, publish.KeyFor(path), buf.Bytes())
				if err != nil {
					return errors.New("E130").WithFile(path).Wrap(err)
				}
				success(out, "%s → %s", path, loc)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output (default from velem.json)")
	cmd.Flags().BoolVar(&page, "page", false, "Wrap the output in a complete HTML page")
	cmd.Flags().StringVar(&title, "title", "", "Page title when --page is set")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Write <name>.html files into this directory")
	cmd.Flags().BoolVar(&toS3, "s3", false, "Upload to the S3 bucket from velem.json")

	return cmd
}

// s3Store builds the S3 publisher from the publish.s3 section.
func s3Store(cfg *config.Config) (publish.Store, error) {
	s3cfg := cfg.Publish.S3
	if s3cfg.Bucket == "" {
		return nil, fmt.Errorf("publish.s3.bucket is not set")
	}
	client := publish.NewS3Client(s3cfg.Region, s3cfg.Endpoint)
	return publish.NewS3Store(client, s3cfg.Bucket, s3cfg.Prefix), nil
}
