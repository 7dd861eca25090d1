package main

import (
	"context"
	"log/slog"

	"github.com/vango-dev/velem/internal/config"
	"github.com/vango-dev/velem/internal/errors"
	"github.com/vango-dev/velem/pkg/decode"
	"github.com/vango-dev/velem/pkg/dom"
	"github.com/vango-dev/velem/pkg/middleware"
)

// mountFile decodes the document at path and mounts it into a fresh
// document, returning the root holding the mounted tree.
func mountFile(ctx context.Context, cfg *config.Config, reg decode.Registry, path string) (*dom.Node, error) {
	el, err := decode.NewDecoder(reg).DecodeFile(path)
	if err != nil {
		return nil, errors.FromError(err).WithFile(path)
	}

	var opts []dom.Option
	if cfg.Server.StrictTags {
		opts = append(opts, dom.WithStrictTags())
	}
	doc := dom.NewDocument(opts...)
	root := doc.CreateRoot()

	mounter := middleware.NewMounter[*dom.Node](doc, middleware.WithLogger(slog.Default()))
	if _, err := mounter.Mount(ctx, el, root); err != nil {
		return nil, errors.FromError(err).WithFile(path)
	}
	return root, nil
}
