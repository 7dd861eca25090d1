package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vango-dev/velem/internal/config"
	"github.com/vango-dev/velem/internal/errors"
	"github.com/vango-dev/velem/pkg/decode"
	"github.com/vango-dev/velem/pkg/vdom"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
	handlers   []string
	noColor    bool
}

func main() {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "velem",
		Short: "Render virtual element documents to HTML",
		Long: `velem turns element documents (JSON, YAML or HTML) into HTML.

A document describes one element: its kind, its props and its
children. velem mounts it into an in-memory tree and serializes
the result, or serves it from a live preview server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.noColor || !isTerminal(os.Stderr) {
				errors.DisableColors()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&g.configPath, "config", "c", "", "Path to velem.json (default: search upwards from the working directory)")
	flags.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from velem.json)")
	flags.StringVar(&g.logFormat, "log-format", "", "Log format: text or json (default from velem.json)")
	flags.StringSliceVar(&g.handlers, "handlers", nil, "Extra handler names documents may reference")
	flags.BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		renderCmd(g),
		validateCmd(g),
		treeCmd(g),
		serveCmd(g),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.FromError(err).Format())
		os.Exit(1)
	}
}

// load reads the configuration and applies the logging flags.
func (g *globals) load() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFile(g.configPath)
	} else {
		cfg, err = config.LoadOrDefault(".")
	}
	if err != nil {
		return nil, err
	}

	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.SetDefault(newLogger(os.Stderr, cfg))
	return cfg, nil
}

// newLogger builds the process logger from the log section.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level, _ := cfg.LogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// registry returns the handlers documents may name: the built-ins plus one
// no-op handler per --handlers entry.
func (g *globals) registry(logger *slog.Logger) decode.Registry {
	reg := decode.Registry{
		"log": func(e vdom.Event) {
			logger.Info("event", "type", e.Type, "detail", e.Detail)
		},
		"noop": func(vdom.Event) {},
	}
	for _, name := range g.handlers {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := reg[name]; !ok {
			reg[name] = func(vdom.Event) {}
		}
	}
	return reg
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// output returns a termenv output for stdout, colorless unless stdout is
// a terminal.
func (g *globals) output() *termenv.Output {
	if g.noColor || !isTerminal(os.Stdout) {
		return termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(os.Stdout)
}

// success prints a success message.
func success(out *termenv.Output, format string, args ...any) {
	mark := out.String("✓").Foreground(out.Color("2"))
	fmt.Fprintf(out, "%s %s\n", mark, fmt.Sprintf(format, args...))
}
