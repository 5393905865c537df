package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"pkt.systems/version"

	"pkt.systems/helptext"
	"pkt.systems/helptext/cobrahelp"
	"pkt.systems/helptext/internal/config"
	"pkt.systems/helptext/internal/docspec"
	"pkt.systems/helptext/internal/logging"
	"pkt.systems/helptext/internal/termcap"
	"pkt.systems/helptext/style"
)

func init() {
	version.SetDefaultModule("pkt.systems/helptext")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	width       int
	color       string
	hyperlinks  string
	noWrap      bool
	cells       bool
	theme       string
	listThemes  bool
	box         bool
	configPath  string
	format      string
	output      string
	verbosity   int
	showVersion bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "helptext [flags] [documents...]",
		Short: "render help documents for the terminal",
		Long: "Renders YAML or TOML help documents with aligned flag tables, lists and\n" +
			"word wrapping. Documents are files, file:// or http(s) URLs; with no\n" +
			"arguments a document is read from stdin.",
		Example:       "  helptext tool.yaml\n  helptext --width 60 --box tool.toml | less -R",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, &opts, args)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "helptext: %v\n", err)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.width, "width", "w", 0, "Wrap width (0 uses the terminal width)")
	f.StringVar(&opts.color, "color", "auto", "Color output: auto|always|never")
	f.StringVarP(&opts.hyperlinks, "hyperlinks", "8", "auto", "OSC 8 hyperlinks: auto|on|off")
	f.BoolVar(&opts.noWrap, "no-wrap", false, "Disable word wrapping")
	f.BoolVar(&opts.cells, "cells", false, "Measure East Asian wide characters as two columns")
	f.StringVarP(&opts.theme, "theme", "t", "default", "Theme name")
	f.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	f.BoolVar(&opts.box, "box", false, "Draw a border around each document")
	f.StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/helptext/config.toml)")
	f.StringVar(&opts.format, "format", "", "Document format: yaml|toml (default: from the file extension)")
	f.StringVarP(&opts.output, "output", "o", "", "Output file instead of stdout")
	f.CountVarP(&opts.verbosity, "verbose", "v", "Log more (repeat for debug and trace)")
	f.BoolVar(&opts.showVersion, "version", false, "Print the version and exit")

	cobrahelp.Install(cmd, helptext.WithWrap(true))
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	logging.Setup(opts.verbosity, cmd.ErrOrStderr())
	logger := logging.GetLogger("cli")

	out := cmd.OutOrStdout()
	if opts.showVersion {
		_, err := fmt.Fprintln(out, version.Module(), version.Current())
		return err
	}
	if opts.listThemes {
		return printThemes(out)
	}

	cfg, err := config.Load(normalizeConfigPath(opts.configPath))
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}

	theme, ok := helptext.ThemeByName(cfg.Theme)
	if !ok {
		return fmt.Errorf("unknown theme %q (see --list-themes)", cfg.Theme)
	}

	var format docspec.Format
	if opts.format != "" {
		if format, err = docspec.ParseFormat(opts.format); err != nil {
			return err
		}
	}

	writer, closeOut, err := resolveOutput(opts.output, out)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	r := newRenderer(cfg, theme, writer)
	logger.Debug().
		Int("width", r.width).
		Bool("color", r.engine.Enabled()).
		Bool("wrap", cfg.Wrap).
		Str("theme", theme.Name()).
		Msg("Resolved output settings")

	sources, err := openInputs(args, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	for i, src := range sources {
		doc, err := src.load(format)
		if err != nil {
			return fmt.Errorf("%s: %w", src.name, err)
		}
		if i > 0 {
			if _, err := io.WriteString(writer, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(writer, r.render(doc)); err != nil {
			return err
		}
	}
	return nil
}

// applyFlags overrides configured values with flags given on the command line.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = opts.width
	}
	if f.Changed("color") {
		cfg.Color = opts.color
	}
	if f.Changed("hyperlinks") {
		cfg.Hyperlinks = opts.hyperlinks
	}
	if f.Changed("no-wrap") {
		cfg.Wrap = !opts.noWrap
	}
	if f.Changed("cells") {
		cfg.Cells = opts.cells
	}
	if f.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if f.Changed("box") {
		cfg.Box = opts.box
	}
	return cfg.Validate()
}

func printThemes(w io.Writer) error {
	for _, name := range helptext.AvailableThemes() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// renderer turns documents into terminal text for one output.
type renderer struct {
	engine *style.Engine
	border helptext.Border
	box    bool
	width  int
	opts   []helptext.Option
}

func newRenderer(cfg *config.Config, theme helptext.Theme, w io.Writer) *renderer {
	var probe interface {
		helptext.Terminal
		style.Probe
	} = termcap.Fixed{}
	if f, ok := w.(*os.File); ok {
		probe = termcap.New(f)
	}

	var engine *style.Engine
	switch cfg.ColorMode() {
	case config.ColorAlways:
		engine = style.New(style.WithProbe(probe), style.WithForce(true))
	case config.ColorNever:
		engine = style.New(style.WithProbe(nil))
	default:
		engine = style.New(style.WithProbe(probe))
	}

	var terminal helptext.Terminal = probe
	if cfg.Width > 0 && !probe.Interactive() {
		terminal = helptext.FixedWidth(cfg.Width)
	}
	width := cfg.Width
	if width <= 0 {
		width = terminal.Width()
	}
	if cfg.Box && width > 4 {
		width -= 4
	}

	return &renderer{
		engine: engine,
		border: helptext.Border{}.WithEngine(engine),
		box:    cfg.Box,
		width:  width,
		opts: []helptext.Option{
			helptext.WithEngine(engine),
			helptext.WithTheme(theme),
			helptext.WithWrap(cfg.Wrap),
			helptext.WithTerminal(terminal),
			helptext.WithCellWidth(cfg.Cells),
			helptext.WithHyperlinks(cfg.HyperlinkMode().Enabled(helptext.DetectHyperlinkSupport)),
		},
	}
}

func (r *renderer) render(doc *docspec.Document) string {
	text := doc.Build(r.opts...).Render(r.width)
	if !r.box {
		return text
	}
	return r.border.Box(text) + "\n"
}

func normalizeConfigPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	return normalizePath(path)
}
