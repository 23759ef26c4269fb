// Package main provides the treefetch command-line tool for displaying a short
// host summary beside a small ASCII tree.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"treefetch/ascii"
	"treefetch/config"
	"treefetch/display"
	"treefetch/logging"
	"treefetch/sysinfo"
)

// Build information set by ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	verbosity  int
	configPath string
	color      string
	format     string
	source     string
	gap        int
	hide       []string
}

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "treefetch",
		Short: "Print a small tree beside a summary of this host",
		Long: `treefetch prints a small ASCII tree next to the current user and host,
distribution, kernel, shell, uptime and memory usage.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, stderr)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/treefetch/config.toml)")

	cmd.Flags().StringVar(&opts.color, "color", config.ColorAuto, "when to use colors: auto, always or never")
	cmd.Flags().StringVar(&opts.format, "format", display.FormatText, "output format: text, json or yaml")
	cmd.Flags().StringVar(&opts.source, "source", config.SourceExec, "where facts come from: exec or native")
	cmd.Flags().IntVar(&opts.gap, "gap", 0, "extra spaces between the tree and the facts")
	cmd.Flags().StringSliceVar(&opts.hide, "hide", nil, "facts to leave out (identity, os, kernel, shell, uptime, memory)")

	cmd.AddCommand(newVersionCmd(stdout))
	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "treefetch version %s\n", version)
			fmt.Fprintf(stdout, "  commit: %s\n", commit)
			fmt.Fprintf(stdout, "  built:  %s\n", date)
		},
	}
}

// loadConfig layers explicitly set flags over the loaded configuration.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	k, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Decode(k)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("source") {
		cfg.Source = opts.source
	}
	if flags.Changed("gap") {
		cfg.Gap = opts.gap
	}
	if flags.Changed("hide") {
		cfg.Hide = opts.hide
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run collects the facts once and writes them to stdout.
func run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	logger := logging.GetLogger("treefetch")

	source, err := newSource(cfg)
	if err != nil {
		return err
	}

	collector := sysinfo.NewCollector(source, logging.GetLogger("sysinfo"))
	collector.HostnameFile = cfg.HostnameFile
	collector.Hide = cfg.Hide

	start := time.Now()
	report, err := collector.Collect(ctx)
	if err != nil {
		return err
	}
	logging.LogDuration(logger, start, "collect")

	if cfg.Format != display.FormatText {
		return display.Encode(stdout, cfg.Format, report)
	}

	renderer := display.NewRenderer(stdout, useColor(cfg.Color, stdout))
	theme := display.NewTheme(renderer, cfg.Theme.Palette())

	art := ascii.Pad(ascii.Tree(theme), cfg.Gap)
	return display.Compose(stdout, art, display.Lines(report, theme))
}

func newSource(cfg *config.Config) (sysinfo.Source, error) {
	if cfg.Source == config.SourceNative {
		s, err := sysinfo.NewNativeSource(logging.GetLogger("native"))
		if err != nil {
			return nil, fmt.Errorf("native source: %w", err)
		}
		return s, nil
	}
	runner := sysinfo.NewExecRunner(cfg.Timeout, logging.GetLogger("runner"))
	return sysinfo.NewCommandSource(runner), nil
}

// useColor resolves the color mode. In auto mode colors are used only on a
// terminal and only when NO_COLOR is unset.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
