package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"heron-explorer/internal/catalog"
	"heron-explorer/internal/config"
	"heron-explorer/internal/logging"
	"heron-explorer/internal/render"
	"heron-explorer/internal/topology"
	"heron-explorer/internal/tracker"
	"heron-explorer/internal/view"
)

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// reportedError marks an error that was already logged by the command.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// app carries flag values and the resolved configuration for one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath  string
	trackerURL  string
	format      string
	timeout     time.Duration
	concurrency int
	verbose     bool
	interactive bool

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}
	rootCmd := &cobra.Command{
		Use:   "heron-explorer",
		Short: "Inspect the physical plan of Heron topologies",
		Long: "heron-explorer queries a Heron tracker and prints spout and bolt metrics " +
			"and the container layout of a running topology.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config-path", "", "Path to the explorer configuration YAML (default "+config.DefaultPath()+")")
	pf.StringVar(&a.trackerURL, "tracker-url", "", "Tracker service URL (default "+config.DefaultTrackerURL+")")
	pf.StringVar(&a.format, "format", "", "Output format: plain, grid or json")
	pf.DurationVar(&a.timeout, "timeout", config.DefaultTimeout, "Timeout of each tracker request")
	pf.IntVar(&a.concurrency, "concurrency", config.DefaultConcurrency, "Number of metric queries in flight")
	pf.BoolVar(&a.verbose, "verbose", false, "Verbose mode. Increases logging level to show debug messages")
	pf.BoolVar(&a.interactive, "interactive", false, "Browse the tables in an interactive terminal UI")

	rootCmd.AddCommand(newComponentsCmd(a, topology.Spout))
	rootCmd.AddCommand(newComponentsCmd(a, topology.Bolt))
	rootCmd.AddCommand(newContainersCmd(a))
	return rootCmd
}

// setup builds the logger and resolves configuration: defaults, then the
// config file, then the environment, then explicitly set flags.
func (a *app) setup(cmd *cobra.Command) error {
	a.log = logging.New(a.errOut, a.verbose)

	path, required := a.configPath, cmd.Flags().Changed("config-path")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return a.fail("config load failed", err)
	}

	flags := cmd.Flags()
	if flags.Changed("tracker-url") {
		cfg.TrackerURL = a.trackerURL
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = a.concurrency
	}
	if cfg.Concurrency < 1 || cfg.Concurrency > config.MaxConcurrency {
		err := fmt.Errorf("concurrency must be between 1 and %d, got %d", config.MaxConcurrency, cfg.Concurrency)
		return a.fail("invalid concurrency", err)
	}
	if _, err := render.New(cfg.Format, render.Options{}); err != nil {
		return a.fail("invalid output format", err)
	}
	a.cfg = cfg
	a.log.Debug("configuration loaded", "path", path, "tracker_url", cfg.TrackerURL, "format", cfg.Format, "concurrency", cfg.Concurrency)
	return nil
}

func (a *app) context(cmd *cobra.Command) context.Context {
	return logging.NewContext(cmd.Context(), a.log)
}

func (a *app) builder() *view.Builder {
	client := tracker.NewClient(a.cfg.TrackerURL, a.cfg.Timeout)
	return view.NewBuilder(client, catalog.Default(), a.cfg.Concurrency)
}

// fail logs err once and marks it as reported so Execute does not print it again.
func (a *app) fail(msg string, err error) error {
	a.log.Error(msg, "err", err)
	return &reportedError{err: err}
}

// failure returns the log message describing err.
func failure(err error) string {
	var (
		unknown *view.UnknownComponentError
		invalid *view.InvalidContainerIDError
	)
	switch {
	case errors.Is(err, topology.ErrInvalidLocation):
		return "invalid topology location"
	case errors.As(err, &unknown):
		return "unknown " + string(unknown.Kind)
	case errors.As(err, &invalid):
		return "invalid container id"
	case errors.Is(err, tracker.ErrRetrieval):
		return "tracker retrieval failed"
	}
	return "command failed"
}
