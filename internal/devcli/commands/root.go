package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/steven3002/pbi-go/internal/devcli"
	"github.com/steven3002/pbi-go/pbi"
)

// app holds the state shared by every command of one invocation.
type app struct {
	settings devcli.Settings
	output   string
	out      io.Writer

	// httpClient overrides the SDK transport; nil in production.
	httpClient *http.Client

	log      *zap.Logger
	registry *prometheus.Registry
	client   *pbi.Client
}

// Execute runs pbidev with os.Args and returns the process exit code.
func Execute() int {
	s, err := devcli.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := &app{settings: s, out: os.Stdout}
	if err := run(ctx, a, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, a *app, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.out)
	err := root.ExecuteContext(ctx)
	if ferr := a.flush(); err == nil {
		err = ferr
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "pbidev",
		Short:             "pbidev - command line client for the Power BI reports API",
		Long:              `pbidev lists reports, generates embed tokens and rebinds reports to datasets.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	a.settings.BindFlags(root.PersistentFlags())
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "table", "Output format (table, json)")
	root.AddCommand(newReportsCmd(a))
	return root
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	if a.output != "table" && a.output != "json" {
		return fmt.Errorf("unknown output format %q", a.output)
	}
	if err := a.settings.Validate(); err != nil {
		return err
	}
	log, err := devcli.NewLogger(a.settings.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = log
	a.registry = prometheus.NewRegistry()
	a.client = devcli.NewClient(a.settings, a.httpClient, log, pbi.NewMetrics(a.registry))
	return nil
}

// flush writes the metrics file, if requested, and syncs the logger.
func (a *app) flush() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.registry == nil || a.settings.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.settings.MetricsFile, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
