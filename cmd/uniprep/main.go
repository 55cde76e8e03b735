package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jangyunsu11/UniversityPrepApp/internal/cli"
	"github.com/jangyunsu11/UniversityPrepApp/internal/config"
	"github.com/jangyunsu11/UniversityPrepApp/internal/db"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
	"github.com/jangyunsu11/UniversityPrepApp/internal/llm"
	"github.com/jangyunsu11/UniversityPrepApp/internal/metrics"
	"github.com/jangyunsu11/UniversityPrepApp/internal/repository"
	"github.com/jangyunsu11/UniversityPrepApp/internal/telemetry"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupFlags pulls --config and --metrics-addr out of the arguments
// before cobra runs, since everything cobra wires depends on them.
func startupFlags(args []string) (configPath, metricsAddr string) {
	fs := pflag.NewFlagSet("uniprep", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.StringVar(&configPath, "config", "", "")
	fs.StringVar(&metricsAddr, "metrics-addr", "", "")
	_ = fs.Parse(args)
	return configPath, metricsAddr
}

func run() error {
	configPath, metricsAddr := startupFlags(os.Args[1:])
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	log, err := cfg.Log.BuildLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	tp, err := telemetry.Setup(cfg.Trace, log)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Warn("trace shutdown failed", zap.Error(err))
		}
	}()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// History and metrics both hang off the invoker's run observers.
	uow := db.NewSQLiteUnitOfWork(database)
	history := repository.NewHistoryObserver(uow, log, cfg.HistoryRetention)
	collector := metrics.NewCollector()
	if cfg.MetricsAddr != "" {
		if _, err := collector.Serve(ctx, cfg.MetricsAddr, log); err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
	}

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewLogObserver(log)
	}
	client := llm.NewGeminiClient(ctx, cfg.LLM, observer)

	inv := generation.NewInvoker(client,
		generation.WithLogger(log),
		generation.WithTracer(tp.Tracer("uniprep/generation")),
		generation.WithRunObserver(history),
		generation.WithRunObserver(collector),
	)

	app := &cli.App{
		Generation: generation.NewService(inv),
		Runs:       repository.NewSQLiteRunRepo(database),
		Log:        log,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	log.Info("uniprep starting",
		zap.String("model", cfg.LLM.Model),
		zap.String("db", cfg.DBPath))

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
