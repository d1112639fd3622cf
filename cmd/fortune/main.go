// Package main is the entry point for fortune.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jsamuelsen/go-fortune/internal/adapters/cli"
	"github.com/jsamuelsen/go-fortune/internal/adapters/storage/flatfile"
	"github.com/jsamuelsen/go-fortune/internal/app"
	"github.com/jsamuelsen/go-fortune/internal/platform/config"
	"github.com/jsamuelsen/go-fortune/internal/platform/logging"
	"github.com/jsamuelsen/go-fortune/internal/platform/metrics"
	"github.com/jsamuelsen/go-fortune/internal/platform/telemetry"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], cli.Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}))
}

func run(args []string, streams cli.Streams) int {
	ctx := context.Background()

	// 1. Load and validate configuration (fail fast)
	cfg, err := config.Load(os.Getenv(config.ConfigFileEnv))
	if err != nil {
		fmt.Fprintf(streams.Err, "error: loading config: %v\n", err)
		return cli.ExitFailure
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(streams.Err, "error: invalid config: %v\n", err)
		return cli.ExitFailure
	}

	// 2. Initialize logging
	version := Version
	if version == "dev" {
		version = cfg.App.Version
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	ctx = logging.WithContext(ctx, logger)
	ctx = logging.WithInvocationID(ctx, uuid.NewString())

	logging.FromContext(ctx).DebugContext(ctx, "starting fortune",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("build_time", BuildTime),
	)

	// 3. Initialize telemetry (noop if disabled). A broken exporter setup
	// must not stop quotes from printing.
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      version,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		logger.WarnContext(ctx, "telemetry disabled", slog.Any("error", err))

		telProvider = &telemetry.Provider{}
	}

	defer func() {
		if err := telProvider.Shutdown(context.Background()); err != nil {
			logger.WarnContext(ctx, "telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	commandMetrics, err := telemetry.NewCommandMetrics(nil)
	if err != nil {
		logger.WarnContext(ctx, "command metrics disabled", slog.Any("error", err))
	}

	// 4. Wire the quote pipeline
	recorder := metrics.NewRecorder()

	repo := flatfile.NewRepository(flatfile.RepositoryConfig{
		Locator: flatfile.NewLocator(flatfile.LocatorConfig{
			Name: cfg.Database.Name,
			Path: cfg.Database.Path,
		}),
		Logger: logger,
	})

	svc := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: repo,
		Random:     app.SystemRandom(),
		Metrics:    recorder,
		Logger:     logger,
	})

	driver := cli.NewDriver(cli.DriverConfig{
		Service: svc,
		Metrics: commandMetrics,
		Logger:  logger,
	})

	// 5. Run
	code := cli.Execute(ctx, driver, args, streams)

	if cfg.Metrics.Textfile != "" {
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.WarnContext(ctx, "metrics export failed", slog.Any("error", err))
		}
	}

	return code
}
