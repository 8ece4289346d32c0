// Command spritec compiles sprite-editor animation exports into the
// per-character tables the game loads: ES modules, JSON files, and an
// optional build catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/megagame/spritec/internal/character"
	"github.com/megagame/spritec/internal/compile"
	"github.com/megagame/spritec/internal/config"
	"github.com/megagame/spritec/internal/logging"
	"github.com/megagame/spritec/internal/metrics"
	"github.com/megagame/spritec/internal/otel"
)

const ToolName = "spritec"

// Version is the pipeline version stamped on build runs and catalog rows.
var Version = "1.2.0"

var (
	Logger      *slog.Logger
	SlogManager *logging.SlogManager
)

func main() {
	os.Exit(run())
}

func run() int {
	configDir := flag.String("config", ".", "directory containing spritec.cfg.json")
	characterID := flag.String("character", "", "build only this character id")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", ToolName, Version)
		return 0
	}

	sessionStart := time.Now()
	ctx := context.Background()

	cfgErr := config.Load(*configDir)

	logFile, otelProvider, err := setupLogging(sessionStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	if otelProvider != nil {
		defer otelProvider.Shutdown(ctx)
	}
	if cfgErr != nil {
		// Defaults are applied before the file is read, so a missing config
		// file still yields a usable run.
		Logger.Warn("Config file not loaded, using defaults", "error", cfgErr)
	}

	registry, err := character.LoadDir(config.GetString("profilesDir"))
	if err != nil {
		Logger.Error("Failed to load character profiles", "error", err)
		return 1
	}

	ids := registry.IDs()
	if *characterID != "" {
		if _, err := registry.Get(*characterID); err != nil {
			Logger.Error("Unknown character id", "character", *characterID, "error", err)
			return 1
		}
		ids = []string{*characterID}
	}

	zlog := zerolog.New(os.Stdout).With().Timestamp().Logger()

	backend, err := createBackend(zlog)
	if err != nil {
		Logger.Error("Failed to create storage backend", "error", err)
		return 1
	}
	if err := backend.Init(); err != nil {
		Logger.Error("Failed to initialize storage backend", "error", err)
		return 1
	}
	defer backend.Close()

	influxMgr := setupMetrics(zlog, sessionStart)
	if influxMgr != nil {
		defer influxMgr.Close()
	}

	spritesDir := config.GetString("spritesDir")

	for _, id := range ids {
		profile, err := registry.Get(id)
		if err != nil {
			Logger.Error("Failed to resolve profile", "character", id, "error", err)
			return 1
		}

		engine := compile.NewEngine(profile, spritesDir, Logger)
		table, runInfo, err := engine.Build()
		if err != nil {
			Logger.Error("Build failed", "character", id, "error", err)
			return 1
		}
		runInfo.PipelineVersion = Version

		if err := backend.RecordTable(table, runInfo); err != nil {
			Logger.Error("Failed to write artifacts", "character", id, "error", err)
			return 1
		}

		if influxMgr != nil {
			if err := influxMgr.RecordBuildRun(ctx, runInfo); err != nil {
				Logger.Warn("Failed to record build metrics", "character", id, "error", err)
			}
		}
	}

	if err := SlogManager.Flush(ctx); err != nil {
		Logger.Warn("Failed to flush logs", "error", err)
	}

	Logger.Info("Pipeline complete",
		"characters", len(ids),
		"duration", time.Since(sessionStart).String())
	return 0
}

// setupLogging opens the session log file and wires the configured sinks.
func setupLogging(sessionStart time.Time) (*os.File, *otel.Provider, error) {
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile, err := os.Create(logging.LogFilePath(logsDir, ToolName, sessionStart))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	var provider *otel.Provider
	if config.GetBool("otel.enabled") {
		otelFile, err := os.Create(filepath.Join(logsDir,
			fmt.Sprintf("%s.%s.otel.json", ToolName, sessionStart.Format("20060102_150405"))))
		if err != nil {
			logFile.Close()
			return nil, nil, fmt.Errorf("failed to create OTel log file: %w", err)
		}

		provider, err = otel.New(otel.Config{
			Enabled:      true,
			ServiceName:  ToolName,
			BatchTimeout: 5 * time.Second,
			LogWriter:    otelFile,
			Endpoint:     config.GetString("otel.endpoint"),
			Insecure:     config.GetBool("otel.insecure"),
		})
		if err != nil {
			logFile.Close()
			return nil, nil, fmt.Errorf("failed to create OTel provider: %w", err)
		}
	}

	gelfAddr := ""
	if config.GetBool("graylog.enabled") {
		gelfAddr = config.GetString("graylog.address")
	}

	SlogManager = logging.NewSlogManager()
	var logProvider *sdklog.LoggerProvider
	if provider != nil {
		logProvider = provider.LoggerProvider()
	}
	if err := SlogManager.Setup(logFile, config.GetString("logLevel"), gelfAddr, logProvider); err != nil {
		logFile.Close()
		return nil, nil, err
	}

	Logger = SlogManager.Logger()
	return logFile, provider, nil
}

// setupMetrics connects the InfluxDB manager when enabled. Returns nil when
// metrics are disabled or the connection could not be prepared.
func setupMetrics(zlog zerolog.Logger, sessionStart time.Time) *metrics.Manager {
	if !config.GetBool("influx.enabled") {
		return nil
	}

	backupPath := filepath.Join(config.GetString("logsDir"),
		fmt.Sprintf("%s.%s.metrics.lp.gz", ToolName, sessionStart.Format("20060102_150405")))

	mgr := metrics.NewManager(zlog, backupPath)
	if err := mgr.Connect(); err != nil {
		Logger.Warn("Metrics disabled", "error", err)
		return nil
	}
	return mgr
}
