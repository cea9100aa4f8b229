// cmd/healthcheck/main.go
//
// Zero-argument container health probe for the audiobook converter. Prints a
// human-readable report to stdout and exits 0 (healthy) or 1 (unhealthy);
// the exit code is the whole contract with the orchestrator's HEALTHCHECK.
package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/audiobookforge/healthcheck/internal/config"
	"github.com/audiobookforge/healthcheck/internal/logging"
	"github.com/audiobookforge/healthcheck/internal/probe"
	"github.com/audiobookforge/healthcheck/internal/report"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		// A broken log mount is the directories probe's finding to report;
		// the check itself still has to run.
		logger = zap.NewNop()
	}

	reg := probe.NewRegistry()
	reg.Register("ffmpeg", probe.NewVersionChecker(cfg.FFmpegBin, cfg.FFmpegVersion, cfg.CmdTimeout))
	reg.Register(cfg.Encoder, probe.NewEncoderChecker(cfg.FFmpegBin, cfg.Encoder, cfg.CmdTimeout))
	reg.Register("directories", probe.NewPathsChecker([]probe.PathMount{
		{Path: cfg.InputDir, Label: "input directory"},
		{Path: cfg.OutputDir, Label: "output directory"},
		{Path: cfg.TempDir, Label: "temp directory"},
		{Path: cfg.ConfigDir, Label: "config directory"},
		{Path: cfg.LogDir, Label: "log directory"},
	}))
	reg.Register("python packages", probe.NewPackagesChecker(cfg.PythonBin, cfg.Packages, cfg.CmdTimeout))
	reg.Register("beets", probe.NewBeetsChecker(cfg.BeetBin, cfg.CmdTimeout))
	reg.Register("converter log", probe.NewLogFreshnessChecker(cfg.ConverterLog, cfg.MaxLogAge))

	start := time.Now()
	rep := reg.Run(context.Background())
	logger.Info("health check finished",
		zap.Bool("healthy", rep.Healthy()),
		zap.Int("checks", len(rep)),
		zap.Int("failed", rep.Failed()),
		zap.Duration("elapsed", time.Since(start)),
	)
	for _, e := range rep {
		if !e.Result.Passed {
			logger.Warn("check failed",
				zap.String("check", e.Name),
				zap.String("message", e.Result.Message),
			)
		}
	}

	report.New(os.Stdout).Render(rep)

	// os.Exit skips deferred calls, so flush the log explicitly.
	_ = logger.Sync()
	os.Exit(rep.ExitCode())
}
