package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"vr-overlay/internal/app"
	"vr-overlay/internal/config"
	"vr-overlay/internal/headless"
	"vr-overlay/internal/logging"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	texture := flag.String("texture", "", "Texture file shown on the overlay")
	previewDir := flag.String("preview", "", "Directory for WebP previews of the overlay texture")
	tracking := flag.String("tracking", "", "hmd, left, right, device:N, standing, seated or none (default: hmd)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default: info)")
	debugEvents := flag.Bool("debug-events", false, "Log every runtime event")
	wait := flag.Bool("wait", false, "Wait for the compositor process before starting")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file and environment
	cfg.Resolve(config.Flags{
		Texture:     *texture,
		PreviewDir:  *previewDir,
		Tracking:    *tracking,
		LogLevel:    *logLevel,
		DebugEvents: *debugEvents,
		Wait:        *wait,
	})

	logger := logging.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	if err := run(cfg, logger); err != nil {
		slog.Error("Overlay failed", "error", err)
		os.Exit(1)
	}
}

// run owns the runtime connection and shuts it down once the overlay loop ends.
func run(cfg config.Config, logger *slog.Logger) error {
	rt := headless.New(headless.Options{
		Logger:          logger,
		PreviewDir:      cfg.PreviewDir,
		LeftController:  1,
		RightController: 2,
	})
	defer rt.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First signal asks the runtime to quit, a second one cancels.
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
		case <-ctx.Done():
			return
		}
		logger.Info("Received shutdown signal")
		rt.RequestQuit()
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return app.New(rt, cfg, app.WithLogger(logger)).Run(ctx)
}
