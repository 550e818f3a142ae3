// Package main is the entry point for the kyte editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jdhollis/kyte/internal/app"
	"github.com/jdhollis/kyte/internal/config"
	"github.com/jdhollis/kyte/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logLevel    string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kyte - a small modal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: kyte [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("kyte %s (%s)\n", version, commit)
		return 0
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	path := flag.Arg(0)

	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger := app.NullLogger
	if cfg.Log.File != "" {
		logger, err = app.FileLogger(cfg.Log.File, app.ParseLogLevel(cfg.Log.Level))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	application, err := app.New(cfg, logger, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if watcher, err := config.Watch(configPath); err == nil {
		defer watcher.Close()
		application.WatchConfig(watcher)
	} else {
		logger.WithComponent("config").Warn("configuration watcher unavailable: %v", err)
	}

	if err := runSession(application, cfg.Log.File); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runSession holds stderr for the time the alternate screen is active.
// Stray writes from dependencies go to the log file, or nowhere without
// one, instead of over the display. Startup and shutdown errors still
// reach the real stderr.
func runSession(application *app.App, logFile string) error {
	sink := logFile
	if sink == "" {
		sink = os.DevNull
	}
	restore, err := term.CaptureStderr(sink)
	if err != nil {
		return err
	}
	defer restore()

	return application.Run(context.Background())
}
