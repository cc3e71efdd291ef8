package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/example/interview-scheduler/internal/config"
	"github.com/example/interview-scheduler/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	root := newRootCommand(cfg, logger, time.Now)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			logger.Error("command failed", "error", err)
		}
		os.Exit(1)
	}
}
