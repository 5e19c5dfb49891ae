// Package main is the strokeview tool: an SDL2/OpenGL viewer for drawing
// strokes with the mouse and watching the tube mesh grow live.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/strokemesh/internal/config"
	"github.com/Faultbox/strokemesh/internal/logger"
)

var flagSeed = flag.Int64("seed", 1, "atlas row seed for the first stroke")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	v, err := newViewer(cfg, *flagSeed)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}
