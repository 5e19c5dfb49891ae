// Package main is the strokegen tool: it replays a recorded stroke through
// the incremental tube generator and exports the result as an OBJ mesh.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/strokemesh/internal/capture"
	"github.com/Faultbox/strokemesh/internal/config"
	"github.com/Faultbox/strokemesh/internal/logger"
	"github.com/Faultbox/strokemesh/pkg/obj"
	"github.com/Faultbox/strokemesh/pkg/tube"
)

var flagSeed = flag.Int64("seed", 1, "atlas row seed")

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

	if cfg.Export.Input == "" {
		logger.Fatal("no input stroke file, pass -input")
	}

	if err := run(cfg); err != nil {
		logger.Error("strokegen failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	raws, err := readStrokeFile(cfg.Export.Input)
	if err != nil {
		return err
	}

	tubeCfg, err := cfg.Brush.TubeConfig()
	if err != nil {
		return err
	}

	stroke := capture.New(cfg.Capture.Resolve())
	gen, err := tube.NewGenerator(tubeCfg, stroke, *flagSeed)
	if err != nil {
		return err
	}
	gen.SpawnProgress = stroke.SpawnProgress

	// Replay the recording through the same incremental path the live
	// viewer uses, one raw sample at a time.
	for _, raw := range raws {
		if firstChanged, changed := stroke.Feed(raw); changed {
			gen.Update(firstChanged)
		}
	}

	buf := gen.Buffers()
	logger.Info("stroke generated",
		zap.Int("rawSamples", len(raws)),
		zap.Int("knots", stroke.Len()),
		zap.Int("verts", buf.VertexCount()),
		zap.Int("tris", buf.TriangleCount()),
	)

	if err := obj.WriteFile(cfg.Export.Path, cfg.Export.ObjectName, buf); err != nil {
		return err
	}
	logger.Info("mesh written", zap.String("path", cfg.Export.Path))
	return nil
}
