// Package main runs the world engine headless: it streams chunks around
// an observer flying a fixed path and logs streaming statistics. This is
// the stand-in for the renderer while profiling generation and streaming.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/wanderlands/internal/config"
	"github.com/Faultbox/wanderlands/internal/logger"
	"github.com/Faultbox/wanderlands/internal/runtime"
)

var (
	flagTicks = flag.Int("ticks", 600, "Number of simulation ticks to run")
	flagSpeed = flag.Float64("speed", 40.0, "Observer speed in meters per second")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Wanderlands world simulator ===",
		zap.Uint32("seed", cfg.World.Seed),
		zap.Int32("load_radius", cfg.World.LoadRadius))

	world, err := runtime.New(cfg)
	if err != nil {
		logger.Error("failed to create world runtime", zap.Error(err))
		os.Exit(1)
	}
	defer world.Close()

	if err := run(world, *flagTicks, float32(*flagSpeed)); err != nil {
		logger.Error("simulation error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("simulation finished")
}

// run flies the observer in a widening spiral so the streaming window
// keeps crossing chunk boundaries, the worst case for load/evict churn.
func run(world *runtime.WorldRuntime, ticks int, speed float32) error {
	const dt = float32(1.0 / 60.0)

	start := time.Now()
	for tick := 0; tick < ticks; tick++ {
		t := float32(tick) * dt
		angle := t * 0.15
		radius := speed * t
		pos := mgl32.Vec3{
			radius * float32(math.Cos(float64(angle))),
			150,
			radius * float32(math.Sin(float64(angle))),
		}

		world.Update(dt, pos)

		if tick%60 == 0 {
			stats := world.Stats()
			logger.Info("tick",
				zap.Int("n", tick),
				zap.String("center", stats.CenterChunk.String()),
				zap.Int("loaded", stats.LoadedChunks),
				zap.Int("pending", stats.PendingChunks),
				zap.Float32("hour", stats.Hour))
		}
	}

	stats := world.Stats()
	logger.Info("final state",
		zap.Duration("elapsed", time.Since(start)),
		zap.String("center", stats.CenterChunk.String()),
		zap.Int("loaded", stats.LoadedChunks),
		zap.Int("pending", stats.PendingChunks))
	return nil
}
