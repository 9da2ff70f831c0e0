// Package main exports a top-down biome map of a chunk region as PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/Faultbox/wanderlands/internal/config"
	"github.com/Faultbox/wanderlands/internal/minimap"
)

var (
	flagOut  = flag.String("out", "worldmap.png", "Output PNG path")
	flagMinX = flag.Int("min-x", -4, "Westernmost chunk X")
	flagMinZ = flag.Int("min-z", -4, "Northernmost chunk Z")
	flagMaxX = flag.Int("max-x", 4, "Easternmost chunk X")
	flagMaxZ = flag.Int("max-z", 4, "Southernmost chunk Z")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagMinX > *flagMaxX || *flagMinZ > *flagMaxZ {
		fmt.Fprintln(os.Stderr, "invalid region: min must not exceed max")
		os.Exit(1)
	}

	img := minimap.RenderRegion(cfg,
		int32(*flagMinX), int32(*flagMinZ), int32(*flagMaxX), int32(*flagMaxZ))

	f, err := os.Create(*flagOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Create %s: %v\n", *flagOut, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Encode PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%dx%d, seed %d)\n",
		*flagOut, img.Bounds().Dx(), img.Bounds().Dy(), cfg.World.Seed)
}
