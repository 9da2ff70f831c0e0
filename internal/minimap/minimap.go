// Package minimap renders top-down biome-colored images of generated
// terrain, for map export and debugging.
package minimap

import (
	"image"
	"image/color"

	"github.com/Faultbox/wanderlands/internal/config"
	"github.com/Faultbox/wanderlands/internal/worldgen"
)

// BiomeColor returns the map color for a height/moisture pair. Water is
// drawn below sea level regardless of biome; land colors follow the biome
// classification with a subtle height tint.
func BiomeColor(height, moisture float32, cfg *config.Config) color.RGBA {
	var base [3]float32
	switch {
	case height < cfg.SeaLevel:
		base = [3]float32{0.15, 0.30, 0.55} // water
	default:
		switch worldgen.Classify(height, moisture, cfg.Biome) {
		case worldgen.BiomeSnow:
			base = [3]float32{0.90, 0.92, 0.95}
		case worldgen.BiomeRock:
			base = [3]float32{0.46, 0.48, 0.50}
		case worldgen.BiomeDesert:
			base = [3]float32{0.70, 0.60, 0.36}
		case worldgen.BiomeForest:
			base = [3]float32{0.21, 0.43, 0.23}
		default:
			base = [3]float32{0.34, 0.52, 0.24} // grassland
		}
	}

	tint := clamp01((height+40.0)/260.0) * 0.08
	r := base[0] + (0.75-base[0])*tint
	g := base[1] + (0.75-base[1])*tint
	b := base[2] + (0.75-base[2])*tint

	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}

// RenderChunk draws one generated chunk into img with the given pixel
// offset, one pixel per terrain grid cell.
func RenderChunk(img *image.RGBA, chunk *worldgen.ChunkData, offsetX, offsetY int, cfg *config.Config) {
	const side = worldgen.ChunkGridResolution
	if len(chunk.Terrain.Heights) != side*side {
		return
	}
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			idx := z*side + x
			c := BiomeColor(chunk.Terrain.Heights[idx], chunk.Terrain.Moisture[idx], cfg)
			img.SetRGBA(offsetX+x, offsetY+z, c)
		}
	}
}

// RenderRegion generates and draws the square region of chunks from
// (minX, minZ) to (maxX, maxZ) inclusive, one pixel per grid cell.
func RenderRegion(cfg *config.Config, minX, minZ, maxX, maxZ int32) *image.RGBA {
	const side = worldgen.ChunkGridResolution
	chunksX := int(maxX-minX) + 1
	chunksZ := int(maxZ-minZ) + 1
	img := image.NewRGBA(image.Rect(0, 0, chunksX*side, chunksZ*side))

	gen := worldgen.NewChunkGenerator(cfg.World.Seed, cfg)
	for cz := minZ; cz <= maxZ; cz++ {
		for cx := minX; cx <= maxX; cx++ {
			chunk := gen.GenerateChunk(worldgen.ChunkCoord{X: cx, Z: cz})
			RenderChunk(img, chunk, int(cx-minX)*side, int(cz-minZ)*side, cfg)
		}
	}
	return img
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
