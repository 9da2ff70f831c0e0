package worldgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/wanderlands/internal/config"
)

// Seed variants for the independent random draws of the ferns layer.
const (
	fernsAcceptSeed   = 2001
	fernsJitterXSeed  = 2071
	fernsJitterZSeed  = 2193
	fernsRotationSeed = 2401
	fernsScaleSeed    = 2501
)

// FernsLayer places undergrowth ferns on a denser jittered grid than the
// flora layer.
type FernsLayer struct {
	seed     uint32
	cfg      config.FernsConfig
	seaLevel float32
}

// NewFernsLayer creates a ferns layer.
func NewFernsLayer(seed uint32, cfg config.FernsConfig, seaLevel float32) *FernsLayer {
	return &FernsLayer{seed: seed, cfg: cfg, seaLevel: seaLevel}
}

// Generate returns the fern instances for one chunk.
func (l *FernsLayer) Generate(input ContentInput) []FernInstance {
	coord := input.Coord
	terrain := input.Terrain
	if !contentGridValid(terrain, input.BiomeMap) {
		return nil
	}

	var ferns []FernInstance
	spacing := l.cfg.GridSpacing
	cellsPerSide := int32(ChunkSizeMeters / spacing)

	for gz := int32(0); gz < cellsPerSide; gz++ {
		for gx := int32(0); gx < cellsPerSide; gx++ {
			cellID := placementCellID(gx, gz)
			rnd := drawUnit(l.seed+fernsAcceptSeed, coord, cellID)

			jitterX := drawUnit(l.seed+fernsJitterXSeed, coord, cellID)
			jitterZ := drawUnit(l.seed+fernsJitterZSeed, coord, cellID)
			localX := (float32(gx) + jitterX) * spacing
			localZ := (float32(gz) + jitterZ) * spacing

			height := sampleFieldBilinear(terrain.Heights, localX, localZ)
			moisture := sampleFieldBilinear(terrain.Moisture, localX, localZ)
			biome := sampleBiomeNearest(input.BiomeMap.Values, localX, localZ)
			if rnd > l.fernDensity(biome, moisture) {
				continue
			}

			slope := estimateSlope(terrain.Heights, localX, localZ)
			if slope > l.cfg.MaxSlope || height < l.cfg.MinHeight || height < l.seaLevel {
				continue
			}

			rotation := drawUnit(l.seed+fernsRotationSeed, coord, cellID) * (2 * math.Pi)
			scale := l.cfg.ScaleMin + drawUnit(l.seed+fernsScaleSeed, coord, cellID)*l.cfg.ScaleRange

			worldX := float32(coord.X)*ChunkSizeMeters + localX
			worldZ := float32(coord.Z)*ChunkSizeMeters + localZ
			ferns = append(ferns, FernInstance{
				Position: mgl32.Vec3{worldX, height, worldZ},
				Rotation: rotation,
				Scale:    scale,
			})
		}
	}

	return ferns
}

// fernDensity rises with moisture in forest and grassland, capped per
// biome; zero everywhere else.
func (l *FernsLayer) fernDensity(biome Biome, moisture float32) float32 {
	c := &l.cfg
	switch biome {
	case BiomeForest:
		return clamp32((moisture-c.ForestDensityOffset)*c.ForestDensityScale, 0, c.ForestDensityMax)
	case BiomeGrassland:
		return clamp32((moisture-c.GrasslandDensityOffset)*c.GrasslandDensityScale, 0, c.GrasslandDensityMax)
	default:
		return 0
	}
}
