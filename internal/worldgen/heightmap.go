package worldgen

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/wanderlands/internal/config"
)

// Seed offsets keep the four noise bands decorrelated while still being
// derived from the single world seed.
const (
	ridgeSeedOffset    = 101
	detailSeedOffset   = 907
	moistureSeedOffset = 1701
)

// Heightmap samples terrain height and moisture from four seeded simplex
// noise generators. Sampling is pure and safe to call from any number of
// goroutines concurrently.
type Heightmap struct {
	continental opensimplex.Noise
	ridge       opensimplex.Noise
	detail      opensimplex.Noise
	moisture    opensimplex.Noise
	cfg         config.HeightmapConfig
}

// NewHeightmap creates a heightmap sampler for the given seed.
func NewHeightmap(seed uint32, cfg config.HeightmapConfig) *Heightmap {
	return &Heightmap{
		continental: opensimplex.New(int64(seed)),
		ridge:       opensimplex.New(int64(seed + ridgeSeedOffset)),
		detail:      opensimplex.New(int64(seed + detailSeedOffset)),
		moisture:    opensimplex.New(int64(seed + moistureSeedOffset)),
		cfg:         cfg,
	}
}

// SampleHeight returns the terrain height in meters at a world position.
// Three bands: broad continents, inverted-absolute ridgelines, fine detail.
func (h *Heightmap) SampleHeight(x, z float32) float32 {
	xf := float64(x)
	zf := float64(z)
	c := &h.cfg

	broad := float32(h.continental.Eval2(xf*c.Continental.Frequency, zf*c.Continental.Frequency))
	ridges := 1.0 - abs32(float32(h.ridge.Eval2(xf*c.Ridge.Frequency, zf*c.Ridge.Frequency)))
	rough := float32(h.detail.Eval2(xf*c.Detail.Frequency, zf*c.Detail.Frequency))

	return broad*c.Continental.Amplitude + ridges*c.Ridge.Amplitude + rough*c.Detail.Amplitude
}

// SampleMoisture returns moisture in [0, 1] at a world position. The
// variation sample is offset so it decorrelates from the base sample even
// though both come from the same generator.
func (h *Heightmap) SampleMoisture(x, z float32) float32 {
	xf := float64(x)
	zf := float64(z)
	c := &h.cfg

	base := float32(h.moisture.Eval2(xf*c.MoistureBaseFrequency, zf*c.MoistureBaseFrequency))
	variation := float32(h.moisture.Eval2(
		xf*c.MoistureVariationFrequency+c.MoistureVariationOffsetX,
		zf*c.MoistureVariationFrequency+c.MoistureVariationOffsetZ,
	))

	m := (base*c.MoistureBaseWeight+variation*c.MoistureVariationWeight)*0.5 + 0.5
	return clamp32(m, 0, 1)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
