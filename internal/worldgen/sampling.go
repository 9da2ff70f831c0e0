package worldgen

import "math"

// slopeProbeStep is the finite-difference step, in meters, used for local
// slope estimation.
const slopeProbeStep = 1.75

// hash4 mixes four 32-bit inputs into one. This is the sole source of
// randomness in content placement: no RNG state exists anywhere, which is
// what keeps concurrent generation reproducible.
func hash4(a, b, c, d uint32) uint32 {
	x := a*0x9E3779B9 ^ rotl32(b, 13) ^ rotl32(c, 7) ^ d
	x ^= x >> 16
	x *= 0x85EBCA6B
	x ^= x >> 13
	x *= 0xC2B2AE35
	return x ^ (x >> 16)
}

func rotl32(v uint32, k uint) uint32 {
	return v<<k | v>>(32-k)
}

// hashToUnitFloat maps a hash value to a uniform float in [0, 1].
func hashToUnitFloat(v uint32) float32 {
	return float32(float64(v) / float64(math.MaxUint32))
}

// sampleBiomeNearest returns the biome of the grid vertex nearest to a
// chunk-local position.
func sampleBiomeNearest(values []Biome, localX, localZ float32) Biome {
	const side = ChunkGridResolution
	x := clampIdx(int(math.Round(float64(localX/ChunkSizeMeters)*(side-1))), side-1)
	z := clampIdx(int(math.Round(float64(localZ/ChunkSizeMeters)*(side-1))), side-1)
	return values[z*side+x]
}

// sampleFieldBilinear interpolates a row-major grid field at a chunk-local
// position in meters, clamping to the chunk edges.
func sampleFieldBilinear(values []float32, localX, localZ float32) float32 {
	const side = ChunkGridResolution
	xf := clamp32(localX/ChunkSizeMeters*(side-1), 0, side-1)
	zf := clamp32(localZ/ChunkSizeMeters*(side-1), 0, side-1)

	x0 := int(xf)
	z0 := int(zf)
	x1 := minInt(x0+1, side-1)
	z1 := minInt(z0+1, side-1)
	tx := xf - float32(x0)
	tz := zf - float32(z0)

	h00 := values[z0*side+x0]
	h10 := values[z0*side+x1]
	h01 := values[z1*side+x0]
	h11 := values[z1*side+x1]

	hx0 := h00 + (h10-h00)*tx
	hx1 := h01 + (h11-h01)*tx
	return hx0 + (hx1-hx0)*tz
}

// estimateSlope returns the gradient magnitude of the height field at a
// chunk-local position, estimated with central differences.
func estimateSlope(heights []float32, localX, localZ float32) float32 {
	const d = slopeProbeStep
	hx0 := sampleFieldBilinear(heights, localX-d, localZ)
	hx1 := sampleFieldBilinear(heights, localX+d, localZ)
	hz0 := sampleFieldBilinear(heights, localX, localZ-d)
	hz1 := sampleFieldBilinear(heights, localX, localZ+d)
	dx := (hx1 - hx0) / (2 * d)
	dz := (hz1 - hz0) / (2 * d)
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

func clampIdx(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
